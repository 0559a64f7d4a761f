package booking

import (
	"strconv"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"kino-cli/i18n"
	"kino-cli/model"
)

// SeatView is one seat as the seat map draws it.
type SeatView struct {
	model.Seat
	Label    string
	Booked   bool
	Selected bool
}

type SeatRow struct {
	Row   int
	Seats []SeatView
}

// Snapshot is an immutable copy of the workflow state plus the derived seat
// map. Slices are owned by the caller.
type Snapshot struct {
	Phase          Phase
	Movies         []model.Movie
	Movie          *model.Movie
	Sessions       []model.Session
	Session        *model.Session
	Rows           []SeatRow
	Chosen         []int64
	SelectedLabels []string
	Total          int
	Bookings       []model.Booking
	LastBooking    *model.Booking
}

func (s Snapshot) SeatCount() int {
	count := 0
	for _, row := range s.Rows {
		count += len(row.Seats)
	}
	return count
}

// Snapshot copies the current state and builds the seat map with labels in
// the active language.
func (c *Controller) Snapshot() Snapshot {
	tr := c.tr()

	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		Phase:    c.phase,
		Movies:   append([]model.Movie(nil), c.movies...),
		Sessions: append([]model.Session(nil), c.sessions...),
		Chosen:   append([]int64(nil), c.chosen...),
		Bookings: append([]model.Booking(nil), c.bookings...),
	}
	if c.movie != nil {
		movie := *c.movie
		snap.Movie = &movie
	}
	if c.session != nil {
		session := *c.session
		snap.Session = &session
		snap.Total = session.BasePrice * len(c.chosen)
	}
	if c.lastBooking != nil {
		last := *c.lastBooking
		snap.LastBooking = &last
	}

	selected := make(map[int64]bool, len(c.chosen))
	for _, id := range c.chosen {
		selected[id] = true
	}
	snap.Rows = groupSeats(c.seats, c.booked, selected, tr)
	snap.SelectedLabels = seatLabels(c.seats, c.chosen, tr)
	return snap
}

// groupSeats buckets seats by row, rows ascending, seats in server order.
func groupSeats(seats []model.Seat, booked map[int64]bool, selected map[int64]bool, tr i18n.Translator) []SeatRow {
	byRow := map[int][]SeatView{}
	for _, seat := range seats {
		byRow[seat.Row] = append(byRow[seat.Row], SeatView{
			Seat:     seat,
			Label:    tr.SeatLabel(seat.Row, seat.Number),
			Booked:   booked[seat.Id],
			Selected: selected[seat.Id],
		})
	}
	rowNumbers := maps.Keys(byRow)
	slices.Sort(rowNumbers)

	rows := make([]SeatRow, 0, len(rowNumbers))
	for _, number := range rowNumbers {
		rows = append(rows, SeatRow{Row: number, Seats: byRow[number]})
	}
	return rows
}

// seatLabels lists chosen seats in selection order. Ids missing from the
// layout render as #id.
func seatLabels(seats []model.Seat, chosen []int64, tr i18n.Translator) []string {
	byID := make(map[int64]model.Seat, len(seats))
	for _, seat := range seats {
		byID[seat.Id] = seat
	}
	labels := make([]string, 0, len(chosen))
	for _, id := range chosen {
		seat, ok := byID[id]
		if !ok {
			labels = append(labels, "#"+strconv.FormatInt(id, 10))
			continue
		}
		labels = append(labels, tr.SeatLabel(seat.Row, seat.Number))
	}
	return labels
}
