package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"kino-cli/app"
	"kino-cli/booking"
)

var errSeatChoice = errors.New("seat choice rejected")

var (
	bookSessionFlag int64
	bookSeatsFlag   []string
	bookPaymentFlag string
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Book seats for a session",
	Example: `  kino seats --session 10
  kino book --session 10 --seats 1000,1001 --payment cash`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := restoredApp(cmd)
		if err != nil {
			return err
		}
		if !a.Account.Authenticated() {
			a.Flash.Error(a.Translator().T("flash_login_required"))
			return outcome(cmd, a, booking.ErrNotAuthenticated)
		}
		if err := openSession(cmd.Context(), a.Booking, a.API, bookSessionFlag); err != nil {
			return outcome(cmd, a, err)
		}
		if err := chooseSeats(a, bookSeatsFlag); err != nil {
			return outcome(cmd, a, err)
		}
		labels := a.Booking.Snapshot().SelectedLabels
		created, err := a.Booking.Submit(cmd.Context(), bookPaymentFlag)
		if err := outcome(cmd, a, err); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "#%d • %s • %s\n", created.Id, strings.Join(labels, ", "), a.Translator().Price(created.TotalPrice))
		return nil
	},
}

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "List your bookings",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := restoredApp(cmd)
		if err != nil {
			return err
		}
		if err := a.Booking.RefreshBookings(cmd.Context()); err != nil {
			return outcome(cmd, a, err)
		}
		tr := a.Translator()
		lang := string(tr.Lang())
		snap := a.Booking.Snapshot()
		if len(snap.Bookings) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), tr.T("no_bookings"))
			return nil
		}

		t := newTable(cmd)
		t.AppendHeader(table.Row{"ID", tr.T("booking_movie"), tr.T("booking_time"), tr.T("booking_seats"), tr.T("booking_total"), tr.T("payment_method"), ""})
		for _, b := range snap.Bookings {
			title, when := tr.T("session_fallback"), "-"
			if b.Session != nil {
				when = tr.Time(b.Session.StartTime)
				if b.Session.Movie != nil {
					title = b.Session.Movie.LocalizedTitle(lang)
				}
			}
			labels := make([]string, 0, len(b.Seats))
			for _, seat := range b.Seats {
				labels = append(labels, tr.SeatLabel(seat.Row, seat.Number))
			}
			t.AppendRow(table.Row{b.Id, title, when, strings.Join(labels, ", "), tr.Price(b.TotalPrice), b.PaymentMethod, tr.Status(b.Status)})
		}
		t.Render()
		return nil
	},
}

var cancelCmd = &cobra.Command{
	Use:   "cancel <booking-id>",
	Short: "Cancel a booking",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		a, err := restoredApp(cmd)
		if err != nil {
			return err
		}
		return outcome(cmd, a, a.Booking.Cancel(cmd.Context(), id))
	},
}

var ticketCmd = &cobra.Command{
	Use:   "ticket <booking-id>",
	Short: "Download the PDF ticket of a booking",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		a, err := restoredApp(cmd)
		if err != nil {
			return err
		}
		_, err = a.DownloadTicket(cmd.Context(), id)
		return outcome(cmd, a, err)
	},
}

var qrCmd = &cobra.Command{
	Use:   "qr <booking-id>",
	Short: "Print the QR code of a booking",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		a, err := restoredApp(cmd)
		if err != nil {
			return err
		}
		if err := a.ShowQR(cmd.Context(), id); err != nil {
			return outcome(cmd, a, err)
		}
		defer a.QR.Close()
		code, err := a.QR.Render()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), code)
		return nil
	},
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(raw, "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

func init() {
	bookCmd.Flags().Int64Var(&bookSessionFlag, "session", 0, "session id")
	bookCmd.Flags().StringSliceVar(&bookSeatsFlag, "seats", nil, "seat ids, comma separated")
	bookCmd.Flags().StringVar(&bookPaymentFlag, "payment", booking.DefaultPaymentMethod, "payment method: card or cash")
	_ = bookCmd.MarkFlagRequired("session")
	_ = bookCmd.MarkFlagRequired("seats")
	rootCmd.AddCommand(bookCmd, bookingsCmd, cancelCmd, ticketCmd, qrCmd)
}

// chooseSeats selects exactly the requested seats of the open session. An
// unknown, booked or repeated id rejects the whole request before anything
// is selected.
func chooseSeats(a *app.App, raw []string) error {
	tr := a.Translator()
	seats := make(map[int64]booking.SeatView)
	for _, row := range a.Booking.Snapshot().Rows {
		for _, seat := range row.Seats {
			seats[seat.Id] = seat
		}
	}

	ids := make([]int64, 0, len(raw))
	seen := make(map[int64]bool, len(raw))
	for _, value := range raw {
		id, err := parseID(value)
		if err != nil {
			return err
		}
		seat, ok := seats[id]
		switch {
		case !ok:
			a.Flash.Error(fmt.Sprintf("%s: #%d", tr.T("flash_seat_unavailable"), id))
			return errSeatChoice
		case seat.Booked:
			a.Flash.Error(fmt.Sprintf("%s: %s", tr.T("flash_seat_unavailable"), seat.Label))
			return errSeatChoice
		case seen[id]:
			a.Flash.Error(fmt.Sprintf("%s: %s", tr.T("flash_seat_duplicate"), seat.Label))
			return errSeatChoice
		}
		seen[id] = true
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		a.Flash.Error(tr.T("flash_select_seats"))
		return booking.ErrNoSeats
	}

	for _, id := range ids {
		a.Booking.ToggleSeat(id)
	}
	if len(a.Booking.Snapshot().Chosen) != len(ids) {
		a.Flash.Error(tr.T("flash_select_seats"))
		return booking.ErrNoSeats
	}
	return nil
}
