package model

type Hall struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
	Rows int    `json:"rows"`
	Cols int    `json:"cols"`
}

type Seat struct {
	Id     int64 `json:"id"`
	HallId int64 `json:"hall_id"`
	Row    int   `json:"row"`
	Number int   `json:"number"`
}

// Availability lists the seats already booked for a session at query time.
type Availability struct {
	BookedSeatIds []int64 `json:"booked_seat_ids"`
}

type HallRequest struct {
	Name string `json:"name"`
	Rows int    `json:"rows,omitempty"`
	Cols int    `json:"cols,omitempty"`
}
