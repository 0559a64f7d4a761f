package model

import "time"

const (
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

type Booking struct {
	Id            int64     `json:"id"`
	SessionId     int64     `json:"session_id"`
	Status        string    `json:"status"`
	TotalPrice    int       `json:"total_price"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	Session       *Session  `json:"session,omitempty"`
	Seats         []Seat    `json:"seats,omitempty"`
}

func (b Booking) Cancelled() bool {
	return b.Status == BookingCancelled
}

type BookingRequest struct {
	SessionId     int64   `json:"session_id"`
	SeatIds       []int64 `json:"seat_ids"`
	PaymentMethod string  `json:"payment_method,omitempty"`
}

type BookingStatusRequest struct {
	Status string `json:"status"`
}

// Blob is a raw binary payload such as a QR image or a PDF ticket.
type Blob struct {
	ContentType string
	Data        []byte
}
