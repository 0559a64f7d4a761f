package admin

import (
	"strings"
	"time"

	"kino-cli/model"
)

const (
	DefaultDurationMins = 90
	DefaultRows         = 8
	DefaultCols         = 12
	DefaultPrice        = 450

	// StartLayout is how session start times are typed, in local time.
	StartLayout = "2006-01-02 15:04"
)

type MovieForm struct {
	EditingID    int64
	Title        string
	Description  string
	DurationMins int
	PosterURL    string
}

func NewMovieForm() MovieForm {
	return MovieForm{DurationMins: DefaultDurationMins}
}

func (f MovieForm) request() model.MovieRequest {
	return model.MovieRequest{
		Title:        strings.TrimSpace(f.Title),
		Description:  strings.TrimSpace(f.Description),
		DurationMins: f.DurationMins,
		PosterURL:    strings.TrimSpace(f.PosterURL),
	}
}

type HallForm struct {
	EditingID int64
	Name      string
	Rows      int
	Cols      int
}

func NewHallForm() HallForm {
	return HallForm{Rows: DefaultRows, Cols: DefaultCols}
}

// SizeLocked reports whether rows and cols are read-only. The layout of an
// existing hall cannot change; only its name can.
func (f HallForm) SizeLocked() bool {
	return f.EditingID != 0
}

type SessionForm struct {
	EditingID int64
	MovieID   int64
	HallID    int64
	Start     string
	Price     int
}

func NewSessionForm() SessionForm {
	return SessionForm{Price: DefaultPrice}
}

func (f SessionForm) complete() bool {
	return f.MovieID != 0 && f.HallID != 0 && strings.TrimSpace(f.Start) != ""
}

func (f SessionForm) request(loc *time.Location) (model.SessionRequest, error) {
	start, err := ParseStart(f.Start, loc)
	if err != nil {
		return model.SessionRequest{}, err
	}
	return model.SessionRequest{
		MovieId:   f.MovieID,
		HallId:    f.HallID,
		StartTime: start.UTC().Format(time.RFC3339),
		BasePrice: f.Price,
	}, nil
}

// ParseStart reads a local start time typed as StartLayout. RFC 3339 input is
// accepted as well.
func ParseStart(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts, nil
	}
	if loc == nil {
		loc = time.Local
	}
	ts, err := time.ParseInLocation(StartLayout, strings.Replace(raw, "T", " ", 1), loc)
	if err != nil {
		return time.Time{}, ErrInvalidStart
	}
	return ts, nil
}

// FormatStart renders a start time for editing in the form.
func FormatStart(ts time.Time, loc *time.Location) string {
	if ts.IsZero() {
		return ""
	}
	if loc == nil {
		loc = time.Local
	}
	return ts.In(loc).Format(StartLayout)
}
