package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"kino-cli/admin"
	"kino-cli/i18n"
	"kino-cli/model"
)

type movieItem struct {
	movie model.Movie
	tr    i18n.Translator
}

func (m movieItem) Title() string {
	return m.movie.LocalizedTitle(string(m.tr.Lang()))
}

func (m movieItem) Description() string {
	parts := []string{}
	if m.movie.DurationMins > 0 {
		parts = append(parts, m.tr.Duration(m.movie.DurationMins))
	}
	if genres := m.movie.LocalizedGenres(string(m.tr.Lang())); genres != "" {
		parts = append(parts, genres)
	}
	if m.movie.ReleaseYear > 0 {
		parts = append(parts, fmt.Sprintf("%d", m.movie.ReleaseYear))
	}
	if country := m.movie.LocalizedCountry(string(m.tr.Lang())); country != "" {
		parts = append(parts, country)
	}
	return strings.Join(parts, " • ")
}

func (m movieItem) FilterValue() string {
	return strings.ToLower(m.movie.Title + " " + m.movie.TitleEn + " " + m.movie.TitleKk)
}

type sessionItem struct {
	session model.Session
	tr      i18n.Translator
}

func (s sessionItem) Title() string {
	return s.tr.Time(s.session.StartTime)
}

func (s sessionItem) Description() string {
	parts := []string{s.tr.Price(s.session.BasePrice)}
	if s.session.Hall != nil && s.session.Hall.Name != "" {
		parts = append(parts, s.session.Hall.Name)
	}
	return strings.Join(parts, " • ")
}

func (s sessionItem) FilterValue() string {
	return strings.ToLower(s.Title() + " " + s.Description())
}

type bookingItem struct {
	booking model.Booking
	tr      i18n.Translator
}

func (b bookingItem) Title() string {
	title := b.tr.T("session_fallback")
	if b.booking.Session != nil && b.booking.Session.Movie != nil {
		title = b.booking.Session.Movie.LocalizedTitle(string(b.tr.Lang()))
	}
	return fmt.Sprintf("#%d %s", b.booking.Id, title)
}

func (b bookingItem) Description() string {
	parts := []string{b.tr.Status(b.booking.Status)}
	if b.booking.Session != nil && !b.booking.Session.StartTime.IsZero() {
		parts = append(parts, b.tr.Time(b.booking.Session.StartTime))
	}
	if len(b.booking.Seats) > 0 {
		labels := make([]string, 0, len(b.booking.Seats))
		for _, seat := range b.booking.Seats {
			labels = append(labels, b.tr.SeatLabel(seat.Row, seat.Number))
		}
		parts = append(parts, b.tr.T("seats_prefix")+": "+strings.Join(labels, ", "))
	}
	parts = append(parts, b.tr.Price(b.booking.TotalPrice))
	return strings.Join(parts, " • ")
}

func (b bookingItem) FilterValue() string {
	return strings.ToLower(b.Title())
}

type langItem struct {
	lang i18n.Lang
}

func (l langItem) Title() string       { return l.lang.Name() }
func (l langItem) Description() string { return string(l.lang) }
func (l langItem) FilterValue() string { return string(l.lang) }

// adminItem is a row of any admin tab.
type adminItem struct {
	id    int64
	title string
	desc  string
}

func (a adminItem) Title() string       { return a.title }
func (a adminItem) Description() string { return a.desc }
func (a adminItem) FilterValue() string { return strings.ToLower(a.title) }

func buildMovieItems(movies []model.Movie, tr i18n.Translator) []list.Item {
	items := make([]list.Item, 0, len(movies))
	for _, movie := range movies {
		items = append(items, movieItem{movie: movie, tr: tr})
	}
	return items
}

func buildSessionItems(sessions []model.Session, tr i18n.Translator) []list.Item {
	items := make([]list.Item, 0, len(sessions))
	for _, session := range sessions {
		items = append(items, sessionItem{session: session, tr: tr})
	}
	return items
}

func buildBookingItems(bookings []model.Booking, tr i18n.Translator) []list.Item {
	items := make([]list.Item, 0, len(bookings))
	for _, booking := range bookings {
		items = append(items, bookingItem{booking: booking, tr: tr})
	}
	return items
}

func buildLangItems() []list.Item {
	items := make([]list.Item, 0, len(i18n.Languages))
	for _, lang := range i18n.Languages {
		items = append(items, langItem{lang: lang})
	}
	return items
}

func buildAdminItems(view admin.View, tr i18n.Translator) []list.Item {
	lang := string(tr.Lang())
	var items []list.Item
	switch view.Tab {
	case admin.TabHalls:
		for _, hall := range view.Halls {
			items = append(items, adminItem{
				id:    hall.Id,
				title: hall.Name,
				desc:  fmt.Sprintf("%s: %d • %s: %d", tr.T("placeholder_rows"), hall.Rows, tr.T("placeholder_seats"), hall.Cols),
			})
		}
	case admin.TabSessions:
		for _, session := range view.Sessions {
			title := view.MovieTitle(session.MovieId, lang)
			if title == "" {
				title = tr.T("movie_fallback")
			}
			items = append(items, adminItem{
				id:    session.Id,
				title: fmt.Sprintf("%s • %s", title, tr.Time(session.StartTime)),
				desc:  fmt.Sprintf("%s • %s", view.HallName(session.HallId), tr.Price(session.BasePrice)),
			})
		}
	default:
		for _, movie := range view.Movies {
			items = append(items, adminItem{
				id:    movie.Id,
				title: movie.LocalizedTitle(lang),
				desc:  tr.Duration(movie.DurationMins),
			})
		}
	}
	return items
}
