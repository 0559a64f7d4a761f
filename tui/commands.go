package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"kino-cli/admin"
	"kino-cli/model"
)

const flashTTL = 4 * time.Second

// stay keeps the current screen when an action completes.
const stay appState = -1

type startedMsg struct {
	err error
}

// actionMsg reports a finished request. On success the model moves to next
// unless it is stay or the user has left the screen the action started on.
type actionMsg struct {
	err  error
	from appState
	next appState
}

type dismissMsg struct {
	seq uint64
}

func (m appModel) startCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		return startedMsg{err: m.app.Start(ctx)}
	}
}

func runCmd(from appState, next appState, fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		return actionMsg{err: fn(ctx), from: from, next: next}
	}
}

func (m appModel) selectMovieCmd(id int64) tea.Cmd {
	return runCmd(m.state, stateSessions, func(ctx context.Context) error {
		return m.app.Booking.SelectMovie(ctx, id)
	})
}

func (m appModel) selectSessionCmd(id int64) tea.Cmd {
	return runCmd(m.state, stateSeats, func(ctx context.Context) error {
		return m.app.Booking.SelectSession(ctx, id)
	})
}

func (m appModel) submitCmd(payment string) tea.Cmd {
	return runCmd(m.state, stay, func(ctx context.Context) error {
		_, err := m.app.Booking.Submit(ctx, payment)
		return err
	})
}

func (m appModel) refreshBookingsCmd() tea.Cmd {
	return runCmd(m.state, stay, m.app.Booking.RefreshBookings)
}

func (m appModel) cancelBookingCmd(id int64) tea.Cmd {
	return runCmd(m.state, stay, func(ctx context.Context) error {
		return m.app.Booking.Cancel(ctx, id)
	})
}

func (m appModel) showQRCmd(id int64) tea.Cmd {
	return runCmd(m.state, stateQR, func(ctx context.Context) error {
		return m.app.ShowQR(ctx, id)
	})
}

func (m appModel) downloadTicketCmd(id int64) tea.Cmd {
	return runCmd(m.state, stay, func(ctx context.Context) error {
		_, err := m.app.DownloadTicket(ctx, id)
		return err
	})
}

func (m appModel) bookingStatusCmd(id int64, status string) tea.Cmd {
	return runCmd(m.state, stay, func(ctx context.Context) error {
		if _, err := m.app.Admin.SetBookingStatus(ctx, id, status); err != nil {
			return err
		}
		return m.app.Booking.RefreshBookings(ctx)
	})
}

func (m appModel) loginCmd(email string, password string) tea.Cmd {
	return runCmd(m.state, stateMovies, func(ctx context.Context) error {
		return m.app.Login(ctx, email, password)
	})
}

func (m appModel) registerCmd(name string, email string, password string) tea.Cmd {
	return runCmd(m.state, stateMovies, func(ctx context.Context) error {
		return m.app.Register(ctx, name, email, password)
	})
}

func (m appModel) updateProfileCmd(name string) tea.Cmd {
	return runCmd(m.state, stay, func(ctx context.Context) error {
		return m.app.Account.UpdateProfile(ctx, name)
	})
}

func (m appModel) changePasswordCmd(current string, next string) tea.Cmd {
	return runCmd(m.state, stay, func(ctx context.Context) error {
		return m.app.Account.ChangePassword(ctx, current, next)
	})
}

func (m appModel) loadAdminCmd() tea.Cmd {
	return runCmd(m.state, stateAdmin, m.app.Admin.Load)
}

func (m appModel) saveAdminCmd(tab admin.Tab) tea.Cmd {
	return runCmd(m.state, stateAdmin, func(ctx context.Context) error {
		switch tab {
		case admin.TabHalls:
			return m.app.Admin.SaveHall(ctx)
		case admin.TabSessions:
			return m.app.Admin.SaveSession(ctx)
		default:
			return m.app.Admin.SaveMovie(ctx)
		}
	})
}

func (m appModel) deleteAdminCmd(tab admin.Tab, id int64) tea.Cmd {
	return runCmd(m.state, stay, func(ctx context.Context) error {
		switch tab {
		case admin.TabHalls:
			return m.app.Admin.DeleteHall(ctx, id)
		case admin.TabSessions:
			return m.app.Admin.DeleteSession(ctx, id)
		default:
			return m.app.Admin.DeleteMovie(ctx, id)
		}
	})
}

// nextStatus is the status an admin toggles a booking to.
func nextStatus(current string) string {
	if current == model.BookingCancelled {
		return model.BookingConfirmed
	}
	return model.BookingCancelled
}

// scheduleFlash arms the auto-dismiss timer for a newly posted flash.
func (m *appModel) scheduleFlash() tea.Cmd {
	msg, seq := m.app.Flash.Current()
	if msg.Empty() || seq == m.flashSeq {
		return nil
	}
	m.flashSeq = seq
	return tea.Tick(flashTTL, func(time.Time) tea.Msg {
		return dismissMsg{seq: seq}
	})
}
