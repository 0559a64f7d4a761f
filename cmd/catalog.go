package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"kino-cli/booking"
)

var (
	movieFlag   int64
	sessionFlag int64
)

var moviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "List the movies on show",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, false)
		if err != nil {
			return err
		}
		if err := a.Booking.LoadMovies(cmd.Context()); err != nil {
			return outcome(cmd, a, err)
		}
		tr := a.Translator()
		lang := string(tr.Lang())

		t := newTable(cmd)
		t.AppendHeader(table.Row{"ID", tr.T("booking_movie"), tr.T("placeholder_duration"), tr.T("placeholder_description")})
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 2, WidthMax: 30},
			{Number: 4, WidthMax: 50},
		})
		for _, movie := range a.Booking.Snapshot().Movies {
			t.AppendRow(table.Row{
				movie.Id,
				movie.LocalizedTitle(lang),
				tr.Duration(movie.DurationMins),
				movie.LocalizedDescription(lang),
			})
		}
		t.Render()
		return nil
	},
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List the sessions of a movie",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, false)
		if err != nil {
			return err
		}
		sessions, err := a.API.ListSessions(cmd.Context(), movieFlag)
		if err != nil {
			a.Flash.Error(a.Translator().T("flash_load_failed"))
			return outcome(cmd, a, err)
		}
		tr := a.Translator()
		lang := string(tr.Lang())

		rowConfigAutoMerge := table.RowConfig{AutoMerge: true}
		t := newTable(cmd)
		t.AppendHeader(table.Row{tr.T("booking_movie"), "ID", tr.T("booking_time"), tr.T("placeholder_hall"), tr.T("placeholder_price")}, rowConfigAutoMerge)
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 1, AutoMerge: true, WidthMax: 30},
		})
		for _, session := range sessions {
			title := tr.T("movie_fallback")
			if session.Movie != nil {
				title = session.Movie.LocalizedTitle(lang)
			}
			hall := "-"
			if session.Hall != nil {
				hall = session.Hall.Name
			}
			t.AppendRow(table.Row{title, session.Id, tr.Time(session.StartTime), hall, tr.Price(session.BasePrice)}, rowConfigAutoMerge)
		}
		t.Render()
		return nil
	},
}

var seatsCmd = &cobra.Command{
	Use:   "seats",
	Short: "Show the seat map of a session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, false)
		if err != nil {
			return err
		}
		if err := openSession(cmd.Context(), a.Booking, a.API, sessionFlag); err != nil {
			return outcome(cmd, a, err)
		}
		tr := a.Translator()
		snap := a.Booking.Snapshot()

		t := newTable(cmd)
		t.AppendHeader(table.Row{tr.T("seat_row_abbr"), tr.T("booking_seats")})
		for _, row := range snap.Rows {
			cells := make([]string, 0, len(row.Seats))
			for _, seat := range row.Seats {
				mark := fmt.Sprintf("%d:%d", seat.Number, seat.Id)
				if seat.Booked {
					mark = fmt.Sprintf("%d:XX", seat.Number)
				}
				cells = append(cells, mark)
			}
			t.AppendRow(table.Row{row.Row, strings.Join(cells, "  ")})
		}
		t.Render()
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s • %s\n", tr.T("booking_time"), tr.Time(snap.Session.StartTime), tr.Price(snap.Session.BasePrice))
		return nil
	},
}

// openSession selects a session through the booking workflow, which needs
// the session's movie selected first.
func openSession(ctx context.Context, c *booking.Controller, api booking.API, sessionID int64) error {
	if sessionID <= 0 {
		return booking.ErrNoSession
	}
	sessions, err := api.ListSessions(ctx, 0)
	if err != nil {
		return err
	}
	movieID := int64(0)
	for _, session := range sessions {
		if session.Id == sessionID {
			movieID = session.MovieId
		}
	}
	if movieID == 0 {
		return booking.ErrUnknownSession
	}
	if err := c.LoadMovies(ctx); err != nil {
		return err
	}
	if err := c.SelectMovie(ctx, movieID); err != nil {
		return err
	}
	return c.SelectSession(ctx, sessionID)
}

func newTable(cmd *cobra.Command) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.Style().Options.SeparateRows = true
	return t
}

func init() {
	sessionsCmd.Flags().Int64Var(&movieFlag, "movie", 0, "movie id (all sessions when omitted)")
	seatsCmd.Flags().Int64Var(&sessionFlag, "session", 0, "session id")
	_ = seatsCmd.MarkFlagRequired("session")
	rootCmd.AddCommand(moviesCmd, sessionsCmd, seatsCmd)
}
