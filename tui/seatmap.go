package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kino-cli/booking"
)

func (m appModel) renderSeatMap() string {
	tr := m.app.Translator()
	rows := m.snap.Rows
	if len(rows) == 0 {
		return hint(tr.T("select_session_hint"))
	}

	maxCols := 0
	cellWidth := 2
	rowWidth := 2
	for _, row := range rows {
		maxCols = max(maxCols, len(row.Seats))
		rowWidth = max(rowWidth, len(fmt.Sprintf("%d", row.Row)))
		for _, seat := range row.Seats {
			cellWidth = max(cellWidth, len(fmt.Sprintf("%d", seat.Number)))
		}
	}

	var b strings.Builder
	for r, row := range rows {
		label := fmt.Sprintf("%d", row.Row)
		b.WriteString(fmt.Sprintf("%*s ", rowWidth, label))
		for c := 0; c < maxCols; c++ {
			if c >= len(row.Seats) {
				b.WriteString(padCell("", cellWidth))
			} else {
				b.WriteString(m.renderSeat(row.Seats[c], cellWidth, r == m.cursorRow && c == m.cursorCol))
			}
			if c < maxCols-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString(fmt.Sprintf(" %*s\n", rowWidth, label))
	}

	gridWidth := maxCols*(cellWidth+1) - 1
	bar := screenBarBlock(gridWidth, strings.ToUpper(tr.T("screen")))
	indent := strings.Repeat(" ", rowWidth+1)
	b.WriteString("\n")
	b.WriteString(indent + m.st.screenBorder.Render(bar.top) + "\n")
	b.WriteString(indent + m.st.screen.Render(bar.mid) + "\n")
	b.WriteString(indent + m.st.screenBorder.Render(bar.bot) + "\n\n")

	legend := strings.Join([]string{
		m.st.seatFree.Render("■") + " " + tr.T("legend_free"),
		m.st.seatBooked.Render("■") + " " + tr.T("legend_booked"),
		m.st.seatSelected.Render("■") + " " + tr.T("legend_selected"),
	}, "  ")
	b.WriteString(legend)
	if seat, ok := m.cursorSeat(); ok {
		b.WriteString("  " + hint(seat.Label))
	}
	b.WriteString("\n\n")
	b.WriteString(m.bookingSummary())
	return b.String()
}

func (m appModel) renderSeat(seat booking.SeatView, width int, cursor bool) string {
	text := padCell(fmt.Sprintf("%d", seat.Number), width)
	style := m.st.seatFree
	switch {
	case seat.Booked:
		style = m.st.seatBooked
		text = padCell("XX", width)
	case seat.Selected:
		style = m.st.seatSelected
	}
	if cursor {
		style = style.Inherit(m.st.cursor)
	}
	return style.Render(text)
}

func (m appModel) bookingSummary() string {
	tr := m.app.Translator()
	lang := string(tr.Lang())
	movie, when, seats := "-", "-", "-"
	if m.snap.Movie != nil {
		movie = m.snap.Movie.LocalizedTitle(lang)
	}
	if m.snap.Session != nil {
		when = tr.Time(m.snap.Session.StartTime)
	}
	if len(m.snap.SelectedLabels) > 0 {
		seats = strings.Join(m.snap.SelectedLabels, ", ")
	}
	lines := [][2]string{
		{tr.T("booking_movie"), movie},
		{tr.T("booking_time"), when},
		{tr.T("booking_seats"), seats},
		{tr.T("booking_total"), tr.Price(m.snap.Total)},
		{tr.T("payment_method"), m.paymentLabel()},
	}
	width := 0
	for _, line := range lines {
		width = max(width, lipgloss.Width(line[0]))
	}
	var b strings.Builder
	b.WriteString(m.st.title.Render(tr.T("booking")) + "\n")
	for _, line := range lines {
		b.WriteString(m.st.label.Render(line[0] + strings.Repeat(" ", width-lipgloss.Width(line[0]))))
		b.WriteString("  " + line[1] + "\n")
	}
	if m.snap.Phase == booking.PhaseSubmitting {
		b.WriteString("\n" + m.spinner.View() + " " + tr.T("booking_submit"))
	}
	return b.String()
}

func (m appModel) cursorSeat() (booking.SeatView, bool) {
	if m.cursorRow < 0 || m.cursorRow >= len(m.snap.Rows) {
		return booking.SeatView{}, false
	}
	row := m.snap.Rows[m.cursorRow].Seats
	if m.cursorCol < 0 || m.cursorCol >= len(row) {
		return booking.SeatView{}, false
	}
	return row[m.cursorCol], true
}

func (m *appModel) moveCursor(dRow int, dCol int) {
	if len(m.snap.Rows) == 0 {
		return
	}
	m.cursorRow = min(max(m.cursorRow+dRow, 0), len(m.snap.Rows)-1)
	m.cursorCol = max(m.cursorCol+dCol, 0)
	m.clampCursor()
}

func (m *appModel) clampCursor() {
	if len(m.snap.Rows) == 0 {
		m.cursorRow, m.cursorCol = 0, 0
		return
	}
	m.cursorRow = min(max(m.cursorRow, 0), len(m.snap.Rows)-1)
	seats := len(m.snap.Rows[m.cursorRow].Seats)
	m.cursorCol = min(max(m.cursorCol, 0), max(seats-1, 0))
}

func padCell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if text == "" {
		return strings.Repeat(" ", width)
	}
	if len(text) >= width {
		return text[:width]
	}
	padding := width - len(text)
	left := padding / 2
	right := padding - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

type screenBlock struct {
	top string
	mid string
	bot string
}

// screenBarBlock measures in cells, since the label may be Cyrillic.
func screenBarBlock(width int, label string) screenBlock {
	labelWidth := lipgloss.Width(label)
	if width < labelWidth+4 {
		width = labelWidth + 4
	}
	if width < 10 {
		width = 10
	}

	border := "╭" + strings.Repeat("─", width-2) + "╮"
	bottom := "╰" + strings.Repeat("─", width-2) + "╯"

	padding := width - labelWidth - 4
	left := padding / 2
	right := padding - left
	mid := "│" + strings.Repeat(" ", left+1) + label + strings.Repeat(" ", right+1) + "│"
	return screenBlock{top: border, mid: mid, bot: bottom}
}
