package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"kino-cli/admin"
	"kino-cli/app"
	"kino-cli/booking"
	"kino-cli/flash"
	"kino-cli/store"
)

type appState int

const (
	stateLoading appState = iota
	stateMovies
	stateSessions
	stateSeats
	stateBookings
	stateAuth
	stateProfile
	stateQR
	stateAdmin
	stateAdminForm
	stateLanguage
)

type appModel struct {
	app *app.App

	state     appState
	lastState appState
	busy      bool

	width  int
	height int

	st   styles
	snap booking.Snapshot

	movieList   list.Model
	sessionList list.Model
	bookingList list.Model
	adminList   list.Model
	langList    list.Model

	cursorRow int
	cursorCol int
	payment   string

	authForm    form
	registering bool
	profileForm form
	adminForm   form
	adminTab    admin.Tab

	spinner  spinner.Model
	flashSeq uint64
}

func New(a *app.App) tea.Model {
	m := appModel{
		app:     a,
		state:   stateLoading,
		payment: booking.DefaultPaymentMethod,
		st:      newStyles(a.Theme()),
	}

	m.movieList = newList("")
	m.sessionList = newList("")
	m.bookingList = newList("")
	m.bookingList.SetFilteringEnabled(false)
	m.adminList = newList("")
	m.adminList.SetFilteringEnabled(false)
	m.langList = newList("")
	m.langList.SetFilteringEnabled(false)
	m.langList.SetItems(buildLangItems())

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	m.spinner = sp

	m.refresh()
	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.startCmd(), m.spinner.Tick)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if m.handleFilterInput(msg) {
			return m, nil
		}
		var cmd tea.Cmd
		var handled bool
		m, cmd, handled = m.handleKey(msg)
		if handled {
			return m, tea.Batch(cmd, m.scheduleFlash())
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.busy || m.state == stateLoading {
			return m, cmd
		}
		return m, nil

	case startedMsg:
		m.busy = false
		m.refresh()
		m.state = stateMovies
		return m, m.scheduleFlash()

	case actionMsg:
		m.busy = false
		if msg.err == nil && msg.next != stay && msg.from == m.state {
			if msg.next == stateSeats {
				m.cursorRow, m.cursorCol = 0, 0
			}
			m.state = msg.next
		}
		m.refresh()
		return m, m.scheduleFlash()

	case dismissMsg:
		m.app.Flash.Dismiss(msg.seq)
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case stateMovies:
		m.movieList, cmd = m.movieList.Update(msg)
	case stateSessions:
		m.sessionList, cmd = m.sessionList.Update(msg)
	case stateBookings:
		m.bookingList, cmd = m.bookingList.Update(msg)
	case stateAdmin:
		m.adminList, cmd = m.adminList.Update(msg)
	case stateLanguage:
		m.langList, cmd = m.langList.Update(msg)
	}
	return m, cmd
}

func (m appModel) View() string {
	header := m.headerView()
	switch m.state {
	case stateLoading:
		return header + "\n\n" + m.loadingView()
	case stateMovies:
		return header + "\n\n" + m.movieList.View()
	case stateSessions:
		return header + "\n\n" + m.sessionList.View()
	case stateSeats:
		return header + "\n\n" + m.renderSeatMap()
	case stateBookings:
		return header + "\n\n" + m.bookingList.View()
	case stateAuth:
		title := m.app.Translator().T("auth_login")
		if m.registering {
			title = m.app.Translator().T("auth_register")
		}
		return header + "\n\n" + m.authForm.view(m.st, title) + "\n" + hint(m.app.Translator().T("auth_switch_hint"))
	case stateProfile:
		return header + "\n\n" + m.profileView()
	case stateQR:
		return header + "\n\n" + m.qrView()
	case stateAdmin:
		return header + "\n\n" + m.adminTabsView() + "\n\n" + m.adminList.View()
	case stateAdminForm:
		return header + "\n\n" + m.adminTabsView() + "\n\n" + m.adminForm.view(m.st, m.adminFormTitle())
	case stateLanguage:
		return header + "\n\n" + m.langList.View()
	default:
		return header
	}
}

func (m appModel) headerView() string {
	tr := m.app.Translator()
	title := m.st.title.Render("Kino")

	sub := []string{}
	if user, ok := m.app.Account.User(); ok {
		name := user.Name
		if user.IsAdmin {
			name += " (admin)"
		}
		sub = append(sub, name)
	} else {
		sub = append(sub, tr.T("guest"))
	}
	sub = append(sub, tr.Lang().Name())
	if m.app.Theme() == store.ThemeLight {
		sub = append(sub, tr.T("theme_light"))
	} else {
		sub = append(sub, tr.T("theme_dark"))
	}
	if m.snap.Movie != nil && m.state != stateMovies {
		sub = append(sub, m.snap.Movie.LocalizedTitle(string(tr.Lang())))
	}
	if m.snap.Session != nil && m.state == stateSeats {
		sub = append(sub, tr.Time(m.snap.Session.StartTime))
	}
	meta := "\n" + lipgloss.NewStyle().Faint(true).Render(strings.Join(sub, " • "))

	status := ""
	if m.busy {
		status = "\n" + m.spinner.View() + " " + tr.T("loading")
	} else if line := m.flashLine(); line != "" {
		status = "\n" + line
	}

	filterLine := ""
	if listPtr := m.activeList(); listPtr != nil {
		if filter := listPtr.FilterValue(); filter != "" {
			filterLine = "\n" + hint(fmt.Sprintf("%s: %s", tr.T("filter_label"), filter))
		}
	}
	return title + meta + status + filterLine + "\n" + hint(m.hints())
}

func (m appModel) flashLine() string {
	msg, _ := m.app.Flash.Current()
	switch {
	case msg.Empty():
		return ""
	case msg.Kind == flash.Error:
		return m.st.failure.Render(msg.Text)
	default:
		return m.st.success.Render(msg.Text)
	}
}

func (m appModel) hints() string {
	tr := m.app.Translator()
	switch m.state {
	case stateSessions:
		return tr.T("hint_sessions")
	case stateSeats:
		return tr.T("hint_seats")
	case stateBookings:
		return tr.T("hint_bookings")
	case stateAuth, stateProfile, stateAdminForm:
		return tr.T("hint_form")
	case stateQR:
		return tr.T("hint_qr")
	case stateAdmin:
		return tr.T("hint_admin")
	case stateLanguage:
		return tr.T("hint_language")
	default:
		return tr.T("hint_movies")
	}
}

func (m appModel) handleKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit, true
	case "esc":
		if listPtr := m.activeList(); listPtr != nil {
			if listPtr.SettingFilter() || listPtr.IsFiltered() {
				listPtr.ResetFilter()
				return m, nil, true
			}
		}
		m.goBack()
		return m, nil, true
	case "ctrl+t":
		m.app.ToggleTheme()
		m.st = newStyles(m.app.Theme())
		return m, nil, true
	}

	switch m.state {
	case stateAuth:
		return m.handleAuthKey(msg)
	case stateProfile:
		return m.handleProfileKey(msg)
	case stateAdminForm:
		return m.handleAdminFormKey(msg)
	}

	if m.busy {
		return m, nil, false
	}

	switch msg.String() {
	case "ctrl+b":
		return m.openBookings()
	case "ctrl+a":
		return m.openAuth()
	case "ctrl+p":
		return m.openProfile()
	case "ctrl+g":
		return m.openAdmin()
	case "ctrl+l":
		if m.state != stateLanguage {
			m.lastState = m.state
		}
		m.state = stateLanguage
		return m, nil, true
	}

	switch m.state {
	case stateMovies:
		if msg.String() == "enter" {
			if item, ok := m.movieList.SelectedItem().(movieItem); ok {
				m.busy = true
				return m, tea.Batch(m.selectMovieCmd(item.movie.Id), m.spinner.Tick), true
			}
		}
	case stateSessions:
		if msg.String() == "enter" {
			if item, ok := m.sessionList.SelectedItem().(sessionItem); ok {
				m.busy = true
				return m, tea.Batch(m.selectSessionCmd(item.session.Id), m.spinner.Tick), true
			}
		}
	case stateSeats:
		return m.handleSeatKey(msg)
	case stateBookings:
		return m.handleBookingKey(msg)
	case stateAdmin:
		return m.handleAdminKey(msg)
	case stateLanguage:
		if msg.String() == "enter" {
			if item, ok := m.langList.SelectedItem().(langItem); ok {
				m.app.SetLanguage(item.lang)
				m.refresh()
			}
			m.state = m.lastState
			return m, nil, true
		}
	}
	return m, nil, false
}

func (m appModel) handleSeatKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "up", "k":
		m.moveCursor(-1, 0)
	case "down", "j":
		m.moveCursor(1, 0)
	case "left", "h":
		m.moveCursor(0, -1)
	case "right", "l":
		m.moveCursor(0, 1)
	case " ":
		if seat, ok := m.cursorSeat(); ok && !seat.Booked {
			m.app.Booking.ToggleSeat(seat.Id)
			m.refresh()
		}
	case "m":
		if m.payment == booking.DefaultPaymentMethod {
			m.payment = "cash"
		} else {
			m.payment = booking.DefaultPaymentMethod
		}
	case "enter":
		if !m.app.Account.Authenticated() {
			m.app.Flash.Error(m.app.Translator().T("flash_login_required"))
			return m.openAuth()
		}
		m.busy = true
		return m, tea.Batch(m.submitCmd(m.payment), m.spinner.Tick), true
	default:
		return m, nil, false
	}
	return m, nil, true
}

func (m appModel) handleBookingKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	item, ok := m.bookingList.SelectedItem().(bookingItem)
	if !ok {
		return m, nil, false
	}
	var cmd tea.Cmd
	switch msg.String() {
	case "c":
		if item.booking.Cancelled() {
			return m, nil, true
		}
		cmd = m.cancelBookingCmd(item.booking.Id)
	case "r":
		cmd = m.showQRCmd(item.booking.Id)
	case "t":
		cmd = m.downloadTicketCmd(item.booking.Id)
	case "s":
		if !m.app.Account.IsAdmin() {
			m.app.Flash.Error(m.app.Translator().T("flash_admin_required"))
			return m, nil, true
		}
		cmd = m.bookingStatusCmd(item.booking.Id, nextStatus(item.booking.Status))
	default:
		return m, nil, false
	}
	m.busy = true
	return m, tea.Batch(cmd, m.spinner.Tick), true
}

func (m appModel) openBookings() (appModel, tea.Cmd, bool) {
	if !m.app.Account.Authenticated() {
		m.app.Flash.Error(m.app.Translator().T("flash_login_required"))
		return m.openAuth()
	}
	m.state = stateBookings
	m.busy = true
	return m, tea.Batch(m.refreshBookingsCmd(), m.spinner.Tick), true
}

// openAuth shows the sign-in form, or signs out when a user is signed in.
func (m appModel) openAuth() (appModel, tea.Cmd, bool) {
	if m.app.Account.Authenticated() {
		m.app.Logout()
		m.state = stateMovies
		m.refresh()
		return m, nil, true
	}
	m.registering = false
	m.authForm = m.newAuthForm()
	m.state = stateAuth
	return m, nil, true
}

func (m appModel) newAuthForm() form {
	tr := m.app.Translator()
	if m.registering {
		return newForm(
			textField(tr.T("label_name"), ""),
			textField(tr.T("label_email"), ""),
			secretField(tr.T("label_password")),
		)
	}
	return newForm(
		textField(tr.T("label_email"), ""),
		secretField(tr.T("label_password")),
	)
}

func (m appModel) handleAuthKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+r":
		m.registering = !m.registering
		m.authForm = m.newAuthForm()
		return m, nil, true
	case "enter":
		if m.busy {
			return m, nil, true
		}
		var cmd tea.Cmd
		if m.registering {
			cmd = m.registerCmd(m.authForm.value(0), m.authForm.value(1), m.authForm.raw(2))
		} else {
			cmd = m.loginCmd(m.authForm.value(0), m.authForm.raw(1))
		}
		m.busy = true
		return m, tea.Batch(cmd, m.spinner.Tick), true
	}
	return m, m.authForm.update(msg), true
}

func (m appModel) openProfile() (appModel, tea.Cmd, bool) {
	user, ok := m.app.Account.User()
	if !ok {
		m.app.Flash.Error(m.app.Translator().T("flash_login_required"))
		return m.openAuth()
	}
	tr := m.app.Translator()
	m.profileForm = newForm(
		textField(tr.T("label_name"), user.Name),
		secretField(tr.T("label_current_password")),
		secretField(tr.T("label_new_password")),
	)
	m.state = stateProfile
	return m, nil, true
}

// handleProfileKey saves the name while the name field is focused and
// changes the password from either password field.
func (m appModel) handleProfileKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	if msg.String() != "enter" {
		return m, m.profileForm.update(msg), true
	}
	if m.busy {
		return m, nil, true
	}
	var cmd tea.Cmd
	if m.profileForm.focus == 0 {
		cmd = m.updateProfileCmd(m.profileForm.value(0))
	} else {
		cmd = m.changePasswordCmd(m.profileForm.raw(1), m.profileForm.raw(2))
	}
	m.busy = true
	return m, tea.Batch(cmd, m.spinner.Tick), true
}

func (m appModel) profileView() string {
	tr := m.app.Translator()
	user, _ := m.app.Account.User()
	lines := []string{
		m.profileForm.view(m.st, tr.T("profile")),
		hint(user.Email),
		hint(tr.T("profile_save") + ": " + tr.T("label_name") + " • " + tr.T("password_change") + ": " + tr.T("label_new_password")),
	}
	return strings.Join(lines, "\n")
}

func (m appModel) qrView() string {
	tr := m.app.Translator()
	id, ok := m.app.QR.BookingID()
	if !ok {
		return hint(tr.T("flash_qr_failed"))
	}
	code, err := m.app.QR.Render()
	if err != nil {
		return m.st.failure.Render(tr.T("flash_qr_failed"))
	}
	return m.st.title.Render(fmt.Sprintf("%s #%d", tr.T("qr_title"), id)) + "\n\n" + code
}

func (m *appModel) goBack() {
	switch m.state {
	case stateSessions:
		m.state = stateMovies
	case stateSeats:
		m.state = stateSessions
	case stateQR:
		m.app.QR.Close()
		m.state = stateBookings
	case stateAdminForm:
		m.app.Admin.CancelEdit()
		m.state = stateAdmin
	case stateLanguage:
		m.state = m.lastState
	case stateBookings, stateAuth, stateProfile, stateAdmin:
		m.state = stateMovies
	}
}

// refresh rebuilds every list from the controllers in the active language.
func (m *appModel) refresh() {
	tr := m.app.Translator()
	m.snap = m.app.Booking.Snapshot()
	m.st = newStyles(m.app.Theme())

	m.movieList.Title = tr.T("section_movies") + " • " + tr.MovieCount(len(m.snap.Movies))
	m.movieList.SetItems(buildMovieItems(m.snap.Movies, tr))

	m.sessionList.Title = tr.T("section_sessions") + " • " + tr.SessionCount(len(m.snap.Sessions))
	m.sessionList.SetItems(buildSessionItems(m.snap.Sessions, tr))

	m.bookingList.Title = tr.T("nav_bookings")
	m.bookingList.SetItems(buildBookingItems(m.snap.Bookings, tr))

	view := m.app.Admin.View()
	m.adminTab = view.Tab
	m.adminList.Title = tr.T(view.Tab.LabelKey())
	m.adminList.SetItems(buildAdminItems(view, tr))

	m.langList.Title = tr.T("language")
	m.clampCursor()
}

func (m *appModel) handleFilterInput(msg tea.KeyMsg) bool {
	listPtr := m.activeList()
	if listPtr == nil {
		return false
	}
	if !listPtr.FilteringEnabled() {
		return false
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return false
		}
		m.appendFilter(listPtr, string(msg.Runes))
		return true
	case tea.KeySpace:
		m.appendFilter(listPtr, " ")
		return true
	case tea.KeyBackspace, tea.KeyDelete:
		if listPtr.FilterValue() == "" {
			return false
		}
		m.popFilter(listPtr)
		return true
	default:
		return false
	}
}

func (m *appModel) appendFilter(listPtr *list.Model, value string) {
	if value == "" {
		return
	}
	current := listPtr.FilterValue()
	listPtr.SetFilterText(current + value)
}

func (m *appModel) popFilter(listPtr *list.Model) {
	value := listPtr.FilterValue()
	if value == "" {
		return
	}
	value = trimLastRune(value)
	if value == "" {
		listPtr.ResetFilter()
		return
	}
	listPtr.SetFilterText(value)
}

func trimLastRune(value string) string {
	runes := []rune(value)
	if len(runes) <= 1 {
		return ""
	}
	return string(runes[:len(runes)-1])
}

func (m *appModel) activeList() *list.Model {
	switch m.state {
	case stateMovies:
		return &m.movieList
	case stateSessions:
		return &m.sessionList
	case stateBookings:
		return &m.bookingList
	case stateAdmin:
		return &m.adminList
	case stateLanguage:
		return &m.langList
	default:
		return nil
	}
}

func (m appModel) loadingView() string {
	tr := m.app.Translator()
	return fmt.Sprintf("%s %s\n\n%s", m.spinner.View(), tr.T("loading"), hint(m.app.Config.APIBaseURL))
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 7
	if h < 6 {
		h = 6
	}
	m.movieList.SetSize(m.width, h)
	m.sessionList.SetSize(m.width, h)
	m.bookingList.SetSize(m.width, h)
	m.adminList.SetSize(m.width, h-2)
	m.langList.SetSize(m.width, h)
}

func (m appModel) paymentLabel() string {
	tr := m.app.Translator()
	if m.payment == "cash" {
		return tr.T("payment_cash")
	}
	return tr.T("payment_card")
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.Filter = caseInsensitiveFilter
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

func caseInsensitiveFilter(term string, targets []string) []list.Rank {
	term = strings.ToLower(term)
	lower := make([]string, len(targets))
	for i, t := range targets {
		lower[i] = strings.ToLower(t)
	}
	return list.DefaultFilter(term, lower)
}
