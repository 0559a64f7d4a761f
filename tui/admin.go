package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"kino-cli/admin"
)

const (
	movieTitleField = iota
	movieDescriptionField
	movieDurationField
	moviePosterField
)

const (
	hallNameField = iota
	hallRowsField
	hallColsField
)

const (
	sessionMovieField = iota
	sessionHallField
	sessionStartField
	sessionPriceField
)

func (m appModel) openAdmin() (appModel, tea.Cmd, bool) {
	if !m.app.Account.IsAdmin() {
		m.app.Flash.Error(m.app.Translator().T("flash_admin_required"))
		return m, nil, true
	}
	m.busy = true
	return m, tea.Batch(m.loadAdminCmd(), m.spinner.Tick), true
}

func (m appModel) handleAdminKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "tab", "shift+tab":
		step := 1
		if msg.String() == "shift+tab" {
			step = len(admin.Tabs) - 1
		}
		m.app.Admin.SetTab(admin.Tabs[(int(m.adminTab)+step)%len(admin.Tabs)])
		m.refresh()
		m.adminList.Select(0)
		return m, nil, true
	case "n":
		m.app.Admin.CancelEdit()
		m.openAdminForm()
		return m, nil, true
	case "e":
		item, ok := m.adminList.SelectedItem().(adminItem)
		if !ok {
			return m, nil, true
		}
		var found bool
		switch m.adminTab {
		case admin.TabHalls:
			found = m.app.Admin.EditHall(item.id)
		case admin.TabSessions:
			found = m.app.Admin.EditSession(item.id)
		default:
			found = m.app.Admin.EditMovie(item.id)
		}
		if found {
			m.openAdminForm()
		}
		return m, nil, true
	case "d":
		item, ok := m.adminList.SelectedItem().(adminItem)
		if !ok {
			return m, nil, true
		}
		m.busy = true
		return m, tea.Batch(m.deleteAdminCmd(m.adminTab, item.id), m.spinner.Tick), true
	}
	return m, nil, false
}

// openAdminForm fills the form of the current tab from the panel.
func (m *appModel) openAdminForm() {
	tr := m.app.Translator()
	view := m.app.Admin.View()
	switch view.Tab {
	case admin.TabHalls:
		rows := numberField(tr.T("placeholder_rows"), view.HallForm.Rows)
		cols := numberField(tr.T("placeholder_seats"), view.HallForm.Cols)
		rows.locked = view.HallForm.SizeLocked()
		cols.locked = view.HallForm.SizeLocked()
		m.adminForm = newForm(textField(tr.T("placeholder_name"), view.HallForm.Name), rows, cols)
	case admin.TabSessions:
		lang := string(tr.Lang())
		movies := make([]option, 0, len(view.Movies))
		for _, movie := range view.Movies {
			movies = append(movies, option{id: movie.Id, label: movie.LocalizedTitle(lang)})
		}
		halls := make([]option, 0, len(view.Halls))
		for _, hall := range view.Halls {
			halls = append(halls, option{id: hall.Id, label: hall.Name})
		}
		start := textField(tr.T("placeholder_start"), view.SessionForm.Start)
		start.input.Placeholder = admin.StartLayout
		m.adminForm = newForm(
			pickerField(tr.T("placeholder_movie"), movies, view.SessionForm.MovieID),
			pickerField(tr.T("placeholder_hall"), halls, view.SessionForm.HallID),
			start,
			numberField(tr.T("placeholder_price"), view.SessionForm.Price),
		)
	default:
		m.adminForm = newForm(
			textField(tr.T("placeholder_title"), view.MovieForm.Title),
			textField(tr.T("placeholder_description"), view.MovieForm.Description),
			numberField(tr.T("placeholder_duration"), view.MovieForm.DurationMins),
			textField(tr.T("placeholder_poster"), view.MovieForm.PosterURL),
		)
	}
	m.state = stateAdminForm
}

func (m appModel) handleAdminFormKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	if msg.String() != "enter" {
		return m, m.adminForm.update(msg), true
	}
	if m.busy {
		return m, nil, true
	}
	view := m.app.Admin.View()
	f := m.adminForm
	switch view.Tab {
	case admin.TabHalls:
		m.app.Admin.SetHallForm(admin.HallForm{
			EditingID: view.HallForm.EditingID,
			Name:      f.value(hallNameField),
			Rows:      f.number(hallRowsField),
			Cols:      f.number(hallColsField),
		})
	case admin.TabSessions:
		m.app.Admin.SetSessionForm(admin.SessionForm{
			EditingID: view.SessionForm.EditingID,
			MovieID:   f.selected(sessionMovieField),
			HallID:    f.selected(sessionHallField),
			Start:     f.value(sessionStartField),
			Price:     f.number(sessionPriceField),
		})
	default:
		m.app.Admin.SetMovieForm(admin.MovieForm{
			EditingID:    view.MovieForm.EditingID,
			Title:        f.value(movieTitleField),
			Description:  f.value(movieDescriptionField),
			DurationMins: f.number(movieDurationField),
			PosterURL:    f.value(moviePosterField),
		})
	}
	m.busy = true
	return m, tea.Batch(m.saveAdminCmd(view.Tab), m.spinner.Tick), true
}

func (m appModel) adminTabsView() string {
	tr := m.app.Translator()
	chips := make([]string, 0, len(admin.Tabs))
	for _, tab := range admin.Tabs {
		if tab == m.adminTab {
			chips = append(chips, m.st.activeChip.Render(tr.T(tab.LabelKey())))
		} else {
			chips = append(chips, m.st.chip.Render(tr.T(tab.LabelKey())))
		}
	}
	return m.st.title.Render(tr.T("admin_title")) + "\n" + strings.Join(chips, " ")
}

func (m appModel) adminFormTitle() string {
	tr := m.app.Translator()
	view := m.app.Admin.View()
	editing := false
	switch view.Tab {
	case admin.TabHalls:
		editing = view.HallForm.EditingID != 0
	case admin.TabSessions:
		editing = view.SessionForm.EditingID != 0
	default:
		editing = view.MovieForm.EditingID != 0
	}
	if editing {
		return tr.T("button_update")
	}
	return tr.T("button_add")
}
