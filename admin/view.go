package admin

import "kino-cli/model"

// View is a copy of the panel state for rendering.
type View struct {
	Tab         Tab
	Movies      []model.Movie
	Halls       []model.Hall
	Sessions    []model.Session
	MovieForm   MovieForm
	HallForm    HallForm
	SessionForm SessionForm
}

func (p *Panel) View() View {
	p.mu.Lock()
	defer p.mu.Unlock()
	return View{
		Tab:         p.tab,
		Movies:      append([]model.Movie(nil), p.movies...),
		Halls:       append([]model.Hall(nil), p.halls...),
		Sessions:    append([]model.Session(nil), p.sessions...),
		MovieForm:   p.movieForm,
		HallForm:    p.hallForm,
		SessionForm: p.sessionForm,
	}
}

// MovieTitle resolves a movie id against the loaded catalog.
func (v View) MovieTitle(id int64, lang string) string {
	for _, movie := range v.Movies {
		if movie.Id == id {
			return movie.LocalizedTitle(lang)
		}
	}
	return ""
}

func (v View) HallName(id int64) string {
	for _, hall := range v.Halls {
		if hall.Id == id {
			return hall.Name
		}
	}
	return ""
}
