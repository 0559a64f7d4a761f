package model

import (
	"strings"
	"time"
)

type Movie struct {
	Id            int64  `json:"id"`
	Title         string `json:"title"`
	TitleEn       string `json:"title_en,omitempty"`
	TitleKk       string `json:"title_kk,omitempty"`
	Description   string `json:"description"`
	DescriptionEn string `json:"description_en,omitempty"`
	DescriptionKk string `json:"description_kk,omitempty"`
	DurationMins  int    `json:"duration_mins"`
	PosterURL     string `json:"poster_url"`
	Country       string `json:"country,omitempty"`
	CountryEn     string `json:"country_en,omitempty"`
	CountryKk     string `json:"country_kk,omitempty"`
	Genres        string `json:"genres,omitempty"`
	GenresEn      string `json:"genres_en,omitempty"`
	GenresKk      string `json:"genres_kk,omitempty"`
	ReleaseYear   int    `json:"release_year,omitempty"`
}

// LocalizedTitle returns the title for lang, falling back to the base title.
func (m Movie) LocalizedTitle(lang string) string {
	return pickLocalized(lang, m.Title, m.TitleEn, m.TitleKk)
}

func (m Movie) LocalizedDescription(lang string) string {
	return pickLocalized(lang, m.Description, m.DescriptionEn, m.DescriptionKk)
}

func (m Movie) LocalizedCountry(lang string) string {
	return pickLocalized(lang, m.Country, m.CountryEn, m.CountryKk)
}

func (m Movie) LocalizedGenres(lang string) string {
	return pickLocalized(lang, m.Genres, m.GenresEn, m.GenresKk)
}

func pickLocalized(lang string, base string, en string, kk string) string {
	var candidate string
	switch lang {
	case "en":
		candidate = en
	case "kk":
		candidate = kk
	}
	if strings.TrimSpace(candidate) != "" {
		return candidate
	}
	return base
}

type Session struct {
	Id        int64     `json:"id"`
	MovieId   int64     `json:"movie_id"`
	HallId    int64     `json:"hall_id"`
	StartTime time.Time `json:"start_time"`
	BasePrice int       `json:"base_price"`
	Movie     *Movie    `json:"movie,omitempty"`
	Hall      *Hall     `json:"hall,omitempty"`
}

// MovieRequest is the admin payload for creating or updating a movie.
type MovieRequest struct {
	Title         string `json:"title"`
	TitleEn       string `json:"title_en,omitempty"`
	TitleKk       string `json:"title_kk,omitempty"`
	Description   string `json:"description"`
	DescriptionEn string `json:"description_en,omitempty"`
	DescriptionKk string `json:"description_kk,omitempty"`
	DurationMins  int    `json:"duration_mins"`
	PosterURL     string `json:"poster_url"`
	Country       string `json:"country,omitempty"`
	Genres        string `json:"genres,omitempty"`
	ReleaseYear   int    `json:"release_year,omitempty"`
}

type SessionRequest struct {
	MovieId   int64  `json:"movie_id"`
	HallId    int64  `json:"hall_id"`
	StartTime string `json:"start_time"`
	BasePrice int    `json:"base_price"`
}
