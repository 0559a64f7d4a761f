// Package i18n resolves user-facing strings and formats counts, prices and
// times for the three supported interface languages.
package i18n

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Lang string

const (
	Russian Lang = "ru"
	English Lang = "en"
	Kazakh  Lang = "kk"
)

const Default = Russian

var Languages = []Lang{Russian, English, Kazakh}

var tables = map[Lang]map[string]string{
	Russian: russian,
	English: english,
	Kazakh:  kazakh,
}

var tags = map[Lang]language.Tag{
	Russian: language.Russian,
	English: language.AmericanEnglish,
	Kazakh:  language.Kazakh,
}

// Parse maps a stored or configured value to a supported language.
func Parse(raw string) (Lang, bool) {
	lang := Lang(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := tables[lang]; ok {
		return lang, true
	}
	return Default, false
}

// Name is the language's own name, as shown in the picker.
func (l Lang) Name() string {
	switch l {
	case English:
		return "English"
	case Kazakh:
		return "Қазақша"
	default:
		return "Русский"
	}
}

// Translator looks up strings for one language. The zero value speaks Russian.
type Translator struct {
	lang Lang
}

func New(lang Lang) Translator {
	if _, ok := tables[lang]; !ok {
		lang = Default
	}
	return Translator{lang: lang}
}

func (t Translator) Lang() Lang {
	if t.lang == "" {
		return Default
	}
	return t.lang
}

// T returns the string for key, falling back to Russian and then to the key itself.
func (t Translator) T(key string) string {
	if value, ok := tables[t.Lang()][key]; ok {
		return value
	}
	if value, ok := russian[key]; ok {
		return value
	}
	return key
}

// SeatLabel renders a seat as R{row}-S{number} with localized abbreviations.
func (t Translator) SeatLabel(row int, number int) string {
	return fmt.Sprintf("%s%d-%s%d", t.T("seat_row_abbr"), row, t.T("seat_seat_abbr"), number)
}

func (t Translator) MovieCount(n int) string {
	switch t.Lang() {
	case English:
		return fmt.Sprintf("%d %s", n, pick(n == 1, "movie", "movies"))
	case Kazakh:
		return fmt.Sprintf("%d %s", n, pick(n == 1, "фильм", "фильмдер"))
	default:
		return fmt.Sprintf("%d %s", n, pluralRu(n, "фильм", "фильма", "фильмов"))
	}
}

func (t Translator) SessionCount(n int) string {
	switch t.Lang() {
	case English:
		return fmt.Sprintf("%d %s", n, pick(n == 1, "session", "sessions"))
	case Kazakh:
		return fmt.Sprintf("%d %s", n, pick(n == 1, "сеанс", "сеанстар"))
	default:
		return fmt.Sprintf("%d %s", n, pluralRu(n, "сеанс", "сеанса", "сеансов"))
	}
}

func (t Translator) Duration(mins int) string {
	return fmt.Sprintf("%d %s", mins, t.T("duration_unit"))
}

// Price formats whole tenge without decimals.
func (t Translator) Price(amount int) string {
	digits := message.NewPrinter(tags[t.Lang()]).Sprintf("%d", amount)
	if t.Lang() == English {
		return "KZT " + digits
	}
	return digits + " ₸"
}

// Time renders a showtime as weekday, day, month and clock in local time.
func (t Translator) Time(ts time.Time) string {
	ts = ts.Local()
	names := calendars[t.Lang()]
	weekday := names.weekdays[ts.Weekday()]
	month := names.months[ts.Month()-1]
	if t.Lang() == English {
		return fmt.Sprintf("%s, %s %d, %s", weekday, month, ts.Day(), ts.Format("15:04"))
	}
	return fmt.Sprintf("%s, %d %s, %s", weekday, ts.Day(), month, ts.Format("15:04"))
}

func (t Translator) Status(status string) string {
	switch status {
	case "cancelled":
		return t.T("status_cancelled")
	case "confirmed":
		return t.T("status_confirmed")
	default:
		return status
	}
}

func pluralRu(n int, one string, few string, many string) string {
	mod10 := n % 10
	mod100 := n % 100
	if mod10 == 1 && mod100 != 11 {
		return one
	}
	if mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14) {
		return few
	}
	return many
}

func pick(cond bool, yes string, no string) string {
	if cond {
		return yes
	}
	return no
}

type calendar struct {
	weekdays [7]string
	months   [12]string
}

var calendars = map[Lang]calendar{
	Russian: {
		weekdays: [7]string{"вс", "пн", "вт", "ср", "чт", "пт", "сб"},
		months:   [12]string{"янв.", "февр.", "мар.", "апр.", "мая", "июн.", "июл.", "авг.", "сент.", "окт.", "нояб.", "дек."},
	},
	English: {
		weekdays: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		months:   [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	},
	Kazakh: {
		weekdays: [7]string{"жс", "дс", "сс", "ср", "бс", "жм", "сб"},
		months:   [12]string{"қаң.", "ақп.", "нау.", "сәу.", "мам.", "мау.", "шіл.", "там.", "қыр.", "қаз.", "қар.", "жел."},
	},
}
