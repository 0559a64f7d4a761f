package i18n

import (
	"strings"
	"testing"
	"time"
)

func TestT_FallsBackToRussianThenKey(t *testing.T) {
	tr := New(English)
	if got := tr.T("flash_logged_in"); got != "Signed in." {
		t.Fatalf("unexpected english string: %q", got)
	}

	russian["only_in_test_ru"] = "только ru"
	defer delete(russian, "only_in_test_ru")

	if got := tr.T("only_in_test_ru"); got != "только ru" {
		t.Fatalf("expected russian fallback, got %q", got)
	}
	if got := tr.T("missing_key"); got != "missing_key" {
		t.Fatalf("expected key fallback, got %q", got)
	}
}

func TestTables_SameKeys(t *testing.T) {
	for key := range russian {
		if _, ok := english[key]; !ok {
			t.Fatalf("english table misses %q", key)
		}
		if _, ok := kazakh[key]; !ok {
			t.Fatalf("kazakh table misses %q", key)
		}
	}
}

func TestParse(t *testing.T) {
	cases := map[string]Lang{"ru": Russian, " EN ": English, "kk": Kazakh}
	for raw, want := range cases {
		got, ok := Parse(raw)
		if !ok || got != want {
			t.Fatalf("Parse(%q) = %q, %v", raw, got, ok)
		}
	}
	if got, ok := Parse("de"); ok || got != Default {
		t.Fatalf("expected default for unknown language, got %q, %v", got, ok)
	}
}

func TestZeroTranslatorSpeaksRussian(t *testing.T) {
	var tr Translator
	if tr.Lang() != Russian {
		t.Fatalf("unexpected language: %q", tr.Lang())
	}
	if got := tr.T("close"); got != "Закрыть" {
		t.Fatalf("unexpected string: %q", got)
	}
}

func TestSeatLabel(t *testing.T) {
	cases := map[Lang]string{English: "R3-S7", Russian: "Р3-М7", Kazakh: "Қ3-О7"}
	for lang, want := range cases {
		if got := New(lang).SeatLabel(3, 7); got != want {
			t.Fatalf("%s: expected %q, got %q", lang, want, got)
		}
	}
}

func TestPluralRu(t *testing.T) {
	cases := map[int]string{
		1: "фильм", 2: "фильма", 4: "фильма", 5: "фильмов", 11: "фильмов",
		12: "фильмов", 21: "фильм", 22: "фильма", 111: "фильмов", 0: "фильмов",
	}
	for n, want := range cases {
		if got := pluralRu(n, "фильм", "фильма", "фильмов"); got != want {
			t.Fatalf("pluralRu(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestCounts(t *testing.T) {
	if got := New(English).MovieCount(1); got != "1 movie" {
		t.Fatalf("unexpected count: %q", got)
	}
	if got := New(English).SessionCount(3); got != "3 sessions" {
		t.Fatalf("unexpected count: %q", got)
	}
	if got := New(Kazakh).SessionCount(2); got != "2 сеанстар" {
		t.Fatalf("unexpected count: %q", got)
	}
	if got := New(Russian).SessionCount(3); got != "3 сеанса" {
		t.Fatalf("unexpected count: %q", got)
	}
}

func TestPrice(t *testing.T) {
	if got := New(English).Price(1500); got != "KZT 1,500" {
		t.Fatalf("unexpected english price: %q", got)
	}
	got := New(Russian).Price(450)
	if got != "450 ₸" {
		t.Fatalf("unexpected russian price: %q", got)
	}
}

func TestTime(t *testing.T) {
	ts := time.Date(2025, time.March, 14, 19, 30, 0, 0, time.Local)
	if got := New(English).Time(ts); got != "Fri, Mar 14, 19:30" {
		t.Fatalf("unexpected english time: %q", got)
	}
	if got := New(Russian).Time(ts); !strings.HasPrefix(got, "пт, 14 мар.") {
		t.Fatalf("unexpected russian time: %q", got)
	}
}

func TestDurationAndStatus(t *testing.T) {
	tr := New(English)
	if got := tr.Duration(90); got != "90 min" {
		t.Fatalf("unexpected duration: %q", got)
	}
	if got := tr.Status("cancelled"); got != "Cancelled" {
		t.Fatalf("unexpected status: %q", got)
	}
	if got := tr.Status("pending"); got != "pending" {
		t.Fatalf("unknown status should pass through, got %q", got)
	}
}

func TestSelector_SwitchesLanguage(t *testing.T) {
	sel := NewSelector(English)
	if got := sel.Translator().T("close"); got != "Close" {
		t.Fatalf("unexpected string: %q", got)
	}
	sel.Set(Kazakh)
	if got := sel.Translator().T("close"); got != "Жабу" {
		t.Fatalf("unexpected string after switch: %q", got)
	}
	sel.Set(Lang("xx"))
	if sel.Lang() != Default {
		t.Fatalf("unknown language should reset to default, got %q", sel.Lang())
	}
}
