package i18n

import "sync"

// Selector holds the active interface language. Controllers read it at the
// moment they post a flash so a language switch applies immediately.
type Selector struct {
	mu   sync.RWMutex
	lang Lang
}

func NewSelector(lang Lang) *Selector {
	return &Selector{lang: New(lang).Lang()}
}

func (s *Selector) Set(lang Lang) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lang = New(lang).Lang()
}

func (s *Selector) Lang() Lang {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lang == "" {
		return Default
	}
	return s.lang
}

func (s *Selector) Translator() Translator {
	return New(s.Lang())
}
