// Package spellcheck defines the external spell-check capability consumed
// by the lexer: suggestion and stemming lookups, kept side-effect-free on
// the core so any backend (a real Hunspell binding, a remote service, a
// curated in-memory lexicon) can stand in for it.
package spellcheck

// Backend is the adapter a Lexer calls into during exploration.
type Backend interface {
	// Suggest returns an ordered list of plausible respellings/variants for
	// word. Order matters: it is preserved into the resulting Neighbor list.
	Suggest(word string) ([]string, error)

	// Stem returns the morphological base forms of word.
	Stem(word string) ([]string, error)
}

// ThreadSafe is an optional capability a Backend can implement to opt into
// the lexer's concurrent exploration pool. Backends that don't implement
// it are always explored sequentially.
type ThreadSafe interface {
	// ConcurrentSafe reports whether this backend's Suggest/Stem methods
	// may be called from multiple goroutines at once.
	ConcurrentSafe() bool
}

// Static is an in-memory Backend, keyed by exact surface word. It never
// returns an error and is the backend most tests in this repository use.
type Static struct {
	Suggestions map[string][]string
	Stems       map[string][]string
}

// NewStatic builds an empty Static backend ready to be populated.
func NewStatic() *Static {
	return &Static{
		Suggestions: make(map[string][]string),
		Stems:       make(map[string][]string),
	}
}

// WithSuggestions registers the suggestion list for word and returns the
// receiver, for fluent construction in tests.
func (s *Static) WithSuggestions(word string, suggestions ...string) *Static {
	s.Suggestions[word] = suggestions
	return s
}

// WithStems registers the stem list for word and returns the receiver, for
// fluent construction in tests.
func (s *Static) WithStems(word string, stems ...string) *Static {
	s.Stems[word] = stems
	return s
}

func (s *Static) Suggest(word string) ([]string, error) {
	return s.Suggestions[word], nil
}

func (s *Static) Stem(word string) ([]string, error) {
	return s.Stems[word], nil
}

// ConcurrentSafe reports true: a plain map read under Static's usage
// pattern (populated once before use, never mutated during exploration) is
// safe to call from multiple goroutines.
func (s *Static) ConcurrentSafe() bool {
	return true
}
