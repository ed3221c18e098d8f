// Package dictionary loads and merges the suggestion and stem word lists
// consumed by a spellcheck.Backend, adapted from a pronunciation-dictionary
// loader into a suggestion/stem one: same format sniffing and MergeMode
// semantics, different payload.
package dictionary

import "strings"

// Dictionary maps a normalized word to its ordered list of candidates
// (suggestions or stems, depending on which file it was loaded from).
type Dictionary map[string][]string

// Representation holds the mutable state threaded through a sequence of
// loads: the accumulated entries, a global de-duplication set, and which
// words came from already-preloaded sources (consulted by
// MergeModeNoOverride/MergeModeReplace).
type Representation struct {
	Entries        Dictionary
	seenWordEntry  map[string]struct{}
	PreloadedWords map[string]struct{}
}

// NewRepresentation creates an empty Representation.
func NewRepresentation() *Representation {
	return &Representation{
		Entries:        make(Dictionary),
		seenWordEntry:  make(map[string]struct{}),
		PreloadedWords: make(map[string]struct{}),
	}
}

// NormalizeString is the canonical key transform applied to every word
// before it is looked up or stored: trimmed and lower-cased, so a
// dictionary lookup doesn't depend on the casing the lexer handed it.
func NormalizeString(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
