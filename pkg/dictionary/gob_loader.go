package dictionary

import (
	"encoding/gob"
	"fmt"
	"io"
	"unicode/utf8"
)

// GobLoader handles gob-encoded Dictionary payloads, used to distribute a
// precompiled suggestions or stems file without re-parsing text on load.
type GobLoader struct{}

func (g *GobLoader) Kind() Kind { return KindGOB }

// Sniff recognizes gob payloads by the absence of valid UTF-8 or the
// presence of NUL bytes, the same heuristic used for pronunciation
// dictionaries: regular text word lists never contain either.
func (g *GobLoader) Sniff(sniff []byte, isEOF bool) bool {
	if len(sniff) == 0 {
		return false
	}
	if !utf8.Valid(sniff) {
		return true
	}
	for _, b := range sniff {
		if b == 0 {
			return true
		}
	}
	return false
}

func (g *GobLoader) Load(r io.Reader, emit OnEntryFunc) error {
	dec := gob.NewDecoder(r)
	dict := make(Dictionary)
	if err := dec.Decode(&dict); err != nil {
		return fmt.Errorf("decode gob: %w", err)
	}
	for word, candidates := range dict {
		if len(candidates) == 0 {
			continue
		}
		if err := emit(word, candidates); err != nil {
			return err
		}
	}
	return nil
}
