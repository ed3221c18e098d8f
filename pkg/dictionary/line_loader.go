package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// OnEntryFunc is called by a Loader for each dictionary entry (word,
// candidates).
type OnEntryFunc func(word string, candidates []string) error

// Loader parses a dictionary source and emits (word, candidates) entries.
type Loader interface {
	Kind() Kind
	Sniff(sniff []byte, isEOF bool) bool
	Load(r io.Reader, emit OnEntryFunc) error
}

// LineParser parses a single trimmed logical line into a word and its
// candidates. Returning word == "" or len(candidates) == 0 skips the line.
type LineParser func(line string) (word string, candidates []string, err error)

// NewLineLoader builds a Loader over a textual, one-entry-per-line format.
func NewLineLoader(kind Kind, sniff func(sniff []byte, isEOF bool) bool, parser LineParser) Loader {
	return &lineLoader{kind: kind, sniffFunc: sniff, parseLine: parser}
}

type lineLoader struct {
	kind      Kind
	sniffFunc func(sniff []byte, isEOF bool) bool
	parseLine LineParser
}

func (p *lineLoader) Kind() Kind { return p.kind }

func (p *lineLoader) Sniff(sniff []byte, isEOF bool) bool {
	if p.sniffFunc == nil {
		return false
	}
	return p.sniffFunc(sniff, isEOF)
}

func (p *lineLoader) Load(r io.Reader, emit OnEntryFunc) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, candidates, err := p.parseLine(line)
		if err != nil {
			return fmt.Errorf("(%s): parse line %q: %w", p.kind, line, err)
		}
		if word == "" || len(candidates) == 0 {
			continue
		}
		if err := emit(word, candidates); err != nil {
			return err
		}
	}
	return scanner.Err()
}
