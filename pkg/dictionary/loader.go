package dictionary

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/temporal-IPA/nlu/pkg/transcode"
)

func init() {
	builtinLoaders = []Loader{
		NewLineLoader(KindPipedTxt, sniffPipedTxt, parsePipedTxtLine),
		&GobLoader{},
	}
	defaultLoader = builtinLoaders[0]
}

var (
	builtinLoaders []Loader
	defaultLoader  Loader
)

// RegisterLoader adds an additional Loader, consulted after the built-ins
// during sniffing.
func RegisterLoader(l Loader) {
	if l != nil {
		builtinLoaders = append(builtinLoaders, l)
	}
}

func selectLoader(sniff []byte, isEOF bool) Loader {
	for _, l := range builtinLoaders {
		if l.Sniff(sniff, isEOF) {
			return l
		}
	}
	return defaultLoader
}

// LoadPaths preloads and merges dictionaries from a sequence of file paths
// within fsys, respecting MergeMode and path order.
func LoadPaths(fsys fs.FS, mode MergeMode, paths ...string) (Dictionary, error) {
	rep := NewRepresentation()
	if err := LoadInto(fsys, rep, mode, paths...); err != nil {
		return nil, err
	}
	return rep.Entries, nil
}

// LoadBlobs preloads and merges dictionaries from in-memory byte slices.
// Non-gob blobs are transcoded to UTF-8 first (see decodeBlob), so a
// dictionary shipped in ISO-8859-1 or Windows-1252 loads the same as one
// already in UTF-8.
func LoadBlobs(mode MergeMode, blobs ...[]byte) (Dictionary, error) {
	rep := NewRepresentation()
	for _, blob := range blobs {
		if len(blob) == 0 {
			continue
		}
		sniff := blob
		isEOF := true
		if len(sniff) > sniffLen {
			sniff = sniff[:sniffLen]
			isEOF = false
		}
		l := selectLoader(sniff, isEOF)

		content := blob
		if l.Kind() != KindGOB {
			decoded, err := decodeBlob(blob)
			if err != nil {
				return nil, fmt.Errorf("transcode blob: %w", err)
			}
			content = []byte(decoded)
		}

		if err := runLoader(l, mode, bytes.NewReader(content), rep); err != nil {
			return nil, err
		}
	}
	return rep.Entries, nil
}

// decodeBlob sniffs the text encoding of a non-gob dictionary source and
// transcodes it to UTF-8.
func decodeBlob(content []byte) (string, error) {
	enc := transcode.Sniff(content)
	return transcode.ToUTF8(content, enc)
}

// LoadInto preloads and merges dictionaries from file paths into an
// existing Representation, skipping paths that don't exist so a caller can
// pass an optional stems or suggestions file without checking first.
func LoadInto(fsys fs.FS, rep *Representation, mode MergeMode, paths ...string) error {
	if rep == nil {
		rep = NewRepresentation()
	}
	for _, p := range paths {
		path := strings.TrimSpace(p)
		if path == "" {
			continue
		}
		if _, err := fs.Stat(fsys, path); err != nil {
			continue
		}
		if err := loadFromFile(fsys, rep, path, mode); err != nil {
			return err
		}
	}
	return nil
}

func loadFromFile(fsys fs.FS, rep *Representation, path string, mode MergeMode) error {
	f, err := fsys.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	sniff := content
	if len(sniff) > sniffLen {
		sniff = sniff[:sniffLen]
	}
	l := selectLoader(sniff, true)
	if l == nil {
		return fmt.Errorf("no loader matched for %s", path)
	}

	if l.Kind() != KindGOB {
		decoded, err := decodeBlob(content)
		if err != nil {
			return fmt.Errorf("transcode %s: %w", path, err)
		}
		content = []byte(decoded)
	}

	return runLoader(l, mode, bytes.NewReader(content), rep)
}

// runLoader executes a Loader, applying MergeMode semantics and global
// de-duplication of (word, candidate) pairs across every source loaded
// into rep so far.
func runLoader(l Loader, mode MergeMode, r io.Reader, rep *Representation) error {
	if l == nil {
		return fmt.Errorf("nil loader")
	}
	datasetWords := make(map[string]struct{})
	replaced := make(map[string]struct{})

	emit := func(word string, candidates []string) error {
		word = NormalizeString(word)
		if word == "" || len(candidates) == 0 {
			return nil
		}

		datasetWords[word] = struct{}{}
		baseKey := word + "\x00"

		if mode == MergeModeNoOverride {
			if _, pre := rep.PreloadedWords[word]; pre {
				return nil
			}
		}

		if mode == MergeModeReplace {
			if _, pre := rep.PreloadedWords[word]; pre {
				if _, already := replaced[word]; !already {
					for _, old := range rep.Entries[word] {
						delete(rep.seenWordEntry, baseKey+old)
					}
					rep.Entries[word] = nil
					replaced[word] = struct{}{}
				}
			}
		}

		for _, c := range candidates {
			c = strings.TrimSpace(c)
			if c == "" {
				continue
			}
			key := baseKey + c
			if _, ok := rep.seenWordEntry[key]; ok {
				continue
			}
			rep.seenWordEntry[key] = struct{}{}

			switch mode {
			case MergeModePrepend:
				rep.Entries[word] = append([]string{c}, rep.Entries[word]...)
			default:
				rep.Entries[word] = append(rep.Entries[word], c)
			}
		}

		return nil
	}

	if err := l.Load(r, emit); err != nil {
		return fmt.Errorf("load (%s): %w", l.Kind(), err)
	}

	for w := range datasetWords {
		rep.PreloadedWords[w] = struct{}{}
	}

	return nil
}
