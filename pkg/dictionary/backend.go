package dictionary

import (
	"io/fs"
	"os"

	"github.com/temporal-IPA/nlu/pkg/locale"
	"github.com/temporal-IPA/nlu/pkg/nluerr"
)

// EnvDataDir names the environment variable pointing at the directory
// holding suggestion/stem dictionary files, mirroring Hunspell's own
// convention of keying its .dic/.aff pairs by locale.
const EnvDataDir = "HUNSPELL_DATA_DIR"

// DefaultDataDir is used when EnvDataDir is unset.
const DefaultDataDir = "/usr/share/hunspell"

const (
	suggestionsSuffix = ".suggestions.txt"
	stemsSuffix       = ".stems.txt"
)

// Backend is a spellcheck.Backend backed by word lists resolved from disk,
// keyed by locale. It is safe for concurrent use: both maps are built once
// at Open and never mutated afterwards.
type Backend struct {
	suggestions Dictionary
	stems       Dictionary
}

// DataDir returns the configured dictionary directory, or DefaultDataDir.
func DataDir() string {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return dir
	}
	return DefaultDataDir
}

// Open resolves and loads the suggestions/stems files for loc from
// DataDir(). Either file may be absent; a missing file yields an empty
// dictionary rather than an error, since a locale may only need one of the
// two lists.
func Open(loc locale.Locale) (*Backend, error) {
	return OpenDir(os.DirFS(DataDir()), loc)
}

// OpenDir is Open with an explicit fs.FS root, for tests and embedding.
func OpenDir(fsys fs.FS, loc locale.Locale) (*Backend, error) {
	unix := loc.Unix()

	suggestions, err := LoadPaths(fsys, MergeModeAppend, unix+suggestionsSuffix)
	if err != nil {
		return nil, nluerr.BackendError("load_suggestions", unix, err)
	}
	stems, err := LoadPaths(fsys, MergeModeAppend, unix+stemsSuffix)
	if err != nil {
		return nil, nluerr.BackendError("load_stems", unix, err)
	}

	return &Backend{suggestions: suggestions, stems: stems}, nil
}

// Suggest implements spellcheck.Backend.
func (b *Backend) Suggest(word string) ([]string, error) {
	return b.suggestions[NormalizeString(word)], nil
}

// Stem implements spellcheck.Backend.
func (b *Backend) Stem(word string) ([]string, error) {
	return b.stems[NormalizeString(word)], nil
}

// ConcurrentSafe implements spellcheck.ThreadSafe: lookups are read-only
// map reads against state fixed at Open.
func (b *Backend) ConcurrentSafe() bool { return true }
