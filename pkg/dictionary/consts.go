package dictionary

// MergeMode controls how multiple sources (preloaded dictionaries, extra
// word lists, etc.) are combined when the same expression appears in more
// than one source.
type MergeMode int

const (
	// MergeModeAppend appends new entries after existing ones.
	MergeModeAppend MergeMode = iota

	// MergeModePrepend prepends new entries before existing ones.
	MergeModePrepend

	// MergeModeNoOverride does not change entries for expressions that
	// already exist in the preloaded dictionary. New entries are only
	// added for expressions that are not present yet.
	MergeModeNoOverride

	// MergeModeReplace replaces entries for expressions that already
	// exist in the preloaded dictionary. As soon as an expression appears
	// in a new source, its existing entries are discarded and the new
	// ones are kept.
	MergeModeReplace
)

// Kind identifies which Loader produced a given source.
type Kind string

const (
	// KindGOB identifies a gob-encoded Dictionary (map[string][]string).
	KindGOB Kind = "gob"

	// KindPipedTxt identifies the tab-separated text format:
	//   <word>\t<candidate1> | <candidate2> | ...
	KindPipedTxt Kind = "piped_txt"
)

// sniffLen bounds the prefix inspected when guessing a source's format.
const sniffLen = 4 * 1024
