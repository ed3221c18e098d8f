package locale

// Rewrite is one step of a LanguageProfile's normalization cascade. Each
// Rewrite is applied once, as a single global substitution, before the
// next one begins — later rewrites see the output of earlier ones. This
// ordering is a behavioral contract of the cascade, not an implementation
// detail: some rewrites are only correct because an earlier one has
// already normalized part of the text (e.g. punctuation spacing relies on
// number compaction having removed intra-number periods first).
type Rewrite func(text string) string

// LanguageProfile is the per-language capability consumed by the lexer: an
// ordered normalization cascade, a tokenizer splitter, a word-shape
// pattern, and the dictionary identifier used to resolve a spell-check
// backend.
type LanguageProfile interface {
	// Locale returns the locale this profile is configured for.
	Locale() Locale

	// Normalize applies every rewrite of the normalization cascade, in
	// order, as a global substitution each.
	Normalize(text string) string

	// Split breaks normalized text into surface tokens.
	Split(text string) []string

	// IsWord reports whether surface is shaped like a word (as opposed to
	// punctuation, a number, etc) in this language.
	IsWord(surface string) bool

	// DictionaryName returns the dictionary identifier used to resolve a
	// spell-check backend for this profile (by convention, Locale().Unix()).
	DictionaryName() string
}
