// Package lexer turns raw text into a sequence of explored Tokens: each
// surface word, annotated with the spelling/stem/neighbor Options the rest
// of the pipeline will nominate words from.
package lexer

import (
	"sort"
	"strings"
	"sync"

	"github.com/temporal-IPA/nlu/pkg/weights"
)

// OptionKind identifies how an Option was produced.
type OptionKind int

const (
	KindVerbatim OptionKind = iota
	KindStem
	KindNeighbor
)

func (k OptionKind) String() string {
	switch k {
	case KindVerbatim:
		return "verbatim"
	case KindStem:
		return "stem"
	case KindNeighbor:
		return "neighbor"
	default:
		return "unknown"
	}
}

// Neighbor is a spell-suggested respelling of a token's surface, split into
// its constituent words and scored by trigram similarity to the surface.
type Neighbor struct {
	Words []string
	Sim   float64
}

// Token is one surface word extracted from normalized text.
type Token struct {
	Surface   string
	Neighbors []Neighbor
	Stems     []string

	optionsOnce sync.Once
	options     []*Option
}

// Option is one hypothesis for what a Token might mean: the verbatim
// surface, a stem, or a neighbor — each carrying one or more OptionWords.
type Option struct {
	Token *Token
	Kind  OptionKind
	Score float64
	Words []*OptionWord
}

// OptionWord is one word inside an Option.
type OptionWord struct {
	Option    *Option
	Word      string
	WordLower string
}

func newOption(token *Token, kind OptionKind, score float64, words []string) *Option {
	opt := &Option{Token: token, Kind: kind, Score: score}
	opt.Words = make([]*OptionWord, len(words))
	for i, w := range words {
		opt.Words[i] = &OptionWord{Option: opt, Word: w, WordLower: strings.ToLower(w)}
	}
	return opt
}

// Options lazily computes and caches this Token's candidate options: one
// Verbatim option, one Stem option per stem, one Neighbor option per
// neighbor — sorted descending by score with a stable tiebreak by
// insertion order. Computed at most once, safe for concurrent first access.
func (t *Token) Options() []*Option {
	t.optionsOnce.Do(func() {
		opts := make([]*Option, 0, 1+len(t.Stems)+len(t.Neighbors))
		opts = append(opts, newOption(t, KindVerbatim, weights.OptionVerbatim, []string{t.Surface}))

		for _, stem := range t.Stems {
			opts = append(opts, newOption(t, KindStem, weights.OptionStem, []string{stem}))
		}

		for _, n := range t.Neighbors {
			opts = append(opts, newOption(t, KindNeighbor, n.Sim, n.Words))
		}

		sort.SliceStable(opts, func(i, j int) bool {
			return opts[i].Score > opts[j].Score
		})

		t.options = opts
	})

	return t.options
}
