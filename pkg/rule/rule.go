// Package rule defines the nomination/scoring capability rules implement,
// and the sealed WordMatch sum type ("this slot of the selection is either
// unmatched, or a specific rule's claim on a word") that the parser and
// optimizer exchange.
package rule

import "github.com/temporal-IPA/nlu/pkg/lexer"

// WordMatch is the sealed sum type NoMatch | *Nomination. It is gated by an
// unexported marker method so the only implementations are the two defined
// in this package — a tagged variant, not a class hierarchy.
type WordMatch interface {
	isWordMatch()
}

// NoMatch represents "this position contributes no rule match".
type NoMatch struct{}

func (NoMatch) isWordMatch() {}

// Flag is the payload a rule attaches to a Nomination.
type Flag struct {
	Rule Rule
	Data any
}

// Nomination is a rule's claim that word is meaningful under that rule.
type Nomination struct {
	Word *lexer.OptionWord
	Flag Flag
}

func (*Nomination) isWordMatch() {}

// Rule is the capability every grammar/scoring rule implements.
type Rule interface {
	// NominateWords examines every OptionWord in the current parse and
	// yields the ones this rule cares about. Rules that only contribute to
	// global scoring (no grammar of their own) may return nil.
	NominateWords(words []*lexer.OptionWord) []Nomination

	// Evaluate scores a full selection — one WordMatch per slot, after
	// optimizer selection. Returns (score, true) for an acceptable
	// combination (lower is better, preferred range [0,1]), or (_, false)
	// to reject the combination outright.
	Evaluate(words []WordMatch) (score float64, ok bool)
}

// Info carries how a Rule participates in the parser's ensemble.
type Info struct {
	Rule   Rule
	Weight float64
	Name   string
}

// WordMatcher is an equality-comparable helper: it matches an OptionWord
// whose lowercase surface equals Text and whose option kind is Stem iff
// Stem is true. Matching against a *Nomination unwraps to its word first.
type WordMatcher struct {
	Text string
	Stem bool
}

// Matches reports whether m matches word.
func (m WordMatcher) Matches(word *lexer.OptionWord) bool {
	if word == nil {
		return false
	}
	if m.Stem != (word.Option.Kind == lexer.KindStem) {
		return false
	}
	return word.WordLower == m.Text
}

// MatchesWordMatch reports whether m matches wm, unwrapping a *Nomination
// to its underlying word first; a NoMatch never matches.
func (m WordMatcher) MatchesWordMatch(wm WordMatch) bool {
	nom, ok := wm.(*Nomination)
	if !ok {
		return false
	}
	return m.Matches(nom.Word)
}
