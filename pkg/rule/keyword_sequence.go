package rule

import "github.com/temporal-IPA/nlu/pkg/lexer"

// KeywordSequence is the generalized form of the reference grammar's
// SausageRule: it nominates any OptionWord matching one of an ordered list
// of stemmed keywords, then scores a selection by how closely those
// keywords appear in the required order.
//
// Exactly two keywords are supported, matching the reference rule's shape
// (first/second); evaluating requires both to appear exactly once, in
// order, in the selection.
type KeywordSequence struct {
	First  WordMatcher
	Second WordMatcher
}

// NewKeywordSequence builds a KeywordSequence over two stemmed keywords.
func NewKeywordSequence(first, second string) KeywordSequence {
	return KeywordSequence{
		First:  WordMatcher{Text: first, Stem: true},
		Second: WordMatcher{Text: second, Stem: true},
	}
}

func (k KeywordSequence) NominateWords(words []*lexer.OptionWord) []Nomination {
	var out []Nomination
	for _, w := range words {
		if k.First.Matches(w) || k.Second.Matches(w) {
			out = append(out, Nomination{Word: w, Flag: Flag{Rule: k}})
		}
	}
	return out
}

// Evaluate locates the positions of the two required keywords and scores
// the gap between them: gap in {1,2} -> 0, 3 -> 0.25, 4 -> 0.5, >=5 -> 1.0.
// Rejects (returns ok=false) if either keyword is missing, duplicated, or
// out of order.
func (k KeywordSequence) Evaluate(words []WordMatch) (float64, bool) {
	firstPos, secondPos := -1, -1

	for i, w := range words {
		if k.First.MatchesWordMatch(w) {
			if firstPos != -1 {
				return 0, false
			}
			firstPos = i
		}
		if k.Second.MatchesWordMatch(w) {
			if secondPos != -1 {
				return 0, false
			}
			secondPos = i
		}
	}

	if firstPos == -1 || secondPos == -1 {
		return 0, false
	}

	gap := secondPos - firstPos
	switch {
	case gap < 0:
		return 0, false
	case gap == 1 || gap == 2:
		return 0, true
	case gap == 3:
		return 0.25, true
	case gap == 4:
		return 0.5, true
	default:
		// covers gap == 0 (same position) and gap >= 5
		return 1.0, true
	}
}
