// Package optimizer turns a set of parser Interpretations into a single
// scored Match by searching, via a pluggable derivative-free Minimizer,
// for the selection of nominations across all tokens that best satisfies
// a weighted ensemble of rules.
package optimizer

import (
	"log/slog"
	"math"

	"github.com/temporal-IPA/nlu/pkg/parser"
	"github.com/temporal-IPA/nlu/pkg/rule"
	"github.com/temporal-IPA/nlu/pkg/weights"
)

// Bound is the inclusive search range for one coordinate of the objective.
type Bound struct {
	Lo, Hi float64
}

// Minimizer is a narrow interface over any derivative-free global
// optimizer: given an objective and bounds, it returns whether it
// succeeded, the best point found, and the value there. This keeps the
// scoring/penalty construction (owned by this package) decoupled from the
// search algorithm, so alternative engines can be substituted freely.
type Minimizer interface {
	Minimize(f func([]float64) float64, bounds []Bound) (ok bool, x []float64, fx float64)
}

// Match is the final scored result of a parse.
type Match struct {
	Score   float64
	Matched []rule.WordMatch
}

// interpretationBound returns the search bounds for one interpretation: n is its number
// of nomination tuples. The surplus past N-1 selects the NoMatch fallback;
// the negative lower bound lets the minimizer explore index 0 freely.
func interpretationBound(n int) Bound {
	return Bound{Lo: -0.1, Hi: float64(n) + 1}
}

// snapOne resolves one coordinate to the WordMatch tuple it selects.
func snapOne(x float64, interp parser.Interpretation) []rule.WordMatch {
	if x < 0 {
		x = 0
	}

	n := len(interp.Nominations)
	idx := int(math.Floor(x))

	if idx >= n {
		return []rule.WordMatch{rule.NoMatch{}}
	}

	return interp.Nominations[idx]
}

// snap resolves a full coordinate vector into the concatenated selection
// across every interpretation. The result is not guaranteed to have one
// entry per input token: an interpretation's surviving tuple can itself
// span multiple WordMatch slots.
func snap(x []float64, interps []parser.Interpretation) []rule.WordMatch {
	var out []rule.WordMatch
	for i, interp := range interps {
		out = append(out, snapOne(x[i], interp)...)
	}
	return out
}

// ruleEnsembleScore evaluates every rule against selection and combines
// the results as a Euclidean norm of each rule's (score * weight).
func ruleEnsembleScore(selection []rule.WordMatch, rules []rule.Info) float64 {
	var sumSquares float64

	for _, info := range rules {
		s, ok := info.Rule.Evaluate(selection)
		if !ok {
			s = weights.RuleMissPenalty
		}
		weighted := s * info.Weight
		sumSquares += weighted * weighted
	}

	return math.Sqrt(sumSquares)
}

// maxScore is the Euclidean norm of every rule's weight alone — the
// ensemble score of a selection that saturates every rule at its own
// weight (score=1 each).
func maxScore(rules []rule.Info) float64 {
	var sumSquares float64
	for _, info := range rules {
		sumSquares += info.Weight * info.Weight
	}
	return math.Sqrt(sumSquares)
}

// objective builds f(x) = rule_ensemble_score(snap(x)) + fractional-part
// penalty, pulling the minimum toward integer coordinates so that
// neighboring integer snaps are never shadowed by a continuous minimum
// found between them.
func objective(interps []parser.Interpretation, rules []rule.Info) func([]float64) float64 {
	return func(x []float64) float64 {
		selection := snap(x, interps)
		score := ruleEnsembleScore(selection, rules)

		var fracSumSquares float64
		for _, xi := range x {
			frac := xi - math.Floor(xi)
			fracSumSquares += frac * frac
		}

		return score + math.Sqrt(fracSumSquares)
	}
}

// allNoMatch builds a fallback Match of len(interps) NoMatch entries.
func allNoMatch(n int) Match {
	matched := make([]rule.WordMatch, n)
	for i := range matched {
		matched[i] = rule.NoMatch{}
	}
	return Match{Score: 0.0, Matched: matched}
}

// Optimize searches for the best selection across interps under rules,
// using m as the search engine. Returns a zero-score all-NoMatch Match if
// the minimizer fails or there is nothing to interpret. logger, when
// non-nil, receives a Warn record when the minimizer fails.
func Optimize(interps []parser.Interpretation, rules []rule.Info, m Minimizer, logger *slog.Logger) Match {
	if len(interps) == 0 {
		return Match{Score: 0.0}
	}

	bounds := make([]Bound, len(interps))
	for i, interp := range interps {
		bounds[i] = interpretationBound(len(interp.Nominations))
	}

	ok, x, fx := m.Minimize(objective(interps, rules), bounds)
	if !ok {
		if logger != nil {
			logger.Warn("optimizer minimizer failed, falling back to all-NoMatch match",
				slog.Int("token_count", len(interps)),
			)
		}
		return allNoMatch(len(interps))
	}

	max := maxScore(rules)
	score := 0.0
	if max > 0 {
		score = math.Max(0, (max-fx)/max)
	}

	return Match{
		Score:   score,
		Matched: snap(x, interps),
	}
}
