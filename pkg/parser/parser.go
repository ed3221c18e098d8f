// Package parser turns explored Tokens into Interpretations: for every
// token, every surviving combination of per-word rule nominations across
// its options.
package parser

import (
	"fmt"
	"log/slog"

	"github.com/temporal-IPA/nlu/pkg/lexer"
	"github.com/temporal-IPA/nlu/pkg/nluerr"
	"github.com/temporal-IPA/nlu/pkg/rule"
)

// Interpretation is, for one Token, the union across its options of
// surviving per-word nomination combinations.
type Interpretation struct {
	Token       *lexer.Token
	Nominations [][]rule.WordMatch
}

// Parser buckets rule nominations per OptionWord and enumerates
// Interpretations.
type Parser struct {
	Rules []rule.Info

	// Logger receives Error-level records when a rule's NominateWords
	// panics. Nil disables logging.
	Logger *slog.Logger
}

// New builds a Parser over the given rule ensemble.
func New(rules []rule.Info) *Parser {
	return &Parser{Rules: rules}
}

// Nominate runs every rule's NominateWords over the full set of
// OptionWords reachable from tokens, then builds one Interpretation per
// token. A rule that panics is recovered at its own call site (not the
// whole function), so the resulting RuleError and log record can name
// which rule misbehaved.
func (p *Parser) Nominate(tokens []*lexer.Token) ([]Interpretation, error) {
	allWords := collectOptionWords(tokens)

	// bucket[token][option][word] -> nominations landing on that slot.
	bucket := make(map[*lexer.Token]map[*lexer.Option]map[*lexer.OptionWord][]rule.Nomination)

	for _, info := range p.Rules {
		noms, err := p.nominateWords(info, allWords)
		if err != nil {
			return nil, err
		}
		for _, nom := range noms {
			ow := nom.Word
			opt := ow.Option
			tok := opt.Token

			byOption, ok := bucket[tok]
			if !ok {
				byOption = make(map[*lexer.Option]map[*lexer.OptionWord][]rule.Nomination)
				bucket[tok] = byOption
			}
			byWord, ok := byOption[opt]
			if !ok {
				byWord = make(map[*lexer.OptionWord][]rule.Nomination)
				byOption[opt] = byWord
			}
			byWord[ow] = append(byWord[ow], nom)
		}
	}

	out := make([]Interpretation, len(tokens))

	for i, tok := range tokens {
		out[i] = Interpretation{Token: tok, Nominations: nominationsForToken(tok, bucket[tok])}
	}

	return out, nil
}

// nominateWords calls info.Rule.NominateWords, recovering and logging a
// panic as a RuleError tagged with the rule's name.
func (p *Parser) nominateWords(info rule.Info, allWords []*lexer.OptionWord) (noms []rule.Nomination, err error) {
	defer func() {
		if r := recover(); r != nil {
			if p.Logger != nil {
				p.Logger.Error("rule panic recovered",
					slog.String("rule", info.Name),
					slog.Any("panic", r),
				)
			}
			err = nluerr.RuleError(info.Name, fmt.Errorf("rule %q panic: %v", info.Name, r))
		}
	}()

	return info.Rule.NominateWords(allWords), nil
}

func collectOptionWords(tokens []*lexer.Token) []*lexer.OptionWord {
	var out []*lexer.OptionWord
	for _, tok := range tokens {
		for _, opt := range tok.Options() {
			out = append(out, opt.Words...)
		}
	}
	return out
}

// nominationsForToken builds the union, across a token's options, of
// surviving per-word nomination products.
func nominationsForToken(tok *lexer.Token, byOption map[*lexer.Option]map[*lexer.OptionWord][]rule.Nomination) [][]rule.WordMatch {
	var survivors [][]rule.WordMatch

	for _, opt := range tok.Options() {
		byWord := byOption[opt]

		// Every slot gets its own freshly allocated slice. Sharing one
		// backing slice across slots (e.g. via slice-literal repetition)
		// would make every slot alias the same underlying array, so
		// extending one slot would silently leak into all the others.
		slots := make([][]rule.WordMatch, len(opt.Words))
		for i := range slots {
			slots[i] = []rule.WordMatch{rule.NoMatch{}}
			if byWord != nil {
				for _, nom := range byWord[opt.Words[i]] {
					nom := nom
					slots[i] = append(slots[i], &nom)
				}
			}
		}

		survivors = append(survivors, cartesianSurvivors(slots)...)
	}

	return survivors
}

// cartesianSurvivors enumerates the Cartesian product of slots, dropping
// any tuple where every slot is NoMatch.
func cartesianSurvivors(slots [][]rule.WordMatch) [][]rule.WordMatch {
	if len(slots) == 0 {
		return nil
	}

	var out [][]rule.WordMatch
	current := make([]rule.WordMatch, len(slots))

	var walk func(i int)
	walk = func(i int) {
		if i == len(slots) {
			allNoMatch := true
			for _, w := range current {
				if _, isNoMatch := w.(rule.NoMatch); !isNoMatch {
					allNoMatch = false
					break
				}
			}
			if allNoMatch {
				return
			}

			tuple := make([]rule.WordMatch, len(current))
			copy(tuple, current)
			out = append(out, tuple)
			return
		}

		for _, w := range slots[i] {
			current[i] = w
			walk(i + 1)
		}
	}

	walk(0)

	return out
}
