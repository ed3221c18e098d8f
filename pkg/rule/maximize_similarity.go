package rule

import "github.com/temporal-IPA/nlu/pkg/lexer"

// MaximizeSimilarity scores a selection by the mean of (1 - option.score)
// over every Nomination present, preferring options the lexer considers
// closer to what the user actually wrote. Rejects if no Nomination is
// present at all.
type MaximizeSimilarity struct{}

func (MaximizeSimilarity) NominateWords(words []*lexer.OptionWord) []Nomination {
	return nil
}

func (MaximizeSimilarity) Evaluate(words []WordMatch) (float64, bool) {
	var total float64
	var count int

	for _, w := range words {
		nom, ok := w.(*Nomination)
		if !ok {
			continue
		}
		total += 1 - nom.Word.Option.Score
		count++
	}

	if count == 0 {
		return 0, false
	}

	return total / float64(count), true
}
