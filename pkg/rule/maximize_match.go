package rule

import "github.com/temporal-IPA/nlu/pkg/lexer"

// MaximizeMatch scores a selection by how many of its slots are matched at
// all, regardless of which rule matched them: 1 - matched/total.
type MaximizeMatch struct{}

func (MaximizeMatch) NominateWords(words []*lexer.OptionWord) []Nomination {
	return nil
}

func (MaximizeMatch) Evaluate(words []WordMatch) (float64, bool) {
	total := len(words)
	if total == 0 {
		return 0, true
	}

	matching := 0
	for _, w := range words {
		if _, isNoMatch := w.(NoMatch); !isNoMatch {
			matching++
		}
	}

	return 1.0 - float64(matching)/float64(total), true
}
