// Package trigram computes padded character-trigram sets and the Jaccard
// similarity between them. The algorithm mirrors PostgreSQL's pg_trgm
// module: every string is padded with two leading spaces and one trailing
// space so that word boundaries contribute their own trigrams, then every
// sliding window of three characters is collected into a set.
package trigram

// Trigram is the "compiled" trigram set of a string, ready to be compared
// against other Trigrams.
type Trigram struct {
	source string
	set    map[[3]rune]struct{}
}

// New computes the trigram set of s.
func New(s string) Trigram {
	runes := make([]rune, 0, len(s)+2)
	for _, r := range s {
		runes = append(runes, r)
	}

	set := make(map[[3]rune]struct{}, len(runes)+1)
	var window [3]rune
	window[0], window[1], window[2] = ' ', ' ', ' '

	push := func(r rune) {
		window[0], window[1] = window[1], window[2]
		window[2] = r
		set[window] = struct{}{}
	}

	for _, r := range runes {
		push(r)
	}
	if len(runes) > 0 {
		// one final window carries the trailing pad, mirroring the
		// reference algorithm's end-of-string sentinel.
		push(' ')
	}

	return Trigram{source: s, set: set}
}

// String returns the original string this Trigram was built from.
func (t Trigram) String() string {
	return t.source
}

// Len reports the number of distinct trigrams in the set.
func (t Trigram) Len() int {
	return len(t.set)
}

// Similarity computes the Jaccard similarity between t and other:
// |A∩B| / (|A|+|B|-|A∩B|). Returns 0 if either set is empty. The result is
// always within [0,1].
func (t Trigram) Similarity(other Trigram) float64 {
	if len(t.set) == 0 || len(other.set) == 0 {
		return 0
	}

	small, big := t.set, other.set
	if len(big) < len(small) {
		small, big = big, small
	}

	var inter int
	for k := range small {
		if _, ok := big[k]; ok {
			inter++
		}
	}

	union := len(t.set) + len(other.set) - inter
	if union == 0 {
		return 0
	}

	return float64(inter) / float64(union)
}
