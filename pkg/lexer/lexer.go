package lexer

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/temporal-IPA/nlu/pkg/locale"
	"github.com/temporal-IPA/nlu/pkg/nluerr"
	"github.com/temporal-IPA/nlu/pkg/spellcheck"
	"github.com/temporal-IPA/nlu/pkg/trigram"
)

// Lexer turns raw text into explored Tokens, ready for rule nomination.
type Lexer struct {
	Profile locale.LanguageProfile
	Backend spellcheck.Backend

	// Concurrent enables the errgroup-backed worker pool for Explore. It is
	// only honored when Backend also implements spellcheck.ThreadSafe and
	// reports true; otherwise exploration always runs sequentially.
	Concurrent bool

	// Logger receives Warn-level records for backend failures encountered
	// during Explore. Nil disables logging.
	Logger *slog.Logger
}

// New builds a Lexer for the given profile and backend. Concurrent
// exploration is enabled by default when the backend declares itself
// thread-safe.
func New(profile locale.LanguageProfile, backend spellcheck.Backend) *Lexer {
	return &Lexer{
		Profile:    profile,
		Backend:    backend,
		Concurrent: isThreadSafe(backend),
	}
}

func isThreadSafe(backend spellcheck.Backend) bool {
	ts, ok := backend.(spellcheck.ThreadSafe)
	return ok && ts.ConcurrentSafe()
}

// Normalize applies the profile's rewrite cascade, in order.
func (l *Lexer) Normalize(text string) string {
	return l.Profile.Normalize(text)
}

// Tokenize splits normalized text into Tokens via the profile's splitter,
// optionally exploring each one.
func (l *Lexer) Tokenize(text string, explore bool) ([]*Token, error) {
	surfaces := l.Profile.Split(text)
	tokens := make([]*Token, len(surfaces))
	for i, s := range surfaces {
		tokens[i] = &Token{Surface: s}
	}

	if explore {
		if err := l.Explore(tokens); err != nil {
			return nil, err
		}
	}

	return tokens, nil
}

// Explore runs exploration for every token, preserving positional order
// regardless of the completion order of any concurrent work performed
// underneath. Runs sequentially unless both l.Concurrent and the backend's
// thread-safety are true.
func (l *Lexer) Explore(tokens []*Token) error {
	if !l.Concurrent || !isThreadSafe(l.Backend) {
		for _, t := range tokens {
			if err := l.exploreOne(t); err != nil {
				return err
			}
		}
		return nil
	}

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.NumCPU() + 1)

	for _, t := range tokens {
		t := t
		g.Go(func() error {
			return l.exploreOne(t)
		})
	}

	return g.Wait()
}

func (l *Lexer) exploreOne(t *Token) error {
	t.Neighbors = []Neighbor{}
	t.Stems = []string{}

	if !l.Profile.IsWord(t.Surface) {
		return nil
	}

	t0 := trigram.New(t.Surface)

	suggestions, err := l.Backend.Suggest(t.Surface)
	if err != nil {
		if l.Logger != nil {
			l.Logger.Warn("suggestion explore failed",
				slog.String("surface", t.Surface),
				slog.String("op", "suggest"),
				slog.String("error", err.Error()),
			)
		}
		return nluerr.BackendError("suggest", l.Profile.DictionaryName(), err)
	}

	for _, s := range suggestions {
		if s == t.Surface {
			continue
		}

		t.Neighbors = append(t.Neighbors, Neighbor{
			Words: l.Profile.Split(s),
			Sim:   t0.Similarity(trigram.New(s)),
		})
	}

	stems, err := l.Backend.Stem(t.Surface)
	if err != nil {
		if l.Logger != nil {
			l.Logger.Warn("suggestion explore failed",
				slog.String("surface", t.Surface),
				slog.String("op", "stem"),
				slog.String("error", err.Error()),
			)
		}
		return nluerr.BackendError("stem", l.Profile.DictionaryName(), err)
	}

	t.Stems = append(t.Stems, stems...)

	return nil
}

// Process normalizes and tokenizes (with exploration) in one call.
func (l *Lexer) Process(text string) ([]*Token, error) {
	return l.Tokenize(l.Normalize(text), true)
}
