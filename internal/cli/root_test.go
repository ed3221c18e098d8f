package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/temporal-IPA/nlu/pkg/lexer"
	"github.com/temporal-IPA/nlu/pkg/locale"
	"github.com/temporal-IPA/nlu/pkg/optimizer"
	"github.com/temporal-IPA/nlu/pkg/rule"
	"github.com/temporal-IPA/nlu/pkg/spellcheck"
)

func TestMatchViewFlattensNominationsAndNoMatch(t *testing.T) {
	backend := spellcheck.NewStatic().WithStems("saucisses", "saucisse")
	lex := lexer.New(locale.NewFrench(), backend)
	toks, err := lex.Tokenize(lex.Normalize("saucisses"), true)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}

	opt := toks[0].Options()[0]
	nom := &rule.Nomination{Word: opt.Words[0], Flag: rule.Flag{}}

	match := optimizer.Match{Score: 0.75, Matched: []rule.WordMatch{nom, rule.NoMatch{}}}

	view := matchView(match)
	if view.Score != 0.75 {
		t.Errorf("Score = %v, want 0.75", view.Score)
	}
	if len(view.Matched) != 2 {
		t.Fatalf("Matched has %d entries, want 2", len(view.Matched))
	}
	if !view.Matched[0].Matched {
		t.Errorf("Matched[0].Matched = false, want true")
	}
	if view.Matched[1].Matched {
		t.Errorf("Matched[1].Matched = true, want false (NoMatch)")
	}
}

func TestRootCommandPrintsJSONMatch(t *testing.T) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"bonjour"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	var decoded matchResult
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON matchResult: %v\noutput: %s", err, out.String())
	}
	if decoded.Score < 0 || decoded.Score > 1 {
		t.Errorf("Score = %v, out of [0,1]", decoded.Score)
	}
}

func TestRootCommandReadsStdinWhenNoArg(t *testing.T) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(bytes.NewBufferString("bonjour\n"))
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if out.Len() == 0 {
		t.Errorf("expected JSON output on stdout")
	}
}
