package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/temporal-IPA/nlu/pkg/dictionary"
	"github.com/temporal-IPA/nlu/pkg/lexer"
	"github.com/temporal-IPA/nlu/pkg/locale"
	"github.com/temporal-IPA/nlu/pkg/nlu"
	"github.com/temporal-IPA/nlu/pkg/optimizer"
	"github.com/temporal-IPA/nlu/pkg/rule"
	"github.com/temporal-IPA/nlu/pkg/spellcheck"
)

// Version is set at build time via -ldflags.
var Version = "0.1.0"

var cfgFile string

// NewRootCmd builds the nluctl command tree: a single default action that
// interprets an utterance read from its argument or from stdin.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "nluctl [text]",
		Short:   "Interpret a French utterance against a small rule ensemble",
		Version: Version,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runParse,

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./nluctl.yaml)")
	root.Flags().String("locale", "", "locale to interpret with (e.g. fr_FR)")
	root.Flags().String("data-dir", "", "directory holding <locale>.suggestions.txt / <locale>.stems.txt (default: $HUNSPELL_DATA_DIR)")
	root.Flags().Int64("seed", 0, "optimizer random seed")
	root.Flags().String("first", "", "first keyword of the KeywordSequence demo rule")
	root.Flags().String("second", "", "second keyword of the KeywordSequence demo rule")
	root.Flags().BoolP("verbose", "v", false, "print the resolved config before the result")

	return root
}

// Execute runs nluctl's root command.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(cfgFile, flagSet(cmd))
	if err != nil {
		return err
	}

	if cfg.Verbose {
		if f := GetConfigFileUsed(); f != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "using config file: %s\n", f)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "locale=%s data_dir=%q seed=%d rule=%s/%s\n",
			cfg.Locale, cfg.DataDir, cfg.Seed, cfg.First, cfg.Second)
	}

	text, err := readUtterance(cmd, args)
	if err != nil {
		return err
	}

	logger := buildLogger(cmd, cfg)

	engine, err := buildEngine(cfg, logger)
	if err != nil {
		return err
	}

	match, err := engine.Parse(context.Background(), text)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(matchView(match))
}

func flagSet(cmd *cobra.Command) *pflag.FlagSet {
	return cmd.Flags()
}

func readUtterance(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

// buildLogger returns a text-handler logger writing to cmd's stderr.
// Warn and Error records (backend failures, rule panics, optimizer
// fallbacks) are always shown; --verbose additionally surfaces Info/Debug.
func buildLogger(cmd *cobra.Command, cfg *Config) *slog.Logger {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func buildEngine(cfg *Config, logger *slog.Logger) (*nlu.Engine, error) {
	loc, err := locale.Parse(cfg.Locale)
	if err != nil {
		return nil, err
	}

	backend, err := buildBackend(cfg, loc)
	if err != nil {
		return nil, err
	}

	lex := lexer.New(locale.NewFrench(), backend)

	rules := []rule.Info{
		{Name: "keyword-sequence", Weight: 1.0, Rule: rule.NewKeywordSequence(cfg.First, cfg.Second)},
		{Name: "max-match", Weight: 1.0, Rule: rule.MaximizeMatch{}},
		{Name: "max-similarity", Weight: 1.0, Rule: rule.MaximizeSimilarity{}},
	}

	minimizer := optimizer.MultiStartCoordinateDescent{Seed: cfg.Seed}

	return nlu.New(lex, rules, minimizer, logger), nil
}

func buildBackend(cfg *Config, loc locale.Locale) (spellcheck.Backend, error) {
	if cfg.DataDir != "" {
		return dictionary.OpenDir(os.DirFS(cfg.DataDir), loc)
	}
	return dictionary.Open(loc)
}

// matchResult is the JSON shape printed to stdout: a flattened, readable
// view of optimizer.Match rather than its internal WordMatch interface
// values, which don't carry struct tags of their own.
type matchResult struct {
	Score   float64       `json:"score"`
	Matched []matchedWord `json:"matched"`
}

type matchedWord struct {
	Matched bool   `json:"matched"`
	Word    string `json:"word,omitempty"`
	Rule    string `json:"rule,omitempty"`
}

func matchView(m optimizer.Match) matchResult {
	out := matchResult{Score: m.Score, Matched: make([]matchedWord, len(m.Matched))}
	for i, wm := range m.Matched {
		nom, ok := wm.(*rule.Nomination)
		if !ok {
			out.Matched[i] = matchedWord{Matched: false}
			continue
		}
		ruleName := ""
		if nom.Flag.Rule != nil {
			ruleName = fmt.Sprintf("%T", nom.Flag.Rule)
		}
		out.Matched[i] = matchedWord{Matched: true, Word: nom.Word.WordLower, Rule: ruleName}
	}
	return out
}
