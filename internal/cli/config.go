// Package cli wires nluctl's command-line surface: config loading
// (defaults < config file < environment < flags, in the koanf style used
// elsewhere in this codebase's corpus), then one "parse" action calling
// into pkg/nlu.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// envPrefix is stripped from environment variable names before they're
// folded into the config key space, e.g. NLU_LOCALE -> locale.
const envPrefix = "NLU_"

// Config is the resolved nluctl configuration. Library packages never read
// it directly: it only exists to build the plain Go structs (locale.Locale,
// a rule ensemble) that pkg/nlu actually takes.
type Config struct {
	Locale  string `koanf:"locale"`
	DataDir string `koanf:"data_dir"`
	Seed    int64  `koanf:"seed"`
	First   string `koanf:"first"`
	Second  string `koanf:"second"`
	Verbose bool   `koanf:"verbose"`
}

const (
	DefaultLocale  = "fr_FR"
	DefaultDataDir = ""
	DefaultSeed    = int64(1)
	DefaultFirst   = "aimer"
	DefaultSecond  = "saucisse"
)

var configFileUsed string

// LoadConfig loads configuration from defaults, an optional config file,
// NLU_-prefixed environment variables, and CLI flags, in that ascending
// order of precedence.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"locale":   DefaultLocale,
		"data_dir": DefaultDataDir,
		"seed":     DefaultSeed,
		"first":    DefaultFirst,
		"second":   DefaultSecond,
		"verbose":  false,
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	configFileUsed = ""
	if cfgFile == "" {
		for _, name := range []string{"nluctl.yaml", "nluctl.yml"} {
			if _, err := os.Stat(name); err == nil {
				cfgFile = name
				break
			}
		}
	}
	if cfgFile != "" {
		if _, err := os.Stat(cfgFile); err == nil {
			if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("read config file %s: %w", cfgFile, err)
			}
			configFileUsed = cfgFile
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return &cfg, nil
}

// GetConfigFileUsed returns the path of the config file actually loaded,
// or "" if none was found.
func GetConfigFileUsed() string {
	return configFileUsed
}
