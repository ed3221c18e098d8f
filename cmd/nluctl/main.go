// Command nluctl is a thin demo front-end for pkg/nlu: it reads an
// utterance from its argument or stdin and prints the resulting Match as
// JSON. It is packaging, not a feature of the core library.
package main

import (
	"os"

	"github.com/temporal-IPA/nlu/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
