package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/saylorsolutions/strscreen/cmd/internal"
	"github.com/saylorsolutions/strscreen/internal/config"
)

var version = "dev"

func main() {
	flagCfg := new(config.Config)
	flags := config.Flags(flagCfg)
	flags.Usage = func() {
		fmt.Printf(`
strgen (%s) screens the string definitions in one or more files, and generates a *.go file (or side-loaded resource) to access them at runtime. This pairs well with go:generate comments.
Each non-blank line of a definition file of the form "Name = value" defines a string. Lines without an "=" are ignored, so "# comments" are allowed as long as they don't contain one.
The generated Go file contains an accessor function for each string, like ApiKey() (string, error), and a lookupString function to access strings by name.
See the -E flag below to make them exposed functions, and make sure you review the SECURITY notes below.

USAGE:  strgen [FLAGS] FILE...

ARGS:
    FILE is a definition file to screen. Multiple files are combined into the same output.

FLAGS:
%s
ENVIRONMENT:
    Each flag except for help may also be set with an environment variable prefixed with %s, like %sKEY_LEN=32.
    Flags take precedence over environment variables.

SECURITY:
    This is not encryption, this is obfuscation, and they are very different things!
Screening is intended to hide embedded strings from passive binary analysis only.
Each key is derived from the string's name, and is stored right next to the screened data.
`, version, flags.FlagUsages(), config.EnvPrefix, config.EnvPrefix)
	}
	if len(os.Args) == 1 {
		flags.Usage()
		return
	}
	cfg, err := config.Load(flags, flagCfg, os.Args[1:], os.Environ())
	if err != nil {
		flags.Usage()
		internal.Fatal("Error parsing options: %v", err)
	}
	if cfg.Help {
		flags.Usage()
		return
	}

	if err := run(cfg, newLogger(cfg.Verbose), os.Stdout); err != nil {
		if errors.Is(err, errOutOfDate) {
			internal.Fatal("%v", err)
		}
		internal.FatalCode(2, "Failed to generate strings: %v", err)
	}
}

func newLogger(verbose bool) zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}
	out := zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: !term.IsTerminal(int(os.Stderr.Fd())),
	}
	return zerolog.New(out).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}
