package config

import (
	"errors"
	"fmt"
	"go/token"
	"path/filepath"
	"regexp"
	"strings"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	flag "github.com/spf13/pflag"
)

const (
	EnvPrefix = "STRGEN_"

	FormatGo       = "go"
	FormatResource = "resource"
	FormatBolt     = "bolt"

	DefaultKeyLen = 16
	MaxKeyLen     = 4096

	discoverBaseName = "screened_strings"
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config holds all options for a strgen run.
type Config struct {
	Package  string `env:"PACKAGE"`
	Output   string `env:"OUTPUT"`
	Format   string `env:"FORMAT"`
	KeyLen   int    `env:"KEY_LEN"`
	Discover string `env:"DISCOVER"`
	Exposed  bool   `env:"EXPOSED"`
	Verbose  bool   `env:"VERBOSE"`
	Check    bool   `env:"CHECK"`

	Help   bool
	Inputs []string
}

// Defaults returns the lowest precedence configuration layer.
func Defaults() *Config {
	return &Config{
		Format: FormatGo,
		KeyLen: DefaultKeyLen,
	}
}

// Flags creates the strgen flag set, storing parsed values in cfg.
// Flag defaults are zero values so that unset flags don't mask the environment.
func Flags(cfg *Config) *flag.FlagSet {
	flags := flag.NewFlagSet("strgen", flag.ContinueOnError)
	flags.BoolVarP(&cfg.Help, "help", "h", false, "Prints this usage information.")
	flags.BoolVarP(&cfg.Exposed, "exposed", "E", false, "Make the generated accessor functions exposed from the file. It's recommended to only expose from within an internal package.")
	flags.StringVarP(&cfg.Package, "package", "p", "", "Package name of the generated Go file. Defaults to the name of the current directory.")
	flags.StringVarP(&cfg.Output, "output", "o", "", "Output file. Defaults to a name based on the first input file.")
	flags.StringVarP(&cfg.Format, "format", "f", "", fmt.Sprintf("Output format, one of %s, %s, or %s. (default %q)", FormatGo, FormatResource, FormatBolt, FormatGo))
	flags.IntVarP(&cfg.KeyLen, "key-len", "k", 0, fmt.Sprintf("Length of the key derived for each string. (default %d)", DefaultKeyLen))
	flags.StringVarP(&cfg.Discover, "discover", "d", "", "Search this directory for definition files ending in Strings.txt, in addition to any FILE arguments.")
	flags.BoolVar(&cfg.Check, "check", false, "Don't write anything, and exit with an error if the output file is out of date.")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Log progress to stderr.")
	return flags
}

// Load parses args with flags, which must have been created by Flags(flagCfg), and merges the result with environ and Defaults.
// environ is in the form returned by os.Environ.
func Load(flags *flag.FlagSet, flagCfg *Config, args []string, environ []string) (*Config, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	flagCfg.Inputs = flags.Args()

	envCfg := new(Config)
	err := env.ParseWithOptions(envCfg, env.Options{
		Prefix:      EnvPrefix,
		Environment: env.ToMap(environ),
	})
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	cfg := new(Config)
	for _, layer := range []*Config{flagCfg, envCfg, Defaults()} {
		if err := mergo.Merge(cfg, layer); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	if cfg.Help {
		return cfg, nil
	}
	return cfg, cfg.Validate()
}

// Validate checks that the merged configuration can be used for a run.
func (cfg *Config) Validate() error {
	var errs []error
	switch cfg.Format {
	case FormatGo, FormatResource, FormatBolt:
	default:
		errs = append(errs, fmt.Errorf("unknown format '%s'", cfg.Format))
	}
	if cfg.KeyLen < 1 || cfg.KeyLen > MaxKeyLen {
		errs = append(errs, fmt.Errorf("key length must be between 1 and %d, got %d", MaxKeyLen, cfg.KeyLen))
	}
	if len(cfg.Inputs) == 0 && len(cfg.Discover) == 0 {
		errs = append(errs, errors.New("missing required FILE argument or discover directory"))
	}
	if len(cfg.Package) > 0 && !token.IsIdentifier(cfg.Package) {
		errs = append(errs, fmt.Errorf("invalid package name '%s'", cfg.Package))
	}
	if cfg.Check && cfg.Format == FormatBolt {
		errs = append(errs, errors.New("check is not supported for the bolt format"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

var (
	fileCleansePattern = regexp.MustCompile(`[^a-zA-Z0-9_]`)
)

// OutputPath returns the configured output path, or a default based on the first input file.
// Given an input file called App-Strings.txt, the default for the go format is app_strings_txt.go in the current directory.
func (cfg *Config) OutputPath() string {
	if len(cfg.Output) > 0 {
		return cfg.Output
	}
	base := discoverBaseName
	if len(cfg.Inputs) > 0 {
		_, fname := filepath.Split(cfg.Inputs[0])
		base = strings.ToLower(fileCleansePattern.ReplaceAllString(fname, "_"))
	}
	switch cfg.Format {
	case FormatResource:
		return base + ".bin"
	case FormatBolt:
		return base + ".db"
	default:
		return base + ".go"
	}
}
