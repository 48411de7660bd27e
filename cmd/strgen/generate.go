package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/saylorsolutions/strscreen/internal/config"
	"github.com/saylorsolutions/strscreen/pkg/defs"
	"github.com/saylorsolutions/strscreen/pkg/emit"
	"github.com/saylorsolutions/strscreen/pkg/strscreen"
)

var errOutOfDate = errors.New("output is out of date")

func run(cfg *config.Config, log zerolog.Logger, out io.Writer) error {
	provider, err := newProvider(cfg, log)
	if err != nil {
		return err
	}
	var (
		output = cfg.OutputPath()
		opts   = []strscreen.ScreenOpt{
			strscreen.KeyLength(cfg.KeyLen),
			strscreen.WithLogger(log),
		}
	)

	if cfg.Format == config.FormatBolt {
		db, err := emit.OpenBolt(output)
		if err != nil {
			return err
		}
		if err := strscreen.Screen(provider, db, opts...); err != nil {
			_ = db.Close()
			return err
		}
		log.Info().Str("output", output).Msg("wrote screened strings")
		return db.Close()
	}

	artifact, err := newArtifact(cfg)
	if err != nil {
		return err
	}
	if err := strscreen.Screen(provider, artifact, opts...); err != nil {
		return err
	}
	if cfg.Check {
		return check(output, artifact, out)
	}
	if err := emit.Save(output, artifact); err != nil {
		return err
	}
	log.Info().Str("output", output).Msg("wrote screened strings")
	return nil
}

func newProvider(cfg *config.Config, log zerolog.Logger) (defs.Files, error) {
	files := defs.Files(cfg.Inputs)
	if len(cfg.Discover) > 0 {
		found, err := defs.Discover(cfg.Discover)
		if err != nil {
			return nil, fmt.Errorf("failed to discover definition files: %w", err)
		}
		log.Debug().Strs("files", found).Str("root", cfg.Discover).Msg("discovered definition files")
		files = append(files, found...)
	}
	if len(files) == 0 {
		return nil, errors.New("no definition files found")
	}
	return files, nil
}

func newArtifact(cfg *config.Config) (emit.Artifact, error) {
	switch cfg.Format {
	case config.FormatResource:
		return emit.NewResource(), nil
	default:
		gen, err := emit.NewGoSource(
			emit.PackageName(cfg.Package),
			emit.ExposeFunctions(cfg.Exposed),
		)
		if err != nil {
			return nil, err
		}
		return gen, nil
	}
}

// check compares the rendered artifact with the existing output file, writing a diff to out if they differ.
func check(path string, artifact emit.Artifact, out io.Writer) error {
	want, err := emit.Render(artifact)
	if err != nil {
		return err
	}
	have, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if bytes.Equal(have, want) {
		return nil
	}
	if _, err := io.WriteString(out, unifiedDiff(path, have, want)); err != nil {
		return err
	}
	return fmt.Errorf("%w: %s", errOutOfDate, path)
}

func unifiedDiff(path string, have, want []byte) string {
	if !utf8.Valid(have) || !utf8.Valid(want) {
		return fmt.Sprintf("Binary file %s has changed\n", path)
	}
	dmp := diffmatchpatch.New()

	// Line-mode diff for readable output.
	haveStr, wantStr := string(have), string(want)
	a, b, lineArray := dmp.DiffLinesToChars(haveStr, wantStr)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var result strings.Builder
	result.WriteString(fmt.Sprintf("--- a/%s\n", path))
	result.WriteString(fmt.Sprintf("+++ b/%s\n", path))
	result.WriteString(dmp.PatchToText(dmp.PatchMake(haveStr, diffs)))
	return result.String()
}
