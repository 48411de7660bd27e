package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saylorsolutions/strscreen/internal/config"
	"github.com/saylorsolutions/strscreen/pkg/emit"
)

func setupDefs(t *testing.T) (dir string, input string) {
	t.Helper()
	dir = t.TempDir()
	input = filepath.Join(dir, "AppStrings.txt")
	require.NoError(t, os.WriteFile(input, []byte("ApiKey = secret123\n# comment\nA=B=C\n"), 0600))
	return dir, input
}

func TestRun_GoSource(t *testing.T) {
	dir, input := setupDefs(t)
	output := filepath.Join(dir, "app_strings.go")
	cfg := &config.Config{
		Package: "app",
		Format:  config.FormatGo,
		KeyLen:  config.DefaultKeyLen,
		Output:  output,
		Inputs:  []string{input},
	}
	require.NoError(t, run(cfg, zerolog.Nop(), new(bytes.Buffer)))

	src, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(src), "package app")
	assert.Contains(t, string(src), "func apiKey() (string, error)")
	assert.NotContains(t, string(src), "secret123")

	// Nothing changed, so the check should pass.
	var diff bytes.Buffer
	cfg.Check = true
	assert.NoError(t, run(cfg, zerolog.Nop(), &diff))
	assert.Empty(t, diff.String())

	require.NoError(t, os.WriteFile(input, []byte("ApiKey = changed\n"), 0600))
	err = run(cfg, zerolog.Nop(), &diff)
	assert.ErrorIs(t, err, errOutOfDate)
	assert.Contains(t, diff.String(), "--- a/"+output)
	assert.Contains(t, diff.String(), "@@")
	assert.Contains(t, diff.String(), "func a()")

	after, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, src, after, "check must not modify the output")
}

func TestRun_CheckMissingOutput(t *testing.T) {
	dir, input := setupDefs(t)
	var diff bytes.Buffer
	cfg := &config.Config{
		Package: "app",
		Format:  config.FormatGo,
		KeyLen:  config.DefaultKeyLen,
		Output:  filepath.Join(dir, "missing.go"),
		Inputs:  []string{input},
		Check:   true,
	}
	assert.ErrorIs(t, run(cfg, zerolog.Nop(), &diff), errOutOfDate)
	assert.Contains(t, diff.String(), "package app")
}

func TestRun_Resource(t *testing.T) {
	dir, input := setupDefs(t)
	output := filepath.Join(dir, "strings.bin")
	cfg := &config.Config{
		Format: config.FormatResource,
		KeyLen: 4,
		Output: output,
		Inputs: []string{input},
	}
	require.NoError(t, run(cfg, zerolog.Nop(), new(bytes.Buffer)))

	f, err := os.Open(output)
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()
	table, err := emit.LoadResource(f)
	require.NoError(t, err)
	val, err := table.Get("A")
	assert.NoError(t, err)
	assert.Equal(t, "B=C", val)

	s, ok := table.Lookup("ApiKey")
	assert.True(t, ok)
	assert.Len(t, s.Key, 4)
}

func TestRun_BoltDiscover(t *testing.T) {
	dir, _ := setupDefs(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "more"), 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "more", "Strings.txt"), []byte("Extra = value"), 0600))
	output := filepath.Join(t.TempDir(), "strings.db")
	cfg := &config.Config{
		Format:   config.FormatBolt,
		KeyLen:   config.DefaultKeyLen,
		Output:   output,
		Discover: dir,
	}
	require.NoError(t, run(cfg, zerolog.Nop(), new(bytes.Buffer)))

	table, err := emit.LoadBolt(output)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "ApiKey", "Extra"}, table.Names())
}

func TestRun_NoInputs(t *testing.T) {
	cfg := &config.Config{
		Format:   config.FormatGo,
		KeyLen:   config.DefaultKeyLen,
		Discover: t.TempDir(),
	}
	assert.Error(t, run(cfg, zerolog.Nop(), new(bytes.Buffer)))
}
