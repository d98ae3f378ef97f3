package alias_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/typealias/alias"
)

const sampleConfig = `
aliases:
  - abstract: Logger
    alias: log
  - abstract: log
    alias: l
  - abstract: DB
    alias: database
`

//
// -----------------------------------------------------------------------------
// DecodeConfig
// -----------------------------------------------------------------------------

func TestDecodeConfig_Valid(t *testing.T) {
	t.Parallel()

	cfg, err := alias.DecodeConfig(strings.NewReader(sampleConfig))
	require.NoError(t, err)
	assert.Equal(t, []alias.Entry{
		{Abstract: "Logger", Alias: "log"},
		{Abstract: "log", Alias: "l"},
		{Abstract: "DB", Alias: "database"},
	}, cfg.Aliases)
}

func TestDecodeConfig_Empty(t *testing.T) {
	t.Parallel()

	cfg, err := alias.DecodeConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, cfg.Aliases)
}

func TestDecodeConfig_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		wantSub string
	}{
		{name: "malformed yaml", in: "aliases: [", wantSub: "invalid config"},
		{name: "unknown field", in: "aliases:\n  - abstract: A\n    alias: B\n    target: C\n", wantSub: "target"},
		{name: "missing alias", in: "aliases:\n  - abstract: A\n", wantSub: "aliases[0] missing alias"},
		{name: "missing both", in: "aliases:\n  - abstract: A\n    alias: B\n  - abstract: \"\"\n", wantSub: "aliases[1] missing abstract, alias"},
		{name: "second document", in: sampleConfig + "---\naliases:\n  - abstract: X\n    alias: Y\n", wantSub: "more than one YAML document"},
		{name: "malformed second document", in: sampleConfig + "---\naliases: [\n", wantSub: "invalid config"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := alias.DecodeConfig(strings.NewReader(tc.in))
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, alias.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tc.wantSub)
		})
	}
}

// TestDecodeConfig_WhitespaceNamesKept verifies names are opaque: only empty names are rejected.
func TestDecodeConfig_WhitespaceNamesKept(t *testing.T) {
	t.Parallel()

	cfg, err := alias.DecodeConfig(strings.NewReader("aliases:\n  - abstract: \" \"\n    alias: \" x \"\n"))
	require.NoError(t, err)
	assert.Equal(t, []alias.Entry{{Abstract: " ", Alias: " x "}}, cfg.Aliases)

	reg := alias.New()
	require.NoError(t, cfg.Apply(reg))
	got, err := reg.Resolve(" x ")
	require.NoError(t, err)
	assert.Equal(t, " ", got)
}

//
// -----------------------------------------------------------------------------
// LoadConfig / Apply
// -----------------------------------------------------------------------------

func TestLoadConfig_FileAndApply(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "aliases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	cfg, err := alias.LoadConfig(path)
	require.NoError(t, err)

	reg := alias.New()
	require.NoError(t, cfg.Apply(reg))

	got, err := reg.Resolve("l")
	require.NoError(t, err)
	assert.Equal(t, "Logger", got)
	assert.Equal(t, []string{"database"}, reg.AllAliases("DB"))
}

func TestLoadConfig_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := alias.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadConfig_InvalidFileNamesPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("aliases: ["), 0o600))

	_, err := alias.LoadConfig(path)
	require.ErrorIs(t, err, alias.ErrInvalidConfig)
	assert.Contains(t, err.Error(), path)
}

func TestApply_StopsAtSelfAlias(t *testing.T) {
	t.Parallel()

	cfg := &alias.Config{Aliases: []alias.Entry{
		{Abstract: "A", Alias: "B"},
		{Abstract: "C", Alias: "C"},
		{Abstract: "D", Alias: "E"},
	}}

	reg := alias.NewSync()
	err := cfg.Apply(reg)
	require.Error(t, err)

	var inv alias.InvalidOperationError
	require.True(t, errors.As(err, &inv))
	assert.Equal(t, "C", inv.Name)
	assert.Contains(t, err.Error(), "aliases[1]")
	assert.True(t, reg.IsAlias("B"))
	assert.False(t, reg.IsAlias("E"))
}
