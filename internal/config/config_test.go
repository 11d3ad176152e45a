package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ppinet/edgelist"
	"github.com/katalvlaran/ppinet/internal/config"
)

const sample = `
sources:
  - name: string
    paths: ["data/string/*.tsv"]
    preset: stringdb
  - name: custom
    paths: ["data/custom.csv"]
    source_column: a
    target_column: b
    delimiter: ","
seeds: data/seeds.txt
threshold: 3
augment:
  paralogs: data/paralogs.tsv
  orthologs: data/gene_orthologs.tsv
  tax_ids: data/taxids.txt
store:
  kind: badger
  path: db
log:
  format: json
`

func TestParse(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	cfg, err := config.Parse(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Len(t, cfg.Sources, 2)
	assert.Equal(t, 3, cfg.Threshold)
	assert.Equal(t, 1, cfg.AugmentThreshold)
	assert.Equal(t, "badger", cfg.Store.Kind)
	assert.Equal(t, 5, cfg.Paths.MaxNodes)
	assert.Equal(t, 4, cfg.Ego.Radius)
	assert.Equal(t, 4, cfg.Ego.Workers)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "out", cfg.OutputDir)

	cols, err := cfg.Sources[0].Columns()
	require.NoError(t, err)
	assert.Equal(t, edgelist.StringDB, cols)
	assert.Equal(t, '\t', cfg.Sources[0].Delim())

	cols, err = cfg.Sources[1].Columns()
	require.NoError(t, err)
	assert.Equal(t, edgelist.Columns{Source: "a", Target: "b"}, cols)
	assert.Equal(t, ',', cfg.Sources[1].Delim())
}

func TestParse_EnvOverride(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "DEBUG")
	cfg, err := config.Parse(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParse_Invalid(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	base := "sources:\n  - name: s\n    paths: [x.tsv]\n    preset: stringdb\nseeds: s.txt\n"
	cases := map[string]string{
		"no sources":      "seeds: s.txt\n",
		"no seeds":        "sources:\n  - name: s\n    paths: [x.tsv]\n    preset: stringdb\n",
		"negative":        base + "threshold: -1\n",
		"max nodes":       base + "paths:\n  max_nodes: 10\n",
		"store kind":      base + "store:\n  kind: s3\n  path: x\n",
		"log level":       base + "log:\n  level: loud\n",
		"taxids missing":  base + "augment:\n  orthologs: o.tsv\n",
		"preset and cols": "sources:\n  - name: s\n    paths: [x]\n    preset: stringdb\n    source_column: a\nseeds: s.txt\n",
		"one column":      "sources:\n  - name: s\n    paths: [x]\n    source_column: a\nseeds: s.txt\n",
		"duplicate names": "sources:\n  - {name: s, paths: [x], preset: stringdb}\n  - {name: s, paths: [y], preset: paralogs}\nseeds: s.txt\n",
		"bad preset":      "sources:\n  - {name: s, paths: [x], preset: biogrid}\nseeds: s.txt\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse(strings.NewReader(doc))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestParse_UnknownPreset(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	_, err := config.Parse(strings.NewReader("sources:\n  - {name: s, paths: [x], preset: biogrid}\nseeds: s.txt\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.ErrorIs(t, err, edgelist.ErrUnknownPreset)
	assert.Contains(t, err.Error(), "stringdb-names")
}

func TestParse_UnknownField(t *testing.T) {
	_, err := config.Parse(strings.NewReader("sources: []\nthreshhold: 2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "threshhold")
}

func TestLoad(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	path := filepath.Join(t.TempDir(), "ppinet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "data/seeds.txt", cfg.Seeds)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
