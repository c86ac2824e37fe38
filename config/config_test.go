package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/2x3systems/colortrade/colortrade"
	"github.com/2x3systems/colortrade/libct/metrics"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "elementary", cfg.Rule)
	assert.Equal(t, "hash", cfg.Enum.Dedupe)
	assert.Equal(t, 1, cfg.Enum.Workers)
	assert.Equal(t, "text", cfg.Output.Format)

	wantBuild := runtime.NumCPU()
	if wantBuild > colortrade.MaxWorkers {
		wantBuild = colortrade.MaxWorkers
	}
	assert.Equal(t, wantBuild, cfg.Build.Workers)
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
rule: total
enum:
  workers: 4
  dedupe: lsm
build:
  workers: 2
  sort_by_key: true
  annotate: true
stats:
  distances: true
output:
  format: json
  metrics_out: /tmp/colortrade.prom
`))
	require.NoError(t, err)
	assert.Equal(t, "total", cfg.Rule)
	assert.Equal(t, 4, cfg.Enum.Workers)
	assert.True(t, cfg.Build.SortByKey)
	assert.Equal(t, "/tmp/colortrade.prom", cfg.Output.MetricsOut)

	reg := metrics.NewRegistry()
	opts, err := cfg.RunOpts(reg)
	require.NoError(t, err)
	assert.Equal(t, colortrade.EnumOpts{Workers: 4, Dedupe: colortrade.DedupeLSM}, opts.Enum)
	assert.Equal(t, colortrade.BuildOpts{Rule: colortrade.TradeTotal, Workers: 2, SortByKey: true, Annotate: true}, opts.Build)
	assert.True(t, opts.Stats.Distances)
	assert.Same(t, reg, opts.Metrics)
}

func TestParseRejects(t *testing.T) {
	bad := map[string]string{
		"unknown rule":   "rule: kempe\n",
		"unknown dedupe": "enum: {dedupe: btree}\n",
		"negative":       "enum: {workers: -1}\n",
		"too many":       "build: {workers: 100000}\n",
		"unknown format": "output: {format: xml}\n",
		"not a mapping":  "- rule\n",
		"wrong type":     "enum: {workers: many}\n",
	}
	for name, doc := range bad {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.True(t, errors.Is(err, colortrade.ErrBadConfig), "got %v", err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colortrade.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rule: connected\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "connected", cfg.Rule)
	assert.Equal(t, "hash", cfg.Enum.Dedupe)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
