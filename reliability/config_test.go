package reliability_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netrel/builder"
	"github.com/katalvlaran/netrel/reliability"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := reliability.LoadConfig(strings.NewReader(`
max_paths: 3
max_terms: 100
workers: 2
keep_terms: true
`))
	require.NoError(t, err)
	assert.Equal(t, reliability.Config{MaxPaths: 3, MaxTerms: 100, Workers: 2, KeepTerms: true}, cfg)

	g := mustBuild(t, undirected, nil, builder.Bridge())
	_, err = reliability.Compute(g, "S", "T", cfg.Options()...)
	assert.ErrorIs(t, err, reliability.ErrPathLimit, "bridge has 4 paths > max_paths 3")

	cfg.MaxPaths = 0
	res, err := reliability.Compute(g, "S", "T", cfg.Options()...)
	require.NoError(t, err)
	assert.Len(t, res.Terms, res.Stats.Terms)
}

func TestLoadConfig_EmptyAndInvalid(t *testing.T) {
	cfg, err := reliability.LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, reliability.Config{}, cfg)
	assert.Len(t, cfg.Options(), 3, "no workers option when unset")

	_, err = reliability.LoadConfig(strings.NewReader("max_paths: -1\n"))
	assert.ErrorIs(t, err, reliability.ErrBadConfig)

	_, err = reliability.LoadConfig(strings.NewReader("max_path: 10\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = reliability.LoadConfig(strings.NewReader("workers: [1\n"))
	assert.Error(t, err)
}
