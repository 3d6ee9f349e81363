package cmd

import (
	"testing"

	"github.com/gnames/chemdb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFlags(t *testing.T) {
	cmd := getPopulateCmd()
	require.NoError(t, cmd.ParseFlags([]string{
		"-s", "dsstox.tsv",
		"--catalog", "pubchem.tsv",
		"-n", "500",
		"--journal=false",
	}))

	c := config.New()
	c.Sources.Registry = "from-config.xlsx"
	require.NoError(t, applyFlags(cmd, c))

	assert.Equal(t, "dsstox.tsv", c.Sources.Structures)
	assert.Equal(t, "from-config.xlsx", c.Sources.Registry,
		"flags that are not given keep config values")
	assert.Equal(t, "pubchem.tsv", c.Sources.Catalog)
	assert.Equal(t, 500, c.Import.ChunkSize)
	assert.False(t, c.WithJournal())
}

func TestApplyFlagsNone(t *testing.T) {
	cmd := getOptimizeCmd()
	require.NoError(t, cmd.ParseFlags(nil))

	c := config.New()
	require.NoError(t, applyFlags(cmd, c))
	assert.Equal(t, config.New(), c)
}
