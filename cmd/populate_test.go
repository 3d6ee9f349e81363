package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetPopulateCmd_Exists verifies getPopulateCmd returns
// a valid command.
func TestGetPopulateCmd_Exists(t *testing.T) {
	cmd := getPopulateCmd()
	require.NotNil(t, cmd, "Populate command should exist")
	assert.Equal(t, "populate", cmd.Use)
	assert.Contains(t, cmd.Short, "structures")
	assert.Contains(t, cmd.Long, "one-shot")
	assert.Contains(t, cmd.Aliases, "add")
	assert.NotNil(t, cmd.RunE)
}

// TestGetPopulateCmd_Flags verifies source and import flags.
func TestGetPopulateCmd_Flags(t *testing.T) {
	cmd := getPopulateCmd()

	tests := []struct {
		name, short, def string
	}{
		{"structures", "s", ""},
		{"registry", "r", ""},
		{"catalog", "c", ""},
		{"chunk-size", "n", "0"},
		{"journal", "", "true"},
	}

	for _, v := range tests {
		flag := cmd.Flags().Lookup(v.name)
		require.NotNil(t, flag, v.name)
		assert.Equal(t, v.short, flag.Shorthand, v.name)
		assert.Equal(t, v.def, flag.DefValue, v.name)
	}
}

// TestGetPopulateCmd_HelpText verifies help text content.
func TestGetPopulateCmd_HelpText(t *testing.T) {
	cmd := getPopulateCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	require.NoError(t, err)

	helpText := buf.String()
	assert.Contains(t, helpText, "--structures")
	assert.Contains(t, helpText, "--chunk-size")
	assert.Contains(t, helpText, "chemdb create --force")
}
