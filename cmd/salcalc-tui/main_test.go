package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "salcalc-tui", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("rules"))
}

func TestRootCommand_MissingRulesFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--rules", filepath.Join(t.TempDir(), "missing.yaml")})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rules file not found")
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"rules.yaml"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	assert.Error(t, cmd.Execute())
}
