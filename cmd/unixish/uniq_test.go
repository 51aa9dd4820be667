package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunUniq(t *testing.T) {
	uniqCount = false

	path := writeTempFile(t, "a\na\nb\nb\nb\na\n")

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	// Only adjacent repeats collapse, so the trailing "a" survives.
	require.NoError(t, runUniq(cmd, []string{path}))
	assert.Equal(t, "a\nb\na\n", buf.String())
}

func TestRunUniqCount(t *testing.T) {
	uniqCount = true
	defer func() { uniqCount = false }()

	path := writeTempFile(t, "a\na\nb\nb\nb\na\n")

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runUniq(cmd, []string{path}))
	assert.Equal(t, "   2 a\n   3 b\n   1 a\n", buf.String())
}

func TestRunUniqEmpty(t *testing.T) {
	uniqCount = false

	path := writeTempFile(t, "")

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runUniq(cmd, []string{path}))
	assert.Empty(t, buf.String())
}

func TestRunUniqOutFile(t *testing.T) {
	uniqCount = false

	in := writeTempFile(t, "x\nx\ny\n")
	outPath := filepath.Join(t.TempDir(), "out.txt")

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runUniq(cmd, []string{in, outPath}))
	assert.Empty(t, buf.String())

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "x\ny\n", string(content))
}

func TestRunUniqMissingFile(t *testing.T) {
	uniqCount = false

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	err := runUniq(cmd, []string{filepath.Join(t.TempDir(), "missing")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}
