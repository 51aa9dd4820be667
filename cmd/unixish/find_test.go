package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.csv"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "c.txt"), nil, 0644))
	return dir
}

func runFindLines(t *testing.T, args []string) []string {
	t.Helper()
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	require.NoError(t, runFind(cmd, args))
	out := strings.TrimRight(buf.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestRunFindAll(t *testing.T) {
	findNames = nil
	findTypes = nil

	dir := findFixture(t)
	lines := runFindLines(t, []string{dir})
	assert.ElementsMatch(t, []string{
		dir,
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.csv"),
		filepath.Join(dir, "sub"),
		filepath.Join(dir, "sub", "c.txt"),
	}, lines)
}

func TestRunFindName(t *testing.T) {
	findNames = []string{`\.txt$`}
	findTypes = nil
	defer func() { findNames = nil }()

	dir := findFixture(t)
	lines := runFindLines(t, []string{dir})
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "sub", "c.txt"),
	}, lines)
}

func TestRunFindType(t *testing.T) {
	findNames = nil
	findTypes = []string{"d"}
	defer func() { findTypes = nil }()

	dir := findFixture(t)
	lines := runFindLines(t, []string{dir})
	assert.ElementsMatch(t, []string{dir, filepath.Join(dir, "sub")}, lines)
}

func TestRunFindBadName(t *testing.T) {
	findNames = []string{"*invalid("}
	findTypes = nil
	defer func() { findNames = nil }()

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	err := runFind(cmd, []string{"."})
	require.Error(t, err)
	assert.EqualError(t, err, `Invalid --name "*invalid("`)
}

func TestRunFindBadType(t *testing.T) {
	findNames = nil
	findTypes = []string{"x"}
	defer func() { findTypes = nil }()

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	err := runFind(cmd, []string{"."})
	require.Error(t, err)
	assert.EqualError(t, err, `Invalid --type "x": must be f, d, or l`)
}

func TestRunFindBadPathContinues(t *testing.T) {
	findNames = nil
	findTypes = nil

	var buf, errBuf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetErr(&errBuf)

	require.NoError(t, runFind(cmd, []string{filepath.Join(t.TempDir(), "missing")}))
	assert.Empty(t, buf.String())
	assert.NotEmpty(t, errBuf.String())
}
