package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetCatFlags() {
	catNumber = false
	catNumberNonblank = false
}

func TestRunCat(t *testing.T) {
	resetCatFlags()

	path := writeTempFile(t, "one\n\ntwo\n")

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runCat(cmd, []string{path}))
	assert.Equal(t, "one\n\ntwo\n", buf.String())
}

func TestRunCatNumber(t *testing.T) {
	resetCatFlags()
	catNumber = true

	path := writeTempFile(t, "one\n\ntwo\n")

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runCat(cmd, []string{path}))
	assert.Equal(t, "     1\tone\n     2\t\n     3\ttwo\n", buf.String())
}

func TestRunCatNumberNonblank(t *testing.T) {
	resetCatFlags()
	catNumberNonblank = true

	path := writeTempFile(t, "one\n\ntwo\n")

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runCat(cmd, []string{path}))
	assert.Equal(t, "     1\tone\n\n     2\ttwo\n", buf.String())
}

func TestRunCatNumberResetsPerFile(t *testing.T) {
	resetCatFlags()
	catNumber = true

	a := writeTempFile(t, "one\ntwo\n")
	b := writeTempFile(t, "three\n")

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runCat(cmd, []string{a, b}))
	assert.Equal(t, "     1\tone\n     2\ttwo\n     1\tthree\n", buf.String())
}

func TestRunCatMissingFileContinues(t *testing.T) {
	resetCatFlags()

	path := writeTempFile(t, "one\n")

	var buf, errBuf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetErr(&errBuf)

	require.NoError(t, runCat(cmd, []string{"no-such-file", path}))
	assert.Contains(t, errBuf.String(), "no-such-file")
	assert.Equal(t, "one\n", buf.String())
}
