package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fortuneFixture = `You cannot achieve the impossible without attempting the absurd.
%
Assumption is the mother of all screw-ups.
%
Neckties strangle clear thinking.
`

func TestReadFortunes(t *testing.T) {
	path := writeTempFile(t, fortuneFixture)

	fortunes, err := readFortunes([]string{path})
	require.NoError(t, err)
	require.Len(t, fortunes, 3)
	assert.Equal(t, "You cannot achieve the impossible without attempting the absurd.", fortunes[0].text)
	assert.Equal(t, path, fortunes[0].source)
	assert.Equal(t, "Neckties strangle clear thinking.", fortunes[2].text)
}

func TestReadFortunesSkipsEmpty(t *testing.T) {
	path := writeTempFile(t, "%\nfirst\n%\n%\nsecond\n%\n")

	fortunes, err := readFortunes([]string{path})
	require.NoError(t, err)
	require.Len(t, fortunes, 2)
	assert.Equal(t, "first", fortunes[0].text)
	assert.Equal(t, "second", fortunes[1].text)
}

func TestReadFortunesMissingFile(t *testing.T) {
	_, err := readFortunes([]string{"no-such-file"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-file")
}

func TestPickFortune(t *testing.T) {
	_, ok := pickFortune(nil, 1, true)
	assert.False(t, ok)

	fortunes := []fortune{
		{text: "one"}, {text: "two"}, {text: "three"},
	}

	// A fixed seed picks the same slip every time.
	first, ok := pickFortune(fortunes, 42, true)
	require.True(t, ok)
	for i := 0; i < 10; i++ {
		again, ok := pickFortune(fortunes, 42, true)
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}

func TestRunFortunePattern(t *testing.T) {
	fortunePattern = "Neckties"
	fortuneInsensitive = false
	defer func() { fortunePattern = "" }()

	path := writeTempFile(t, fortuneFixture)

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runFortune(cmd, []string{path}))
	assert.Equal(t, "Neckties strangle clear thinking.\n", buf.String())
}

func TestRunFortunePatternInsensitive(t *testing.T) {
	fortunePattern = "neckties"
	fortuneInsensitive = true
	defer func() { fortunePattern = ""; fortuneInsensitive = false }()

	path := writeTempFile(t, fortuneFixture)

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runFortune(cmd, []string{path}))
	assert.Equal(t, "Neckties strangle clear thinking.\n", buf.String())
}

func TestRunFortunePatternNoMatch(t *testing.T) {
	fortunePattern = "nothing matches this"
	fortuneInsensitive = false
	defer func() { fortunePattern = "" }()

	path := writeTempFile(t, fortuneFixture)

	var buf, errBuf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetErr(&errBuf)

	require.NoError(t, runFortune(cmd, []string{path}))
	assert.Empty(t, buf.String())
	assert.Equal(t, "No fortunes found\n", errBuf.String())
}

func TestRunFortuneBadPattern(t *testing.T) {
	fortunePattern = "*invalid("
	defer func() { fortunePattern = "" }()

	path := writeTempFile(t, fortuneFixture)

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	err := runFortune(cmd, []string{path})
	require.Error(t, err)
	assert.EqualError(t, err, `Invalid --pattern "*invalid("`)
}

func TestRunFortuneMissingInput(t *testing.T) {
	fortunePattern = ""

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	err := runFortune(cmd, []string{"no-such-file"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-file")
}
