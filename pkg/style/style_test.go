package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDisabled(t *testing.T) {
	s := New(false)
	// Disabled formatters must pass text through untouched.
	assert.Equal(t, "match", s.Match.Sprint("match"))
	assert.Equal(t, "file", s.File.Sprint("file"))
	assert.Equal(t, "7", s.LineNum.Sprint("7"))
}

func TestEnabledModes(t *testing.T) {
	assert.True(t, Enabled("always"))
	assert.False(t, Enabled("never"))
	// Auto under `go test` has no terminal on stdout.
	assert.False(t, Enabled("auto"))
}
