package unixish

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRanges(t *testing.T) {
	positions, err := ParseRanges("1,7,3-5")
	require.NoError(t, err)
	assert.Equal(t, PositionList{{Start: 0, End: 1}, {Start: 6, End: 7}, {Start: 2, End: 5}}, positions)

	_, err = ParseRanges("0")
	require.Error(t, err)
	assert.EqualError(t, err, `illegal list value: "0"`)
}

func TestExtractChars(t *testing.T) {
	positions, err := ParseRanges("1,3")
	require.NoError(t, err)
	assert.Equal(t, "ác", ExtractChars("ábc", positions))
}

func TestExtractBytes(t *testing.T) {
	positions, err := ParseRanges("1-2")
	require.NoError(t, err)
	assert.Equal(t, "á", ExtractBytes("ábc", positions))
}

func TestExtractFields(t *testing.T) {
	positions, err := ParseRanges("3,1")
	require.NoError(t, err)
	record := []string{"Captain", "Sham", "12345"}
	assert.Equal(t, []string{"12345", "Captain"}, ExtractFields(record, positions))
}
