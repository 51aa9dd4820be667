// Package unixish re-exports the range engine that powers the cut
// subcommand, so the parsing and extraction logic can be used as a library
// without reaching into subpackages.
//
// # Basic Usage
//
// Parse a range specification once, then apply it to many lines:
//
//	positions, err := unixish.ParseRanges("1,7,3-5")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, line := range lines {
//	    fmt.Println(unixish.ExtractChars(line, positions))
//	}
//
// Intervals keep the order they were written in, so "3,1" swaps columns
// and "1,1" duplicates one.
package unixish

import "github.com/unixish/unixish/pkg/ranges"

// Re-export the core types so callers can import just
// "github.com/unixish/unixish" for the range engine.
type (
	// Interval is a half-open, 0-indexed [Start, End) position span.
	Interval = ranges.Interval

	// PositionList is an ordered, possibly overlapping list of intervals.
	PositionList = ranges.PositionList

	// Extraction pairs a position list with the unit it selects.
	Extraction = ranges.Extraction

	// Mode selects bytes, characters, or fields.
	Mode = ranges.Mode
)

// Extraction modes.
const (
	Bytes  = ranges.Bytes
	Chars  = ranges.Chars
	Fields = ranges.Fields
)

// ParseRanges parses a range specification such as "1,7,3-5".
func ParseRanges(spec string) (PositionList, error) {
	return ranges.Parse(spec)
}

// ExtractBytes selects byte spans from a line, decoding the result
// best-effort.
func ExtractBytes(line string, positions PositionList) string {
	return ranges.ExtractBytes(line, positions)
}

// ExtractChars selects character spans from a line.
func ExtractChars(line string, positions PositionList) string {
	return ranges.ExtractChars(line, positions)
}

// ExtractFields selects fields from a parsed record.
func ExtractFields(record []string, positions PositionList) []string {
	return ranges.ExtractFields(record, positions)
}
