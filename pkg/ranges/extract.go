package ranges

import (
	"strings"
	"unicode/utf8"
)

// ExtractBytes selects byte spans from a line. Spans are clipped to the
// line length, concatenated in interval order, and decoded best-effort:
// any byte sequence that is not valid UTF-8 becomes U+FFFD. A byte range
// that splits a multi-byte character therefore produces a replacement
// marker in the output; that mirrors what cut -b does to UTF-8 text and is
// intentional.
func ExtractBytes(line string, positions PositionList) string {
	var buf []byte
	for _, iv := range positions {
		start, end := iv.clamp(len(line))
		buf = append(buf, line[start:end]...)
	}
	return lossyString(buf)
}

// ExtractChars selects character spans from a line, counting by rune
// rather than byte. Spans past the end of the line are clipped silently.
func ExtractChars(line string, positions PositionList) string {
	runes := []rune(line)
	var sb strings.Builder
	for _, iv := range positions {
		start, end := iv.clamp(len(runes))
		sb.WriteString(string(runes[start:end]))
	}
	return sb.String()
}

// ExtractFields selects fields from a parsed record by zero-based index.
// Fields covered by several intervals are emitted once per covering
// interval; within one interval the record's own order is kept.
func ExtractFields(record []string, positions PositionList) []string {
	var out []string
	for _, iv := range positions {
		start, end := iv.clamp(len(record))
		out = append(out, record[start:end]...)
	}
	return out
}

// lossyString decodes b as UTF-8, substituting U+FFFD for each invalid
// byte so that a sliced multi-byte character cannot fail the whole line.
func lossyString(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	var sb strings.Builder
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size == 1 {
			sb.WriteRune(utf8.RuneError)
		} else {
			sb.Write(b[:size])
		}
		b = b[size:]
	}
	return sb.String()
}
