package main

import (
	"fmt"
	"strings"

	"github.com/cloudflare/ahocorasick"
	"github.com/dlclark/regexp2"
	"github.com/spf13/cobra"

	"github.com/unixish/unixish/pkg/style"
	"github.com/unixish/unixish/pkg/textio"
)

var (
	grepCount       bool
	grepInsensitive bool
	grepInvert      bool
	grepRecursive   bool
	grepFixed       bool
	grepLineNum     bool
)

var grepCmd = &cobra.Command{
	Use:   "grep PATTERN [FILE...]",
	Short: "Print lines matching a pattern",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGrep,
}

func init() {
	grepCmd.Flags().BoolVarP(&grepCount, "count", "c", false, "Count occurrences")
	grepCmd.Flags().BoolVarP(&grepInsensitive, "insensitive", "i", false, "Case-insensitive matching")
	grepCmd.Flags().BoolVarP(&grepInvert, "invert-match", "v", false, "Select non-matching lines")
	grepCmd.Flags().BoolVarP(&grepRecursive, "recursive", "r", false, "Search directories recursively")
	grepCmd.Flags().BoolVarP(&grepFixed, "fixed-strings", "F", false, "Newline-separated literal strings instead of a regex")
	grepCmd.Flags().BoolVarP(&grepLineNum, "line-number", "n", false, "Show line numbers")
}

// lineMatcher decides whether a line matches and can mark the matching
// portions for colored output.
type lineMatcher interface {
	Match(line string) bool
	Highlight(line string, st *style.Set) string
}

// regexMatcher matches with regexp2, compiled in RE2 mode first and
// falling back to Perl-compatible mode for patterns RE2 rejects.
type regexMatcher struct {
	re *regexp2.Regexp
}

func newRegexMatcher(pattern string, insensitive bool) (*regexMatcher, error) {
	opts := regexp2.RegexOptions(regexp2.RE2)
	if insensitive {
		opts |= regexp2.IgnoreCase
	}
	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		re, err = regexp2.Compile(pattern, opts&^regexp2.RE2)
	}
	if err != nil {
		return nil, fmt.Errorf("Invalid pattern %q", pattern)
	}
	return &regexMatcher{re: re}, nil
}

func (m *regexMatcher) Match(line string) bool {
	ok, _ := m.re.MatchString(line)
	return ok
}

func (m *regexMatcher) Highlight(line string, st *style.Set) string {
	marked, err := m.re.ReplaceFunc(line, func(match regexp2.Match) string {
		return st.Match.Sprint(match.String())
	}, -1, -1)
	if err != nil {
		return line
	}
	return marked
}

// fixedMatcher matches any of a set of literal strings with an
// Aho-Corasick automaton, the same way the prefilter stage of a rule
// scanner screens content for keywords.
type fixedMatcher struct {
	patterns    []string
	automaton   *ahocorasick.Matcher
	insensitive bool
}

func newFixedMatcher(pattern string, insensitive bool) *fixedMatcher {
	patterns := strings.Split(pattern, "\n")
	if insensitive {
		for i, p := range patterns {
			patterns[i] = strings.ToLower(p)
		}
	}
	return &fixedMatcher{
		patterns:    patterns,
		automaton:   ahocorasick.NewStringMatcher(patterns),
		insensitive: insensitive,
	}
}

func (m *fixedMatcher) Match(line string) bool {
	if m.insensitive {
		line = strings.ToLower(line)
	}
	return len(m.automaton.Match([]byte(line))) > 0
}

// Highlight for fixed strings marks every literal occurrence. The
// automaton only reports which patterns hit, so the actual positions come
// from a string scan of those patterns.
func (m *fixedMatcher) Highlight(line string, st *style.Set) string {
	haystack := line
	if m.insensitive {
		haystack = strings.ToLower(line)
	}
	for _, idx := range m.automaton.Match([]byte(haystack)) {
		pat := m.patterns[idx]
		var sb strings.Builder
		rest, restFolded := line, haystack
		for {
			i := strings.Index(restFolded, pat)
			if i < 0 {
				sb.WriteString(rest)
				break
			}
			sb.WriteString(rest[:i])
			sb.WriteString(st.Match.Sprint(rest[i : i+len(pat)]))
			rest = rest[i+len(pat):]
			restFolded = restFolded[i+len(pat):]
		}
		line = sb.String()
		if m.insensitive {
			haystack = strings.ToLower(line)
		} else {
			haystack = line
		}
	}
	return line
}

func runGrep(cmd *cobra.Command, args []string) error {
	var (
		matcher lineMatcher
		err     error
	)
	if grepFixed {
		matcher = newFixedMatcher(args[0], grepInsensitive)
	} else {
		matcher, err = newRegexMatcher(args[0], grepInsensitive)
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	st := newStyleSet()
	entries := textio.FindFiles(filesOrStdin(args[1:]), grepRecursive)
	multiple := len(entries) > 1

	for _, entry := range entries {
		if entry.Err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), entry.Err)
			continue
		}

		r, err := textio.Open(entry.Path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", entry.Path, err)
			continue
		}

		header := ""
		if multiple {
			header = st.File.Sprint(entry.Path) + ":"
		}

		matches := 0
		lineNum := 0
		err = textio.EachLine(r, func(line string) error {
			lineNum++
			if matcher.Match(line) == grepInvert {
				return nil
			}
			matches++
			if grepCount {
				return nil
			}
			prefix := header
			if grepLineNum {
				prefix += st.LineNum.Sprint(lineNum) + ":"
			}
			if !grepInvert {
				line = matcher.Highlight(line, st)
			}
			_, err := fmt.Fprintf(out, "%s%s\n", prefix, line)
			return err
		})
		r.Close()
		if err != nil {
			return err
		}

		if grepCount {
			if _, err := fmt.Fprintf(out, "%s%d\n", header, matches); err != nil {
				return err
			}
		}
	}
	return nil
}
