package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/unixish/unixish/pkg/textio"
)

var (
	wcLines bool
	wcWords bool
	wcBytes bool
	wcChars bool
)

var wcCmd = &cobra.Command{
	Use:   "wc [FILE...]",
	Short: "Count lines, words, and bytes in files",
	RunE:  runWc,
}

func init() {
	wcCmd.Flags().BoolVarP(&wcLines, "lines", "l", false, "Show line count")
	wcCmd.Flags().BoolVarP(&wcWords, "words", "w", false, "Show word count")
	wcCmd.Flags().BoolVarP(&wcBytes, "bytes", "c", false, "Show byte count")
	wcCmd.Flags().BoolVarP(&wcChars, "chars", "m", false, "Show character count")
	wcCmd.MarkFlagsMutuallyExclusive("bytes", "chars")
}

// fileInfo holds the counts for one input.
type fileInfo struct {
	lines int
	words int
	bytes int
	chars int
}

func (fi *fileInfo) add(other fileInfo) {
	fi.lines += other.lines
	fi.words += other.words
	fi.bytes += other.bytes
	fi.chars += other.chars
}

func runWc(cmd *cobra.Command, args []string) error {
	showLines, showWords, showBytes, showChars := wcLines, wcWords, wcBytes, wcChars
	if !showLines && !showWords && !showBytes && !showChars {
		showLines, showWords, showBytes = true, true, true
	}

	out := cmd.OutOrStdout()
	files := filesOrStdin(args)

	printInfo := func(info fileInfo, name string) {
		var sb strings.Builder
		if showLines {
			fmt.Fprintf(&sb, "%8d", info.lines)
		}
		if showWords {
			fmt.Fprintf(&sb, "%8d", info.words)
		}
		if showBytes {
			fmt.Fprintf(&sb, "%8d", info.bytes)
		}
		if showChars {
			fmt.Fprintf(&sb, "%8d", info.chars)
		}
		fmt.Fprintf(out, "%s %s\n", sb.String(), name)
	}

	var total fileInfo
	for _, filename := range files {
		r, err := textio.Open(filename)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Failed to open %s: %v\n", filename, err)
			continue
		}

		info, err := count(r)
		r.Close()
		if err != nil {
			return err
		}
		printInfo(info, filename)
		total.add(info)
	}

	if len(files) > 1 {
		printInfo(total, "total")
	}
	return nil
}

// count reads r once and tallies every metric; which ones get printed is
// decided later.
func count(r io.Reader) (fileInfo, error) {
	var info fileInfo
	br := bufio.NewReader(r)

	for {
		chunk, err := br.ReadString('\n')
		if chunk != "" {
			info.bytes += len(chunk)
			info.chars += utf8.RuneCountInString(chunk)
			info.words += len(strings.Fields(chunk))
			info.lines += strings.Count(chunk, "\n")
		}
		if err == io.EOF {
			return info, nil
		}
		if err != nil {
			return info, err
		}
	}
}
