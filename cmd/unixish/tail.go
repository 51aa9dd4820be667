package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	tailLines string
	tailBytes string
	tailQuiet bool
)

var tailCmd = &cobra.Command{
	Use:   "tail FILE...",
	Short: "Print the last lines (or bytes) of files",
	Long: `Print the last lines of each file. Counts follow GNU tail: "5" and "-5"
both mean the last five, "+5" means everything from the fifth onward, and
"+0" means the whole file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTail,
}

func init() {
	tailCmd.Flags().StringVarP(&tailLines, "lines", "n", "10", "Number of lines")
	tailCmd.Flags().StringVarP(&tailBytes, "bytes", "c", "", "Number of bytes")
	tailCmd.Flags().BoolVarP(&tailQuiet, "quiet", "q", false, "Suppress headers")
	tailCmd.MarkFlagsMutuallyExclusive("lines", "bytes")
}

// takeValue is a parsed count: either the special "+0" (take everything)
// or a signed number whose sign encodes head-relative (+) versus
// tail-relative (bare or -) addressing.
type takeValue struct {
	plusZero bool
	num      int64
}

var takeNumRe = regexp.MustCompile(`^([+-])?(\d+)$`)

// parseTakeValue parses a tail-style count. A bare number is negative
// (count from the end), matching tail's historical reading of "-n 3".
func parseTakeValue(val string) (takeValue, error) {
	m := takeNumRe.FindStringSubmatch(val)
	if m == nil {
		return takeValue{}, fmt.Errorf("%s", val)
	}
	sign := m[1]
	if sign == "" {
		sign = "-"
	}
	num, err := strconv.ParseInt(sign+m[2], 10, 64)
	if err != nil {
		return takeValue{}, fmt.Errorf("%s", val)
	}
	if sign == "+" && num == 0 {
		return takeValue{plusZero: true}, nil
	}
	return takeValue{num: num}, nil
}

// startIndex converts a takeValue into the 0-based offset to start
// printing from, or ok=false when nothing should be printed.
func startIndex(tv takeValue, total int64) (int64, bool) {
	if total <= 0 {
		return 0, false
	}
	if tv.plusZero {
		return 0, true
	}
	switch {
	case tv.num == 0, tv.num > total:
		return 0, false
	case tv.num > 0:
		return tv.num - 1, true
	case total+tv.num < 0:
		return 0, true
	default:
		return total + tv.num, true
	}
}

func runTail(cmd *cobra.Command, args []string) error {
	lines, err := parseTakeValue(tailLines)
	if err != nil {
		return fmt.Errorf("illegal line count -- %s", err)
	}

	byBytes := cmd.Flags().Changed("bytes")
	var bytes takeValue
	if byBytes {
		if bytes, err = parseTakeValue(tailBytes); err != nil {
			return fmt.Errorf("illegal byte count -- %s", err)
		}
	}

	out := cmd.OutOrStdout()
	multiple := len(args) > 1

	for fileNum, filename := range args {
		f, err := os.Open(filename)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", filename, err)
			continue
		}

		if !tailQuiet && multiple {
			if fileNum > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "==> %s <==\n", filename)
		}

		totalLines, totalBytes, err := countLinesBytes(filename)
		if err == nil {
			if byBytes {
				err = tailFileBytes(out, f, bytes, totalBytes)
			} else {
				err = tailFileLines(out, f, lines, totalLines)
			}
		}
		f.Close()
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", filename, err)
		}
	}
	return nil
}

// countLinesBytes sizes the file up front; tail needs the totals before it
// can know where to start.
func countLinesBytes(filename string) (lines, bytes int64, err error) {
	f, err := os.Open(filename)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	br := bufio.NewReader(f)
	for {
		chunk, err := br.ReadString('\n')
		bytes += int64(len(chunk))
		if chunk != "" {
			lines++
		}
		if err == io.EOF {
			return lines, bytes, nil
		}
		if err != nil {
			return lines, bytes, err
		}
	}
}

func tailFileLines(out io.Writer, r io.Reader, tv takeValue, totalLines int64) error {
	start, ok := startIndex(tv, totalLines)
	if !ok {
		return nil
	}

	br := bufio.NewReader(r)
	var lineNum int64
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if lineNum >= start {
				if _, werr := io.WriteString(out, line); werr != nil {
					return werr
				}
			}
			lineNum++
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func tailFileBytes(out io.Writer, f *os.File, tv takeValue, totalBytes int64) error {
	start, ok := startIndex(tv, totalBytes)
	if !ok {
		return nil
	}
	if _, err := f.Seek(start, io.SeekStart); err != nil {
		return err
	}
	_, err := io.Copy(out, f)
	return err
}
