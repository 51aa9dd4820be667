package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/unixish/unixish/pkg/textio"
)

var (
	headLines int
	headBytes int
)

var headCmd = &cobra.Command{
	Use:   "head [FILE...]",
	Short: "Print the first lines (or bytes) of files",
	RunE:  runHead,
}

func init() {
	headCmd.Flags().IntVarP(&headLines, "lines", "n", 10, "Number of lines")
	headCmd.Flags().IntVarP(&headBytes, "bytes", "c", 0, "Number of bytes")
	headCmd.MarkFlagsMutuallyExclusive("lines", "bytes")
}

func runHead(cmd *cobra.Command, args []string) error {
	if headLines < 1 {
		return fmt.Errorf("illegal line count -- %d", headLines)
	}
	byBytes := cmd.Flags().Changed("bytes")
	if byBytes && headBytes < 1 {
		return fmt.Errorf("illegal byte count -- %d", headBytes)
	}

	out := cmd.OutOrStdout()
	files := filesOrStdin(args)
	multiple := len(files) > 1

	for fileNum, filename := range files {
		r, err := textio.Open(filename)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", filename, err)
			continue
		}

		if multiple {
			if fileNum > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "==> %s <==\n", filename)
		}

		if byBytes {
			err = headFileBytes(out, r, headBytes)
		} else {
			err = headFileLines(out, r, headLines)
		}
		r.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func headFileBytes(out io.Writer, r io.Reader, n int) error {
	_, err := io.CopyN(out, r, int64(n))
	if err == io.EOF {
		return nil
	}
	return err
}

// headFileLines copies the first n lines verbatim, newlines included, so a
// final line without a newline stays that way.
func headFileLines(out io.Writer, r io.Reader, n int) error {
	br := bufio.NewReader(r)
	for i := 0; i < n; i++ {
		line, err := br.ReadString('\n')
		if line != "" {
			if _, werr := io.WriteString(out, line); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}
