package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/unixish/unixish/pkg/textio"
)

var (
	commSuppress1   bool
	commSuppress2   bool
	commSuppress3   bool
	commInsensitive bool
	commDelim       string
)

var commCmd = &cobra.Command{
	Use:   "comm FILE1 FILE2",
	Short: "Compare two sorted files line by line",
	Args:  cobra.ExactArgs(2),
	RunE:  runComm,
}

func init() {
	commCmd.Flags().BoolVarP(&commSuppress1, "suppress1", "1", false, "Suppress printing of column 1")
	commCmd.Flags().BoolVarP(&commSuppress2, "suppress2", "2", false, "Suppress printing of column 2")
	commCmd.Flags().BoolVarP(&commSuppress3, "suppress3", "3", false, "Suppress printing of column 3")
	commCmd.Flags().BoolVarP(&commInsensitive, "insensitive", "i", false, "Case-insensitive comparison of lines")
	commCmd.Flags().StringVarP(&commDelim, "output-delimiter", "d", "\t", "Output delimiter")
}

func runComm(cmd *cobra.Command, args []string) error {
	file1, file2 := args[0], args[1]
	if file1 == "-" && file2 == "-" {
		return errors.New(`Both input files cannot be STDIN ("-")`)
	}

	r1, err := textio.Open(file1)
	if err != nil {
		return fmt.Errorf("%s: %w", file1, err)
	}
	defer r1.Close()
	r2, err := textio.Open(file2)
	if err != nil {
		return fmt.Errorf("%s: %w", file2, err)
	}
	defer r2.Close()

	out := cmd.OutOrStdout()
	show := [3]bool{!commSuppress1, !commSuppress2, !commSuppress3}

	// emit prints line into 1-indexed column col, indenting it by one
	// delimiter per visible column to its left.
	emit := func(col int, line string) error {
		if !show[col-1] {
			return nil
		}
		var prefix string
		for i := 0; i < col-1; i++ {
			if show[i] {
				prefix += commDelim
			}
		}
		_, err := fmt.Fprintf(out, "%s%s\n", prefix, line)
		return err
	}

	next1 := lineIter(r1)
	next2 := lineIter(r2)
	line1, ok1 := next1()
	line2, ok2 := next2()

	fold := func(s string) string {
		if commInsensitive {
			return strings.ToLower(s)
		}
		return s
	}

	for ok1 || ok2 {
		switch {
		case !ok2, ok1 && fold(line1) < fold(line2):
			if err := emit(1, line1); err != nil {
				return err
			}
			line1, ok1 = next1()
		case !ok1, fold(line1) > fold(line2):
			if err := emit(2, line2); err != nil {
				return err
			}
			line2, ok2 = next2()
		default:
			if err := emit(3, line1); err != nil {
				return err
			}
			line1, ok1 = next1()
			line2, ok2 = next2()
		}
	}
	return nil
}

// lineIter returns a pull-style line reader; ok is false at EOF.
func lineIter(r io.Reader) func() (string, bool) {
	scanner := textio.NewScanner(r)
	return func() (string, bool) {
		if scanner.Scan() {
			return scanner.Text(), true
		}
		return "", false
	}
}
