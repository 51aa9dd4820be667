package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unixish/unixish/pkg/textio"
)

var (
	catNumber         bool
	catNumberNonblank bool
)

var catCmd = &cobra.Command{
	Use:   "cat [FILE...]",
	Short: "Concatenate and print files",
	RunE:  runCat,
}

func init() {
	catCmd.Flags().BoolVarP(&catNumber, "number", "n", false, "Number all output lines")
	catCmd.Flags().BoolVarP(&catNumberNonblank, "number-nonblank", "b", false, "Number nonempty output lines")
	catCmd.MarkFlagsMutuallyExclusive("number", "number-nonblank")
}

func runCat(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	for _, filename := range filesOrStdin(args) {
		r, err := textio.Open(filename)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Failed to open %s: %v\n", filename, err)
			continue
		}

		lineNum := 1
		err = textio.EachLine(r, func(line string) error {
			if catNumberNonblank && line == "" {
				_, err := fmt.Fprintln(out)
				return err
			}
			if catNumber || catNumberNonblank {
				_, err := fmt.Fprintf(out, "%6d\t%s\n", lineNum, line)
				lineNum++
				return err
			}
			_, err := fmt.Fprintln(out, line)
			return err
		})
		r.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
