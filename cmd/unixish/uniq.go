package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/unixish/unixish/pkg/textio"
)

var uniqCount bool

var uniqCmd = &cobra.Command{
	Use:   "uniq [IN_FILE [OUT_FILE]]",
	Short: "Filter adjacent repeated lines",
	Args:  cobra.MaximumNArgs(2),
	RunE:  runUniq,
}

func init() {
	uniqCmd.Flags().BoolVarP(&uniqCount, "count", "c", false, "Show counts")
}

func runUniq(cmd *cobra.Command, args []string) error {
	inFile := "-"
	if len(args) > 0 {
		inFile = args[0]
	}

	r, err := textio.Open(inFile)
	if err != nil {
		return fmt.Errorf("%s: %w", inFile, err)
	}
	defer r.Close()

	var out io.Writer = cmd.OutOrStdout()
	if len(args) > 1 {
		f, err := os.Create(args[1])
		if err != nil {
			return fmt.Errorf("%s: %w", args[1], err)
		}
		defer f.Close()
		out = f
	}

	var (
		prev  string
		count int
	)

	flush := func() error {
		if count == 0 {
			return nil
		}
		if uniqCount {
			_, err := fmt.Fprintf(out, "%4d %s\n", count, prev)
			return err
		}
		_, err := fmt.Fprintln(out, prev)
		return err
	}

	err = textio.EachLine(r, func(line string) error {
		if count > 0 && line == prev {
			count++
			return nil
		}
		if err := flush(); err != nil {
			return err
		}
		prev = line
		count = 1
		return nil
	})
	if err != nil {
		return err
	}
	return flush()
}
