package main

import (
	"github.com/spf13/cobra"

	"github.com/unixish/unixish/pkg/config"
	"github.com/unixish/unixish/pkg/style"
)

var (
	colorMode string
	cfg       = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "unixish",
	Short: "Unixish - classic Unix text utilities in Go",
	Long: `Unixish bundles Go ports of the classic Unix text utilities (cat, head,
wc, uniq, cut, grep, comm, tail, find, fortune, cal, ls) into a single
binary, one subcommand per tool.

Defaults such as the color policy and the cut field delimiter can be
pinned in an optional config file; see the config package for its
location.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(config.Path())
		if err != nil {
			return err
		}
		cfg = loaded
		if colorMode == "" {
			colorMode = cfg.Color
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "", "Color output: auto, always, never")

	// Add subcommands
	rootCmd.AddCommand(catCmd)
	rootCmd.AddCommand(headCmd)
	rootCmd.AddCommand(wcCmd)
	rootCmd.AddCommand(uniqCmd)
	rootCmd.AddCommand(cutCmd)
	rootCmd.AddCommand(grepCmd)
	rootCmd.AddCommand(commCmd)
	rootCmd.AddCommand(tailCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(fortuneCmd)
	rootCmd.AddCommand(calCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newStyleSet builds the shared color formatters under the active policy.
func newStyleSet() *style.Set {
	return style.New(style.Enabled(colorMode))
}

// filesOrStdin applies the convention that no file arguments means stdin.
func filesOrStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
