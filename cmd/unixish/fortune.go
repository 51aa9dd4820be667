package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/spf13/cobra"

	"github.com/unixish/unixish/pkg/textio"
)

var (
	fortunePattern     string
	fortuneInsensitive bool
	fortuneSeed        int64
)

var fortuneCmd = &cobra.Command{
	Use:   "fortune FILE_OR_DIR...",
	Short: "Print a random fortune slip",
	Long: `Pick a random slip from %-separated fortune files. With -m, print every
slip matching the pattern instead. A fixed seed makes the pick
deterministic, which the tests rely on.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFortune,
}

func init() {
	fortuneCmd.Flags().StringVarP(&fortunePattern, "pattern", "m", "", "Print all slips matching this pattern")
	fortuneCmd.Flags().BoolVarP(&fortuneInsensitive, "insensitive", "i", false, "Case-insensitive pattern matching")
	fortuneCmd.Flags().Int64VarP(&fortuneSeed, "seed", "s", 0, "Random seed")
}

// fortune is one slip plus the file it came from.
type fortune struct {
	source string
	text   string
}

// readFortunes loads %-separated slips from every file, in file order.
// Empty slips (leading, trailing, or doubled separators) are dropped.
func readFortunes(paths []string) ([]fortune, error) {
	var fortunes []fortune
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		for _, slip := range strings.Split(string(content), "%") {
			slip = strings.TrimSpace(slip)
			if slip != "" {
				fortunes = append(fortunes, fortune{source: path, text: slip})
			}
		}
	}
	return fortunes, nil
}

// pickFortune selects one slip. seeded controls whether the fixed seed is
// used; otherwise the pick differs run to run.
func pickFortune(fortunes []fortune, seed int64, seeded bool) (string, bool) {
	if len(fortunes) == 0 {
		return "", false
	}
	if !seeded {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	return fortunes[rng.Intn(len(fortunes))].text, true
}

func runFortune(cmd *cobra.Command, args []string) error {
	files, err := textio.FindAllFiles(args)
	if err != nil {
		return err
	}
	fortunes, err := readFortunes(files)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if fortunePattern != "" {
		opts := regexp2.RegexOptions(regexp2.RE2)
		if fortuneInsensitive {
			opts |= regexp2.IgnoreCase
		}
		re, err := regexp2.Compile(fortunePattern, opts)
		if err != nil {
			return fmt.Errorf("Invalid --pattern %q", fortunePattern)
		}

		found := false
		for _, f := range fortunes {
			if ok, _ := re.MatchString(f.text); ok {
				fmt.Fprintln(out, f.text)
				found = true
			}
		}
		if !found {
			fmt.Fprintln(cmd.ErrOrStderr(), "No fortunes found")
		}
		return nil
	}

	if text, ok := pickFortune(fortunes, fortuneSeed, cmd.Flags().Changed("seed")); ok {
		fmt.Fprintln(out, text)
	}
	return nil
}
