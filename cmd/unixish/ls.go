package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	lsAll  bool
	lsLong bool
)

var lsCmd = &cobra.Command{
	Use:   "ls [PATH...]",
	Short: "List files and directories",
	RunE:  runLs,
}

func init() {
	lsCmd.Flags().BoolVarP(&lsAll, "all", "a", false, "Show hidden files")
	lsCmd.Flags().BoolVarP(&lsLong, "long", "l", false, "Long listing")
}

func runLs(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := lsEntries(paths, lsAll)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	st := newStyleSet()

	if !lsLong {
		for _, path := range files {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				fmt.Fprintln(out, st.Dir.Sprint(path))
			} else {
				fmt.Fprintln(out, path)
			}
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, path := range files {
		info, err := os.Lstat(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
			continue
		}
		name := path
		if info.IsDir() {
			name = st.Dir.Sprint(path)
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n",
			info.Mode().String(),
			linkCount(info),
			info.Size(),
			info.ModTime().Format("2006-01-02 15:04"),
			name)
	}
	return w.Flush()
}

// linkCount reads the hard link count from the underlying stat data.
func linkCount(info os.FileInfo) uint64 {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		return uint64(stat.Nlink)
	}
	return 1
}

// lsEntries expands each path: directories list their immediate children,
// files list themselves. Hidden entries (dot-prefixed) are skipped unless
// showHidden is set. A path that cannot be stat'ed fails the whole run,
// matching ls complaining before it lists anything.
func lsEntries(paths []string, showHidden bool) ([]string, error) {
	var files []string

	hidden := func(path string) bool {
		return strings.HasPrefix(filepath.Base(path), ".")
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		if !info.IsDir() {
			if showHidden || !hidden(path) {
				files = append(files, path)
			}
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		for _, entry := range entries {
			child := filepath.Join(path, entry.Name())
			if showHidden || !hidden(child) {
				files = append(files, child)
			}
		}
	}
	return files, nil
}
