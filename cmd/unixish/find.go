package main

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/dlclark/regexp2"
	"github.com/spf13/cobra"
)

var (
	findNames []string
	findTypes []string
)

var findCmd = &cobra.Command{
	Use:   "find [PATH...]",
	Short: "Walk directory trees printing matching entries",
	RunE:  runFind,
}

func init() {
	findCmd.Flags().StringArrayVarP(&findNames, "name", "n", nil, "Base name regex (repeatable)")
	findCmd.Flags().StringArrayVarP(&findTypes, "type", "t", nil, "Entry type: f, d, or l (repeatable)")
}

func runFind(cmd *cobra.Command, args []string) error {
	var names []*regexp2.Regexp
	for _, name := range findNames {
		re, err := regexp2.Compile(name, regexp2.RE2)
		if err != nil {
			return fmt.Errorf("Invalid --name %q", name)
		}
		names = append(names, re)
	}

	for _, t := range findTypes {
		switch t {
		case "f", "d", "l":
		default:
			return fmt.Errorf("Invalid --type %q: must be f, d, or l", t)
		}
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	out := cmd.OutOrStdout()
	for _, path := range paths {
		err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return nil
			}
			if matchesEntryType(d, findTypes) && matchesName(d, names) {
				fmt.Fprintln(out, p)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// matchesEntryType accepts everything when no type filter is given.
func matchesEntryType(d fs.DirEntry, types []string) bool {
	if len(types) == 0 {
		return true
	}
	for _, t := range types {
		switch t {
		case "f":
			if d.Type().IsRegular() {
				return true
			}
		case "d":
			if d.IsDir() {
				return true
			}
		case "l":
			if d.Type()&fs.ModeSymlink != 0 {
				return true
			}
		}
	}
	return false
}

// matchesName accepts everything when no name filter is given.
func matchesName(d fs.DirEntry, names []*regexp2.Regexp) bool {
	if len(names) == 0 {
		return true
	}
	for _, re := range names {
		if ok, _ := re.MatchString(d.Name()); ok {
			return true
		}
	}
	return false
}
