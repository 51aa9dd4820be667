package textio

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	gitignore "github.com/sabhiram/go-gitignore"
)

// Entry is one result of expanding a set of search paths: either a file
// path or the error that kept it from being one.
type Entry struct {
	Path string
	Err  error
}

// FindFiles expands paths into the files a line-oriented tool should read.
// Plain files pass through unchanged. Directories are an error unless
// recursive is set, in which case they are walked depth-first; a
// .gitignore at the directory root is honored during the walk, the way the
// scanner-style tools in this family enumerate working trees.
func FindFiles(paths []string, recursive bool) []Entry {
	var results []Entry

	for _, path := range paths {
		if path == Stdin {
			results = append(results, Entry{Path: path})
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			results = append(results, Entry{Err: fmt.Errorf("%s: No such file or directory", path)})
			continue
		}

		if !info.IsDir() {
			results = append(results, Entry{Path: path})
			continue
		}

		if !recursive {
			results = append(results, Entry{Err: fmt.Errorf("%s is a directory", path)})
			continue
		}

		results = append(results, walkDir(path)...)
	}

	return results
}

// walkDir collects every regular file under root, skipping anything the
// root's .gitignore (if present) rules out.
func walkDir(root string) []Entry {
	var ignore *gitignore.GitIgnore
	if _, err := os.Stat(filepath.Join(root, ".gitignore")); err == nil {
		ignore, _ = gitignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	}

	var results []Entry
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			results = append(results, Entry{Err: err})
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if ignore != nil {
			rel, err := filepath.Rel(root, path)
			if err == nil && ignore.MatchesPath(rel) {
				return nil
			}
		}
		results = append(results, Entry{Path: path})
		return nil
	})
	if err != nil {
		results = append(results, Entry{Err: err})
	}
	return results
}

// FindAllFiles walks every path (file or directory), failing if any does
// not exist, and returns the contained files sorted with duplicates
// removed. The fortune tool uses this so repeated sources do not double
// its slips.
func FindAllFiles(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.Type().IsRegular() {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	slices.Sort(files)
	return slices.Compact(files), nil
}
