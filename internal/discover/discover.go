// Package discover finds the source files a lint run should look at.
//
// Directories are walked recursively. A file is picked up when a dialect
// claims its extension (or a dialect is forced), it matches one of the
// include globs (when any are given) and none of the exclude globs. Globs
// use doublestar syntax and are matched against the slash-separated path
// relative to the project root.
package discover

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/leapstack-labs/msglint/pkg/dialect"
)

// ErrUnsupportedFile is returned for an explicitly named file that no
// dialect claims.
var ErrUnsupportedFile = errors.New("no dialect for file")

// ErrBadPattern is returned for a malformed include or exclude glob.
var ErrBadPattern = errors.New("invalid glob pattern")

// Options control discovery.
type Options struct {
	Root    string   // project root, globs are relative to it
	Include []string // a file must match one of these, empty matches all
	Exclude []string // files and directories matching any of these are skipped
	Dialect string   // forced dialect name, empty infers it from the extension
}

// File is a discovered source file.
type File struct {
	Path    string // path as given or joined during the walk
	Rel     string // slash-separated path relative to the root
	Dialect *dialect.Dialect
}

type walker struct {
	opts   Options
	forced *dialect.Dialect
	seen   map[string]bool
	files  []File
}

// Files discovers the source files under paths. With no paths the root is
// walked. Explicitly named files skip the include globs but still honour the
// exclude globs. The result is sorted by path and free of duplicates.
func Files(ctx context.Context, paths []string, opts Options) ([]File, error) {
	if err := validatePatterns(opts.Include); err != nil {
		return nil, err
	}
	if err := validatePatterns(opts.Exclude); err != nil {
		return nil, err
	}
	if opts.Root == "" {
		opts.Root = "."
	}
	if len(paths) == 0 {
		paths = []string{opts.Root}
	}

	w := &walker{opts: opts, seen: make(map[string]bool)}
	if opts.Dialect != "" {
		d, err := dialect.Lookup(opts.Dialect)
		if err != nil {
			return nil, err
		}
		w.forced = d
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", p, err)
		}
		if info.IsDir() {
			if err := w.walk(ctx, p); err != nil {
				return nil, err
			}
			continue
		}
		if err := w.explicit(p); err != nil {
			return nil, err
		}
	}

	sort.Slice(w.files, func(i, j int) bool {
		return w.files[i].Path < w.files[j].Path
	})
	return w.files, nil
}

func (w *walker) walk(ctx context.Context, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel := w.rel(path)
		if d.IsDir() {
			if path != dir && w.dirExcluded(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || w.excluded(rel) || !w.included(rel) {
			return nil
		}
		if dl := w.dialectFor(path); dl != nil {
			w.add(path, rel, dl)
		}
		return nil
	})
}

func (w *walker) explicit(path string) error {
	rel := w.rel(path)
	if w.excluded(rel) {
		return nil
	}
	dl := w.dialectFor(path)
	if dl == nil {
		return fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
	}
	w.add(path, rel, dl)
	return nil
}

func (w *walker) add(path, rel string, d *dialect.Dialect) {
	clean := filepath.Clean(path)
	if w.seen[clean] {
		return
	}
	w.seen[clean] = true
	w.files = append(w.files, File{Path: clean, Rel: rel, Dialect: d})
}

func (w *walker) dialectFor(path string) *dialect.Dialect {
	if w.forced != nil {
		return w.forced
	}
	d, ok := dialect.ForExtension(filepath.Ext(path))
	if !ok {
		return nil
	}
	return d
}

// rel returns path relative to the root, or the cleaned path itself when it
// lies outside the root.
func (w *walker) rel(path string) string {
	absRoot, err1 := filepath.Abs(w.opts.Root)
	absPath, err2 := filepath.Abs(path)
	if err1 == nil && err2 == nil {
		if rel, err := filepath.Rel(absRoot, absPath); err == nil && !isOutside(rel) {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.ToSlash(filepath.Clean(path))
}

func (w *walker) excluded(rel string) bool {
	return matchAny(w.opts.Exclude, rel)
}

// dirExcluded reports whether a directory is excluded. A pattern ending in
// "/**" excludes the directory it names as well as its contents.
func (w *walker) dirExcluded(rel string) bool {
	for _, p := range w.opts.Exclude {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
		if prefix, found := strings.CutSuffix(p, "/**"); found {
			if ok, _ := doublestar.Match(prefix, rel); ok {
				return true
			}
		}
	}
	return false
}

func (w *walker) included(rel string) bool {
	return len(w.opts.Include) == 0 || matchAny(w.opts.Include, rel)
}

func matchAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}

func validatePatterns(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("%w: %q", ErrBadPattern, p)
		}
	}
	return nil
}

func isOutside(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// Dirs returns the directories under paths that discovery would walk, for
// change watching. Named files contribute their parent directory.
func Dirs(ctx context.Context, paths []string, opts Options) ([]string, error) {
	if err := validatePatterns(opts.Exclude); err != nil {
		return nil, err
	}
	if opts.Root == "" {
		opts.Root = "."
	}
	if len(paths) == 0 {
		paths = []string{opts.Root}
	}

	w := &walker{opts: opts}
	seen := make(map[string]bool)
	var dirs []string
	add := func(dir string) {
		dir = filepath.Clean(dir)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", p, err)
		}
		if !info.IsDir() {
			add(filepath.Dir(p))
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if !d.IsDir() {
				return nil
			}
			if path != p && w.dirExcluded(w.rel(path)) {
				return filepath.SkipDir
			}
			add(path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(dirs)
	return dirs, nil
}

// Excluded reports whether path is excluded by opts.
func Excluded(path string, opts Options) bool {
	if opts.Root == "" {
		opts.Root = "."
	}
	w := &walker{opts: opts}
	return w.excluded(w.rel(path))
}
