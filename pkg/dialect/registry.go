package dialect

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Dialect registry
var (
	dialectsMu sync.RWMutex
	dialects   = make(map[string]*Dialect)
)

// ErrDialectRequired is returned when a dialect is required but not provided.
var ErrDialectRequired = errors.New("dialect is required")

// ErrUnknownDialect is returned when a dialect name or extension has no registration.
var ErrUnknownDialect = errors.New("unknown dialect")

// Get returns a dialect by name.
func Get(name string) (*Dialect, bool) {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	d, ok := dialects[strings.ToLower(name)]
	return d, ok
}

// Lookup returns a dialect by name or an error wrapping ErrUnknownDialect.
func Lookup(name string) (*Dialect, error) {
	if name == "" {
		return nil, ErrDialectRequired
	}
	d, ok := Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownDialect, name, strings.Join(List(), ", "))
	}
	return d, nil
}

// Register registers a dialect in the global registry.
// Called by dialect implementations in their init() functions.
func Register(d *Dialect) {
	dialectsMu.Lock()
	defer dialectsMu.Unlock()
	dialects[strings.ToLower(d.Name)] = d
}

// List returns all registered dialect names (sorted).
func List() []string {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ForExtension returns the dialect registered for a file extension.
// When several dialects claim the same extension a markup dialect is
// preferred over a plain one, then the name that sorts first wins.
func ForExtension(ext string) (*Dialect, bool) {
	var found *Dialect
	for _, name := range List() {
		d, _ := Get(name)
		if !d.HandlesExtension(ext) {
			continue
		}
		if found == nil || (d.AllowsMarkup() && !found.AllowsMarkup()) {
			found = d
		}
	}
	return found, found != nil
}

// Extensions returns every registered file extension (sorted, deduplicated).
func Extensions() []string {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	seen := make(map[string]struct{})
	for _, d := range dialects {
		for _, ext := range d.Extensions {
			seen[ext] = struct{}{}
		}
	}
	exts := make([]string, 0, len(seen))
	for ext := range seen {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
