// Package navigation keeps the path to page table that drives the router and the sidebar.
package navigation

import (
	"sort"
	"strings"
	"sync"
)

const (
	SectionMain   = "main"
	SectionOthers = "others"
)

// Entry is one sidebar link.
type Entry struct {
	Code     string
	LabelKey string
	Path     string
	Section  string
	Icon     string
}

// Registry stores entries in registration order. It is filled at start-up and
// read on every request.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	byCode  map[string]int
}

func New() *Registry {
	return &Registry{byCode: make(map[string]int)}
}

// Add registers an entry. Re-adding a code replaces the earlier entry in place.
func (r *Registry) Add(e Entry) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.byCode[e.Code]; ok {
		r.entries[i] = e
		return
	}
	r.byCode[e.Code] = len(r.entries)
	r.entries = append(r.entries, e)
}

// Section returns the entries of one section in registration order.
func (r *Registry) Section(section string) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if e.Section == section {
			out = append(out, e)
		}
	}
	return out
}

// Lookup returns the entry registered under code.
func (r *Registry) Lookup(code string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byCode[code]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Active returns the entry whose path matches urlPath. Sub-paths such as
// /customers/export.csv resolve to their page; the root only matches itself.
func (r *Registry) Active(urlPath string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if matchPath(e.Path, urlPath) {
			return e, true
		}
	}
	for _, e := range r.entries {
		if e.Path != "/" && matchPath(strings.TrimRight(e.Path, "/")+"/*", urlPath) {
			return e, true
		}
	}
	return Entry{}, false
}

// CodesSorted returns every registered code, sorted.
func (r *Registry) CodesSorted() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	codes := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		codes = append(codes, e.Code)
	}
	sort.Strings(codes)
	return codes
}

func matchPath(pattern, path string) bool {
	if pattern == path {
		return true
	}

	pattern = strings.Trim(pattern, "/")
	path = strings.Trim(path, "/")

	patternSeg := strings.Split(pattern, "/")
	pathSeg := strings.Split(path, "/")

	// Segment wildcard matching: /a/*/c.
	if len(patternSeg) == len(pathSeg) {
		for i := range patternSeg {
			if patternSeg[i] == "*" {
				continue
			}
			if patternSeg[i] != pathSeg[i] {
				return false
			}
		}
		return true
	}

	// Prefix wildcard matching: /a/* matches any deeper suffix.
	if len(patternSeg) > 0 && patternSeg[len(patternSeg)-1] == "*" {
		prefix := "/" + strings.Join(patternSeg[:len(patternSeg)-1], "/")
		return strings.HasPrefix("/"+path, prefix+"/") || "/"+path == prefix
	}

	return false
}
