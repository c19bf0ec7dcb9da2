package normalisers

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Normaliser converts one file format to plain text.
type Normaliser interface {
	// Name identifies the format, e.g. "markdown".
	Name() string

	// Extensions lists the lower-case file extensions handled, with the dot.
	Extensions() []string

	// Normalise returns the readable text of content.
	Normalise(content string) string
}

// Registry maps file extensions to normalisers.
type Registry struct {
	mu    sync.RWMutex
	byExt map[string]Normaliser
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byExt: make(map[string]Normaliser)}
}

// Register adds n for each of its extensions, replacing earlier entries.
func (r *Registry) Register(n Normaliser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ext := range n.Extensions() {
		r.byExt[strings.ToLower(ext)] = n
	}
}

// For returns the normaliser for path's extension, or PlainText.
func (r *Registry) For(path string) Normaliser {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if n, ok := r.byExt[strings.ToLower(filepath.Ext(path))]; ok {
		return n
	}
	return PlainText{}
}

// Normalise converts data read from path to text.
func (r *Registry) Normalise(path string, data []byte) string {
	return r.For(path).Normalise(string(data))
}

// Extensions returns the registered extensions in sorted order.
func (r *Registry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry with the built-in normalisers.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		defaultRegistry.Register(PlainText{})
		defaultRegistry.Register(Markdown{})
		defaultRegistry.Register(HTML{})
	})
	return defaultRegistry
}
