package convert

import (
	"sync"

	"github.com/gaurav-prasanna/partstream/core"
	"github.com/gaurav-prasanna/partstream/core/escape"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, creating it on first use
// with the built-in converters registered. Later registrations on it are
// visible to every caller that uses the default.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewWithBuiltins()
	})
	return defaultRegistry
}

// NewWithBuiltins creates a Registry carrying only the built-in entry:
// text/plain → text/html, HTML-escaping the content.
func NewWithBuiltins() *Registry {
	r := New()
	RegisterBuiltins(r)
	return r
}

// RegisterBuiltins adds the built-in converters to r.
func RegisterBuiltins(r *Registry) {
	r.Register(core.TextPlain, core.TextHTML, Pure(escape.HTML))
}
