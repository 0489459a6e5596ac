package render

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/glamour"
)

// renderers maps Options to a *sync.Pool of glamour renderers. A
// TermRenderer is not safe for concurrent use, so every render borrows
// one and hands it back afterwards.
var renderers sync.Map

func borrow(opts Options) (*glamour.TermRenderer, func(), error) {
	v, ok := renderers.Load(opts)
	if !ok {
		v, _ = renderers.LoadOrStore(opts, new(sync.Pool))
	}
	pool := v.(*sync.Pool)

	r, ok := pool.Get().(*glamour.TermRenderer)
	if !ok {
		var err error
		r, err = glamour.NewTermRenderer(opts.glamourOptions()...)
		if err != nil {
			return nil, nil, fmt.Errorf("markdown style %q: %w", opts.Style, err)
		}
	}
	return r, func() { pool.Put(r) }, nil
}

// ClearCache drops every pooled renderer.
func ClearCache() {
	renderers.Range(func(k, _ any) bool {
		renderers.Delete(k)
		return true
	})
}

// CacheSize returns how many distinct option sets have a pool.
func CacheSize() int {
	n := 0
	renderers.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
