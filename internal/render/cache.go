package render

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

// maxRenderers bounds how many option sets keep a renderer alive. Resizing
// the terminal produces a new width per drag step, so old ones are evicted.
const maxRenderers = 8

// cachedRenderer is one glamour renderer. TermRenderer keeps an internal
// buffer, so calls through the same renderer are serialized.
type cachedRenderer struct {
	mu       sync.Mutex
	renderer *glamour.TermRenderer
	lastUsed uint64
}

func (c *cachedRenderer) render(content string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.renderer.Render(content)
}

// rendererCache keeps the most recently used renderers keyed by options
type rendererCache struct {
	mu      sync.Mutex
	entries map[Options]*cachedRenderer
	clock   uint64
}

func newRendererCache() *rendererCache {
	return &rendererCache{entries: make(map[Options]*cachedRenderer)}
}

var renderers = newRendererCache()

// lookup returns the renderer for opts, building it on first use. A build
// failure is not cached, so a style file fixed on disk is picked up.
func (c *rendererCache) lookup(opts Options) (*cachedRenderer, error) {
	opts = opts.normalized()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.clock++
	if entry, ok := c.entries[opts]; ok {
		entry.lastUsed = c.clock
		return entry, nil
	}

	r, err := newRenderer(opts)
	if err != nil {
		return nil, err
	}
	if len(c.entries) >= maxRenderers {
		c.evictOldest()
	}
	entry := &cachedRenderer{renderer: r, lastUsed: c.clock}
	c.entries[opts] = entry
	return entry, nil
}

// evictOldest drops the least recently used renderer. Callers hold c.mu.
func (c *rendererCache) evictOldest() {
	var oldest Options
	var oldestUse uint64
	first := true
	for key, entry := range c.entries {
		if first || entry.lastUsed < oldestUse {
			oldest, oldestUse, first = key, entry.lastUsed, false
		}
	}
	delete(c.entries, oldest)
}

func (c *rendererCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func newRenderer(opts Options) (*glamour.TermRenderer, error) {
	rendererOpts := []glamour.TermRendererOption{
		glamour.WithStylePath(opts.Style),
		glamour.WithWordWrap(opts.Width),
	}
	if opts.EnableEmoji {
		rendererOpts = append(rendererOpts, glamour.WithEmoji())
	}
	if opts.PreserveNewLines {
		rendererOpts = append(rendererOpts, glamour.WithPreservedNewLines())
	}
	return glamour.NewTermRenderer(rendererOpts...)
}
