package sitemap

import (
	"bytes"
	"context"
	"sync"
	"time"
)

// BuildTimeout bounds a single rebuild. Builds run detached from the caller's
// context so an aborted request cannot leave a truncated snapshot behind.
const BuildTimeout = 30 * time.Second

// Status describes the cached document.
type Status struct {
	Entries int
	BuiltAt time.Time
	// Stale is set when at least one CMS source failed during the last
	// build. A stale document is still served but rebuilt on the next read.
	Stale bool
}

// Cache holds the most recently built sitemap document.
type Cache struct {
	builder *Builder

	buildMu sync.Mutex

	mu     sync.RWMutex
	body   []byte
	status Status
}

// NewCache creates an empty Cache backed by builder.
func NewCache(builder *Builder) *Cache {
	return &Cache{builder: builder}
}

// Refresh rebuilds the document and returns the number of entries it holds.
// Failed CMS sources do not fail the refresh; they mark the snapshot stale.
func (c *Cache) Refresh(ctx context.Context) (int, error) {
	c.buildMu.Lock()
	defer c.buildMu.Unlock()

	return c.rebuild(ctx)
}

// rebuild must be called with buildMu held.
func (c *Cache) rebuild(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), BuildTimeout)
	defer cancel()

	entries, buildErr := c.builder.Build(ctx)

	var buf bytes.Buffer
	if err := Encode(&buf, entries); err != nil {
		return 0, err
	}

	c.mu.Lock()
	c.body = buf.Bytes()
	c.status = Status{
		Entries: len(entries),
		BuiltAt: c.builder.now(),
		Stale:   buildErr != nil,
	}
	c.mu.Unlock()

	return len(entries), nil
}

func (c *Cache) snapshot() ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.body, c.body != nil && !c.status.Stale
}

// XML returns the cached document. It builds the document when the cache is
// empty or the last build was incomplete.
func (c *Cache) XML(ctx context.Context) ([]byte, error) {
	if body, fresh := c.snapshot(); fresh {
		return body, nil
	}

	c.buildMu.Lock()
	defer c.buildMu.Unlock()

	// Another reader may have rebuilt while we waited for the lock.
	body, fresh := c.snapshot()
	if fresh {
		return body, nil
	}

	if _, err := c.rebuild(ctx); err != nil {
		if body != nil {
			return body, nil
		}
		return nil, err
	}

	body, _ = c.snapshot()
	return body, nil
}

// Status reports the entry count, build time and completeness of the cached
// document.
func (c *Cache) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}
