package landing

import (
	"bytes"
	"context"
	"io"
	"sync"
	"time"
)

// PageCache holds the rendered landing page. The page is a pure function of
// the configuration, so it is rendered once and then served from memory.
// A failed render is not cached.
type PageCache struct {
	mu       sync.RWMutex
	page     []byte
	render   func(context.Context, io.Writer) error
	recorder Recorder
}

// NewPageCache creates a PageCache that fills itself with render.
func NewPageCache(render func(context.Context, io.Writer) error, r Recorder) *PageCache {
	if r == nil {
		r = NoopRecorder{}
	}
	return &PageCache{render: render, recorder: r}
}

func (c *PageCache) load(ctx context.Context) error {
	if c.page != nil {
		return nil
	}
	start := time.Now()
	var buf bytes.Buffer
	if err := c.render(ctx, &buf); err != nil {
		return err
	}
	c.recorder.ObservePageRender(time.Since(start))
	c.page = buf.Bytes()
	return nil
}

// Get returns the rendered page. It tries a read lock first; only takes a
// write lock if a render is needed. Callers must not modify the result.
func (c *PageCache) Get(ctx context.Context) ([]byte, error) {
	c.mu.RLock()
	if c.page != nil {
		page := c.page
		c.mu.RUnlock()
		c.recorder.IncCacheHit()
		return page, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(ctx); err != nil {
		return nil, err
	}
	return c.page, nil
}
