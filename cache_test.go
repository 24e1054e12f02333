package landing

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"
)

type countingRecorder struct {
	mu      sync.Mutex
	renders int
	hits    int
}

func (r *countingRecorder) ObservePageRender(time.Duration) {
	r.mu.Lock()
	r.renders++
	r.mu.Unlock()
}

func (r *countingRecorder) IncCacheHit() {
	r.mu.Lock()
	r.hits++
	r.mu.Unlock()
}

func TestPageCacheRendersOnce(t *testing.T) {
	calls := 0
	rec := &countingRecorder{}
	c := NewPageCache(func(_ context.Context, w io.Writer) error {
		calls++
		_, err := io.WriteString(w, "<html></html>")
		return err
	}, rec)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			page, err := c.Get(context.Background())
			if err != nil {
				t.Errorf("Get() = %v", err)
				return
			}
			if string(page) != "<html></html>" {
				t.Errorf("Get() = %q", page)
			}
		}()
	}
	wg.Wait()

	if calls != 1 {
		t.Errorf("render called %d times, want 1", calls)
	}
	if rec.renders != 1 {
		t.Errorf("recorded renders = %d, want 1", rec.renders)
	}
	if rec.hits != 15 {
		t.Errorf("cache hits = %d, want 15", rec.hits)
	}
}

func TestPageCacheDoesNotCacheErrors(t *testing.T) {
	fail := true
	c := NewPageCache(func(_ context.Context, w io.Writer) error {
		if fail {
			return errors.New("boom")
		}
		_, err := io.WriteString(w, "ok")
		return err
	}, nil)

	if _, err := c.Get(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	fail = false
	page, err := c.Get(context.Background())
	if err != nil {
		t.Fatalf("Get() = %v", err)
	}
	if string(page) != "ok" {
		t.Errorf("Get() = %q, want ok", page)
	}
}
