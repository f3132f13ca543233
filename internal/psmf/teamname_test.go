package psmf

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/catchers-sc/teamapp/internal/cache"
)

type mapCache struct {
	mu   sync.Mutex
	data map[string]string
	sets int
}

func newMapCache() *mapCache { return &mapCache{data: make(map[string]string)} }

func (c *mapCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data[key], nil
}

func (c *mapCache) Set(ctx context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	c.sets++
	return nil
}

func teamNameServer(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		time.Sleep(20 * time.Millisecond)
		w.Write([]byte(`<section class="component--title"><h1 class="component__title">FC X</h1></section>`))
	}))
}

func testClient(baseURL string) *Client {
	return NewClient(baseURL, "", "Catchers+SC", "catchers-sc", time.UTC)
}

func TestTeamName_ConcurrentCallersShareOneFetch(t *testing.T) {
	var hits atomic.Int64
	server := teamNameServer(t, &hits)
	defer server.Close()

	resolver := NewTeamNameResolver(testClient(server.URL), cache.NoopCache{})
	opts := TeamNameOptions{Tournament: "2023-hanspaulska-liga-jaro", Group: "6-e", Code: "fc-x"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name, err := resolver.TeamName(context.Background(), opts)
			if err != nil {
				t.Errorf("TeamName: %v", err)
			}
			if name != "FC X" {
				t.Errorf("name = %q", name)
			}
		}()
	}
	wg.Wait()

	if got := hits.Load(); got != 1 {
		t.Errorf("expected 1 fetch, got %d", got)
	}
}

func TestTeamName_PersistentCacheHitSkipsFetch(t *testing.T) {
	var hits atomic.Int64
	server := teamNameServer(t, &hits)
	defer server.Close()

	c := newMapCache()
	resolver := NewTeamNameResolver(testClient(server.URL), c)
	opts := TeamNameOptions{Tournament: "2023-hanspaulska-liga-jaro", Group: "6-e", Code: "fc-x"}

	for i := 0; i < 3; i++ {
		name, err := resolver.TeamName(context.Background(), opts)
		if err != nil {
			t.Fatalf("TeamName: %v", err)
		}
		assertEq(t, name, "FC X")
	}

	if got := hits.Load(); got != 1 {
		t.Errorf("expected 1 fetch, got %d", got)
	}
	if c.sets != 1 {
		t.Errorf("expected 1 cache write, got %d", c.sets)
	}
}

func TestTeamName_IncompleteOptions(t *testing.T) {
	var hits atomic.Int64
	server := teamNameServer(t, &hits)
	defer server.Close()

	resolver := NewTeamNameResolver(testClient(server.URL), cache.NoopCache{})
	name, err := resolver.TeamName(context.Background(), TeamNameOptions{Code: "fc-x"})
	if err != nil {
		t.Fatalf("TeamName: %v", err)
	}
	assertEq(t, name, "")
	if hits.Load() != 0 {
		t.Error("expected no fetch for incomplete options")
	}
}
