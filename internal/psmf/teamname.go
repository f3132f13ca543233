package psmf

import (
	"context"
	"sync"

	"github.com/catchers-sc/teamapp/internal/cache"
)

const teamNameCachePrefix = "psmf_team_name_"

// TeamNameOptions identify a team within one tournament group.
type TeamNameOptions struct {
	Tournament string
	Group      string
	Code       string
}

type teamNameLookup struct {
	done chan struct{}
	name string
	err  error
}

// TeamNameResolver resolves human-readable team names from machine codes.
// Results go into a persistent cache; concurrent lookups for the same key
// share a single in-flight fetch, with the first caller populating the result
// and later callers waiting on it.
type TeamNameResolver struct {
	client *Client
	cache  cache.Cache

	mu       sync.Mutex
	inflight map[string]*teamNameLookup
}

func NewTeamNameResolver(client *Client, c cache.Cache) *TeamNameResolver {
	return &TeamNameResolver{
		client:   client,
		cache:    c,
		inflight: make(map[string]*teamNameLookup),
	}
}

// TeamName returns the display name for a team code, or "" when the team page
// has no usable heading. Incomplete options resolve to "" without a fetch.
func (r *TeamNameResolver) TeamName(ctx context.Context, opts TeamNameOptions) (string, error) {
	if opts.Tournament == "" || opts.Group == "" || opts.Code == "" {
		return "", nil
	}
	key := opts.Tournament + "/" + opts.Group + "/" + opts.Code

	if cached, err := r.cache.Get(ctx, teamNameCachePrefix+key); err == nil && cached != "" {
		return cached, nil
	}

	r.mu.Lock()
	if pending, ok := r.inflight[key]; ok {
		r.mu.Unlock()
		select {
		case <-pending.done:
			return pending.name, pending.err
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	pending := &teamNameLookup{done: make(chan struct{})}
	r.inflight[key] = pending
	r.mu.Unlock()

	pending.name, pending.err = r.lookup(ctx, opts)
	close(pending.done)

	r.mu.Lock()
	delete(r.inflight, key)
	r.mu.Unlock()

	if pending.err == nil && pending.name != "" {
		_ = r.cache.Set(ctx, teamNameCachePrefix+key, pending.name)
	}
	return pending.name, pending.err
}

func (r *TeamNameResolver) lookup(ctx context.Context, opts TeamNameOptions) (string, error) {
	url := r.client.TeamURL(opts.Tournament, opts.Group, opts.Code)
	html, err := r.client.fetch(ctx, url)
	if err != nil {
		return "", err
	}
	return ParseTeamName(html), nil
}
