// README: Feed source composition (HTTP client behind an optional cache).
package feed

import "context"

// Source yields raw station records for catalog ingestion.
type Source interface {
	Fetch(ctx context.Context) ([]Record, error)
}

// CachedSource consults the cache before the upstream client and refreshes
// the cache on a successful fetch.
type CachedSource struct {
	client *Client
	cache  *Cache
}

func NewCachedSource(client *Client, cache *Cache) *CachedSource {
	return &CachedSource{client: client, cache: cache}
}

func (s *CachedSource) Fetch(ctx context.Context) ([]Record, error) {
	if records, ok := s.cache.Get(ctx); ok {
		return records, nil
	}
	records, err := s.client.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Put(ctx, records)
	return records, nil
}
