package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"github.com/footydle/search-backend/internal/metrics"
	"github.com/footydle/search-backend/internal/models"
	"github.com/footydle/search-backend/internal/text"
)

const (
	supabaseDefaultTimeout = 10 * time.Second
	remoteCacheSize        = 256
	remoteCacheTTL         = 5 * time.Minute
)

// SupabaseStore queries a hosted Supabase (PostgREST) table with a
// case-insensitive contains match on display_name. Lookups are rate limited
// and cached so bursts of sparse queries don't hammer the hosted store.
type SupabaseStore struct {
	client  *http.Client
	baseURL string
	apiKey  string
	table   string
	kind    models.EntityKind
	limiter *rate.Limiter
	cache   *lru.Cache[string, cachedRemoteResult]
}

type cachedRemoteResult struct {
	entities []models.Entity
	storedAt time.Time
}

// supabaseEntity mirrors the hosted table's row shape.
type supabaseEntity struct {
	ID             string `json:"id"`
	DisplayName    string `json:"display_name"`
	Nationality    string `json:"nationality"`
	Position       string `json:"position"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
}

func NewSupabaseStore(baseURL, apiKey, table string, kind models.EntityKind) (*SupabaseStore, error) {
	cache, err := lru.New[string, cachedRemoteResult](remoteCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create remote query cache: %w", err)
	}

	return &SupabaseStore{
		client: &http.Client{
			Timeout: supabaseDefaultTimeout,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
		table:   table,
		kind:    kind,
		// 5 req/s with a small burst is plenty for a debounced caller.
		limiter: rate.NewLimiter(rate.Limit(5), 10),
		cache:   cache,
	}, nil
}

func (s *SupabaseStore) QueryByNameILike(ctx context.Context, query string, limit int) ([]models.Entity, error) {
	cacheKey := fmt.Sprintf("%s|%d", text.Normalize(query), limit)
	if cached, ok := s.cache.Get(cacheKey); ok && time.Since(cached.storedAt) < remoteCacheTTL {
		metrics.RemoteCacheHits.Inc()
		out := make([]models.Entity, len(cached.entities))
		copy(out, cached.entities)
		return out, nil
	}
	metrics.RemoteCacheMisses.Inc()

	if err := s.limiter.Wait(ctx); err != nil {
		metrics.RemoteErrorsTotal.WithLabelValues("rate_limit").Inc()
		return nil, fmt.Errorf("remote rate limiter: %w", err)
	}

	params := url.Values{}
	params.Set("select", "id,display_name,nationality,position,primary_color,secondary_color")
	params.Set("display_name", "ilike.*"+query+"*")
	params.Set("limit", fmt.Sprintf("%d", limit))
	reqURL := fmt.Sprintf("%s/rest/v1/%s?%s", s.baseURL, url.PathEscape(s.table), params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	metrics.RemoteRequestsTotal.Inc()
	start := time.Now()
	resp, err := s.client.Do(req)
	metrics.RemoteQueryDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RemoteErrorsTotal.WithLabelValues("network").Inc()
		return nil, fmt.Errorf("failed to query remote store: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.RemoteErrorsTotal.WithLabelValues("status").Inc()
		return nil, fmt.Errorf("remote store returned status %d", resp.StatusCode)
	}

	var rows []supabaseEntity
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		metrics.RemoteErrorsTotal.WithLabelValues("decode").Inc()
		return nil, fmt.Errorf("failed to decode remote response: %w", err)
	}

	entities := make([]models.Entity, len(rows))
	for i, row := range rows {
		entities[i] = models.Entity{
			ID:             row.ID,
			Kind:           s.kind,
			DisplayName:    row.DisplayName,
			Nationality:    row.Nationality,
			Position:       row.Position,
			PrimaryColor:   row.PrimaryColor,
			SecondaryColor: row.SecondaryColor,
		}
	}

	s.cache.Add(cacheKey, cachedRemoteResult{entities: entities, storedAt: time.Now()})

	out := make([]models.Entity, len(entities))
	copy(out, entities)
	return out, nil
}
