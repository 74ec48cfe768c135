// Package search implements the hybrid local/remote fuzzy entity search used
// for autocomplete. The local index and the nickname table are consulted on
// every keystroke; a debounced remote lookup fills in when local coverage
// is thin. Overlapping queries follow last-query-wins semantics.
package search

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/footydle/search-backend/internal/alias"
	"github.com/footydle/search-backend/internal/metrics"
	"github.com/footydle/search-backend/internal/models"
	"github.com/footydle/search-backend/internal/text"
)

// LocalStore is the embedded pre-seeded index, consulted first on every query.
type LocalStore interface {
	QueryByNameSubstring(ctx context.Context, query string) ([]models.Entity, error)
	GetByID(ctx context.Context, id string) (*models.Entity, error)
}

// RemoteStore is the hosted fallback, only reached through the debounce gate.
type RemoteStore interface {
	QueryByNameILike(ctx context.Context, query string, limit int) ([]models.Entity, error)
}

const (
	defaultMinQueryLen = 2
	defaultSufficiency = 3
	defaultMaxResults  = 8
	defaultRemoteLimit = 10
	defaultDebounce    = 300 * time.Millisecond

	// Remote rows often lack UI metadata; results get neutral colors
	// so the autocomplete list renders consistently.
	placeholderPrimaryColor   = "#6b7280"
	placeholderSecondaryColor = "#f3f4f6"
)

// Options tune one Searcher instance. Zero values fall back to the defaults
// above.
type Options struct {
	Kind        models.EntityKind
	MinQueryLen int
	Sufficiency int // local hit count at which the remote fallback is skipped
	MaxResults  int
	RemoteLimit int
	Debounce    time.Duration
}

func (o *Options) applyDefaults() {
	if o.MinQueryLen <= 0 {
		o.MinQueryLen = defaultMinQueryLen
	}
	if o.Sufficiency <= 0 {
		o.Sufficiency = defaultSufficiency
	}
	if o.MaxResults <= 0 {
		o.MaxResults = defaultMaxResults
	}
	if o.RemoteLimit <= 0 {
		o.RemoteLimit = defaultRemoteLimit
	}
	if o.Debounce <= 0 {
		o.Debounce = defaultDebounce
	}
}

// Searcher coordinates one autocomplete widget's queries. It owns the only
// mutable state in the pipeline: the monotonically increasing query token and
// the single outstanding debounce timer.
type Searcher struct {
	local   LocalStore
	remote  RemoteStore
	aliases *alias.Index
	opts    Options

	mu    sync.Mutex
	token uint64
	timer *time.Timer
}

func New(local LocalStore, remote RemoteStore, aliases *alias.Index, opts Options) *Searcher {
	opts.applyDefaults()
	return &Searcher{
		local:   local,
		remote:  remote,
		aliases: aliases,
		opts:    opts,
	}
}

// Search runs one query and delivers result snapshots through onUpdate:
// at most once with the local results and at most once more after the
// debounced remote lookup, in that order. Callers replace their displayed
// list on each call. Errors never reach onUpdate; they degrade to fewer
// results. The first snapshot is delivered before Search returns.
func (s *Searcher) Search(ctx context.Context, rawQuery string, onUpdate func([]models.SearchResult)) {
	s.run(ctx, rawQuery, func(results []models.SearchResult, _ bool) {
		onUpdate(results)
	})
}

// Emission is one snapshot of the result set for a query. Final marks the
// last snapshot that query will produce.
type Emission struct {
	Results []models.SearchResult
	Final   bool
}

// Stream runs one query and returns a channel carrying at most two
// emissions. The channel is closed after the final emission. A query
// superseded before its final emission leaves the channel open; bound reads
// with a context.
func (s *Searcher) Stream(ctx context.Context, rawQuery string) <-chan Emission {
	ch := make(chan Emission, 2)
	s.run(ctx, rawQuery, func(results []models.SearchResult, final bool) {
		ch <- Emission{Results: results, Final: final}
		if final {
			close(ch)
		}
	})
	return ch
}

// Collect runs one query and blocks until its final emission (or ctx
// expiry), returning the best snapshot seen.
func (s *Searcher) Collect(ctx context.Context, rawQuery string) []models.SearchResult {
	last := []models.SearchResult{}
	ch := s.Stream(ctx, rawQuery)
	for {
		select {
		case em, ok := <-ch:
			if !ok {
				return last
			}
			last = em.Results
			if em.Final {
				return last
			}
		case <-ctx.Done():
			return last
		}
	}
}

// Reset cancels any pending debounce timer and invalidates in-flight
// lookups. Used on widget disposal and for test isolation.
func (s *Searcher) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Searcher) run(ctx context.Context, rawQuery string, emit func([]models.SearchResult, bool)) {
	metrics.SearchRequestsTotal.WithLabelValues(string(s.opts.Kind)).Inc()

	normQuery := text.Normalize(rawQuery)
	if utf8.RuneCountInString(normQuery) < s.opts.MinQueryLen {
		metrics.SearchShortQueryTotal.Inc()
		emit([]models.SearchResult{}, true)
		return
	}

	token := s.begin()

	start := time.Now()
	entities, err := s.local.QueryByNameSubstring(ctx, rawQuery)
	metrics.LocalQueryDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		// Swallowed: an unreadable local index means zero local results,
		// the remote fallback still gets its chance.
		metrics.LocalQueryErrorsTotal.Inc()
		log.Printf("Warning: local index query failed for %q: %v", rawQuery, err)
		entities = nil
	}

	seen := make(map[string]struct{}, len(entities)+1)
	results := make([]models.SearchResult, 0, len(entities)+1)
	for _, ent := range entities {
		if _, dup := seen[ent.ID]; dup {
			continue
		}
		seen[ent.ID] = struct{}{}
		results = append(results, toResult(ent, models.SourceLocal, models.MatchName,
			Score(rawQuery, ent.DisplayName, models.MatchName)))
	}

	// Name matches were inserted first, so a nickname duplicate of an
	// entity already found by name is dropped here.
	if hit := s.resolveAlias(ctx, normQuery, seen); hit != nil {
		seen[hit.ID] = struct{}{}
		results = append(results, *hit)
	}

	sortByRelevance(results)
	partial := truncate(results, s.opts.MaxResults)

	sufficient := len(partial) >= s.opts.Sufficiency
	metrics.SearchEmissionsTotal.WithLabelValues("partial").Inc()
	emit(partial, sufficient)

	if sufficient {
		metrics.SearchLocalSufficientTotal.Inc()
		return
	}

	s.scheduleRemote(ctx, token, rawQuery, partial, seen, emit)
}

// begin starts a new query generation: bumps the token and cancels the
// previous query's pending debounce timer outright.
func (s *Searcher) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	return s.token
}

func (s *Searcher) isCurrent(token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token == token
}

// resolveAlias consults the nickname table for an exact match, then a prefix
// match, and resolves the hit to a full entity record via the local index.
func (s *Searcher) resolveAlias(ctx context.Context, normQuery string, seen map[string]struct{}) *models.SearchResult {
	if s.aliases == nil {
		return nil
	}

	id, ok := s.aliases.LookupExact(normQuery)
	if !ok {
		id, ok = s.aliases.FindByPrefix(normQuery)
	}
	if !ok {
		return nil
	}
	if _, dup := seen[id]; dup {
		return nil
	}

	ent, err := s.local.GetByID(ctx, id)
	if err != nil {
		log.Printf("Warning: failed to resolve alias target %s: %v", id, err)
		return nil
	}
	if ent == nil {
		return nil
	}

	metrics.SearchAliasHitsTotal.Inc()
	r := toResult(*ent, models.SourceLocal, models.MatchNickname,
		Score(normQuery, ent.DisplayName, models.MatchNickname))
	return &r
}

// scheduleRemote arms the single debounce timer slot for this searcher,
// capturing the query generation so a late fire can detect supersession.
func (s *Searcher) scheduleRemote(ctx context.Context, token uint64, rawQuery string, partial []models.SearchResult, seen map[string]struct{}, emit func([]models.SearchResult, bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token != token {
		// A newer query arrived while the local phase ran.
		return
	}
	s.timer = time.AfterFunc(s.opts.Debounce, func() {
		s.fetchRemote(ctx, token, rawQuery, partial, seen, emit)
	})
}

func (s *Searcher) fetchRemote(ctx context.Context, token uint64, rawQuery string, partial []models.SearchResult, seen map[string]struct{}, emit func([]models.SearchResult, bool)) {
	// Stopping the timer is the primary cancellation mechanism; the token
	// compare catches the race where the timer fired as it was stopped.
	if !s.isCurrent(token) {
		metrics.SearchStaleDiscardsTotal.Inc()
		return
	}

	metrics.SearchRemoteFallbacksTotal.Inc()
	entities, err := s.remote.QueryByNameILike(ctx, rawQuery, s.opts.RemoteLimit)
	if err != nil {
		log.Printf("Warning: remote fallback failed for %q: %v", rawQuery, err)
		if s.isCurrent(token) {
			metrics.SearchEmissionsTotal.WithLabelValues("final").Inc()
			emit(partial, true)
		}
		return
	}

	final := make([]models.SearchResult, len(partial), len(partial)+len(entities))
	copy(final, partial)
	for _, ent := range entities {
		if _, dup := seen[ent.ID]; dup {
			continue
		}
		seen[ent.ID] = struct{}{}
		fillPlaceholders(&ent)
		final = append(final, toResult(ent, models.SourceRemote, models.MatchName,
			Score(rawQuery, ent.DisplayName, models.MatchName)))
	}
	sortByRelevance(final)
	final = truncate(final, s.opts.MaxResults)

	if !s.isCurrent(token) {
		metrics.SearchStaleDiscardsTotal.Inc()
		return
	}
	metrics.SearchEmissionsTotal.WithLabelValues("final").Inc()
	emit(final, true)
}

func toResult(ent models.Entity, source models.ResultSource, matchType models.MatchType, relevance float64) models.SearchResult {
	return models.SearchResult{
		ID:             ent.ID,
		Kind:           ent.Kind,
		DisplayName:    ent.DisplayName,
		Nationality:    ent.Nationality,
		Position:       ent.Position,
		PrimaryColor:   ent.PrimaryColor,
		SecondaryColor: ent.SecondaryColor,
		Source:         source,
		MatchType:      matchType,
		Relevance:      relevance,
	}
}

func fillPlaceholders(ent *models.Entity) {
	if ent.PrimaryColor == "" {
		ent.PrimaryColor = placeholderPrimaryColor
	}
	if ent.SecondaryColor == "" {
		ent.SecondaryColor = placeholderSecondaryColor
	}
}

// sortByRelevance orders descending by score; the stable sort keeps
// discovery order (local before remote, name before nickname) on ties.
func sortByRelevance(results []models.SearchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})
}

func truncate(results []models.SearchResult, max int) []models.SearchResult {
	if len(results) > max {
		return results[:max]
	}
	return results
}
