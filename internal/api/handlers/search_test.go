package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/footydle/search-backend/internal/models"
	"github.com/footydle/search-backend/internal/search"
	"github.com/footydle/search-backend/internal/text"
)

type stubLocal struct {
	entities []models.Entity
}

func (s *stubLocal) QueryByNameSubstring(_ context.Context, query string) ([]models.Entity, error) {
	norm := text.Normalize(query)
	var out []models.Entity
	for _, e := range s.entities {
		if strings.Contains(text.Normalize(e.DisplayName), norm) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *stubLocal) GetByID(_ context.Context, id string) (*models.Entity, error) {
	for i := range s.entities {
		if s.entities[i].ID == id {
			e := s.entities[i]
			return &e, nil
		}
	}
	return nil, nil
}

type stubRemote struct {
	entities []models.Entity
}

func (s *stubRemote) QueryByNameILike(_ context.Context, query string, limit int) ([]models.Entity, error) {
	norm := text.Normalize(query)
	var out []models.Entity
	for _, e := range s.entities {
		if strings.Contains(text.Normalize(e.DisplayName), norm) {
			out = append(out, e)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

type searchResponse struct {
	Results []models.SearchResult `json:"results"`
}

func newTestRouter(h *SearchHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/clubs/search", h.Search)
	router.GET("/api/clubs/:id", h.GetEntity)
	return router
}

func newTestHandler(local *stubLocal, remote *stubRemote) *SearchHandler {
	return NewSearchHandler(models.KindClub, local, remote, nil, search.Options{
		Debounce: 10 * time.Millisecond,
	})
}

func TestSearchEndpoint(t *testing.T) {
	local := &stubLocal{entities: []models.Entity{
		{ID: "club-inter", Kind: models.KindClub, DisplayName: "Inter Milan"},
	}}
	remote := &stubRemote{entities: []models.Entity{
		{ID: "club-inter-miami", Kind: models.KindClub, DisplayName: "Inter Miami CF"},
	}}
	router := newTestRouter(newTestHandler(local, remote))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/clubs/search?q=inter", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp searchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	// Default mode waits for the final emission: local + remote merged.
	if len(resp.Results) != 2 {
		t.Fatalf("expected 2 merged results, got %d", len(resp.Results))
	}
}

func TestSearchEndpointPartialPhase(t *testing.T) {
	local := &stubLocal{entities: []models.Entity{
		{ID: "club-inter", Kind: models.KindClub, DisplayName: "Inter Milan"},
	}}
	remote := &stubRemote{entities: []models.Entity{
		{ID: "club-inter-miami", Kind: models.KindClub, DisplayName: "Inter Miami CF"},
	}}
	router := newTestRouter(newTestHandler(local, remote))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/clubs/search?q=inter&phase=partial", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp searchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Results) != 1 || resp.Results[0].Source != models.SourceLocal {
		t.Fatalf("partial phase should return local results only: %+v", resp.Results)
	}
}

func TestSearchEndpointMissingQuery(t *testing.T) {
	router := newTestRouter(newTestHandler(&stubLocal{}, &stubRemote{}))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/clubs/search", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGetEntityEndpoint(t *testing.T) {
	local := &stubLocal{entities: []models.Entity{
		{ID: "club-inter", Kind: models.KindClub, DisplayName: "Inter Milan"},
		{ID: "player-kane", Kind: models.KindPlayer, DisplayName: "Harry Kane"},
	}}
	router := newTestRouter(newTestHandler(local, &stubRemote{}))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/clubs/club-inter", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var entity models.Entity
	if err := json.Unmarshal(w.Body.Bytes(), &entity); err != nil {
		t.Fatalf("failed to decode entity: %v", err)
	}
	if entity.DisplayName != "Inter Milan" {
		t.Errorf("entity = %+v", entity)
	}

	// Wrong kind behaves like not found.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/clubs/player-kane", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("cross-kind lookup status = %d, want 404", w.Code)
	}

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/clubs/unknown", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown id status = %d, want 404", w.Code)
	}
}
