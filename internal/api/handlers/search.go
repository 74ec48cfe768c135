package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/footydle/search-backend/internal/alias"
	"github.com/footydle/search-backend/internal/models"
	"github.com/footydle/search-backend/internal/search"
)

// searchTimeout bounds how long a request waits for the final emission
// (debounce window plus the remote store's own timeout, with headroom).
const searchTimeout = 15 * time.Second

// SearchHandler serves autocomplete for one entity kind. Each request gets
// its own Searcher so concurrent clients cannot supersede each other;
// the debounce and supersession machinery belongs to a single caller's
// query stream.
type SearchHandler struct {
	kind    models.EntityKind
	local   search.LocalStore
	remote  search.RemoteStore
	aliases *alias.Index
	opts    search.Options
}

func NewSearchHandler(kind models.EntityKind, local search.LocalStore, remote search.RemoteStore, aliases *alias.Index, opts search.Options) *SearchHandler {
	opts.Kind = kind
	return &SearchHandler{
		kind:    kind,
		local:   local,
		remote:  remote,
		aliases: aliases,
		opts:    opts,
	}
}

// Search handles GET /api/{players,clubs}/search?q=...
// By default it waits for the final emission. With ?phase=partial it returns
// the local-only snapshot immediately, skipping the debounced remote wait.
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'q' is required"})
		return
	}

	searcher := search.New(h.local, h.remote, h.aliases, h.opts)
	defer searcher.Reset()

	ctx, cancel := context.WithTimeout(c.Request.Context(), searchTimeout)
	defer cancel()

	if c.Query("phase") == "partial" {
		ch := searcher.Stream(ctx, query)
		results := []models.SearchResult{}
		select {
		case em, ok := <-ch:
			if ok {
				results = em.Results
			}
		case <-ctx.Done():
		}
		c.JSON(http.StatusOK, gin.H{"results": results})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": searcher.Collect(ctx, query)})
}

// GetEntity handles GET /api/{players,clubs}/:id against the local index.
func (h *SearchHandler) GetEntity(c *gin.Context) {
	id := c.Param("id")

	entity, err := h.local.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if entity == nil || entity.Kind != h.kind {
		c.JSON(http.StatusNotFound, gin.H{"error": "entity not found"})
		return
	}

	c.JSON(http.StatusOK, entity)
}
