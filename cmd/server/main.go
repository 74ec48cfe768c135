package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/footydle/search-backend/internal/alias"
	"github.com/footydle/search-backend/internal/api"
	"github.com/footydle/search-backend/internal/api/handlers"
	"github.com/footydle/search-backend/internal/config"
	"github.com/footydle/search-backend/internal/database"
	"github.com/footydle/search-backend/internal/metrics"
	"github.com/footydle/search-backend/internal/models"
	"github.com/footydle/search-backend/internal/search"
	"github.com/footydle/search-backend/internal/services"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.Server.GinMode)

	// Initialize the local index
	if err := database.Initialize(cfg.Database.Path); err != nil {
		log.Fatalf("Failed to initialize local index: %v", err)
	}
	db := database.GetDB()

	// Build the nickname table
	aliasIndex, err := alias.NewIndex(alias.BuiltinEntries)
	if err != nil {
		log.Fatalf("Failed to build alias index: %v", err)
	}
	metrics.AliasTableSize.Set(float64(aliasIndex.Len()))

	playerLocal := services.NewLocalEntityStore(db, models.KindPlayer)
	clubLocal := services.NewLocalEntityStore(db, models.KindClub)

	// Seed the local index on first run if a dataset is available
	if n, err := playerLocal.Count(context.Background()); err == nil && n == 0 {
		if _, statErr := os.Stat(cfg.Database.SeedPath); statErr == nil {
			log.Println("Local index empty. Seeding...")
			count, seedErr := database.SeedFromFile(db, cfg.Database.SeedPath)
			if seedErr != nil {
				log.Fatalf("Failed to seed local index: %v", seedErr)
			}
			log.Printf("Seeded %d entities into the local index", count)
		} else {
			log.Printf("Warning: local index is empty and no seed dataset at %s", cfg.Database.SeedPath)
		}
	}

	for _, kind := range []models.EntityKind{models.KindPlayer, models.KindClub} {
		store := services.NewLocalEntityStore(db, kind)
		if n, err := store.Count(context.Background()); err == nil {
			metrics.EntityIndexSize.WithLabelValues(string(kind)).Set(float64(n))
		}
	}

	// Remote fallback stores (Supabase PostgREST)
	playerRemote, err := services.NewSupabaseStore(cfg.Supabase.URL, cfg.Supabase.APIKey, cfg.Supabase.PlayersTable, models.KindPlayer)
	if err != nil {
		log.Fatalf("Failed to initialize remote player store: %v", err)
	}
	clubRemote, err := services.NewSupabaseStore(cfg.Supabase.URL, cfg.Supabase.APIKey, cfg.Supabase.ClubsTable, models.KindClub)
	if err != nil {
		log.Fatalf("Failed to initialize remote club store: %v", err)
	}

	opts := search.Options{
		MinQueryLen: cfg.Search.MinQueryLen,
		Sufficiency: cfg.Search.Sufficiency,
		MaxResults:  cfg.Search.MaxResults,
		RemoteLimit: cfg.Search.RemoteLimit,
		Debounce:    cfg.Search.Debounce,
	}

	playerHandler := handlers.NewSearchHandler(models.KindPlayer, playerLocal, playerRemote, aliasIndex, opts)
	clubHandler := handlers.NewSearchHandler(models.KindClub, clubLocal, clubRemote, aliasIndex, opts)

	// Setup router
	router := api.SetupRouter(cfg, playerHandler, clubHandler)

	// Create HTTP server for graceful shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests a deadline to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
