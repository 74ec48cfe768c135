package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Supabase SupabaseConfig
	Search   SearchConfig
	App      AppConfig
}

type ServerConfig struct {
	Port    string
	GinMode string
}

type DatabaseConfig struct {
	Path     string
	SeedPath string
}

type SupabaseConfig struct {
	URL          string
	APIKey       string
	PlayersTable string
	ClubsTable   string
}

type SearchConfig struct {
	Debounce    time.Duration
	MinQueryLen int
	Sufficiency int
	MaxResults  int
	RemoteLimit int
}

type AppConfig struct {
	AllowedOrigins []string
}

func Load() *Config {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		Database: DatabaseConfig{
			Path:     getEnv("DB_PATH", "./entity_index.db"),
			SeedPath: getEnv("SEED_DATA_PATH", "./data/entities.json"),
		},
		Supabase: SupabaseConfig{
			URL:          getEnv("SUPABASE_URL", ""),
			APIKey:       getEnv("SUPABASE_ANON_KEY", ""),
			PlayersTable: getEnv("SUPABASE_PLAYERS_TABLE", "players"),
			ClubsTable:   getEnv("SUPABASE_CLUBS_TABLE", "clubs"),
		},
		Search: SearchConfig{
			Debounce:    getEnvDuration("SEARCH_DEBOUNCE", 300*time.Millisecond),
			MinQueryLen: getEnvInt("SEARCH_MIN_QUERY_LEN", 2),
			Sufficiency: getEnvInt("SEARCH_LOCAL_SUFFICIENCY", 3),
			MaxResults:  getEnvInt("SEARCH_MAX_RESULTS", 8),
			RemoteLimit: getEnvInt("SEARCH_REMOTE_LIMIT", 10),
		},
		App: AppConfig{
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"}),
		},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("Warning: invalid integer for %s, using default %d", key, fallback)
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Warning: invalid duration for %s, using default %s", key, fallback)
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return fallback
}
