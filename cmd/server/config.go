package main

import (
	"os"

	"github.com/buzkaaclicker/folio/stats"
)

type config struct {
	debug bool

	supabaseUrl        string
	supabaseAnonKey    string
	supabaseServiceKey string
	supabaseBucket     string

	pgDsn     string
	uploadDir string

	youtubeApiKey    string
	youtubeChannelId string

	listenAddr   string
	allowOrigins string
	kvPath       string
}

func envOr(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Every setting is optional. Missing store credentials leave the page on
// built-in content, they never stop the server.
func configFromEnv() config {
	debug := os.Getenv("DEBUG") == "true"

	listenAddr := ":2137"
	allowOrigins := "*"
	if debug {
		listenAddr = "127.0.0.1:2137"
		allowOrigins = "http://localhost:3000, http://127.0.0.1:3000"
	}

	anonKey := os.Getenv("SUPABASE_ANON_KEY")
	return config{
		debug:              debug,
		supabaseUrl:        os.Getenv("SUPABASE_URL"),
		supabaseAnonKey:    anonKey,
		supabaseServiceKey: envOr("SUPABASE_SERVICE_ROLE_KEY", anonKey),
		supabaseBucket:     envOr("SUPABASE_BUCKET", "avatars"),
		pgDsn:              os.Getenv("POSTGRES_DSN"),
		uploadDir:          os.Getenv("UPLOAD_DIR"),
		youtubeApiKey:      os.Getenv("YOUTUBE_API_KEY"),
		youtubeChannelId:   envOr("YOUTUBE_CHANNEL_ID", stats.DefaultChannelId),
		listenAddr:         envOr("LISTEN_ADDR", listenAddr),
		allowOrigins:       envOr("ALLOW_ORIGINS", allowOrigins),
		kvPath:             envOr("KV_PATH", "kv.db"),
	}
}
