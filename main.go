package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/jhoffmann/masterblog/internal/api"
	"github.com/jhoffmann/masterblog/internal/config"
	"github.com/jhoffmann/masterblog/internal/db"
	"github.com/jhoffmann/masterblog/internal/logger"
	"github.com/jhoffmann/masterblog/internal/store"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "No .env file loaded")
	}

	// Bootstrap with defaults so config loading itself is logged; rebuild
	// once the configured level is known.
	log := logger.New("info")
	config.SetLogger(log)

	if err := config.LoadConfig(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
	}
	cfg := config.AppConfig

	log = logger.New(cfg.Logging.Level)
	config.SetLogger(log)
	db.SetLogger(log)
	store.SetLogger(log)

	backend, err := store.OpenBackend(cfg, cfg.Storage.Backend)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Storage.Backend).Msg("Error initializing storage backend")
	}
	defer backend.Close()

	posts, err := store.New(backend)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading posts")
	}

	if cfg.Content.Seed {
		if err := posts.Seed(); err != nil {
			log.Fatal().Err(err).Msg("Error seeding posts")
		}
	}

	server := api.New(posts, cfg, log)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	log.Info().
		Str("addr", addr).
		Str("backend", cfg.Storage.Backend).
		Msg("Starting server")

	if err := http.ListenAndServe(addr, server.Router()); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
