package main

import (
	"flag"

	"github.com/joho/godotenv"

	"github.com/jhoffmann/masterblog/internal/config"
	"github.com/jhoffmann/masterblog/internal/db"
	"github.com/jhoffmann/masterblog/internal/logger"
	"github.com/jhoffmann/masterblog/internal/store"
)

// main copies the whole post collection from one storage backend to
// another, e.g. from the JSON file into sqlite.
func main() {
	configPath := flag.String("config", "config.yaml", "Path to the configuration file")
	from := flag.String("from", "", "Source backend (memory, file, sqlite, s3)")
	to := flag.String("to", "", "Destination backend (memory, file, sqlite, s3)")
	flag.Parse()

	log := logger.New("info")
	config.SetLogger(log)
	db.SetLogger(log)
	store.SetLogger(log)

	if *from == "" || *to == "" || *from == *to {
		log.Fatal().Msg("Both --from and --to flags are required and must differ")
	}

	_ = godotenv.Load()

	if err := config.LoadConfig(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
	}
	cfg := config.AppConfig

	source, err := store.OpenBackend(cfg, *from)
	if err != nil {
		log.Fatal().Err(err).Str("backend", *from).Msg("Error opening source backend")
	}
	defer source.Close()

	dest, err := store.OpenBackend(cfg, *to)
	if err != nil {
		log.Fatal().Err(err).Str("backend", *to).Msg("Error opening destination backend")
	}
	defer dest.Close()

	posts, err := source.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading posts from source")
	}

	if err := dest.Save(posts); err != nil {
		log.Fatal().Err(err).Msg("Error saving posts to destination")
	}

	log.Info().
		Int("count", len(posts)).
		Str("from", *from).
		Str("to", *to).
		Msg("Migration complete")
}
