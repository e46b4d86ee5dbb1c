package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wordarena/go-server/internal/game"
	"github.com/wordarena/go-server/internal/httpserver"
	"github.com/wordarena/go-server/internal/results"
	"github.com/wordarena/go-server/internal/store"
	"github.com/wordarena/go-server/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	dict, err := words.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	answers, allowed := dict.Stats()
	log.Info().Int("answers", answers).Int("allowed", allowed).Msg("word lists loaded")

	rec, err := results.Open(getEnv("RESULTS_DB", "./data/results.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open results db")
	}
	defer rec.Close()

	machine := game.NewMachine(store.NewMemory(), dict)
	srv := httpserver.New(machine, dict, rec)
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Msg("starting go-server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
