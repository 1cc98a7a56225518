package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"

	"sebit-engine/internal/config"
	"sebit-engine/internal/handler"
)

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg := config.Load()

	h, err := handler.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("handler initialization failed")
	}

	log.Info().Str("port", cfg.Port).Msg("sebit engine starting")
	if err := fasthttp.ListenAndServe(":"+cfg.Port, h.Handle); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
