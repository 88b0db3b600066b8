package main

import (
	"context"
	"fmt"
	"os"

	"bookcatalog/internal/book"
	"bookcatalog/internal/config"
	"bookcatalog/internal/console"
	"bookcatalog/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.WithSession(logger.New(cfg, os.Stderr), logger.NewSessionID())

	ctx := context.Background()

	bookRepository := book.NewMemoryRepo()
	bookService := book.NewService(bookRepository)

	if cfg.Seed {
		n, err := book.Seed(ctx, bookService, book.SeedData())
		if err != nil {
			log.Fatal().Err(err).Msg("cannot seed catalog")
		}
		log.Info().Int("books", n).Msg("catalog seeded")
	}

	log.Info().Msg("session started")
	menu := console.NewMenu(bookService, os.Stdin, os.Stdout, log)
	if err := menu.Run(ctx); err != nil {
		log.Error().Err(err).Msg("session ended with error")
		os.Exit(1)
	}
	log.Info().Int("books", bookRepository.Count()).Msg("session ended")
}
