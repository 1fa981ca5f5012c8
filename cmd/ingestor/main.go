// The ingestor loads the cleaned hotels CSV into MySQL so the API can source
// its catalog from the database (CATALOG_SOURCE=mysql).
package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"hotel_recs/internal/adapters/observability"
	"hotel_recs/internal/shared"
	"hotel_recs/internal/storage/csvfile"
	mysqlrepo "hotel_recs/internal/storage/mysql"
)

const batchSize = 100

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("dataset", cfg.DatasetPath).
		Int("workers", cfg.Workers).
		Msg("ingestor starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	hotels, err := csvfile.New(cfg.DatasetPath).LoadHotels(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("dataset load failed")
	}
	log.Info().Int("hotels", len(hotels)).Msg("dataset parsed")

	repo := mysqlrepo.New(db)
	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for start := 0; start < len(hotels); start += batchSize {
		end := start + batchSize
		if end > len(hotels) {
			end = len(hotels)
		}
		batch := hotels[start:end]

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(first string, n int) {
			defer wg.Done()
			defer sem.Release(1)

			if err := repo.UpsertHotels(ctx, batch); err != nil {
				log.Warn().Str("first_id", first).Int("count", n).Err(err).Msg("upsert batch failed")
				return
			}
			log.Info().Str("first_id", first).Int("count", n).Msg("batch ok")
		}(batch[0].PropertyID, len(batch))
	}

	wg.Wait()
	log.Info().Msg("ingestion completed")
}
