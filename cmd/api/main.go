package main

import (
	"context"
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"hotel_recs/internal/adapters/embedder"
	server "hotel_recs/internal/adapters/http_server"
	"hotel_recs/internal/adapters/observability"
	redisad "hotel_recs/internal/adapters/redis"
	"hotel_recs/internal/app"
	"hotel_recs/internal/domain"
	"hotel_recs/internal/shared"
	"hotel_recs/internal/storage/csvfile"
	mysqlrepo "hotel_recs/internal/storage/mysql"
)

// Dev frontends allowed by CORS.
var corsOrigins = []string{"http://localhost:3000", "http://localhost:5173"}

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	var emb domain.Embedder
	switch cfg.EmbedProvider {
	case "mock":
		emb = embedder.NewMock(384)
	case "openai":
		cl, err := embedder.New(cfg.EmbedBaseURL, cfg.EmbedAPIKey, cfg.EmbedModel, cfg.EmbedRPS)
		if err != nil {
			log.Fatal().Err(err).Msg("embedder init failed")
		}
		emb = cl
	default:
		log.Fatal().Str("provider", cfg.EmbedProvider).Msg("EMBEDDINGS_PROVIDER must be openai or mock")
	}

	var src domain.CatalogSource
	switch cfg.CatalogSource {
	case "csv":
		src = csvfile.New(cfg.DatasetPath)
	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")
		src = mysqlrepo.New(db)
	default:
		log.Fatal().Str("source", cfg.CatalogSource).Msg("CATALOG_SOURCE must be csv or mysql")
	}

	// one-time batch: load, score, index. Fatal on any failure so a partial
	// catalog is never served.
	cat, idx, err := app.BuildCatalog(context.Background(), src, emb, cfg.Workers)
	if err != nil {
		log.Fatal().Err(err).Msg("catalog initialization failed")
	}

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	q := app.NewQueryService(cat, idx, emb, cache, cfg.EmbedModel, cfg.CacheTTL)

	// http
	srv := server.New(corsOrigins)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q})

	log.Info().Str("addr", cfg.HTTPAddr).Int("hotels", cat.Len()).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
