package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"staycation/internal/adapters/catalogsrc"
	"staycation/internal/adapters/observability"
	redisad "staycation/internal/adapters/redis"
	"staycation/internal/app"
	"staycation/internal/catalog"
	"staycation/internal/domain"
	"staycation/internal/shared"
	mysqlrepo "staycation/internal/storage/mysql"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	var src domain.CatalogSource = catalog.FileSource{Path: cfg.CatalogFile}
	if cfg.CatalogSourceURL != "" {
		client, err := catalogsrc.New(cfg.CatalogSourceURL, cfg.CatalogSourceKey, 5)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize catalog client")
		}
		src = client
	}

	log.Info().
		Str("source", sourceName(cfg)).
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	var cache domain.Cache = redisad.Nop{}
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rc.Close()
		cache = rc
	}

	ing := app.NewIngestionService(src, mysqlrepo.New(db), cache)

	// seeder [hotel-id ...]: with ids, only those hotels are re-fetched.
	ids, err := parseIDs(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("invalid hotel id argument")
	}
	var n int
	if len(ids) > 0 {
		n, err = ing.Refresh(ctx, ids, cfg.SeedWorkers)
	} else {
		n, err = ing.Run(ctx, cfg.SeedWorkers)
	}
	if err != nil {
		log.Fatal().Err(err).Int("stored", n).Msg("seeding failed")
	}
	log.Info().Int("stored", n).Int("requested", len(ids)).Msg("seeding completed")
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, a := range args {
		id, err := strconv.ParseInt(a, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("hotel id %q must be a positive integer", a)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func sourceName(cfg shared.Config) string {
	if cfg.CatalogSourceURL != "" {
		return cfg.CatalogSourceURL
	}
	return cfg.CatalogFile
}
