package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "staycation/internal/adapters/http_server"
	"staycation/internal/adapters/observability"
	"staycation/internal/adapters/payment"
	redisad "staycation/internal/adapters/redis"
	"staycation/internal/app"
	"staycation/internal/auth"
	"staycation/internal/catalog"
	"staycation/internal/domain"
	"staycation/internal/pricing"
	"staycation/internal/shared"
	"staycation/internal/storage/memory"
	mysqlrepo "staycation/internal/storage/mysql"
)

type store interface {
	domain.HotelRepository
	domain.UserRepository
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	// cache
	var cache domain.Cache = redisad.Nop{}
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := rc.Ping(ctx); err != nil {
			log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("redis ping failed")
		}
		defer rc.Close()
		cache = rc
		log.Info().Str("addr", cfg.RedisAddr).Msg("redis cache enabled")
	}

	// storage
	var repo store
	switch cfg.Storage {
	case shared.StorageMySQL:
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")
		repo = mysqlrepo.New(db)
	default:
		mem := memory.New()
		ing := app.NewIngestionService(catalog.FileSource{Path: cfg.CatalogFile}, mem, cache)
		n, err := ing.Run(ctx, cfg.SeedWorkers)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.CatalogFile).Msg("catalog seed failed")
		}
		log.Info().Int("hotels", n).Str("file", cfg.CatalogFile).Msg("in-memory store seeded")
		repo = mem
	}

	// auth
	hasher, err := auth.NewHasher(auth.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("password hasher init failed")
	}
	tokens, err := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatal().Err(err).Str("env", cfg.AppEnv).Msg("token issuer init failed; set JWT_SECRET")
	}

	// deps
	calc := pricing.New(cfg.TaxRate)
	h := &server.Handlers{
		Auth:        app.NewAuthService(repo, hasher, tokens),
		Users:       app.NewUserService(repo),
		Bookings:    app.NewBookingService(repo, repo, payment.NewPlaceholder(), calc),
		Reviews:     app.NewReviewService(repo, cache, cfg.CacheTTL),
		Q:           app.NewQueryService(repo, cache, cfg.CacheTTL),
		AuthLimiter: server.NewRateLimiter(cfg.AuthRateRPS, cfg.AuthRateBurst),
	}

	// http
	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	var srvOpts []server.Option
	if cfg.TrustProxy {
		srvOpts = append(srvOpts, server.WithTrustedProxy())
	}
	srv := server.New(srvOpts...)
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(h)

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Mux(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Str("storage", cfg.Storage).Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
