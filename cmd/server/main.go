package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"esgledger/internal/audit"
	auditHandler "esgledger/internal/audit/handler"
	auditMetrics "esgledger/internal/audit/metrics"
	"esgledger/internal/disclosure"
	disclosureHandler "esgledger/internal/disclosure/handler"
	"esgledger/internal/integrity"
	integrityHandler "esgledger/internal/integrity/handler"
	integrityMetrics "esgledger/internal/integrity/metrics"
	jwttoken "esgledger/internal/jwt_token"
	"esgledger/internal/platform/config"
	"esgledger/internal/platform/httpserver"
	"esgledger/internal/platform/logger"
	"esgledger/internal/platform/postgres"
	"esgledger/internal/platform/redis"
	httptransport "esgledger/internal/transport/http"
	"esgledger/pkg/requestcontext"
)

// main wires the stores, the trail with its sinks, the domain services, and
// the HTTP server. Business logic lives in the internal packages; anything
// beyond dependency assembly and lifecycle is a smell here.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	healthChecks := map[string]httptransport.HealthChecker{}

	var pool *pgxpool.Pool
	if cfg.PostgresURL != "" {
		var err error
		pool, err = postgres.Connect(ctx, cfg.PostgresURL)
		if err != nil {
			log.Error("postgres connection failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		healthChecks["postgres"] = poolHealth{pool}
	}

	var auditStore audit.Store
	var disclosureStore disclosure.Store
	if pool != nil {
		auditStore = audit.NewPostgresStore(pool)
		disclosureStore = disclosure.NewPostgresStore(pool)
	} else {
		log.Warn("no database configured, using in-memory stores")
		auditStore = audit.NewInMemoryStore()
		disclosureStore = disclosure.NewInMemoryStore()
	}

	auditM := auditMetrics.New()

	var sinks []audit.Sink
	var feed *audit.Feed
	redisClient, err := redis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		healthChecks["redis"] = redisClient
		feed = audit.NewFeed(redisClient, 100, log, auditM)
		sinks = append(sinks, feed)
	}

	archiver, err := audit.NewArchiver(cfg.Kafka, log, auditM)
	if err != nil {
		log.Error("kafka archiver setup failed", "error", err)
		os.Exit(1)
	}
	if archiver != nil {
		sinks = append(sinks, archiver)
	}

	trail := audit.NewTrail(auditStore, log, auditM, sinks...)

	disclosureService := disclosure.NewService(disclosureStore, trail, log)
	integrityService := integrity.NewService(
		disclosure.NewIntegrityLoader(disclosureStore),
		trail,
		adminFromContext,
		log,
		integrityMetrics.New(),
	)

	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, "esgledger")

	var activityFeed auditHandler.ActivityFeed
	if feed != nil {
		activityFeed = feed
	}

	router := httptransport.NewRouter(httptransport.Deps{
		Disclosure:   disclosureHandler.New(disclosureService, log),
		Audit:        auditHandler.New(trail, activityFeed, log),
		Integrity:    integrityHandler.New(integrityService, log),
		JWTValidator: jwtService,
		Logger:       log,
		HealthChecks: healthChecks,
	})

	srv := httpserver.New(cfg.Addr, router)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("starting server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if archiver != nil {
		group.Go(func() error {
			return archiver.Run(groupCtx)
		})
	}

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// adminFromContext is the override authorization predicate: the HTTP layer
// puts token roles in the request context, the integrity service asks here.
func adminFromContext(ctx context.Context, _ string) bool {
	return requestcontext.HasRole(ctx, "admin")
}

type poolHealth struct {
	pool *pgxpool.Pool
}

func (h poolHealth) Health(ctx context.Context) error {
	return h.pool.Ping(ctx)
}
