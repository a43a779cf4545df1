package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	dcache "github.com/radieske/nba-bet-dashboard-poc/internal/dashboard/cache"
	dhttp "github.com/radieske/nba-bet-dashboard-poc/internal/dashboard/http"
	"github.com/radieske/nba-bet-dashboard-poc/internal/dashboard/repo"
	"github.com/radieske/nba-bet-dashboard-poc/internal/dashboard/ws"
	sharedcache "github.com/radieske/nba-bet-dashboard-poc/internal/shared/cache"
	"github.com/radieske/nba-bet-dashboard-poc/internal/shared/config"
	"github.com/radieske/nba-bet-dashboard-poc/internal/shared/db"
	"github.com/radieske/nba-bet-dashboard-poc/internal/shared/logger"
)

func main() {
	cfg := config.Load()

	log, err := logger.New("dashboard-service", cfg.Env)
	if err != nil {
		panic(fmt.Errorf("logger init: %w", err))
	}
	defer log.Sync()
	log.Info("starting service", zap.String("service", "dashboard-service"), zap.String("env", cfg.Env))

	// conecta com db Postgres
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()
	log.Info("postgres connected")

	// conecta com cache Redis
	redisClient, err := sharedcache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("failed to connect redis", zap.Error(err))
	}
	defer redisClient.Close()
	log.Info("redis connected")

	// hub WebSocket alimentado pelo Pub/Sub do feed-processor
	hub := ws.NewHub(func(r *http.Request) bool { return true }) // POC: aceita qualquer origem

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	ws.StartRedisSubscriber(ctx, log, redisClient, cfg.RedisPubSubChannel, hub)

	api := &dhttp.API{
		ReadRepo: &repo.ReadRepo{DB: pg},
		Cache:    dcache.New(redisClient),
		Hub:      hub,
	}

	apiSrv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: api.Router(),
	}

	// métricas e health
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsMux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		hctx, hcancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer hcancel()
		if err := pg.PingContext(hctx); err != nil {
			http.Error(w, "postgres not healthy: "+err.Error(), http.StatusServiceUnavailable)
			return
		}
		if err := redisClient.Ping(hctx).Err(); err != nil {
			http.Error(w, "redis not healthy: "+err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	go func() {
		addr := ":" + cfg.MetricsPort
		log.Info("metrics/health listening", zap.String("addr", addr))
		_ = http.ListenAndServe(addr, metricsMux)
	}()

	go func() {
		<-ctx.Done()
		sctx, scancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer scancel()
		_ = apiSrv.Shutdown(sctx)
	}()

	log.Info("dashboard api listening", zap.String("addr", apiSrv.Addr))
	if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("api srv", zap.Error(err))
	}
	log.Info("dashboard-service stopped")
}
