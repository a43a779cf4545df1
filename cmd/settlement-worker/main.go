package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/radieske/nba-bet-dashboard-poc/internal/settlement"
	"github.com/radieske/nba-bet-dashboard-poc/internal/shared/config"
	"github.com/radieske/nba-bet-dashboard-poc/internal/shared/db"
	sharedkafka "github.com/radieske/nba-bet-dashboard-poc/internal/shared/kafka"
	"github.com/radieske/nba-bet-dashboard-poc/internal/shared/logger"
)

func main() {
	cfg := config.Load()
	log, err := logger.New("settlement-worker", cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("pg connect", zap.Error(err))
	}
	defer pg.Close()

	// Consome game_finals; publica bet_settled; DLQ para finais não liquidáveis
	reader := sharedkafka.NewReader(cfg.KafkaBrokers, cfg.TopicGameFinals, "settlement")
	defer reader.Close()

	settledWriter := sharedkafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBetSettled)
	defer settledWriter.Close()

	var dlqWriter *kafkago.Writer
	if cfg.TopicGameFinalsDLQ != "" {
		dlqWriter = sharedkafka.NewWriter(cfg.KafkaBrokers, cfg.TopicGameFinalsDLQ)
		defer dlqWriter.Close()
	}

	settledTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "settlement_bets_settled_total", Help: "apostas liquidadas"})
	errorsBy := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "settlement_errors_total", Help: "erros por estágio"}, []string{"stage"})
	prometheus.MustRegister(settledTotal, errorsBy)

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()
			if err := pg.PingContext(ctx); err != nil {
				http.Error(w, "pg", http.StatusServiceUnavailable)
				return
			}
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})
		addr := ":" + cfg.MetricsPort
		log.Info("metrics/health", zap.String("addr", addr))
		_ = http.ListenAndServe(addr, mux)
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	worker := &settlement.Worker{
		Log:           log,
		Reader:        reader,
		Repo:          settlement.NewRepo(pg),
		Wallet:        settlement.NewWalletClient(cfg.WalletURL),
		SettledWriter: settledWriter,
		DLQWriter:     dlqWriter,
		OnSettled:     func() { settledTotal.Inc() },
		OnError:       func(stage string) { errorsBy.WithLabelValues(stage).Inc() },
	}

	log.Info("settlement-worker started",
		zap.String("consume", cfg.TopicGameFinals),
		zap.String("publish", cfg.TopicBetSettled))
	if err := worker.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal("worker stopped with error", zap.Error(err))
	}
	log.Info("settlement-worker stopped")
}
