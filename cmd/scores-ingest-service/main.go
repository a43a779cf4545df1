package main

import (
	"context"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/radieske/nba-bet-dashboard-poc/internal/scores-ingest/publisher"
	"github.com/radieske/nba-bet-dashboard-poc/internal/scores-ingest/service"
	"github.com/radieske/nba-bet-dashboard-poc/internal/shared/config"
	"github.com/radieske/nba-bet-dashboard-poc/internal/shared/logger"
	"github.com/radieske/nba-bet-dashboard-poc/internal/shared/metrics"
)

func main() {
	cfg := config.Load()

	log, err := logger.New("scores-ingest-service", cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	log.Info("starting service", zap.String("service", "scores-ingest-service"), zap.String("env", cfg.Env))

	pub := publisher.NewKafkaPublisher(strings.Split(cfg.KafkaBrokers, ","), cfg.TopicScoreUpdates, log)
	defer pub.Close()

	// métricas e health (sem dependência de banco; só o processo)
	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error { return nil })
	log.Info("metrics/health listening", zap.String("port", cfg.MetricsPort))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client := &service.WSClient{
		URL:       cfg.ScoreboardWSURL,
		Log:       log,
		Publisher: pub,
	}

	log.Info("scores-ingest started", zap.String("ws_url", cfg.ScoreboardWSURL),
		zap.String("topic", cfg.TopicScoreUpdates))
	client.Start(ctx)
	log.Info("scores-ingest stopped")
}
