package main

import (
	"context"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/radieske/nba-bet-dashboard-poc/internal/market-ingest/kalshi"
	"github.com/radieske/nba-bet-dashboard-poc/internal/market-ingest/poller"
	"github.com/radieske/nba-bet-dashboard-poc/internal/market-ingest/publisher"
	"github.com/radieske/nba-bet-dashboard-poc/internal/shared/config"
	"github.com/radieske/nba-bet-dashboard-poc/internal/shared/logger"
	"github.com/radieske/nba-bet-dashboard-poc/internal/shared/metrics"
)

func main() {
	cfg := config.Load()

	log, err := logger.New("market-ingest-service", cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	log.Info("starting service", zap.String("service", "market-ingest-service"), zap.String("env", cfg.Env))

	pub := publisher.NewKafkaPublisher(strings.Split(cfg.KafkaBrokers, ","), cfg.TopicMarketQuotes, log)
	defer pub.Close()

	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error { return nil })
	log.Info("metrics/health listening", zap.String("port", cfg.MetricsPort))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	p := &poller.Poller{
		Client:    kalshi.New(cfg.KalshiBaseURL),
		Publisher: pub,
		Series:    cfg.KalshiSeriesTicker,
		Interval:  cfg.KalshiPollInterval,
		Log:       log,
	}

	log.Info("market-ingest started",
		zap.String("base_url", cfg.KalshiBaseURL),
		zap.String("series", cfg.KalshiSeriesTicker),
		zap.Duration("interval", cfg.KalshiPollInterval))
	p.Run(ctx)
	log.Info("market-ingest stopped")
}
