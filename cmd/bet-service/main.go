package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	bhttp "github.com/radieske/nba-bet-dashboard-poc/internal/bet-service/http"
	kpub "github.com/radieske/nba-bet-dashboard-poc/internal/bet-service/producer"
	"github.com/radieske/nba-bet-dashboard-poc/internal/bet-service/repo"
	"github.com/radieske/nba-bet-dashboard-poc/internal/bet-service/wallet"
	"github.com/radieske/nba-bet-dashboard-poc/internal/shared/config"
	"github.com/radieske/nba-bet-dashboard-poc/internal/shared/db"
	"github.com/radieske/nba-bet-dashboard-poc/internal/shared/logger"
)

func main() {
	cfg := config.Load()
	log, _ := logger.New("bet-service", cfg.Env)
	defer log.Sync()

	// Postgres
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("pg", zap.Error(err))
	}
	defer pg.Close()

	// Kafka writer (topic bet_placed)
	writer := kafkago.NewWriter(kafkago.WriterConfig{
		Brokers:  strings.Split(cfg.KafkaBrokers, ","),
		Topic:    cfg.TopicBetPlaced,
		Balancer: &kafkago.LeastBytes{},
	})
	defer writer.Close()

	// deps
	repository := repo.NewPostgres(pg)
	wcli := wallet.New(cfg.WalletURL)
	publ := kpub.NewKafkaPublisher(writer, cfg.TopicBetPlaced)

	// HTTP público
	api := bhttp.NewServer(log, repository, wcli, publ)
	apiSrv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: api.Router(),
	}

	// metrics/health
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsMux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := pg.PingContext(r.Context()); err != nil {
			http.Error(w, "pg", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	go func() {
		addr := fmt.Sprintf(":%s", cfg.MetricsPort)
		log.Info("metrics/health", zap.String("addr", addr))
		_ = http.ListenAndServe(addr, metricsMux)
	}()

	log.Info("bet-service listening", zap.String("addr", fmt.Sprintf(":%s", cfg.HTTPPort)))
	if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("api", zap.Error(err))
	}
}
