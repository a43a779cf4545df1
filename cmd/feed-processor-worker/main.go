package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/radieske/nba-bet-dashboard-poc/pkg/contracts/events"

	"github.com/radieske/nba-bet-dashboard-poc/internal/feed-processor/cache"
	"github.com/radieske/nba-bet-dashboard-poc/internal/feed-processor/consumer"
	"github.com/radieske/nba-bet-dashboard-poc/internal/feed-processor/pubsub"
	"github.com/radieske/nba-bet-dashboard-poc/internal/feed-processor/repository"
	sharedcache "github.com/radieske/nba-bet-dashboard-poc/internal/shared/cache"
	"github.com/radieske/nba-bet-dashboard-poc/internal/shared/config"
	"github.com/radieske/nba-bet-dashboard-poc/internal/shared/db"
	sharedkafka "github.com/radieske/nba-bet-dashboard-poc/internal/shared/kafka"
	"github.com/radieske/nba-bet-dashboard-poc/internal/shared/logger"
)

func main() {
	cfg := config.Load()
	log, err := logger.New("feed-processor-worker", cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Dependências: Postgres e Redis
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("postgres connect", zap.Error(err))
	}
	defer pg.Close()

	redisClient, err := sharedcache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis connect", zap.Error(err))
	}
	defer redisClient.Close()

	ttl := 60 * time.Second
	rcache := cache.NewRedisCache(redisClient, ttl)
	repo := repository.NewPostgresRepo(pg)

	scoreReader := sharedkafka.NewReader(cfg.KafkaBrokers, cfg.TopicScoreUpdates, "feed-processor")
	defer scoreReader.Close()

	quoteReader := sharedkafka.NewReader(cfg.KafkaBrokers, cfg.TopicMarketQuotes, "feed-processor")
	defer quoteReader.Close()

	finalsWriter := sharedkafka.NewWriter(cfg.KafkaBrokers, cfg.TopicGameFinals)
	defer finalsWriter.Close()

	// Métricas Prometheus por feed e por estágio
	consumed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "feed_proc_messages_consumed_total", Help: "mensagens consumidas"}, []string{"feed"})
	cached := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "feed_proc_cache_sets_total", Help: "sets no cache"}, []string{"feed"})
	persist := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "feed_proc_db_writes_total", Help: "escritas no banco (upsert+history)"}, []string{"feed"})
	errorsBy := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "feed_proc_errors_total", Help: "erros por estágio"}, []string{"feed", "stage"})
	prometheus.MustRegister(consumed, cached, persist, errorsBy)

	broadcaster := pubsub.NewRedisBroadcaster(redisClient)

	// Publica o envelope no canal do dashboard após persistir
	broadcast := func(gameID, kind string, payload any) {
		msg := pubsub.WSUpdate{GameID: gameID, Kind: kind, Payload: payload}
		b, _ := json.Marshal(msg)

		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := broadcaster.Publish(ctx, cfg.RedisPubSubChannel, b); err != nil {
			log.Warn("ws broadcast publish failed", zap.Error(err))
		}
	}

	scoreProc := &consumer.ScoreProcessor{
		Log:    log,
		Reader: scoreReader,
		Repo:   repo,
		Cache:  rcache,
		PublishFinal: func(ctx context.Context, e events.GameFinalized) error {
			b, _ := json.Marshal(e)
			return sharedkafka.WriteJSON(ctx, finalsWriter, e.GameID, b)
		},
		OnConsumed:     func() { consumed.WithLabelValues("score").Inc() },
		OnCached:       func() { cached.WithLabelValues("score").Inc() },
		OnPersist:      func() { persist.WithLabelValues("score").Inc() },
		OnError:        func(stage string) { errorsBy.WithLabelValues("score", stage).Inc() },
		OnAfterPersist: func(ev events.ScoreUpdate) { broadcast(ev.GameID, "score", ev) },
	}

	quoteProc := &consumer.QuoteProcessor{
		Log:            log,
		Reader:         quoteReader,
		Repo:           repo,
		Cache:          rcache,
		OnConsumed:     func() { consumed.WithLabelValues("quote").Inc() },
		OnCached:       func() { cached.WithLabelValues("quote").Inc() },
		OnPersist:      func() { persist.WithLabelValues("quote").Inc() },
		OnError:        func(stage string) { errorsBy.WithLabelValues("quote", stage).Inc() },
		OnAfterPersist: func(ev events.MarketQuote) { broadcast(ev.GameID, "quote", ev) },
	}

	// Servidor HTTP para métricas e health check
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
			defer cancel()
			if err := pg.PingContext(ctx); err != nil {
				http.Error(w, "pg", http.StatusServiceUnavailable)
				return
			}
			if err := redisClient.Ping(ctx).Err(); err != nil {
				http.Error(w, "redis", http.StatusServiceUnavailable)
				return
			}
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})
		addr := fmt.Sprintf(":%s", cfg.MetricsPort)
		log.Info("metrics/health listening", zap.String("addr", addr))
		_ = http.ListenAndServe(addr, mux)
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("feed-processor started",
		zap.String("scores_topic", cfg.TopicScoreUpdates),
		zap.String("quotes_topic", cfg.TopicMarketQuotes))

	errCh := make(chan error, 2)
	go func() { errCh <- scoreProc.Run(ctx) }()
	go func() { errCh <- quoteProc.Run(ctx) }()

	if err := <-errCh; err != nil && ctx.Err() == nil {
		log.Fatal("processor stopped with error", zap.Error(err))
	}
	log.Info("feed-processor stopped")
}
