package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/radieske/nba-bet-dashboard-poc/pkg/contracts/events"
)

// KafkaPublisher publica cotações no tópico market_quotes.
type KafkaPublisher struct {
	writer *kafka.Writer
	log    *zap.Logger
}

func NewKafkaPublisher(brokers []string, topic string, log *zap.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
		ReadTimeout:            10 * time.Second,
		WriteTimeout:           10 * time.Second,
	}
	return &KafkaPublisher{writer: writer, log: log}
}

// Publish envia a cotação com o ticker como chave.
func (p *KafkaPublisher) Publish(ctx context.Context, e events.MarketQuote) error {
	value, err := json.Marshal(e)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   []byte(e.Ticker),
		Value: value,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Error("failed to publish market quote", zap.Error(err))
		return err
	}
	p.log.Debug("published market quote", zap.String("ticker", e.Ticker))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
