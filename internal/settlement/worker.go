package settlement

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/radieske/nba-bet-dashboard-poc/pkg/betmath"
	"github.com/radieske/nba-bet-dashboard-poc/pkg/contracts/events"
)

// Worker consome game_finals e liquida as apostas do jogo: apostas simples
// direto pelo placar, pernas de parlay uma a uma e o parlay inteiro quando
// todas as pernas resolvem. Falha repetida manda o evento para a DLQ.
type Worker struct {
	Log           *zap.Logger
	Reader        *kafkago.Reader
	Repo          *Repo
	Wallet        *WalletClient
	SettledWriter *kafkago.Writer
	DLQWriter     *kafkago.Writer

	OnSettled func()
	OnError   func(string)
}

const settleRetries = 3

func (w *Worker) Run(ctx context.Context) error {
	for {
		msg, err := w.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			w.Log.Warn("kafka read", zap.Error(err))
			if w.OnError != nil {
				w.OnError("read")
			}
			time.Sleep(time.Second)
			continue
		}

		var fin events.GameFinalized
		if jerr := json.Unmarshal(msg.Value, &fin); jerr != nil {
			w.Log.Error("unmarshal game final", zap.Error(jerr))
			if w.OnError != nil {
				w.OnError("decode")
			}
			continue
		}

		if err := w.settleGameWithRetry(ctx, fin); err != nil {
			w.Log.Error("settle game failed, sending to DLQ",
				zap.String("game_id", fin.GameID), zap.Error(err))
			if w.OnError != nil {
				w.OnError("settle")
			}
			if w.DLQWriter != nil {
				_ = w.DLQWriter.WriteMessages(ctx, kafkago.Message{
					Key:   []byte(fin.GameID),
					Value: msg.Value,
					Time:  time.Now(),
				})
			}
		}
	}
}

func (w *Worker) settleGameWithRetry(ctx context.Context, fin events.GameFinalized) error {
	var err error
	for i := 0; i < settleRetries; i++ {
		if err = w.settleGame(ctx, fin); err == nil {
			return nil
		}
		time.Sleep(time.Duration(300*(i+1)) * time.Millisecond)
	}
	return err
}

func (w *Worker) settleGame(ctx context.Context, fin events.GameFinalized) error {
	// 1. apostas simples do jogo
	singles, err := w.Repo.SingleBetsByGame(ctx, fin.GameID)
	if err != nil {
		return fmt.Errorf("list single bets: %w", err)
	}
	for _, b := range singles {
		outcome := SettleSingle(b.Selection, fin.HomeScore, fin.AwayScore)
		if err := w.closeBet(ctx, b, fin.GameID, outcome); err != nil {
			return err
		}
	}

	// 2. pernas pendentes deste jogo
	winner := WinnerSide(fin.HomeScore, fin.AwayScore)
	legs, err := w.Repo.PendingLegsByGame(ctx, fin.GameID)
	if err != nil {
		return fmt.Errorf("list pending legs: %w", err)
	}
	for _, l := range legs {
		res := LegResultFor(l.Selection, winner)
		if res == betmath.LegPending {
			continue
		}
		if err := w.Repo.UpdateLegResult(ctx, l.ID, string(res)); err != nil {
			return fmt.Errorf("update leg %s: %w", l.ID, err)
		}
	}

	// 3. parlays tocados pelo jogo, com as pernas já atualizadas
	parlays, legsByBet, err := w.Repo.ParlaysTouchingGame(ctx, fin.GameID)
	if err != nil {
		return fmt.Errorf("list parlays: %w", err)
	}
	for betID, b := range parlays {
		results := make([]betmath.LegResult, 0, len(legsByBet[betID]))
		for _, l := range legsByBet[betID] {
			results = append(results, betmath.LegResult(l.Result))
		}
		outcome := betmath.ConsistentOutcome(results)
		if outcome == betmath.OutcomePending {
			continue // ainda há perna aberta e nenhuma perdida
		}
		if err := w.closeBet(ctx, b, fin.GameID, outcome); err != nil {
			return err
		}
	}
	return nil
}

// closeBet fecha a aposta uma única vez, acerta a carteira e publica o evento.
func (w *Worker) closeBet(ctx context.Context, b PendingBet, gameID string, outcome betmath.BetOutcome) error {
	actual := ActualReturnCents(outcome, b.StakeCents, b.PotentialReturnCents)

	settled, err := w.Repo.SettleBet(ctx, b.ID, string(outcome), actual)
	if err != nil {
		return fmt.Errorf("settle bet %s: %w", b.ID, err)
	}
	if !settled {
		return nil // outra execução já liquidou
	}

	// Carteira: win gasta a reserva e credita o retorno; loss só gasta a
	// reserva; push devolve o stake. Operações idempotentes no wallet-service.
	switch outcome {
	case betmath.OutcomeWin:
		if err := w.Wallet.Commit(ctx, b.UserID, b.ID); err != nil {
			w.Log.Error("wallet commit", zap.String("betId", b.ID), zap.Error(err))
		}
		if err := w.Wallet.Payout(ctx, b.UserID, actual, b.ID); err != nil {
			w.Log.Error("wallet payout", zap.String("betId", b.ID), zap.Error(err))
		}
	case betmath.OutcomeLoss:
		if err := w.Wallet.Commit(ctx, b.UserID, b.ID); err != nil {
			w.Log.Error("wallet commit", zap.String("betId", b.ID), zap.Error(err))
		}
	case betmath.OutcomePush:
		if err := w.Wallet.Refund(ctx, b.UserID, b.ID); err != nil {
			w.Log.Error("wallet refund", zap.String("betId", b.ID), zap.Error(err))
		}
	}

	ev := events.BetSettled{
		BetID:             b.ID,
		UserID:            b.UserID,
		GameID:            gameID,
		Outcome:           string(outcome),
		ActualReturnCents: actual,
		Ts:                time.Now().UTC(),
	}
	value, _ := json.Marshal(ev)
	if err := w.SettledWriter.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(b.ID),
		Value: value,
		Time:  time.Now(),
	}); err != nil {
		w.Log.Error("publish bet_settled", zap.String("betId", b.ID), zap.Error(err))
	}

	if w.OnSettled != nil {
		w.OnSettled()
	}
	w.Log.Info("bet settled", zap.String("betId", b.ID),
		zap.String("outcome", string(outcome)), zap.Int64("actual_return_cents", actual))
	return nil
}
