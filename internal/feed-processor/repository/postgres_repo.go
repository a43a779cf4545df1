package repository

import (
	"context"
	"database/sql"

	"github.com/radieske/nba-bet-dashboard-poc/pkg/contracts/events"
)

// PostgresRepo persiste o estado corrente e o histórico dos dois feeds
// (placar e cotações Kalshi).
type PostgresRepo struct {
	DB *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{DB: db}
}

// UpsertGame grava o estado corrente do jogo e retorna o status anterior
// ("" quando o jogo ainda não existia). O chamador usa a transição
// para detectar a chegada ao final.
func (r *PostgresRepo) UpsertGame(ctx context.Context, e events.ScoreUpdate) (prevStatus string, err error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `SELECT status FROM games WHERE game_id=$1`, e.GameID).Scan(&prevStatus)
	if err != nil && err != sql.ErrNoRows {
		return "", err
	}

	const q = `
		INSERT INTO games
		  (game_id, home_team, away_team, home_score, away_score, status, period, clock, updated_at)
		VALUES
		  ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (game_id) DO UPDATE SET
		  home_team  = EXCLUDED.home_team,
		  away_team  = EXCLUDED.away_team,
		  home_score = EXCLUDED.home_score,
		  away_score = EXCLUDED.away_score,
		  status     = EXCLUDED.status,
		  period     = EXCLUDED.period,
		  clock      = EXCLUDED.clock,
		  updated_at = EXCLUDED.updated_at
	`
	if _, err = tx.ExecContext(ctx, q,
		e.GameID, e.HomeTeam, e.AwayTeam, e.HomeScore, e.AwayScore,
		e.Status, e.Period, e.Clock, e.UpdatedAt,
	); err != nil {
		return "", err
	}

	return prevStatus, tx.Commit()
}

// InsertScoreHistory registra cada atualização de placar recebida.
func (r *PostgresRepo) InsertScoreHistory(ctx context.Context, e events.ScoreUpdate) error {
	const q = `
		INSERT INTO score_history
		  (game_id, home_score, away_score, status, period, clock, updated_at)
		VALUES
		  ($1,$2,$3,$4,$5,$6,$7)
	`
	_, err := r.DB.ExecContext(ctx, q,
		e.GameID, e.HomeScore, e.AwayScore, e.Status, e.Period, e.Clock, e.UpdatedAt,
	)
	return err
}

// UpsertQuote grava a cotação corrente do mercado (chave: ticker).
func (r *PostgresRepo) UpsertQuote(ctx context.Context, e events.MarketQuote) error {
	const q = `
		INSERT INTO market_quotes
		  (ticker, game_id, title, yes_bid, yes_ask, no_bid, no_ask,
		   volume, open_interest, liquidity, status, close_time, updated_at)
		VALUES
		  ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		ON CONFLICT (ticker) DO UPDATE SET
		  game_id       = EXCLUDED.game_id,
		  title         = EXCLUDED.title,
		  yes_bid       = EXCLUDED.yes_bid,
		  yes_ask       = EXCLUDED.yes_ask,
		  no_bid        = EXCLUDED.no_bid,
		  no_ask        = EXCLUDED.no_ask,
		  volume        = EXCLUDED.volume,
		  open_interest = EXCLUDED.open_interest,
		  liquidity     = EXCLUDED.liquidity,
		  status        = EXCLUDED.status,
		  close_time    = EXCLUDED.close_time,
		  updated_at    = EXCLUDED.updated_at
	`
	_, err := r.DB.ExecContext(ctx, q,
		e.Ticker, e.GameID, e.Title, e.YesBid, e.YesAsk, e.NoBid, e.NoAsk,
		e.Volume, e.OpenInterest, e.Liquidity, e.Status, e.CloseTime, e.UpdatedAt,
	)
	return err
}

// InsertQuoteHistory registra cada cotação recebida.
func (r *PostgresRepo) InsertQuoteHistory(ctx context.Context, e events.MarketQuote) error {
	const q = `
		INSERT INTO market_quote_history
		  (ticker, game_id, yes_bid, yes_ask, no_bid, no_ask, volume, open_interest, liquidity, status, updated_at)
		VALUES
		  ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`
	_, err := r.DB.ExecContext(ctx, q,
		e.Ticker, e.GameID, e.YesBid, e.YesAsk, e.NoBid, e.NoAsk,
		e.Volume, e.OpenInterest, e.Liquidity, e.Status, e.UpdatedAt,
	)
	return err
}
