package repo

import (
	"context"
	"database/sql"
)

// ReadRepo agrupa as consultas de leitura do dashboard.
// Todas as tabelas são alimentadas por outros serviços; aqui nada escreve.
type ReadRepo struct {
	DB *sql.DB
}

func (r *ReadRepo) ListGames(ctx context.Context) ([]Game, error) {
	const q = `
		SELECT game_id, home_team, away_team, home_score, away_score, status, period, clock, updated_at
		FROM games
		ORDER BY game_id;
	`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Game
	for rows.Next() {
		var g Game
		if err := rows.Scan(&g.GameID, &g.HomeTeam, &g.AwayTeam, &g.HomeScore, &g.AwayScore,
			&g.Status, &g.Period, &g.Clock, &g.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *ReadRepo) GetGame(ctx context.Context, gameID string) (*Game, error) {
	const q = `
		SELECT game_id, home_team, away_team, home_score, away_score, status, period, clock, updated_at
		FROM games WHERE game_id = $1;
	`
	var g Game
	err := r.DB.QueryRowContext(ctx, q, gameID).Scan(&g.GameID, &g.HomeTeam, &g.AwayTeam,
		&g.HomeScore, &g.AwayScore, &g.Status, &g.Period, &g.Clock, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *ReadRepo) RecommendationsByGame(ctx context.Context, gameID string) ([]Recommendation, error) {
	const q = `
		SELECT game_id, market, pick, edge_pct, ev_pct, confidence, sharp_money_pct, model, rationale, created_at
		FROM recommendations
		WHERE game_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.DB.QueryContext(ctx, q, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Recommendation
	for rows.Next() {
		var rec Recommendation
		if err := rows.Scan(&rec.GameID, &rec.Market, &rec.Pick, &rec.EdgePct, &rec.EVPct,
			&rec.Confidence, &rec.SharpMoneyPct, &rec.Model, &rec.Rationale, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *ReadRepo) QuotesByGame(ctx context.Context, gameID string) ([]MarketQuote, error) {
	const q = `
		SELECT ticker, game_id, title, yes_bid, yes_ask, no_bid, no_ask,
		       volume, open_interest, liquidity, status, close_time, updated_at
		FROM market_quotes
		WHERE game_id = $1
		ORDER BY ticker;
	`
	rows, err := r.DB.QueryContext(ctx, q, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanQuotes(rows)
}

// QuotesForLiveGames retorna as cotações de todos os jogos em andamento,
// insumo do detector de hedge.
func (r *ReadRepo) QuotesForLiveGames(ctx context.Context) ([]MarketQuote, error) {
	const q = `
		SELECT mq.ticker, mq.game_id, mq.title, mq.yes_bid, mq.yes_ask, mq.no_bid, mq.no_ask,
		       mq.volume, mq.open_interest, mq.liquidity, mq.status, mq.close_time, mq.updated_at
		FROM market_quotes mq
		JOIN games g ON g.game_id = mq.game_id
		WHERE g.status = 'in_progress'
		ORDER BY mq.ticker;
	`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanQuotes(rows)
}

func scanQuotes(rows *sql.Rows) ([]MarketQuote, error) {
	var out []MarketQuote
	for rows.Next() {
		var mq MarketQuote
		if err := rows.Scan(&mq.Ticker, &mq.GameID, &mq.Title, &mq.YesBid, &mq.YesAsk, &mq.NoBid, &mq.NoAsk,
			&mq.Volume, &mq.OpenInterest, &mq.Liquidity, &mq.Status, &mq.CloseTime, &mq.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, mq)
	}
	return out, rows.Err()
}

// PropLeaders ranqueia jogadores pelo prop score derivado das médias da temporada.
func (r *ReadRepo) PropLeaders(ctx context.Context, limit int) ([]PlayerSeasonStats, error) {
	const q = `
		SELECT player_id, name, team, points, rebounds, assists, usage_pct, season
		FROM player_season_stats
		ORDER BY points + 0.75*rebounds + 0.75*assists DESC
		LIMIT $1;
	`
	rows, err := r.DB.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PlayerSeasonStats
	for rows.Next() {
		var p PlayerSeasonStats
		if err := rows.Scan(&p.PlayerID, &p.Name, &p.Team, &p.Points, &p.Rebounds, &p.Assists,
			&p.UsagePct, &p.Season); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// BetsByUser retorna o histórico do usuário (mais recentes primeiro) com as pernas.
func (r *ReadRepo) BetsByUser(ctx context.Context, userID string) ([]Bet, map[string][]BetLeg, error) {
	const q = `
		SELECT id, user_id, game_id, market, selection, description, stake_cents, american_odds,
		       outcome, potential_return_cents, actual_return_cents, created_at
		FROM bets
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.DB.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var bets []Bet
	for rows.Next() {
		var b Bet
		if err := rows.Scan(&b.ID, &b.UserID, &b.GameID, &b.Market, &b.Selection, &b.Description,
			&b.StakeCents, &b.AmericanOdds, &b.Outcome, &b.PotentialReturnCents, &b.ActualReturnCents,
			&b.CreatedAt); err != nil {
			return nil, nil, err
		}
		bets = append(bets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	legsByBet := make(map[string][]BetLeg)
	if len(bets) == 0 {
		return bets, legsByBet, nil
	}

	const lq = `
		SELECT pl.bet_id, pl.game_id, pl.selection, pl.description, pl.american_odds, pl.result, pl.leg_index
		FROM parlay_legs pl
		JOIN bets b ON b.id = pl.bet_id
		WHERE b.user_id = $1
		ORDER BY pl.bet_id, pl.leg_index;
	`
	lrows, err := r.DB.QueryContext(ctx, lq, userID)
	if err != nil {
		return nil, nil, err
	}
	defer lrows.Close()

	for lrows.Next() {
		var l BetLeg
		if err := lrows.Scan(&l.BetID, &l.GameID, &l.Selection, &l.Description, &l.AmericanOdds,
			&l.Result, &l.LegIndex); err != nil {
			return nil, nil, err
		}
		legsByBet[l.BetID] = append(legsByBet[l.BetID], l)
	}
	return bets, legsByBet, lrows.Err()
}
