package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

// ErrNotPending indica tentativa de editar/deletar aposta já liquidada.
var ErrNotPending = errors.New("bet is not pending")

// Postgres implementa operações de persistência de apostas em banco Postgres
type Postgres struct{ db *sql.DB }

// NewPostgres retorna uma instância do repositório de apostas
func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

// CreatePending insere uma aposta pending e suas pernas (quando parlay)
// na mesma transação.
func (p *Postgres) CreatePending(ctx context.Context, b *Bet, legs []ParlayLeg) (string, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	id := uuid.NewString()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO bets (id,user_id,game_id,market,selection,description,stake_cents,american_odds,outcome,potential_return_cents)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,'pending',$9)`,
		id, b.UserID, b.GameID, b.Market, b.Selection, b.Description, b.StakeCents, b.AmericanOdds, b.PotentialReturnCents,
	)
	if err != nil {
		return "", err
	}

	for i, leg := range legs {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO parlay_legs (id,bet_id,game_id,selection,description,american_odds,result,leg_index)
			VALUES ($1,$2,$3,$4,$5,$6,'pending',$7)`,
			uuid.NewString(), id, leg.GameID, leg.Selection, leg.Description, leg.AmericanOdds, i,
		)
		if err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

// Get retorna a aposta pelo id.
func (p *Postgres) Get(ctx context.Context, betID string) (*Bet, error) {
	var b Bet
	err := p.db.QueryRowContext(ctx, `
		SELECT id,user_id,game_id,market,selection,description,stake_cents,american_odds,outcome,potential_return_cents,actual_return_cents,created_at,updated_at
		FROM bets WHERE id=$1`, betID,
	).Scan(&b.ID, &b.UserID, &b.GameID, &b.Market, &b.Selection, &b.Description,
		&b.StakeCents, &b.AmericanOdds, &b.Outcome, &b.PotentialReturnCents, &b.ActualReturnCents,
		&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ListByUser retorna o histórico de apostas do usuário, mais recentes primeiro.
func (p *Postgres) ListByUser(ctx context.Context, userID string) ([]Bet, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT id,user_id,game_id,market,selection,description,stake_cents,american_odds,outcome,potential_return_cents,actual_return_cents,created_at,updated_at
		FROM bets WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Bet
	for rows.Next() {
		var b Bet
		if err := rows.Scan(&b.ID, &b.UserID, &b.GameID, &b.Market, &b.Selection, &b.Description,
			&b.StakeCents, &b.AmericanOdds, &b.Outcome, &b.PotentialReturnCents, &b.ActualReturnCents,
			&b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// LegsByBet retorna as pernas na ordem de criação (leg_index).
func (p *Postgres) LegsByBet(ctx context.Context, betID string) ([]ParlayLeg, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT id,bet_id,game_id,selection,description,american_odds,result,leg_index
		FROM parlay_legs WHERE bet_id=$1 ORDER BY leg_index`, betID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ParlayLeg
	for rows.Next() {
		var l ParlayLeg
		if err := rows.Scan(&l.ID, &l.BetID, &l.GameID, &l.Selection, &l.Description,
			&l.AmericanOdds, &l.Result, &l.LegIndex); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// UpdatePending atualiza stake/odds/descrição e o retorno recalculado.
// O WHERE outcome='pending' garante que aposta liquidada é imutável.
func (p *Postgres) UpdatePending(ctx context.Context, betID string, stakeCents int64, americanOdds int, description string, potentialReturnCents int64) error {
	res, err := p.db.ExecContext(ctx, `
		UPDATE bets
		SET stake_cents=$1, american_odds=$2, description=$3, potential_return_cents=$4, updated_at=NOW()
		WHERE id=$5 AND outcome='pending'`,
		stakeCents, americanOdds, description, potentialReturnCents, betID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotPending
	}
	return nil
}

// DeletePending remove uma aposta pendente e suas pernas.
func (p *Postgres) DeletePending(ctx context.Context, betID string) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM parlay_legs WHERE bet_id=$1`, betID); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM bets WHERE id=$1 AND outcome='pending'`, betID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotPending
	}
	return tx.Commit()
}
