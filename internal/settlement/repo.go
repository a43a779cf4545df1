package settlement

import (
	"context"
	"database/sql"
)

// Repo agrupa as operações de banco da liquidação.
type Repo struct{ DB *sql.DB }

func NewRepo(db *sql.DB) *Repo { return &Repo{DB: db} }

// PendingBet é uma aposta pendente candidata à liquidação.
type PendingBet struct {
	ID                   string
	UserID               string
	Selection            string
	StakeCents           int64
	PotentialReturnCents int64
}

// LegRow é uma perna de parlay vista pela liquidação.
type LegRow struct {
	ID        string
	BetID     string
	Selection string
	Result    string
}

// SingleBetsByGame lista as apostas simples pendentes do jogo
// (apostas sem pernas de parlay).
func (r *Repo) SingleBetsByGame(ctx context.Context, gameID string) ([]PendingBet, error) {
	const q = `
		SELECT b.id, b.user_id, b.selection, b.stake_cents, b.potential_return_cents
		FROM bets b
		WHERE b.game_id = $1
		  AND b.outcome = 'pending'
		  AND NOT EXISTS (SELECT 1 FROM parlay_legs pl WHERE pl.bet_id = b.id);
	`
	rows, err := r.DB.QueryContext(ctx, q, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PendingBet
	for rows.Next() {
		var b PendingBet
		if err := rows.Scan(&b.ID, &b.UserID, &b.Selection, &b.StakeCents, &b.PotentialReturnCents); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// PendingLegsByGame lista as pernas ainda pendentes cujo jogo acabou.
func (r *Repo) PendingLegsByGame(ctx context.Context, gameID string) ([]LegRow, error) {
	const q = `
		SELECT id, bet_id, selection, result
		FROM parlay_legs
		WHERE game_id = $1 AND result = 'pending';
	`
	rows, err := r.DB.QueryContext(ctx, q, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LegRow
	for rows.Next() {
		var l LegRow
		if err := rows.Scan(&l.ID, &l.BetID, &l.Selection, &l.Result); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// UpdateLegResult grava o resultado de uma perna ainda pendente.
func (r *Repo) UpdateLegResult(ctx context.Context, legID, result string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE parlay_legs SET result=$1 WHERE id=$2 AND result='pending'`, result, legID)
	return err
}

// ParlaysTouchingGame lista os parlays pendentes com pelo menos uma perna
// neste jogo, cada um com todas as suas pernas.
func (r *Repo) ParlaysTouchingGame(ctx context.Context, gameID string) (map[string]PendingBet, map[string][]LegRow, error) {
	const q = `
		SELECT DISTINCT b.id, b.user_id, b.selection, b.stake_cents, b.potential_return_cents
		FROM bets b
		JOIN parlay_legs pl ON pl.bet_id = b.id
		WHERE pl.game_id = $1 AND b.outcome = 'pending';
	`
	rows, err := r.DB.QueryContext(ctx, q, gameID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	bets := make(map[string]PendingBet)
	for rows.Next() {
		var b PendingBet
		if err := rows.Scan(&b.ID, &b.UserID, &b.Selection, &b.StakeCents, &b.PotentialReturnCents); err != nil {
			return nil, nil, err
		}
		bets[b.ID] = b
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	legsByBet := make(map[string][]LegRow)
	for betID := range bets {
		const lq = `
			SELECT id, bet_id, selection, result
			FROM parlay_legs
			WHERE bet_id = $1
			ORDER BY leg_index;
		`
		lrows, err := r.DB.QueryContext(ctx, lq, betID)
		if err != nil {
			return nil, nil, err
		}
		for lrows.Next() {
			var l LegRow
			if err := lrows.Scan(&l.ID, &l.BetID, &l.Selection, &l.Result); err != nil {
				lrows.Close()
				return nil, nil, err
			}
			legsByBet[betID] = append(legsByBet[betID], l)
		}
		if err := lrows.Err(); err != nil {
			lrows.Close()
			return nil, nil, err
		}
		lrows.Close()
	}
	return bets, legsByBet, nil
}

// SettleBet fecha a aposta. O guard outcome='pending' garante liquidação
// única: retorna false se outra execução já liquidou.
func (r *Repo) SettleBet(ctx context.Context, betID, outcome string, actualReturnCents int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE bets
		SET outcome=$1, actual_return_cents=$2, updated_at=NOW()
		WHERE id=$3 AND outcome='pending'`,
		outcome, actualReturnCents, betID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
