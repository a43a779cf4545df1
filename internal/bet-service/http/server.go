package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/nba-bet-dashboard-poc/internal/bet-service/dto"
	"github.com/radieske/nba-bet-dashboard-poc/internal/bet-service/repo"
	"github.com/radieske/nba-bet-dashboard-poc/pkg/betmath"
	"github.com/radieske/nba-bet-dashboard-poc/pkg/contracts/events"
)

// Publisher emite o evento bet_placed após a criação da aposta.
type Publisher interface {
	PublishBetPlaced(ctx context.Context, e events.BetPlaced) error
}

// Store define as operações de persistência usadas pelos handlers.
type Store interface {
	CreatePending(ctx context.Context, b *repo.Bet, legs []repo.ParlayLeg) (string, error)
	Get(ctx context.Context, betID string) (*repo.Bet, error)
	ListByUser(ctx context.Context, userID string) ([]repo.Bet, error)
	LegsByBet(ctx context.Context, betID string) ([]repo.ParlayLeg, error)
	UpdatePending(ctx context.Context, betID string, stakeCents int64, americanOdds int, description string, potentialReturnCents int64) error
	DeletePending(ctx context.Context, betID string) error
}

// WalletAPI cobre as chamadas à carteira feitas no ciclo de vida da aposta.
type WalletAPI interface {
	Reserve(ctx context.Context, userID string, cents int64, externalRef string) (string, error)
	AdjustReserve(ctx context.Context, userID string, cents int64, externalRef string) error
	Refund(ctx context.Context, userID, externalRef string) error
}

type Server struct {
	log  *zap.Logger
	repo Store
	wcli WalletAPI
	publ Publisher
}

func NewServer(log *zap.Logger, r Store, w WalletAPI, p Publisher) *Server {
	return &Server{log: log, repo: r, wcli: w, publ: p}
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/bets", s.handleBets)     // POST cria, GET ?userId= lista
	mux.HandleFunc("/bets/", s.handleBetByID) // GET | PATCH | DELETE /bets/{id}
	return mux
}

func (s *Server) handleBets(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.placeBet(w, r)
	case http.MethodGet:
		s.listBets(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) placeBet(w http.ResponseWriter, r *http.Request) {
	var req dto.PlaceBetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.UserID == "" || req.GameID == "" || req.Market == "" {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if len(req.Legs) == 0 && req.Selection == "" {
		http.Error(w, "selection required for single bet", http.StatusBadRequest)
		return
	}
	if len(req.Legs) == 1 {
		http.Error(w, "parlay requires at least 2 legs", http.StatusBadRequest)
		return
	}

	// Valida stake/odds e calcula o retorno potencial; falha rápida vira 400
	// com a mensagem, nunca ajuste silencioso do valor.
	potential, err := betmath.PotentialReturnCents(req.StakeCents, req.AmericanOdds)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	legs := make([]repo.ParlayLeg, 0, len(req.Legs))
	for _, l := range req.Legs {
		if l.GameID == "" || l.Selection == "" {
			http.Error(w, "invalid parlay leg", http.StatusBadRequest)
			return
		}
		if _, err := betmath.AmericanToDecimal(l.AmericanOdds); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		legs = append(legs, repo.ParlayLeg{
			GameID:       l.GameID,
			Selection:    l.Selection,
			Description:  l.Description,
			AmericanOdds: l.AmericanOdds,
		})
	}

	betID, err := s.repo.CreatePending(r.Context(), &repo.Bet{
		UserID:               req.UserID,
		GameID:               req.GameID,
		Market:               req.Market,
		Selection:            req.Selection,
		Description:          req.Description,
		StakeCents:           req.StakeCents,
		AmericanOdds:         req.AmericanOdds,
		PotentialReturnCents: potential,
	}, legs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Reserva o stake na carteira (external_ref = betID); sem saldo, desfaz a aposta
	if _, err := s.wcli.Reserve(r.Context(), req.UserID, req.StakeCents, betID); err != nil {
		if derr := s.repo.DeletePending(r.Context(), betID); derr != nil {
			s.log.Warn("rollback pending bet failed", zap.String("betId", betID), zap.Error(derr))
		}
		http.Error(w, "wallet reserve failed", http.StatusConflict)
		return
	}

	placedLegs := make([]events.PlacedLeg, 0, len(legs))
	for _, l := range legs {
		placedLegs = append(placedLegs, events.PlacedLeg{
			GameID:       l.GameID,
			Selection:    l.Selection,
			Description:  l.Description,
			AmericanOdds: l.AmericanOdds,
		})
	}
	_ = s.publ.PublishBetPlaced(r.Context(), events.BetPlaced{
		BetID:                betID,
		UserID:               req.UserID,
		GameID:               req.GameID,
		Market:               req.Market,
		Selection:            req.Selection,
		StakeCents:           req.StakeCents,
		AmericanOdds:         req.AmericanOdds,
		PotentialReturnCents: potential,
		Legs:                 placedLegs,
		ReservedRef:          betID,
		TsUnixMs:             time.Now().UnixMilli(),
	})

	writeJSON(w, http.StatusCreated, dto.PlaceBetResponse{
		BetID:                betID,
		Outcome:              string(betmath.OutcomePending),
		PotentialReturnCents: potential,
	})
}

func (s *Server) listBets(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId required", http.StatusBadRequest)
		return
	}

	bets, err := s.repo.ListByUser(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	out := make([]dto.BetResponse, 0, len(bets))
	for _, b := range bets {
		legs, err := s.repo.LegsByBet(r.Context(), b.ID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		out = append(out, toBetResponse(&b, legs))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleBetByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/bets/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "betId required", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.getBet(w, r, id)
	case http.MethodPatch:
		s.updateBet(w, r, id)
	case http.MethodDelete:
		s.deleteBet(w, r, id)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) getBet(w http.ResponseWriter, r *http.Request, id string) {
	b, err := s.repo.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	legs, err := s.repo.LegsByBet(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toBetResponse(b, legs))
}

// updateBet edita uma aposta pendente. O retorno potencial é recalculado do
// stake/odds resultantes da edição; o valor persistido anterior nunca é reusado.
func (s *Server) updateBet(w http.ResponseWriter, r *http.Request, id string) {
	var req dto.UpdateBetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	b, err := s.repo.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if b.Outcome != string(betmath.OutcomePending) {
		http.Error(w, "bet already settled", http.StatusConflict)
		return
	}

	stake := b.StakeCents
	odds := b.AmericanOdds
	desc := b.Description
	if req.StakeCents != nil {
		stake = *req.StakeCents
	}
	if req.AmericanOdds != nil {
		odds = *req.AmericanOdds
	}
	if req.Description != nil {
		desc = *req.Description
	}

	potential, err := betmath.PotentialReturnCents(stake, odds)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.repo.UpdatePending(r.Context(), id, stake, odds, desc, potential); err != nil {
		if errors.Is(err, repo.ErrNotPending) {
			http.Error(w, "bet already settled", http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Stake editado move a reserva junto: a diferença é debitada (ou devolvida)
	// na carteira. Sem saldo para o aumento, a edição inteira é desfeita.
	if stake != b.StakeCents {
		if err := s.wcli.AdjustReserve(r.Context(), b.UserID, stake, id); err != nil {
			if rerr := s.repo.UpdatePending(r.Context(), id, b.StakeCents, b.AmericanOdds, b.Description, b.PotentialReturnCents); rerr != nil {
				s.log.Warn("rollback bet edit failed", zap.String("betId", id), zap.Error(rerr))
			}
			http.Error(w, "wallet reserve adjust failed", http.StatusConflict)
			return
		}
	}

	updated, err := s.repo.Get(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	legs, err := s.repo.LegsByBet(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toBetResponse(updated, legs))
}

func (s *Server) deleteBet(w http.ResponseWriter, r *http.Request, id string) {
	b, err := s.repo.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := s.repo.DeletePending(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrNotPending) {
			http.Error(w, "bet already settled", http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Devolve o stake reservado; falha aqui não desfaz a deleção
	if err := s.wcli.Refund(r.Context(), b.UserID, id); err != nil {
		s.log.Error("wallet refund after delete failed", zap.String("betId", id), zap.Error(err))
	}

	w.WriteHeader(http.StatusNoContent)
}

func toBetResponse(b *repo.Bet, legs []repo.ParlayLeg) dto.BetResponse {
	out := dto.BetResponse{
		BetID:                b.ID,
		UserID:               b.UserID,
		GameID:               b.GameID,
		Market:               b.Market,
		Selection:            b.Selection,
		Description:          b.Description,
		StakeCents:           b.StakeCents,
		AmericanOdds:         b.AmericanOdds,
		Outcome:              b.Outcome,
		PotentialReturnCents: b.PotentialReturnCents,
		ActualReturnCents:    b.ActualReturnCents,
		CreatedAt:            b.CreatedAt.Format(time.RFC3339),
	}
	for _, l := range legs {
		out.Legs = append(out.Legs, dto.ParlayLegResponse{
			LegID:        l.ID,
			GameID:       l.GameID,
			Selection:    l.Selection,
			Description:  l.Description,
			AmericanOdds: l.AmericanOdds,
			Result:       l.Result,
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
