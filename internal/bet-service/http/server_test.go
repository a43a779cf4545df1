package http

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/radieske/nba-bet-dashboard-poc/internal/bet-service/repo"
	"github.com/radieske/nba-bet-dashboard-poc/pkg/contracts/events"
)

type fakeStore struct {
	bets map[string]*repo.Bet
	legs map[string][]repo.ParlayLeg
}

func newFakeStore() *fakeStore {
	return &fakeStore{bets: map[string]*repo.Bet{}, legs: map[string][]repo.ParlayLeg{}}
}

func (f *fakeStore) CreatePending(_ context.Context, b *repo.Bet, legs []repo.ParlayLeg) (string, error) {
	id := "bet-1"
	cp := *b
	cp.ID = id
	cp.Outcome = "pending"
	f.bets[id] = &cp
	f.legs[id] = legs
	return id, nil
}

func (f *fakeStore) Get(_ context.Context, betID string) (*repo.Bet, error) {
	b, ok := f.bets[betID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *b
	return &cp, nil
}

func (f *fakeStore) ListByUser(_ context.Context, userID string) ([]repo.Bet, error) {
	var out []repo.Bet
	for _, b := range f.bets {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeStore) LegsByBet(_ context.Context, betID string) ([]repo.ParlayLeg, error) {
	return f.legs[betID], nil
}

func (f *fakeStore) UpdatePending(_ context.Context, betID string, stakeCents int64, americanOdds int, description string, potentialReturnCents int64) error {
	b, ok := f.bets[betID]
	if !ok || b.Outcome != "pending" {
		return repo.ErrNotPending
	}
	b.StakeCents = stakeCents
	b.AmericanOdds = americanOdds
	b.Description = description
	b.PotentialReturnCents = potentialReturnCents
	return nil
}

func (f *fakeStore) DeletePending(_ context.Context, betID string) error {
	b, ok := f.bets[betID]
	if !ok || b.Outcome != "pending" {
		return repo.ErrNotPending
	}
	delete(f.bets, betID)
	delete(f.legs, betID)
	return nil
}

type adjustCall struct {
	userID string
	cents  int64
	ref    string
}

type fakeWallet struct {
	reserved    map[string]int64 // external_ref -> cents bloqueados
	adjustCalls []adjustCall
	refunds     []string
	failReserve bool
	failAdjust  bool
}

func newFakeWallet() *fakeWallet { return &fakeWallet{reserved: map[string]int64{}} }

func (f *fakeWallet) Reserve(_ context.Context, userID string, cents int64, externalRef string) (string, error) {
	if f.failReserve {
		return "", errors.New("insufficient funds")
	}
	f.reserved[externalRef] = cents
	return "res-1", nil
}

func (f *fakeWallet) AdjustReserve(_ context.Context, userID string, cents int64, externalRef string) error {
	f.adjustCalls = append(f.adjustCalls, adjustCall{userID: userID, cents: cents, ref: externalRef})
	if f.failAdjust {
		return errors.New("insufficient funds")
	}
	f.reserved[externalRef] = cents
	return nil
}

func (f *fakeWallet) Refund(_ context.Context, userID, externalRef string) error {
	f.refunds = append(f.refunds, externalRef)
	return nil
}

type fakePublisher struct{ events []events.BetPlaced }

func (f *fakePublisher) PublishBetPlaced(_ context.Context, e events.BetPlaced) error {
	f.events = append(f.events, e)
	return nil
}

func newTestServer() (*Server, *fakeStore, *fakeWallet, *fakePublisher) {
	store := newFakeStore()
	wallet := newFakeWallet()
	pub := &fakePublisher{}
	return NewServer(zap.NewNop(), store, wallet, pub), store, wallet, pub
}

func seedPendingBet(store *fakeStore, wallet *fakeWallet) {
	store.bets["b1"] = &repo.Bet{
		ID:                   "b1",
		UserID:               "u1",
		GameID:               "g1",
		Market:               "MONEYLINE",
		Selection:            "home",
		StakeCents:           10000,
		AmericanOdds:         150,
		Outcome:              "pending",
		PotentialReturnCents: 25000,
	}
	wallet.reserved["b1"] = 10000
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestPlaceBetReservesStakeAndPublishes(t *testing.T) {
	srv, store, wallet, pub := newTestServer()

	rec := doJSON(t, srv, nethttp.MethodPost, "/bets", map[string]any{
		"userId":        "u1",
		"gameId":        "g1",
		"market":        "MONEYLINE",
		"selection":     "home",
		"stake_cents":   10000,
		"american_odds": 150,
	})

	require.Equal(t, nethttp.StatusCreated, rec.Code)
	require.Contains(t, store.bets, "bet-1")
	assert.Equal(t, int64(10000), wallet.reserved["bet-1"])

	require.Len(t, pub.events, 1)
	assert.Equal(t, int64(25000), pub.events[0].PotentialReturnCents)
	assert.Equal(t, "bet-1", pub.events[0].ReservedRef)
	assert.Greater(t, pub.events[0].TsUnixMs, int64(0))
}

func TestEditStakeAdjustsWalletReservation(t *testing.T) {
	srv, store, wallet, _ := newTestServer()
	seedPendingBet(store, wallet)

	newStake := int64(20000)
	rec := doJSON(t, srv, nethttp.MethodPatch, "/bets/b1", map[string]any{"stake_cents": newStake})

	require.Equal(t, nethttp.StatusOK, rec.Code)
	require.Len(t, wallet.adjustCalls, 1)
	assert.Equal(t, adjustCall{userID: "u1", cents: 20000, ref: "b1"}, wallet.adjustCalls[0])
	assert.Equal(t, int64(20000), wallet.reserved["b1"])
	assert.Equal(t, int64(20000), store.bets["b1"].StakeCents)
	assert.Equal(t, int64(50000), store.bets["b1"].PotentialReturnCents)
}

func TestEditStakeWalletDeclineRevertsBet(t *testing.T) {
	srv, store, wallet, _ := newTestServer()
	seedPendingBet(store, wallet)
	wallet.failAdjust = true

	rec := doJSON(t, srv, nethttp.MethodPatch, "/bets/b1", map[string]any{"stake_cents": 20000})

	require.Equal(t, nethttp.StatusConflict, rec.Code)
	// a edição foi desfeita: stake, retorno e reserva seguem os originais
	assert.Equal(t, int64(10000), store.bets["b1"].StakeCents)
	assert.Equal(t, int64(25000), store.bets["b1"].PotentialReturnCents)
	assert.Equal(t, int64(10000), wallet.reserved["b1"])
}

func TestEditWithoutStakeChangeSkipsWallet(t *testing.T) {
	srv, store, wallet, _ := newTestServer()
	seedPendingBet(store, wallet)

	rec := doJSON(t, srv, nethttp.MethodPatch, "/bets/b1", map[string]any{"description": "late line move"})

	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Empty(t, wallet.adjustCalls)
	assert.Equal(t, "late line move", store.bets["b1"].Description)
	assert.Equal(t, int64(10000), wallet.reserved["b1"])
}

func TestEditSettledBetConflicts(t *testing.T) {
	srv, store, wallet, _ := newTestServer()
	seedPendingBet(store, wallet)
	store.bets["b1"].Outcome = "win"

	rec := doJSON(t, srv, nethttp.MethodPatch, "/bets/b1", map[string]any{"stake_cents": 20000})

	require.Equal(t, nethttp.StatusConflict, rec.Code)
	assert.Empty(t, wallet.adjustCalls)
}

func TestPlaceBetReserveFailureRollsBack(t *testing.T) {
	srv, store, wallet, pub := newTestServer()
	wallet.failReserve = true

	rec := doJSON(t, srv, nethttp.MethodPost, "/bets", map[string]any{
		"userId":        "u1",
		"gameId":        "g1",
		"market":        "MONEYLINE",
		"selection":     "home",
		"stake_cents":   10000,
		"american_odds": 150,
	})

	require.Equal(t, nethttp.StatusConflict, rec.Code)
	assert.Empty(t, store.bets)
	assert.Empty(t, pub.events)
}
