package http

import (
	"bytes"
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/radieske/nba-bet-dashboard-poc/internal/wallet-service/repo"
)

// fakeRepo simula a carteira em memória: uma reserva PENDING por external_ref.
type fakeRepo struct {
	balance  int64
	reserved map[string]int64
}

func newFakeRepo(balance int64) *fakeRepo {
	return &fakeRepo{balance: balance, reserved: map[string]int64{}}
}

func (f *fakeRepo) GetOrCreateWallet(_ context.Context, userID string) (string, int64, error) {
	return "w1", f.balance, nil
}

func (f *fakeRepo) Deposit(_ context.Context, _ string, amount int64, _ string) (string, int64, error) {
	f.balance += amount
	return "w1", f.balance, nil
}

func (f *fakeRepo) Reserve(_ context.Context, _ string, amount int64, externalRef string) (string, error) {
	if _, ok := f.reserved[externalRef]; ok {
		return "res-" + externalRef, nil
	}
	if f.balance < amount {
		return "", repo.ErrInsufficientFunds
	}
	f.balance -= amount
	f.reserved[externalRef] = amount
	return "res-" + externalRef, nil
}

func (f *fakeRepo) AdjustReservation(_ context.Context, _ string, externalRef string, newAmount int64) error {
	amount, ok := f.reserved[externalRef]
	if !ok {
		return repo.ErrNotFound
	}
	delta := newAmount - amount
	if delta > 0 && f.balance < delta {
		return repo.ErrInsufficientFunds
	}
	f.balance -= delta
	f.reserved[externalRef] = newAmount
	return nil
}

func (f *fakeRepo) Commit(_ context.Context, _, externalRef string) error {
	delete(f.reserved, externalRef)
	return nil
}

func (f *fakeRepo) Refund(_ context.Context, _, externalRef string) error {
	if amount, ok := f.reserved[externalRef]; ok {
		f.balance += amount
		delete(f.reserved, externalRef)
	}
	return nil
}

func (f *fakeRepo) Payout(_ context.Context, _ string, amount int64, _ string) (int64, error) {
	f.balance += amount
	return f.balance, nil
}

func post(t *testing.T, srv *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(nethttp.MethodPost, path, bytes.NewReader(b))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestAdjustReserveRaisesReservation(t *testing.T) {
	fr := newFakeRepo(50000)
	srv := NewServer(zap.NewNop(), fr)

	rec := post(t, srv, "/wallet/reserve", map[string]any{
		"userId": "u1", "amount_cents": 10000, "external_ref": "b1"})
	require.Equal(t, nethttp.StatusOK, rec.Code)

	rec = post(t, srv, "/wallet/reserve/adjust", map[string]any{
		"userId": "u1", "amount_cents": 20000, "external_ref": "b1"})
	require.Equal(t, nethttp.StatusOK, rec.Code)

	assert.Equal(t, int64(20000), fr.reserved["b1"])
	assert.Equal(t, int64(30000), fr.balance)
}

func TestAdjustReserveLowersReservation(t *testing.T) {
	fr := newFakeRepo(50000)
	srv := NewServer(zap.NewNop(), fr)

	post(t, srv, "/wallet/reserve", map[string]any{
		"userId": "u1", "amount_cents": 10000, "external_ref": "b1"})

	rec := post(t, srv, "/wallet/reserve/adjust", map[string]any{
		"userId": "u1", "amount_cents": 4000, "external_ref": "b1"})
	require.Equal(t, nethttp.StatusOK, rec.Code)

	assert.Equal(t, int64(4000), fr.reserved["b1"])
	assert.Equal(t, int64(46000), fr.balance)
}

func TestAdjustReserveInsufficientFunds(t *testing.T) {
	fr := newFakeRepo(12000)
	srv := NewServer(zap.NewNop(), fr)

	post(t, srv, "/wallet/reserve", map[string]any{
		"userId": "u1", "amount_cents": 10000, "external_ref": "b1"})

	// saldo restante 2000; subir a reserva para 20000 exige delta 10000
	rec := post(t, srv, "/wallet/reserve/adjust", map[string]any{
		"userId": "u1", "amount_cents": 20000, "external_ref": "b1"})
	require.Equal(t, nethttp.StatusConflict, rec.Code)

	assert.Equal(t, int64(10000), fr.reserved["b1"])
}

func TestAdjustReserveUnknownRefNotFound(t *testing.T) {
	fr := newFakeRepo(50000)
	srv := NewServer(zap.NewNop(), fr)

	rec := post(t, srv, "/wallet/reserve/adjust", map[string]any{
		"userId": "u1", "amount_cents": 20000, "external_ref": "nope"})
	require.Equal(t, nethttp.StatusNotFound, rec.Code)
}
