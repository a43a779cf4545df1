package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/radieske/nba-bet-dashboard-poc/internal/dashboard/cache"
	"github.com/radieske/nba-bet-dashboard-poc/internal/dashboard/dto"
	"github.com/radieske/nba-bet-dashboard-poc/internal/dashboard/repo"
	"github.com/radieske/nba-bet-dashboard-poc/internal/dashboard/view"
	"github.com/radieske/nba-bet-dashboard-poc/internal/dashboard/ws"
)

const (
	gamesCacheTTL  = 5 * time.Second
	quotesCacheTTL = 10 * time.Second
	defaultPropLim = 5
)

// API expõe os endpoints REST do dashboard + o endpoint WebSocket.
// Leituras quentes (jogos, cotações) passam pelo cache Redis.
type API struct {
	ReadRepo *repo.ReadRepo
	Cache    *cache.Cache
	Hub      *ws.Hub
}

func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"}, // POC: o front roda em origem própria
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/v1/games", a.listGames)
	r.Get("/v1/games/{id}", a.getGame)
	r.Get("/v1/games/{id}/recommendations", a.listRecommendations)
	r.Get("/v1/markets", a.listMarkets) // ?gameId=
	r.Get("/v1/hedges", a.listHedges)
	r.Get("/v1/props/recommendations", a.listProps) // ?limit=
	r.Get("/v1/users/{id}/bets", a.listUserBets)
	r.Get("/ws", a.Hub.HandleWS)
	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (a *API) listGames(w http.ResponseWriter, r *http.Request) {
	var fromCache []dto.GameView
	if ok, _ := a.Cache.GetGames(r.Context(), &fromCache); ok {
		writeJSON(w, http.StatusOK, fromCache)
		return
	}

	games, err := a.ReadRepo.ListGames(r.Context())
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	out := view.Games(games)
	_ = a.Cache.SetGames(r.Context(), out, gamesCacheTTL)
	writeJSON(w, http.StatusOK, out)
}

func (a *API) getGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	g, err := a.ReadRepo.GetGame(r.Context(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			writeErr(w, http.StatusNotFound, "not found")
			return
		}
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, view.Game(*g))
}

func (a *API) listRecommendations(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	recs, err := a.ReadRepo.RecommendationsByGame(r.Context(), id)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, view.Recommendations(recs))
}

func (a *API) listMarkets(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("gameId")
	if gameID == "" {
		writeErr(w, http.StatusBadRequest, "gameId required")
		return
	}

	var fromCache []dto.MarketQuoteView
	if ok, _ := a.Cache.GetQuotes(r.Context(), gameID, &fromCache); ok {
		writeJSON(w, http.StatusOK, fromCache)
		return
	}

	quotes, err := a.ReadRepo.QuotesByGame(r.Context(), gameID)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	out := view.Quotes(quotes)
	_ = a.Cache.SetQuotes(r.Context(), gameID, out, quotesCacheTTL)
	writeJSON(w, http.StatusOK, out)
}

// listHedges cruza jogos ao vivo com as últimas cotações e devolve só as
// divergências detectadas. Sem jogos ao vivo, lista vazia.
func (a *API) listHedges(w http.ResponseWriter, r *http.Request) {
	games, err := a.ReadRepo.ListGames(r.Context())
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	quotes, err := a.ReadRepo.QuotesForLiveGames(r.Context())
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, view.Hedges(games, quotes))
}

func (a *API) listProps(w http.ResponseWriter, r *http.Request) {
	limit := defaultPropLim
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeErr(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	stats, err := a.ReadRepo.PropLeaders(r.Context(), limit)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, view.Props(stats))
}

func (a *API) listUserBets(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	bets, legsByBet, err := a.ReadRepo.BetsByUser(r.Context(), userID)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, view.Bets(bets, legsByBet))
}
