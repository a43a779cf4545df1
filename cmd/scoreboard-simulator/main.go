package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/radieske/nba-bet-dashboard-poc/internal/shared/config"
	"github.com/radieske/nba-bet-dashboard-poc/internal/shared/logger"
	"github.com/radieske/nba-bet-dashboard-poc/pkg/contracts/events"
)

var (
	upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}

	// Métricas Prometheus para conexões e mensagens
	wsConnections = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "scoreboard_ws_connections",
		Help: "Clientes WebSocket conectados",
	})
	wsMessagesSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scoreboard_ws_messages_sent_total",
		Help: "Total de mensagens WS enviadas",
	})
)

// simGame carrega o estado de um jogo simulado.
// O game_id segue o formato derivado do event ticker Kalshi
// (ex: "25AUG29LALBOS") para permitir o join com as cotações.
type simGame struct {
	gameID  string
	home    string
	away    string
	homeScr int
	awayScr int
	status  string
	period  int
	tick    int // ticks decorridos no período atual
	startIn int // ticks até a bola subir
}

const (
	ticksPerPeriod = 10
	periods        = 4
)

func newCatalog() []*simGame {
	date := time.Now().UTC().Format("06Jan02")
	mk := func(away, home string, startIn int) *simGame {
		return &simGame{
			gameID:  fmt.Sprintf("%s%s%s", date, away, home),
			home:    home,
			away:    away,
			status:  events.GameNotStarted,
			startIn: startIn,
		}
	}
	return []*simGame{
		mk("BOS", "NYK", 0),
		mk("LAL", "GSW", 2),
		mk("MIA", "DEN", 5),
		mk("OKC", "CLE", 8),
	}
}

// advance move o jogo um tick adiante e devolve o update correspondente.
func (g *simGame) advance(now time.Time, source string) events.ScoreUpdate {
	switch g.status {
	case events.GameNotStarted:
		if g.startIn > 0 {
			g.startIn--
		} else {
			g.status = events.GameInProgress
			g.period = 1
		}
	case events.GameInProgress:
		// Cestas de 0 a 3 pontos por lado a cada tick
		g.homeScr += rand.Intn(4)
		g.awayScr += rand.Intn(4)
		g.tick++
		if g.tick >= ticksPerPeriod {
			g.tick = 0
			if g.period >= periods {
				if g.homeScr == g.awayScr {
					g.period++ // prorrogação; NBA não termina empatada
				} else {
					g.status = events.GameFinal
				}
			} else {
				g.period++
			}
		}
	}

	return events.ScoreUpdate{
		GameID:    g.gameID,
		HomeTeam:  g.home,
		AwayTeam:  g.away,
		HomeScore: g.homeScr,
		AwayScore: g.awayScr,
		Status:    g.status,
		Period:    g.period,
		Clock:     g.clock(),
		UpdatedAt: now,
		Source:    source,
	}
}

func (g *simGame) clock() string {
	if g.status != events.GameInProgress {
		return ""
	}
	remaining := (ticksPerPeriod - g.tick) * (12 * 60 / ticksPerPeriod) // segundos restantes
	return fmt.Sprintf("%02d:%02d", remaining/60, remaining%60)
}

type clientConn struct {
	id   string
	conn *websocket.Conn
}

// hub gerencia os clientes conectados e o broadcast
type hub struct {
	mu      sync.RWMutex
	clients map[string]*clientConn
	log     *zap.Logger
}

func newHub(log *zap.Logger) *hub {
	return &hub{clients: make(map[string]*clientConn), log: log}
}

func (h *hub) add(c *clientConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.id] = c
	wsConnections.Inc()
	h.log.Info("ws client connected", zap.String("client_id", c.id))
}

func (h *hub) remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[id]; ok {
		delete(h.clients, id)
		wsConnections.Dec()
		h.log.Info("ws client disconnected", zap.String("client_id", id))
	}
}

func (h *hub) broadcast(v any) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	msg, _ := json.Marshal(v)
	for id, c := range h.clients {
		c.conn.SetWriteDeadline(time.Now().Add(2 * time.Second))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.log.Warn("ws write failed", zap.String("client_id", id), zap.Error(err))
			_ = c.conn.Close()
		} else {
			wsMessagesSent.Inc()
		}
	}
}

func main() {
	cfg := config.Load()
	log, err := logger.New("scoreboard-simulator", cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	prometheus.MustRegister(wsConnections, wsMessagesSent)

	h := newHub(log)
	catalog := newCatalog()

	// Avança os jogos e envia os updates a cada 2 segundos.
	// Jogos finalizados seguem emitindo o estado final (replay inofensivo,
	// o processor é idempotente).
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now().UTC()
			for _, g := range catalog {
				h.broadcast(g.advance(now, "scoreboard-simulator"))
			}
		}
	}()

	// ==== MUX PÚBLICO: /ws
	appMux := http.NewServeMux()
	appMux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warn("ws upgrade failed", zap.Error(err))
			return
		}
		id := fmt.Sprintf("%d", time.Now().UnixNano())
		c := &clientConn{id: id, conn: conn}
		h.add(c)

		go func() {
			defer func() {
				h.remove(id)
				_ = conn.Close()
			}()
			_ = conn.SetReadDeadline(time.Time{})
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	})

	// ==== MUX DE MÉTRICAS
	metricsMux := http.NewServeMux()
	metricsMux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	metricsMux.Handle("/metrics", promhttp.Handler())

	go func() {
		metricsAddr := fmt.Sprintf(":%s", cfg.MetricsPort)
		log.Info("scoreboard simulator (metrics) running", zap.String("addr", metricsAddr))
		if err := http.ListenAndServe(metricsAddr, metricsMux); err != nil {
			log.Fatal("metrics server error", zap.Error(err))
		}
	}()

	publicAddr := fmt.Sprintf(":%s", cfg.HTTPPort)
	log.Info("scoreboard simulator (public) running",
		zap.String("addr", publicAddr), zap.String("paths", "/ws"))
	if err := http.ListenAndServe(publicAddr, appMux); err != nil {
		log.Fatal("public server error", zap.Error(err))
	}
}
