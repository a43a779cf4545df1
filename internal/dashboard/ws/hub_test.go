package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func dialHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWS))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

// pingPong sincroniza com o loop de leitura do servidor: quando o pong volta,
// toda mensagem enviada antes do ping já foi processada.
func pingPong(t *testing.T, conn *websocket.Conn) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(ClientMsg{Type: "ping"}))
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var pong map[string]string
	require.NoError(t, conn.ReadJSON(&pong))
	require.Equal(t, "pong", pong["type"])
}

func TestHubBroadcastReachesSubscriber(t *testing.T) {
	hub := NewHub(func(r *http.Request) bool { return true })
	conn := dialHub(t, hub)

	require.NoError(t, conn.WriteJSON(ClientMsg{Type: "subscribe", GameID: "g1"}))
	pingPong(t, conn)

	hub.Broadcast(DashboardUpdate{GameID: "g1", Kind: "score", Payload: map[string]int{"home": 12}})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var upd DashboardUpdate
	require.NoError(t, conn.ReadJSON(&upd))
	require.Equal(t, "g1", upd.GameID)
	require.Equal(t, "score", upd.Kind)
}

func TestHubUnsubscribeStopsUpdates(t *testing.T) {
	hub := NewHub(func(r *http.Request) bool { return true })
	conn := dialHub(t, hub)

	require.NoError(t, conn.WriteJSON(ClientMsg{Type: "subscribe", GameID: "g1"}))
	require.NoError(t, conn.WriteJSON(ClientMsg{Type: "unsubscribe", GameID: "g1"}))
	pingPong(t, conn)

	hub.Broadcast(DashboardUpdate{GameID: "g1", Kind: "score"})

	// a próxima mensagem tem que ser o pong; a atualização não pode chegar
	pingPong(t, conn)
}

func TestHubConcurrentBroadcastAndPong(t *testing.T) {
	// broadcasts chegam pela goroutine do subscriber Redis enquanto o loop de
	// leitura responde pings na mesma conexão; o lock por conexão serializa
	// as escritas
	hub := NewHub(func(r *http.Request) bool { return true })
	conn := dialHub(t, hub)

	require.NoError(t, conn.WriteJSON(ClientMsg{Type: "subscribe", GameID: "g1"}))
	pingPong(t, conn)

	const broadcasts = 50
	const pings = 50

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < broadcasts; i++ {
			hub.Broadcast(DashboardUpdate{GameID: "g1", Kind: "quote"})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < pings; i++ {
			_ = conn.WriteJSON(ClientMsg{Type: "ping"})
		}
	}()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for received := 0; received < broadcasts+pings; received++ {
		_, _, err := conn.ReadMessage()
		require.NoError(t, err)
	}
	wg.Wait()
}
