// Package monitor is an optional, single-client HTTP+WebSocket view onto a
// running ensemble: it consumes the engine's documented Result stream and
// pushes each one to a browser as it is produced. It never formats output
// for a caller or parses reaction-network input — those remain out of
// scope per spec.md §1; monitor is a demo consumer of the documented data
// structures, the same role the example pack's own server package plays
// for its training visualization.
package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	channerics "github.com/niceyeti/channerics/channels"

	"crnensemble/engine"
	"crnensemble/ratestat"
)

const (
	writeWait        = 1 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	closeGracePeriod = 10 * time.Second
)

var upgrader = websocket.Upgrader{}

// Server serves a single page, to a single client, over a single
// websocket, reporting the progress of one ensemble run. Deliberately
// unambitious, in the spirit of the example pack's own server: this is a
// development aid for watching a long-running ensemble, not a
// multi-tenant dashboard.
type Server struct {
	addr    string
	results <-chan engine.Result
	rate    *ratestat.Counter
}

// NewServer wraps results, the engine's response channel, for display at
// addr. rate tracks messages/sec across every Result received.
func NewServer(addr string, results <-chan engine.Result) *Server {
	return &Server{
		addr:    addr,
		results: results,
		rate:    ratestat.NewCounter(),
	}
}

// Serve registers routes and blocks serving HTTP until the listener fails.
func (s *Server) Serve() error {
	router := mux.NewRouter()
	router.HandleFunc("/", s.serveIndex).Methods(http.MethodGet)
	router.HandleFunc("/ws", s.serveWebsocket)
	router.HandleFunc("/healthz", s.serveHealthz).Methods(http.MethodGet)

	if err := http.ListenAndServe(s.addr, router); err != nil {
		return fmt.Errorf("monitor: serve: %w", err)
	}
	return nil
}

func (s *Server) serveHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) serveIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	_, _ = w.Write([]byte(indexHTML))
}

// serveWebsocket publishes each Result from the engine's response channel
// to the client, along with a periodic ping so the connection's liveness
// can be observed, following the publish loop shape of the example pack's
// own server.publishEleUpdates.
func (s *Server) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		log.Println("monitor: upgrade:", err)
		return
	}
	defer closeWebsocket(ws)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	pinger := channerics.NewTicker(ctx.Done(), pingPeriod)

	for {
		select {
		case <-ctx.Done():
			return
		case <-pinger:
			if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				log.Println("monitor: ping failed:", err)
				return
			}
		case result, ok := <-s.results:
			if !ok {
				return
			}
			s.rate.Observe(time.Now())

			if err := ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				log.Println("monitor: set deadline:", err)
				return
			}
			payload, err := json.Marshal(viewUpdate{
				Kind:         result.Kind.String(),
				Values:       result.Values,
				RoundsPerSec: s.rate.Rate(),
			})
			if err != nil {
				log.Println("monitor: marshal:", err)
				continue
			}
			if err := ws.WriteMessage(websocket.TextMessage, payload); err != nil {
				log.Println("monitor: write:", err)
				return
			}
		}
	}
}

type viewUpdate struct {
	Kind         string                  `json:"kind"`
	Values       []engine.SpeciesAverage `json:"values"`
	RoundsPerSec float64                 `json:"roundsPerSec"`
}

func closeWebsocket(ws *websocket.Conn) {
	_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
	_ = ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	time.Sleep(closeGracePeriod)
	_ = ws.Close()
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>crnensemble monitor</title></head>
<body>
<pre id="out">connecting...</pre>
<script>
const ws = new WebSocket("ws://" + location.host + "/ws");
ws.onmessage = (ev) => { document.getElementById("out").textContent = ev.data; };
</script>
</body>
</html>`
