// pkg/api/ws.go streams health updates and alert snapshots
// over websockets.

package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

const wsWriteTimeout = 10 * time.Second

// CORS is already open on the REST surface; the websocket upgrade follows.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(_ *http.Request) bool { return true },
}

// streamHealth pushes one vehicle's health updates to the client. The
// current health, when cached, arrives first.
func (s *Server) streamHealth(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["id"]

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	defer func() {
		_ = conn.Close()
	}()

	updates, cancel := s.monitor.SubscribeHealth(vehicleID)
	defer cancel()

	clientGone := watchClient(conn)

	for {
		select {
		case <-r.Context().Done():
			return
		case <-clientGone:
			return
		case record, ok := <-updates:
			if !ok {
				return
			}

			if err := writeWS(conn, record); err != nil {
				return
			}
		}
	}
}

// streamAlerts pushes full ledger snapshots to the client after every
// mutation, starting with the current state.
func (s *Server) streamAlerts(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	defer func() {
		_ = conn.Close()
	}()

	snapshots, cancel := s.monitor.SubscribeAlerts()
	defer cancel()

	if err := writeWS(conn, s.monitor.Alerts("")); err != nil {
		return
	}

	clientGone := watchClient(conn)

	for {
		select {
		case <-r.Context().Done():
			return
		case <-clientGone:
			return
		case snapshot, ok := <-snapshots:
			if !ok {
				return
			}

			if err := writeWS(conn, snapshot); err != nil {
				return
			}
		}
	}
}

// watchClient consumes the connection's read side solely to learn when the
// client goes away.
func watchClient(conn *websocket.Conn) <-chan struct{} {
	clientGone := make(chan struct{})

	go func() {
		defer close(clientGone)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	return clientGone
}

func writeWS(conn *websocket.Conn, value any) error {
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))

	return conn.WriteJSON(value)
}
