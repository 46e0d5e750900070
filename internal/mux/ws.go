package mux

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"drawpoker-server/internal/util"
	"drawpoker-server/pkg/playable"
	"drawpoker-server/pkg/room"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

// keyGameEnded is the last message a client receives before the server closes the connection
const keyGameEnded = "gameEnded"

func (m *Mux) getWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		name := r.FormValue("name")
		if name == "" {
			name = util.GetRandomName()
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			m.logger.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		logger := m.logger.WithField("remoteAddr", remoteAddr(r))
		client := room.NewClient(logger, conn, name)

		m.pitBoss.ClientConnected(client)

		waitForCloseFrame := make(chan bool)
		defer func() {
			m.pitBoss.ClientDisconnected(client)
			_ = conn.Close()
			close(waitForCloseFrame)
		}()

		go m.webSocketWriteLoop(client, waitForCloseFrame)
		m.webSocketReadLoop(client)
	}
}

func (m *Mux) webSocketWriteLoop(client *room.Client, waitForCloseFrame chan bool) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = client.Conn.Close()
	}()

	closeConn := func(reason string) {
		_ = client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
		_ = client.Conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason))

		// wait for the close frame
		select {
		case <-waitForCloseFrame:
		case <-time.After(time.Second):
		}
	}

	for {
		select {
		case <-ticker.C:
			_ = client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case reason := <-client.Close:
			closeConn(reason)
			return
		case msg, ok := <-client.SendChan():
			if !ok {
				return
			}

			msgBytes, _ := json.Marshal(msg)
			m.logger.WithField("message", string(msgBytes)).WithField("client", client.String()).Trace("sending message to client")

			_ = client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.Conn.WriteJSON(msg); err != nil {
				m.logger.WithError(err).WithField("client", client.String()).Error("could not write message")
				return
			}

			if res, ok := msg.(*playable.Response); ok && res.Key == keyGameEnded {
				closeConn(res.Value)
				return
			}
		}
	}
}

func (m *Mux) webSocketReadLoop(client *room.Client) {
	for {
		_, data, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				m.logger.WithError(err).WithField("client", client.String()).Warn("connection closed unexpectedly")
			}

			client.CloseError = err
			return
		}

		var msg playable.PayloadIn
		if err := json.Unmarshal(data, &msg); err != nil {
			m.logger.WithError(err).WithField("client", client.String()).Warn("could not decode message")
			continue
		}

		client.ReceivedMessage(&msg)
	}
}
