package main

import (
	"encoding/json"
	"flag"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"drawpoker-server/pkg/playable"
	"drawpoker-server/pkg/playable/poker/fivecarddraw"
)

var serverURL = flag.String("url", "ws://localhost:5000/ws", "the websocket endpoint")
var name = flag.String("name", "", "the name to play under")
var games = flag.Int("games", 10, "leave after this many games")
var delay = flag.Duration("delay", time.Millisecond*250, "how long to think before acting")

type response struct {
	Key     string          `json:"key"`
	Value   string          `json:"value"`
	Data    json.RawMessage `json:"data"`
	Context string          `json:"context"`
}

func main() {
	flag.Parse()

	u, err := url.Parse(*serverURL)
	if err != nil {
		logrus.WithError(err).Fatal("invalid url")
	}

	if *name != "" {
		q := u.Query()
		q.Set("name", *name)
		u.RawQuery = q.Encode()
	}

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		logrus.WithError(err).Fatal("could not connect")
	}
	defer conn.Close()

	if err := play(conn); err != nil {
		logrus.WithError(err).Error("stopped playing")
		os.Exit(1)
	}
}

func play(conn *websocket.Conn) error {
	playerID := 0
	for {
		var res response
		if err := conn.ReadJSON(&res); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return nil
			}

			return err
		}

		switch res.Key {
		case "log":
			var messages []*playable.LogMessage
			if err := json.Unmarshal(res.Data, &messages); err != nil {
				return err
			}

			for _, msg := range messages {
				logrus.Info(narrate(msg, playerID))
			}
		case "reveal":
			logrus.WithField("showdown", string(res.Data)).Debug("showdown")
		case "gameEnded":
			logrus.WithField("reason", res.Value).Info("game ended")
		case "game":
			var view fivecarddraw.GameStateView
			if err := json.Unmarshal(res.Data, &view); err != nil {
				return err
			}
			playerID = view.PlayerID

			if view.Status == fivecarddraw.ViewDeal && view.GameNumber >= *games {
				logrus.WithField("money", view.Money[playerID-1]).Info("leaving the table")
				return conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"))
			}

			msg, err := decide(&view)
			if err != nil {
				return err
			}

			if msg == nil {
				continue
			}

			time.Sleep(*delay)
			msg.Context = strconv.Itoa(view.GameNumber)
			if err := conn.WriteJSON(msg); err != nil {
				return err
			}
		}
	}
}

// narrate fills in the player placeholder of a log message
func narrate(msg *playable.LogMessage, me int) string {
	text := msg.Message
	for _, id := range msg.PlayerIDs {
		who := "player " + strconv.Itoa(id)
		if id == me {
			who = "I"
		}

		text = strings.Replace(text, "{}", who, 1)
	}

	return text
}
