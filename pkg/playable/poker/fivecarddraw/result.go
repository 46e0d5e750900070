package fivecarddraw

import "time"

// Recorder receives the result of every completed game
// RecordGame is called on the hub's goroutine and must not block
type Recorder interface {
	RecordGame(result *GameResult)
}

// GameResult is the outcome of a single game within a session
type GameResult struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"sessionId"`
	GameNumber int       `json:"gameNumber"`
	Winner     int       `json:"winner"`
	Pot        int       `json:"pot"`
	Tied       bool      `json:"tied"`
	Folded     bool      `json:"folded"`
	Money      [2]int    `json:"money"`
	Ended      time.Time `json:"ended"`

	// Hands and Ranks are keyed by player ID and only set after a showdown
	Hands map[int]string `json:"hands,omitempty"`
	Ranks map[int]string `json:"ranks,omitempty"`
}
