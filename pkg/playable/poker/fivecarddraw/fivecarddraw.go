package fivecarddraw

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"drawpoker-server/pkg/deck"
	"drawpoker-server/pkg/playable"
	"drawpoker-server/pkg/poker"
)

// PlayerCount is the number of players in a session
const PlayerCount = 2

// Transport delivers payloads to the connected players
type Transport interface {
	SendToOne(playerID int, payload *playable.Response)
	SendToAll(payload *playable.Response)
}

// Deck is the source of cards for a session
type Deck interface {
	Shuffle()
	Draw() (*deck.Card, error)
}

// Hub runs a heads-up session of five-card draw between player 1 and player 2.
//
// A Hub is not safe for concurrent use. The caller must deliver connect,
// disconnect and message events one at a time, in arrival order.
type Hub struct {
	id        string
	logger    logrus.FieldLogger
	transport Transport
	deck      Deck
	options   Options
	recorder  Recorder

	connected    map[int]bool
	participants [PlayerCount]*participant
	started      bool
	closed       bool

	status            status
	dealer            int
	currentPlayer     int
	firstBettingRound bool
	amountNeededToSee int
	pot               int
	previousGameTied  bool
	gameNumber        int
}

// NewHub returns a hub that waits for both players to connect
func NewHub(logger logrus.FieldLogger, transport Transport, d Deck, opts Options) (*Hub, error) {
	if transport == nil {
		return nil, errors.New("transport is required")
	}

	if d == nil {
		return nil, errors.New("deck is required")
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	id := uuid.New().String()
	return &Hub{
		id:        id,
		logger:    logger.WithField("session", id),
		transport: transport,
		deck:      d,
		options:   opts,
		connected: make(map[int]bool, PlayerCount),
	}, nil
}

// SetRecorder sets where completed games are reported
func (h *Hub) SetRecorder(r Recorder) {
	h.recorder = r
}

// ID returns the unique session ID
func (h *Hub) ID() string {
	return h.id
}

// Started returns true once both players have connected
func (h *Hub) Started() bool {
	return h.started
}

// Closed returns true after a player has disconnected
func (h *Hub) Closed() bool {
	return h.closed
}

// PlayerConnected seats the player. The session starts when the second player arrives.
func (h *Hub) PlayerConnected(playerID int) error {
	if h.closed {
		return ErrSessionClosed
	}

	if h.started {
		return ErrSessionFull
	}

	if !isValidPlayerID(playerID) {
		return ErrUnknownPlayer
	}

	if h.connected[playerID] {
		return ErrAlreadyConnected
	}

	h.connected[playerID] = true
	h.logger.WithField("player", playerID).Info("player connected")

	if len(h.connected) < PlayerCount {
		return nil
	}

	h.start()
	return nil
}

func (h *Hub) start() {
	for i := range h.participants {
		h.participants[i] = newParticipant(i+1, h.options.StartingStake)
	}

	h.started = true
	h.status = awaitingDeal
	h.dealer = 1
	h.currentPlayer = 1

	h.logger.Info("session started")
	h.sendState()
}

// PlayerDisconnected ends the session. The remaining player is told the game is over.
func (h *Hub) PlayerDisconnected(playerID int) {
	if h.closed || !h.connected[playerID] {
		return
	}

	delete(h.connected, playerID)
	h.closed = true
	h.logger.WithField("player", playerID).Info("player disconnected, ending session")

	for id := range h.connected {
		h.transport.SendToOne(id, &playable.Response{
			Key:   keyGameEnded,
			Value: "your opponent has left the game",
		})
	}
}

// MessageReceived applies a player's message. A *ProtocolError is returned
// if the message was rejected, in which case nothing changed and nothing was sent.
func (h *Hub) MessageReceived(playerID int, msg Message) error {
	if h.closed {
		return ErrSessionClosed
	}

	if !h.started {
		return ErrNotStarted
	}

	if err := h.handle(playerID, msg); err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"player":  playerID,
			"message": fmt.Sprint(msg),
			"status":  h.status.String(),
		}).Warn("rejected message")

		return &ProtocolError{PlayerID: playerID, Err: err}
	}

	return nil
}

func (h *Hub) handle(playerID int, msg Message) error {
	if playerID != h.currentPlayer {
		return ErrNotYourTurn
	}

	switch m := msg.(type) {
	case Deal:
		return h.deal()
	case Fold:
		return h.fold()
	case Bet:
		return h.bet(m.Amount)
	case Discard:
		return h.discard(m.Indices)
	}

	return fmt.Errorf("%w: %v", ErrInvalidAction, msg)
}

func (h *Hub) deal() error {
	if h.status != awaitingDeal {
		return fmt.Errorf("%w: you cannot deal now", ErrInvalidAction)
	}

	h.deck.Shuffle()

	var hands [PlayerCount]deck.Hand
	for i := 0; i < poker.HandSize; i++ {
		// the player to the dealer's left gets the first card
		for _, playerID := range []int{opponentOf(h.dealer), h.dealer} {
			card, err := h.deck.Draw()
			if err != nil {
				return err
			}

			hands[playerID-1].AddCard(card)
		}
	}

	for i, p := range h.participants {
		p.Hand = hands[i]
		p.Money -= h.options.Ante
		h.pot += h.options.Ante
	}

	carried := h.previousGameTied
	h.previousGameTied = false
	h.gameNumber++
	h.firstBettingRound = true
	h.amountNeededToSee = 0
	h.currentPlayer = opponentOf(h.dealer)
	h.status = awaitingFirstBet

	logs := []*playable.LogMessage{
		playable.SimpleLogMessage(h.dealer, "{} dealt the cards; both players paid the ${%d} ante", h.options.Ante),
	}

	if carried {
		logs = append(logs, playable.SimpleLogMessage(0, "The pot of ${%d} includes the tied pot from the last hand", h.pot))
	}

	h.logger.WithFields(logrus.Fields{
		"game": h.gameNumber,
		"pot":  h.pot,
	}).Debug("dealt")

	h.sendLogs(logs...)
	h.sendState()
	return nil
}

func (h *Hub) fold() error {
	if h.status != awaitingFirstBet && h.status != awaitingBetOrSee {
		return fmt.Errorf("%w: you cannot fold now", ErrInvalidAction)
	}

	folder := h.currentPlayer
	winner := opponentOf(folder)
	pot := h.pot

	h.participant(winner).Money += pot
	h.pot = 0

	h.sendLogs(
		playable.SimpleLogMessage(folder, "{} folded"),
		playable.SimpleLogMessage(winner, "{} won the pot of ${%d}", pot),
	)

	h.record(&GameResult{
		Winner: winner,
		Pot:    pot,
		Folded: true,
	})

	h.endGame()
	h.sendState()
	return nil
}

func (h *Hub) bet(amount int) error {
	if h.status != awaitingFirstBet && h.status != awaitingBetOrSee {
		return fmt.Errorf("%w: you cannot bet now", ErrInvalidAction)
	}

	if amount < 0 {
		return fmt.Errorf("%w: bet cannot be negative", ErrBetTooSmall)
	}

	if h.status == awaitingBetOrSee && amount < h.amountNeededToSee {
		return fmt.Errorf("%w: you must bet at least ${%d} to see", ErrBetTooSmall, h.amountNeededToSee)
	}

	bettor := h.currentPlayer
	h.participant(bettor).Money -= amount
	h.pot += amount

	if h.status == awaitingFirstBet {
		if amount == 0 {
			h.sendLogs(playable.SimpleLogMessage(bettor, "{} passed"))
		} else {
			h.sendLogs(playable.SimpleLogMessage(bettor, "{} bet ${%d}", amount))
		}

		h.amountNeededToSee = amount
		h.currentPlayer = opponentOf(bettor)
		h.status = awaitingBetOrSee
		h.sendState()
		return nil
	}

	if amount == h.amountNeededToSee {
		if amount == 0 {
			h.sendLogs(playable.SimpleLogMessage(bettor, "{} passed"))
		} else {
			h.sendLogs(playable.SimpleLogMessage(bettor, "{} saw the bet of ${%d}", amount))
		}

		h.amountNeededToSee = 0
		if !h.firstBettingRound {
			h.showdown()
			return nil
		}

		h.currentPlayer = opponentOf(h.dealer)
		h.status = awaitingFirstDraw
		h.sendState()
		return nil
	}

	h.sendLogs(playable.SimpleLogMessage(bettor, "{} saw ${%d} and raised ${%d}", h.amountNeededToSee, amount-h.amountNeededToSee))

	// the opponent must cover the raise, not the whole bet
	h.amountNeededToSee = amount - h.amountNeededToSee
	h.currentPlayer = opponentOf(bettor)
	h.sendState()
	return nil
}

func (h *Hub) discard(indices []int) error {
	if h.status != awaitingFirstDraw && h.status != awaitingSecondDraw {
		return fmt.Errorf("%w: you cannot draw now", ErrInvalidAction)
	}

	if err := validateDiscard(indices); err != nil {
		return err
	}

	drawer := h.participant(h.currentPlayer)
	replacements := make([]*deck.Card, len(indices))
	for i := range indices {
		card, err := h.deck.Draw()
		if err != nil {
			return err
		}

		replacements[i] = card
	}

	for i, idx := range indices {
		drawer.Hand.Replace(idx, replacements[i])
	}

	switch len(indices) {
	case 0:
		h.sendLogs(playable.SimpleLogMessage(drawer.PlayerID, "{} stood pat"))
	case 1:
		h.sendLogs(playable.SimpleLogMessage(drawer.PlayerID, "{} drew 1 card"))
	default:
		h.sendLogs(playable.SimpleLogMessage(drawer.PlayerID, "{} drew %d cards", len(indices)))
	}

	if h.status == awaitingFirstDraw {
		h.currentPlayer = opponentOf(drawer.PlayerID)
		h.status = awaitingSecondDraw
	} else {
		h.currentPlayer = opponentOf(h.dealer)
		h.status = awaitingFirstBet
		h.firstBettingRound = false
		h.amountNeededToSee = 0
	}

	h.sendState()
	return nil
}

func validateDiscard(indices []int) error {
	if len(indices) > poker.HandSize {
		return fmt.Errorf("%w: you can discard at most %d cards", ErrInvalidDiscard, poker.HandSize)
	}

	seen := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= poker.HandSize {
			return fmt.Errorf("%w: position %d is not in your hand", ErrInvalidDiscard, idx)
		}

		if seen[idx] {
			return fmt.Errorf("%w: position %d was listed twice", ErrInvalidDiscard, idx)
		}

		seen[idx] = true
	}

	return nil
}

// showdown compares the hands and pays the winner
// An unrankable hand means the deck is broken, so it panics.
func (h *Hub) showdown() {
	showdown := &Showdown{Pot: h.pot}
	ranks := make([]*poker.HandRank, PlayerCount)
	hands := make(map[int]string, PlayerCount)
	descriptions := make(map[int]string, PlayerCount)

	for i, p := range h.participants {
		hand := p.snapshot()
		ranks[i] = poker.MustEvaluate(hand)
		showdown.Hands = append(showdown.Hands, &RevealedHand{
			PlayerID: p.PlayerID,
			Hand:     hand,
			Rank:     ranks[i],
		})

		hands[p.PlayerID] = deck.CardsToString(hand)
		descriptions[p.PlayerID] = ranks[i].Long
	}

	logs := make([]*playable.LogMessage, 0, PlayerCount+1)
	for i, p := range h.participants {
		msg := playable.SimpleLogMessage(p.PlayerID, "{} had %s", ranks[i].Long)
		msg.Cards = showdown.Hands[i].Hand
		logs = append(logs, msg)
	}

	pot := h.pot
	switch ranks[0].Compare(ranks[1]) {
	case 1:
		showdown.Winner = 1
	case -1:
		showdown.Winner = 2
	default:
		showdown.Tied = true
	}

	if showdown.Tied {
		h.previousGameTied = true
		logs = append(logs, playable.SimpleLogMessage(0, "Tie; the pot of ${%d} carries over to the next hand", pot))
	} else {
		h.participant(showdown.Winner).Money += pot
		h.pot = 0
		logs = append(logs, playable.SimpleLogMessage(showdown.Winner, "{} won the pot of ${%d}", pot))
	}

	h.transport.SendToAll(&playable.Response{
		Key:   keyReveal,
		Value: gameKey,
		Data:  showdown,
	})

	h.sendLogs(logs...)
	h.record(&GameResult{
		Winner: showdown.Winner,
		Pot:    pot,
		Tied:   showdown.Tied,
		Hands:  hands,
		Ranks:  descriptions,
	})

	h.endGame()
	h.sendState()
}

// endGame passes the deal to the other player
func (h *Hub) endGame() {
	h.dealer = opponentOf(h.dealer)
	h.currentPlayer = h.dealer
	h.status = awaitingDeal
	h.amountNeededToSee = 0
	h.firstBettingRound = false
}

func (h *Hub) record(result *GameResult) {
	result.ID = uuid.New().String()
	result.SessionID = h.id
	result.GameNumber = h.gameNumber
	result.Money = h.money()
	result.Ended = time.Now()

	h.logger.WithFields(logrus.Fields{
		"game":   result.GameNumber,
		"winner": result.Winner,
		"pot":    result.Pot,
		"tied":   result.Tied,
	}).Info("game complete")

	if h.recorder != nil {
		h.recorder.RecordGame(result)
	}
}

func (h *Hub) sendState() {
	for _, p := range h.participants {
		res, _ := h.GetPlayerState(p.PlayerID)
		h.transport.SendToOne(p.PlayerID, res)
	}
}

func (h *Hub) sendLogs(logs ...*playable.LogMessage) {
	if len(logs) == 0 {
		return
	}

	h.transport.SendToAll(&playable.Response{
		Key:   keyLog,
		Value: gameKey,
		Data:  logs,
	})
}

func (h *Hub) participant(playerID int) *participant {
	return h.participants[playerID-1]
}

func isValidPlayerID(playerID int) bool {
	return playerID >= 1 && playerID <= PlayerCount
}

func opponentOf(playerID int) int {
	return PlayerCount + 1 - playerID
}
