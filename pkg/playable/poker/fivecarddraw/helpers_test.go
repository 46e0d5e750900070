package fivecarddraw

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"drawpoker-server/pkg/deck"
	"drawpoker-server/pkg/playable"
)

type sentPayload struct {
	// playerID is 0 when the payload went to everyone
	playerID int
	res      *playable.Response
}

type recordingTransport struct {
	sent []sentPayload
}

func (r *recordingTransport) SendToOne(playerID int, payload *playable.Response) {
	r.sent = append(r.sent, sentPayload{playerID: playerID, res: payload})
}

func (r *recordingTransport) SendToAll(payload *playable.Response) {
	r.sent = append(r.sent, sentPayload{res: payload})
}

func (r *recordingTransport) reset() {
	r.sent = nil
}

func (r *recordingTransport) lastView(playerID int) *GameStateView {
	for i := len(r.sent) - 1; i >= 0; i-- {
		s := r.sent[i]
		if s.playerID == playerID && s.res.Key == keyGame {
			return s.res.Data.(*GameStateView)
		}
	}

	return nil
}

func (r *recordingTransport) withKey(key string) []sentPayload {
	var matches []sentPayload
	for _, s := range r.sent {
		if s.res.Key == key {
			matches = append(matches, s)
		}
	}

	return matches
}

func (r *recordingTransport) logMessages() []string {
	var messages []string
	for _, s := range r.withKey(keyLog) {
		for _, msg := range s.res.Data.([]*playable.LogMessage) {
			messages = append(messages, msg.Message)
		}
	}

	return messages
}

// stackedDeck hands out cards in the order they were stacked
type stackedDeck struct {
	cards    []*deck.Card
	shuffles int
}

func (s *stackedDeck) Shuffle() {
	s.shuffles++
}

func (s *stackedDeck) Draw() (*deck.Card, error) {
	if len(s.cards) == 0 {
		return nil, deck.ErrEndOfDeck
	}

	card := s.cards[0]
	s.cards = s.cards[1:]
	return card, nil
}

// stackDeal stacks the deck so the next deal gives each player the given hand
func (s *stackedDeck) stackDeal(dealer int, p1Hand, p2Hand string) {
	hands := map[int][]*deck.Card{
		1: deck.CardsFromString(p1Hand),
		2: deck.CardsFromString(p2Hand),
	}

	for i := 0; i < 5; i++ {
		s.cards = append(s.cards, hands[opponentOf(dealer)][i], hands[dealer][i])
	}
}

func (s *stackedDeck) stack(cards string) {
	s.cards = append(s.cards, deck.CardsFromString(cards)...)
}

type recordingRecorder struct {
	results []*GameResult
}

func (r *recordingRecorder) RecordGame(result *GameResult) {
	r.results = append(r.results, result)
}

type hubFixture struct {
	hub       *Hub
	transport *recordingTransport
	deck      *stackedDeck
	recorder  *recordingRecorder
	logs      *logtest.Hook
}

func newHubFixture(t *testing.T) *hubFixture {
	t.Helper()

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	f := &hubFixture{
		transport: &recordingTransport{},
		deck:      &stackedDeck{},
		recorder:  &recordingRecorder{},
		logs:      hook,
	}

	hub, err := NewHub(logger, f.transport, f.deck, DefaultOptions())
	require.NoError(t, err)
	hub.SetRecorder(f.recorder)
	f.hub = hub

	return f
}

// newStartedHub returns a hub with both players connected
func newStartedHub(t *testing.T) *hubFixture {
	t.Helper()

	f := newHubFixture(t)
	require.NoError(t, f.hub.PlayerConnected(1))
	require.NoError(t, f.hub.PlayerConnected(2))
	f.transport.reset()

	return f
}

func (f *hubFixture) send(t *testing.T, playerID int, msg Message) {
	t.Helper()
	require.NoError(t, f.hub.MessageReceived(playerID, msg))
}

func (f *hubFixture) requireConserved(t *testing.T) {
	t.Helper()

	total := f.hub.pot
	for _, p := range f.hub.participants {
		total += p.Money
	}

	require.Equal(t, PlayerCount*f.hub.options.StartingStake, total)
}
