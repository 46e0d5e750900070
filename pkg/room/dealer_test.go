package room

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drawpoker-server/pkg/playable"
	"drawpoker-server/pkg/playable/poker/fivecarddraw"
)

func newTestDealer(t *testing.T) *Dealer {
	t.Helper()

	d, err := NewDealer(logrus.StandardLogger(), fivecarddraw.DefaultOptions(), nil)
	require.NoError(t, err)
	return d
}

func TestNewDealer(t *testing.T) {
	d, err := NewDealer(logrus.StandardLogger(), fivecarddraw.Options{}, nil)
	assert.Nil(t, d)
	assert.EqualError(t, err, "starting stake must be greater than zero")
}

func TestDealer_AddClient(t *testing.T) {
	a := assert.New(t)
	d := newTestDealer(t)
	c := newTestClient("alice")
	c2 := newTestClient("bob")
	c3 := newTestClient("carol")

	a.NoError(d.AddClient(c))
	a.False(d.IsFull())
	a.NoError(d.AddClient(c2))
	a.True(d.IsFull())
	a.Equal(ErrDealerFull, d.AddClient(c3))

	a.Equal(1, c.PlayerID())
	a.Equal(2, c2.PlayerID())
	a.Equal(0, c3.PlayerID())
	a.Equal(d, c.Dealer())
	a.Nil(c3.Dealer())
	a.Equal([]*Client{c, c2}, d.Clients())
	a.Equal("alice:"+d.ID()+":1", c.String())
	a.Equal("carol", c3.String())

	a.False(d.RemoveClient(c))
	a.True(d.RemoveClient(c2))
	a.Empty(d.Clients())
}

func TestDealer_PlaysThroughTheHub(t *testing.T) {
	a := assert.New(t)
	d := newTestDealer(t)
	d.StartShift()
	defer d.EndShift()

	c1 := newTestClient("alice")
	c2 := newTestClient("bob")
	require.NoError(t, d.AddClient(c1))
	require.NoError(t, d.AddClient(c2))

	v1 := receiveView(t, c1)
	a.Equal(1, v1.PlayerID)
	a.Equal(fivecarddraw.ViewDeal, v1.Status)
	a.Equal(fivecarddraw.ViewWaitForDeal, receiveView(t, c2).Status)

	// out of turn: rejected without a response
	d.ReceivedMessage(c2, &playable.PayloadIn{Action: "deal"})
	// not a valid action at all
	d.ReceivedMessage(c1, &playable.PayloadIn{Action: "shuffle"})

	d.ReceivedMessage(c1, &playable.PayloadIn{Action: "deal", Context: "d1"})

	// the first thing bob sees is the narration for alice's deal
	res := next(t, c2)
	a.Equal("log", res.Key)
	logs := res.Data.([]*playable.LogMessage)
	if a.Len(logs, 1) {
		a.Equal([]int{1}, logs[0].PlayerIDs)
	}

	v2 := receiveView(t, c2)
	a.Equal(fivecarddraw.ViewBet, v2.Status)
	a.Len(v2.Hand, 5)
	a.Equal(fivecarddraw.ViewWaitForBet, receiveView(t, c1).Status)
	a.Equal("d1", receive(t, c1, "status").Context)

	d.ReceivedMessage(c2, &playable.PayloadIn{
		Action:         "bet",
		AdditionalData: playable.AdditionalData{"amount": float64(15)},
	})

	v1 = receiveView(t, c1)
	a.Equal(fivecarddraw.ViewBetOrSee, v1.Status)
	if a.NotNil(v1.AmountNeededToSee) {
		a.Equal(15, *v1.AmountNeededToSee)
	}
	a.Equal(25, v1.Pot)
}

func TestDealer_RemoveClientEndsSession(t *testing.T) {
	d := newTestDealer(t)
	d.StartShift()
	defer d.EndShift()

	c1 := newTestClient("alice")
	c2 := newTestClient("bob")
	require.NoError(t, d.AddClient(c1))
	require.NoError(t, d.AddClient(c2))
	receiveView(t, c2)

	assert.False(t, d.RemoveClient(c1))
	res := receive(t, c2, "gameEnded")
	assert.Equal(t, "your opponent has left the game", res.Value)
}

func TestDealer_SendDropsWhenBufferIsFull(t *testing.T) {
	a := assert.New(t)
	logger, hook := logtest.NewNullLogger()

	d, err := NewDealer(logger, fivecarddraw.DefaultOptions(), nil)
	require.NoError(t, err)

	// the run loop is not started, so nothing is delivered behind our back
	c := newTestClient("alice")
	require.NoError(t, d.AddClient(c))

	for i := 0; i < sendBufferSize; i++ {
		a.True(c.Send(playable.OK()))
	}

	d.SendToOne(1, playable.OK())
	d.SendToAll(playable.OK())
	a.Len(c.SendChan(), sendBufferSize)

	warnings := 0
	for _, entry := range hook.AllEntries() {
		if entry.Message == "client send buffer is full, dropping message" {
			warnings++
		}
	}
	a.Equal(2, warnings)

	// nobody is in seat 2
	d.SendToOne(2, playable.OK())
	a.Len(c.SendChan(), sendBufferSize)
}
