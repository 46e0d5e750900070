package room

import (
	"errors"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"drawpoker-server/pkg/deck"
	"drawpoker-server/pkg/playable"
	"drawpoker-server/pkg/playable/poker/fivecarddraw"
)

// ErrDealerFull is returned when a client is added to a dealer that already has two clients
var ErrDealerFull = errors.New("the dealer already has two clients")

// Dealer runs a single session. Every hub event is executed on the dealer's
// run loop, one at a time, so the hub never sees concurrent calls.
type Dealer struct {
	logger  logrus.FieldLogger
	hub     *fivecarddraw.Hub
	clients map[int]*Client
	lock    sync.RWMutex

	execInRunLoop chan func()
	close         chan bool
}

// NewDealer creates a new dealer object
// This is called from a blocking state, so it needs to return quickly
func NewDealer(logger logrus.FieldLogger, opts fivecarddraw.Options, recorder fivecarddraw.Recorder) (*Dealer, error) {
	d := &Dealer{
		clients:       make(map[int]*Client, fivecarddraw.PlayerCount),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}

	hub, err := fivecarddraw.NewHub(logger, d, deck.New(), opts)
	if err != nil {
		return nil, err
	}

	if recorder != nil {
		hub.SetRecorder(recorder)
	}

	d.hub = hub
	d.logger = logger.WithField("session", hub.ID())
	return d, nil
}

// ID returns the session ID
func (d *Dealer) ID() string {
	return d.hub.ID()
}

// Clients will return a slice of connected (at the time) clients ordered by seat
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	seats := make([]int, 0, len(d.clients))
	for seat := range d.clients {
		seats = append(seats, seat)
	}
	sort.Ints(seats)

	clients := make([]*Client, len(seats))
	for i, seat := range seats {
		clients[i] = d.clients[seat]
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

func (d *Dealer) runLoop() {
	d.logger.Debug("creating dealer run loop")
	for {
		select {
		case fn := <-d.execInRunLoop:
			fn()
		case <-d.close:
			d.logger.Debug("terminating dealer run loop")
			return
		}
	}
}

// EndShift is called when the dealer is no longer needed
func (d *Dealer) EndShift() {
	close(d.close)
}

// AddClient seats a client. The first client is player 1, the second is player 2.
// This method must return quickly
func (d *Dealer) AddClient(client *Client) error {
	d.lock.Lock()
	if len(d.clients) >= fivecarddraw.PlayerCount {
		d.lock.Unlock()
		return ErrDealerFull
	}

	playerID := 1
	if _, taken := d.clients[playerID]; taken {
		playerID = 2
	}

	d.clients[playerID] = client
	client.seat(d, playerID)
	d.lock.Unlock()

	d.execInRunLoop <- func() {
		if err := d.hub.PlayerConnected(playerID); err != nil {
			d.logger.WithError(err).WithField("client", client.String()).Warn("could not seat player")
		}
	}

	return nil
}

// RemoveClient removes a client and ends the session for the other client
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	playerID := client.PlayerID()

	d.lock.Lock()
	if d.clients[playerID] == client {
		delete(d.clients, playerID)
	}
	nClients := len(d.clients)
	d.lock.Unlock()

	d.execInRunLoop <- func() {
		d.hub.PlayerDisconnected(playerID)
	}

	return nClients == 0
}

// IsFull returns true when both seats are taken
func (d *Dealer) IsFull() bool {
	d.lock.RLock()
	defer d.lock.RUnlock()

	return len(d.clients) >= fivecarddraw.PlayerCount
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, payload *playable.PayloadIn) {
	log := d.logger.WithFields(logrus.Fields{
		"client": c.String(),
		"action": payload.Action,
	})

	msg, err := fivecarddraw.ParseMessage(payload)
	if err != nil {
		log.WithError(err).Warn("could not parse message")
		return
	}

	playerID := c.PlayerID()
	d.execInRunLoop <- func() {
		if err := d.hub.MessageReceived(playerID, msg); err != nil {
			if fivecarddraw.IsProtocolError(err) {
				log.WithError(err).Warn("message rejected")
				return
			}

			log.WithError(err).Error("could not perform action")
			return
		}

		d.send(c, playable.OK(payload.Context))
	}
}

// SendToOne queues the payload for a single player
// NOTE: must only be called from the run loop
func (d *Dealer) SendToOne(playerID int, payload *playable.Response) {
	d.lock.RLock()
	client := d.clients[playerID]
	d.lock.RUnlock()

	if client == nil {
		d.logger.WithFields(logrus.Fields{
			"player": playerID,
			"key":    payload.Key,
		}).Debug("player is not connected, dropping message")
		return
	}

	d.send(client, payload)
}

// SendToAll queues the payload for every connected player
// NOTE: must only be called from the run loop
func (d *Dealer) SendToAll(payload *playable.Response) {
	for _, client := range d.Clients() {
		d.send(client, payload)
	}
}

func (d *Dealer) send(client *Client, payload *playable.Response) {
	if !client.Send(payload) {
		d.logger.WithFields(logrus.Fields{
			"client": client.String(),
			"key":    payload.Key,
		}).Warn("client send buffer is full, dropping message")
	}
}
