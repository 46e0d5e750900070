package room

import (
	"github.com/sirupsen/logrus"

	"drawpoker-server/pkg/playable/poker/fivecarddraw"
)

type clientEvent struct {
	client    *Client
	connected bool
}

// PitBoss is responsible for dispatching players to games
// Clients are paired in the order they connect.
type PitBoss struct {
	logger   logrus.FieldLogger
	options  fivecarddraw.Options
	recorder fivecarddraw.Recorder

	dealers map[string]*Dealer
	waiting *Dealer
	events  chan clientEvent
	close   chan bool
}

// NewPitBoss returns a new dispatch object
// recorder may be nil
func NewPitBoss(logger logrus.FieldLogger, opts fivecarddraw.Options, recorder fivecarddraw.Recorder) (*PitBoss, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &PitBoss{
		logger:   logger,
		options:  opts,
		recorder: recorder,
		dealers:  make(map[string]*Dealer),
		events:   make(chan clientEvent, 256),
		close:    make(chan bool),
	}, nil
}

// StartShift starts the PitBoss run loop
func (p *PitBoss) StartShift() {
	go p.runLoop()
}

// EndShift stops the run loop and every dealer
func (p *PitBoss) EndShift() {
	close(p.close)
}

func (p *PitBoss) runLoop() {
	for {
		select {
		case event := <-p.events:
			if event.connected {
				p.seat(event.client)
			} else {
				p.unseat(event.client)
			}
		case <-p.close:
			for id, dealer := range p.dealers {
				dealer.EndShift()
				delete(p.dealers, id)
			}

			return
		}
	}
}

func (p *PitBoss) seat(client *Client) {
	dealer := p.waiting
	if dealer == nil {
		var err error
		dealer, err = NewDealer(p.logger, p.options, p.recorder)
		if err != nil {
			p.logger.WithError(err).WithField("client", client.String()).Error("could not create dealer")
			return
		}

		dealer.StartShift()
		p.dealers[dealer.ID()] = dealer
		p.waiting = dealer
	}

	if err := dealer.AddClient(client); err != nil {
		p.logger.WithError(err).WithField("client", client.String()).Error("could not add client")
		return
	}

	p.logger.WithField("client", client.String()).Debug("client connected")
	if dealer.IsFull() {
		p.waiting = nil
	}
}

func (p *PitBoss) unseat(client *Client) {
	log := p.logger.WithField("client", client.String())
	log.Debug("client disconnected")

	dealer := client.Dealer()
	if dealer == nil {
		log.WithField("type", "exception").Error("dealer not found")
		return
	}

	// a session ends when either player leaves, so nobody else may join it
	if p.waiting == dealer {
		p.waiting = nil
	}

	if dealer.RemoveClient(client) {
		dealer.EndShift()
		delete(p.dealers, dealer.ID())
	}
}

// ClientConnected is called when a client connects to the server
func (p *PitBoss) ClientConnected(client *Client) {
	p.events <- clientEvent{client: client, connected: true}
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	p.events <- clientEvent{client: client, connected: false}
}
