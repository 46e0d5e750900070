package room

import (
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"drawpoker-server/pkg/playable"
)

// sendBufferSize is how many outbound messages can be queued for a client
const sendBufferSize = 256

// Client is a client connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	name   string
	logger logrus.FieldLogger

	mu       sync.RWMutex
	dealer   *Dealer
	playerID int
}

// NewClient returns a new client object
func NewClient(logger logrus.FieldLogger, conn *websocket.Conn, name string) *Client {
	return &Client{
		Conn:   conn,
		send:   make(chan interface{}, sendBufferSize),
		Close:  make(chan string),
		name:   name,
		logger: logger,
	}
}

// Send sends a message to the web client
// If the client is not keeping up, the message is dropped and false is returned
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// Name returns the display name of the client
func (c *Client) Name() string {
	return c.name
}

// PlayerID returns the seat the client was given, or 0 if it is not seated yet
func (c *Client) PlayerID() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.playerID
}

// Dealer returns the dealer running the client's session
func (c *Client) Dealer() *Dealer {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.dealer
}

func (c *Client) seat(d *Dealer, playerID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dealer = d
	c.playerID = playerID
}

// String returns a traceable identifier for the client
func (c *Client) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.dealer == nil {
		return c.name
	}

	return fmt.Sprintf("%s:%s:%d", c.name, c.dealer.ID(), c.playerID)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *playable.PayloadIn) {
	dealer := c.Dealer()
	if dealer == nil {
		c.logger.WithField("action", msg.Action).Warn("received message, but client is not seated")
		return
	}

	dealer.ReceivedMessage(c, msg)
}
