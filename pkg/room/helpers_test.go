package room

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"drawpoker-server/pkg/playable"
	"drawpoker-server/pkg/playable/poker/fivecarddraw"
)

const receiveTimeout = time.Second * 2

// receive returns the next message with the given key, skipping any others
func receive(t *testing.T, c *Client, key string) *playable.Response {
	t.Helper()

	timeout := time.After(receiveTimeout)
	for {
		select {
		case msg := <-c.SendChan():
			res := msg.(*playable.Response)
			if res.Key == key {
				return res
			}
		case <-timeout:
			require.FailNowf(t, "timed out", "waiting for %s on %s", key, c.Name())
			return nil
		}
	}
}

// next returns the next message, whatever the key
func next(t *testing.T, c *Client) *playable.Response {
	t.Helper()

	select {
	case msg := <-c.SendChan():
		return msg.(*playable.Response)
	case <-time.After(receiveTimeout):
		require.FailNowf(t, "timed out", "waiting for a message on %s", c.Name())
	}

	return nil
}

func receiveView(t *testing.T, c *Client) *fivecarddraw.GameStateView {
	t.Helper()
	return receive(t, c, "game").Data.(*fivecarddraw.GameStateView)
}

func newTestClient(name string) *Client {
	return NewClient(logrus.StandardLogger(), nil, name)
}

func payload(action string) *playable.PayloadIn {
	return &playable.PayloadIn{Action: action}
}
