package fivecarddraw

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drawpoker-server/pkg/playable"
)

func parse(t *testing.T, body string) (Message, error) {
	t.Helper()

	var payload playable.PayloadIn
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	return ParseMessage(&payload)
}

func TestParseMessage(t *testing.T) {
	a := assert.New(t)

	msg, err := parse(t, `{"action":"deal"}`)
	a.NoError(err)
	a.Equal(Deal{}, msg)

	msg, err = parse(t, `{"action":"fold"}`)
	a.NoError(err)
	a.Equal(Fold{}, msg)

	msg, err = parse(t, `{"action":"bet","additionalData":{"amount":25}}`)
	a.NoError(err)
	a.Equal(Bet{Amount: 25}, msg)

	msg, err = parse(t, `{"action":"bet","additionalData":{"amount":0}}`)
	a.NoError(err)
	a.Equal(Bet{Amount: 0}, msg)

	msg, err = parse(t, `{"action":"discard","additionalData":{"indices":[0,3]}}`)
	a.NoError(err)
	a.Equal(Discard{Indices: []int{0, 3}}, msg)

	msg, err = parse(t, `{"action":"discard"}`)
	a.NoError(err)
	a.Equal(Discard{Indices: []int{}}, msg)
}

func TestParseMessage_Errors(t *testing.T) {
	for _, body := range []string{
		`{"action":"shuffle"}`,
		`{"action":""}`,
		`{"action":"bet"}`,
		`{"action":"bet","additionalData":{"amount":2.5}}`,
		`{"action":"bet","additionalData":{"amount":"10"}}`,
		`{"action":"discard","additionalData":{"indices":"0,1"}}`,
		`{"action":"discard","additionalData":{"indices":[0.5]}}`,
	} {
		msg, err := parse(t, body)
		assert.Nil(t, msg, body)
		assert.ErrorIs(t, err, ErrInvalidAction, body)
	}
}

func TestMessage_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("deal", Deal{}.String())
	a.Equal("fold", Fold{}.String())
	a.Equal("bet 10", Bet{Amount: 10}.String())
	a.Equal("discard [1 2]", Discard{Indices: []int{1, 2}}.String())
}
