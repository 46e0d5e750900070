package fivecarddraw

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_viewStatusFor(t *testing.T) {
	tests := []struct {
		status  status
		active  ViewStatus
		passive ViewStatus
	}{
		{awaitingDeal, ViewDeal, ViewWaitForDeal},
		{awaitingFirstBet, ViewBet, ViewWaitForBet},
		{awaitingBetOrSee, ViewBetOrSee, ViewWaitForBetOrSee},
		{awaitingFirstDraw, ViewDraw, ViewWaitForDraw},
		{awaitingSecondDraw, ViewDraw, ViewWaitForDraw},
	}

	for _, test := range tests {
		assert.Equal(t, test.active, viewStatusFor(test.status, true), test.status.String())
		assert.Equal(t, test.passive, viewStatusFor(test.status, false), test.status.String())
	}

	assert.Panics(t, func() {
		viewStatusFor(status(99), true)
	})
}

func TestViewStatus_JSON(t *testing.T) {
	a := assert.New(t)

	b, err := json.Marshal(ViewWaitForBetOrSee)
	a.NoError(err)
	a.Equal(`"waitForBetOrSee"`, string(b))

	var v ViewStatus
	a.NoError(json.Unmarshal([]byte(`"gameOver"`), &v))
	a.Equal(ViewGameOver, v)

	a.EqualError(json.Unmarshal([]byte(`"sleeping"`), &v), "unknown view status: sleeping")
	a.Panics(func() {
		_ = ViewStatus(99).String()
	})
}

func Test_status_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("awaitingDeal", awaitingDeal.String())
	a.Equal("awaitingSecondDraw", awaitingSecondDraw.String())
	a.Panics(func() {
		_ = status(99).String()
	})
}
