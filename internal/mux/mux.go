package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"drawpoker-server/pkg/history"
	"drawpoker-server/pkg/room"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	logger  logrus.FieldLogger
	version string
	pitBoss *room.PitBoss
	history history.Store
}

// NewMux returns a new HTTP mux
// The pit boss must already be on shift
func NewMux(logger logrus.FieldLogger, version string, pitBoss *room.PitBoss, store history.Store) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		logger:  logger,
		version: version,
		pitBoss: pitBoss,
		history: store,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/ws").Handler(this.getWS())
	r.Methods(http.MethodGet).Path("/history").Handler(this.getHistory())

	return this
}
