package history

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"drawpoker-server/pkg/playable/poker/fivecarddraw"
)

const saveTimeout = time.Second * 5

// Recorder saves game results on its own goroutine so a slow store never
// holds up a game
type Recorder struct {
	logger  logrus.FieldLogger
	store   Store
	results chan *fivecarddraw.GameResult
	done    chan bool

	mu     sync.RWMutex
	closed bool
}

// NewRecorder returns a recorder that queues up to bufferSize results
func NewRecorder(logger logrus.FieldLogger, store Store, bufferSize int) *Recorder {
	if bufferSize <= 0 {
		bufferSize = 1
	}

	return &Recorder{
		logger:  logger.WithField("component", "history"),
		store:   store,
		results: make(chan *fivecarddraw.GameResult, bufferSize),
		done:    make(chan bool),
	}
}

// Start starts saving queued results
func (r *Recorder) Start() {
	go r.run()
}

func (r *Recorder) run() {
	defer close(r.done)

	for result := range r.results {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		if err := r.store.Save(ctx, result); err != nil {
			r.logger.WithError(err).WithFields(logrus.Fields{
				"session": result.SessionID,
				"game":    result.GameNumber,
			}).Error("could not save game result")
		}
		cancel()
	}
}

// RecordGame queues the result. If the queue is full the result is dropped.
func (r *Recorder) RecordGame(result *fivecarddraw.GameResult) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		r.logger.WithField("session", result.SessionID).Warn("recorder is stopped, dropping game result")
		return
	}

	select {
	case r.results <- result:
	default:
		r.logger.WithField("session", result.SessionID).Warn("history queue is full, dropping game result")
	}
}

// Stop waits for the queued results to be saved
// Stop must only be called after Start
func (r *Recorder) Stop() {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.results)
	}
	r.mu.Unlock()

	<-r.done
}
