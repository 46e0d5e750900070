package mux

import (
	"net/http"

	"drawpoker-server/pkg/playable/poker/fivecarddraw"
)

type historyResponse struct {
	Games []*fivecarddraw.GameResult `json:"games"`
}

func (m *Mux) getHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := parseRows(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		games, err := m.history.Recent(r.Context(), rows)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, historyResponse{Games: games})
	}
}
