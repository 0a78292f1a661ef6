package handler

import (
	"net/http"
	"time"

	"github.com/osse101/GambaBot_Go/internal/leaderboard"
)

// HandleGetLeaderboard returns the current season standings, settling open
// bets first so the totals reflect the latest resolutions.
func HandleGetLeaderboard(svc leaderboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		board, err := svc.Build(r.Context(), time.Now().UTC())
		if err != nil {
			respondServiceError(w, r, "build leaderboard", err)
			return
		}

		respondJSON(w, http.StatusOK, board)
	}
}
