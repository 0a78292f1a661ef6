package handler

import (
	"net/http"
	"time"

	"github.com/osse101/GambaBot_Go/internal/logger"
	"github.com/osse101/GambaBot_Go/internal/player"
)

// RegisterRequest is the payload for enrolling in the current season
type RegisterRequest struct {
	DiscordID string `json:"discord_id" validate:"required,max=32"`
}

// RegisterResponse carries the newly created registration
type RegisterResponse struct {
	Message string `json:"message"`
	Year    int    `json:"year"`
}

// HandleRegister enrolls a Discord user into the current year's game.
// Registration is only open during January.
func HandleRegister(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register"); err != nil {
			return
		}

		p, err := svc.Register(r.Context(), req.DiscordID, time.Now().UTC())
		if err != nil {
			respondServiceError(w, r, "register player", err)
			return
		}

		logger.FromContext(r.Context()).Info("Player registered", "discord_id", req.DiscordID, "year", p.Year)
		respondJSON(w, http.StatusCreated, RegisterResponse{
			Message: MsgRegisteredSuccess,
			Year:    p.Year,
		})
	}
}
