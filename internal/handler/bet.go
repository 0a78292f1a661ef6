package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/osse101/GambaBot_Go/internal/domain"
	"github.com/osse101/GambaBot_Go/internal/wager"
)

// PlaceBetRequest is the payload for placing a bet on a market
type PlaceBetRequest struct {
	DiscordID string `json:"discord_id" validate:"required,max=32"`
	Market    string `json:"market" validate:"required,max=512"`
	Position  string `json:"position" validate:"required,position"`
}

// HandlePlaceBet places a bet for the requesting user on the referenced
// market. The stake is fixed by the current quarter.
func HandlePlaceBet(svc wager.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PlaceBetRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Place bet"); err != nil {
			return
		}

		position := domain.Position(strings.ToLower(req.Position))
		result, err := svc.PlaceBet(r.Context(), req.DiscordID, req.Market, position, time.Now().UTC())
		if err != nil {
			respondServiceError(w, r, "place bet", err)
			return
		}

		respondJSON(w, http.StatusCreated, result)
	}
}

// HandleListBets returns all of the requesting user's bets for the current
// season, settling any that have since resolved.
func HandleListBets(svc wager.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		discordID, ok := GetQueryParam(r, w, "discord_id")
		if !ok {
			return
		}

		list, err := svc.ListBets(r.Context(), discordID, time.Now().UTC())
		if err != nil {
			respondServiceError(w, r, "list bets", err)
			return
		}

		respondJSON(w, http.StatusOK, list)
	}
}
