package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Maou3434/TOTS/internal/battle"
)

type SimulateRequest struct {
	AttackerID string `json:"attacker_id" validate:"required,uuid"`
	DefenderID string `json:"defender_id" validate:"required,uuid"`
}

// HandleSimulate resolves one attack between two players
// @Summary Simulate an attack
// @Description Aggregate both players' stats and resolve a single attack; nothing is persisted
// @Tags battle
// @Accept json
// @Produce json
// @Param request body SimulateRequest true "Attacker and defender"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /battle/simulate [post]
func HandleSimulate(svc battle.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SimulateRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Simulate battle"); err != nil {
			return
		}

		sim, err := svc.Simulate(r.Context(), uuid.MustParse(req.AttackerID), uuid.MustParse(req.DefenderID))
		if err != nil {
			respondServiceError(w, r, "Simulate battle", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: sim})
	}
}
