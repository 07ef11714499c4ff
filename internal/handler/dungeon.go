package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Maou3434/TOTS/internal/dungeon"
	"github.com/Maou3434/TOTS/internal/logger"
)

// HandleListDungeons returns the full dungeon catalog
// @Summary List dungeons
// @Tags dungeon
// @Produce json
// @Success 200 {object} DataResponse
// @Router /dungeons [get]
func HandleListDungeons(svc dungeon.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dungeons, err := svc.ListDungeons(r.Context())
		if err != nil {
			respondServiceError(w, r, "List dungeons", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: dungeons})
	}
}

type SubmitAttemptRequest struct {
	DungeonID string `json:"dungeon_id" validate:"required,uuid"`
}

// HandleSubmitAttempt charges stamina and files a pending dungeon attempt
// @Summary Submit dungeon attempt
// @Description Spend the dungeon's stamina cost and queue the attempt for admin review
// @Tags dungeon
// @Accept json
// @Produce json
// @Param request body SubmitAttemptRequest true "Dungeon to attempt"
// @Success 201 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /dungeons/attempt [post]
func HandleSubmitAttempt(svc dungeon.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		teamID, ok := requireTeamID(w, r)
		if !ok {
			return
		}

		var req SubmitAttemptRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Submit attempt"); err != nil {
			return
		}
		dungeonID := uuid.MustParse(req.DungeonID)

		attempt, err := svc.SubmitAttempt(r.Context(), teamID, dungeonID)
		if err != nil {
			respondServiceError(w, r, "Submit attempt", err)
			return
		}

		log.Info("Attempt submitted", "team_id", teamID, "dungeon_id", dungeonID, "attempt_id", attempt.ID)
		respondJSON(w, http.StatusCreated, DataResponse{Message: "Attempt submitted for review", Data: attempt})
	}
}

// HandleListAttempts returns the authenticated team's attempt history
// @Summary List attempts
// @Tags dungeon
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 401 {object} ErrorResponse
// @Router /team/attempts [get]
func HandleListAttempts(svc dungeon.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID, ok := requireTeamID(w, r)
		if !ok {
			return
		}

		attempts, err := svc.ListAttempts(r.Context(), teamID)
		if err != nil {
			respondServiceError(w, r, "List attempts", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: attempts})
	}
}
