package handler

import (
	"net/http"

	"github.com/Maou3434/TOTS/internal/dungeon"
	"github.com/Maou3434/TOTS/internal/forge"
	"github.com/Maou3434/TOTS/internal/logger"
)

// Admin review endpoints. These sit behind the API key middleware, not team
// sessions: reviewers act on any team's requests.

// HandleListPendingAttempts returns every attempt awaiting review
// @Summary List pending attempts
// @Tags admin
// @Produce json
// @Success 200 {object} DataResponse
// @Router /admin/attempts/pending [get]
func HandleListPendingAttempts(svc dungeon.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		attempts, err := svc.ListPendingAttempts(r.Context())
		if err != nil {
			respondServiceError(w, r, "List pending attempts", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: attempts})
	}
}

type ReviewAttemptRequest struct {
	Approve bool   `json:"approve"`
	Notes   string `json:"notes" validate:"max=1000"`
}

// HandleReviewAttempt approves or rejects a pending attempt
// @Summary Review attempt
// @Description Approve (generating loot) or reject a pending dungeon attempt
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Attempt id"
// @Param request body ReviewAttemptRequest true "Verdict"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /admin/attempts/{id}/review [post]
func HandleReviewAttempt(svc dungeon.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		attemptID, ok := ParseIDParam(r, w, "id")
		if !ok {
			return
		}

		var req ReviewAttemptRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Review attempt"); err != nil {
			return
		}

		attempt, err := svc.Review(r.Context(), attemptID, req.Approve, req.Notes)
		if err != nil {
			respondServiceError(w, r, "Review attempt", err)
			return
		}

		log.Info("Attempt reviewed",
			"attempt_id", attemptID,
			"team", attempt.TeamName,
			"status", attempt.Status)
		respondJSON(w, http.StatusOK, DataResponse{Message: "Attempt reviewed", Data: attempt})
	}
}

// HandleListPendingMerges returns every merge request awaiting review
// @Summary List pending merges
// @Tags admin
// @Produce json
// @Success 200 {object} DataResponse
// @Router /admin/merges/pending [get]
func HandleListPendingMerges(svc forge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requests, err := svc.ListPendingMergeRequests(r.Context())
		if err != nil {
			respondServiceError(w, r, "List pending merges", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: requests})
	}
}

type ReviewMergeRequest struct {
	Approve bool `json:"approve"`
}

// HandleReviewMerge approves or rejects a pending merge request
// @Summary Review merge
// @Description Approve (consuming both sources) or reject a pending skill merge
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Merge request id"
// @Param request body ReviewMergeRequest true "Verdict"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /admin/merges/{id}/review [post]
func HandleReviewMerge(svc forge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		requestID, ok := ParseIDParam(r, w, "id")
		if !ok {
			return
		}

		var req ReviewMergeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Review merge"); err != nil {
			return
		}

		mr, err := svc.ReviewMerge(r.Context(), requestID, req.Approve)
		if err != nil {
			respondServiceError(w, r, "Review merge", err)
			return
		}

		log.Info("Merge reviewed",
			"request_id", requestID,
			"skill", mr.SkillName,
			"status", mr.Status)
		respondJSON(w, http.StatusOK, DataResponse{Message: "Merge reviewed", Data: mr})
	}
}
