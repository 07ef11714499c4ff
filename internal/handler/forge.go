package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Maou3434/TOTS/internal/forge"
	"github.com/Maou3434/TOTS/internal/logger"
)

type MergeRequestBody struct {
	SkillID1 string `json:"skill_id_1" validate:"required,uuid"`
	SkillID2 string `json:"skill_id_2" validate:"required,uuid"`
}

// HandleSubmitMerge files a skill merge request for admin review
// @Summary Request skill merge
// @Description Ask to combine two identical skills into one of the next rarity
// @Tags forge
// @Accept json
// @Produce json
// @Param request body MergeRequestBody true "The two source skills"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /merge/request [post]
func HandleSubmitMerge(svc forge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		teamID, ok := requireTeamID(w, r)
		if !ok {
			return
		}

		var req MergeRequestBody
		if err := DecodeAndValidateRequest(r, w, &req, "Submit merge"); err != nil {
			return
		}
		id1 := uuid.MustParse(req.SkillID1)
		id2 := uuid.MustParse(req.SkillID2)

		mr, err := svc.SubmitMergeRequest(r.Context(), teamID, id1, id2)
		if err != nil {
			respondServiceError(w, r, "Submit merge", err)
			return
		}

		log.Info("Merge requested", "team_id", teamID, "request_id", mr.ID, "skill", mr.SkillName)
		respondJSON(w, http.StatusCreated, DataResponse{Message: "Merge submitted for review", Data: mr})
	}
}

// HandleListMerges returns the authenticated team's merge request history
// @Summary List merge requests
// @Tags forge
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 401 {object} ErrorResponse
// @Router /merge/requests [get]
func HandleListMerges(svc forge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID, ok := requireTeamID(w, r)
		if !ok {
			return
		}

		requests, err := svc.ListMergeRequests(r.Context(), teamID)
		if err != nil {
			respondServiceError(w, r, "List merges", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: requests})
	}
}
