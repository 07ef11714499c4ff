package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Maou3434/TOTS/internal/domain"
	"github.com/Maou3434/TOTS/internal/logger"
	"github.com/Maou3434/TOTS/internal/team"
)

// MemberSpec names one roster member in a registration request.
type MemberSpec struct {
	Name  string `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Class string `json:"class" validate:"required,class"`
}

type RegisterTeamRequest struct {
	TeamName string       `json:"team_name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Password string       `json:"password" validate:"required,min=8,max=128"`
	Members  []MemberSpec `json:"members" validate:"required,len=3,dive"`
}

// HandleRegisterTeam creates a team account with its three-member roster
// @Summary Register a team
// @Description Create a team account with exactly three named, classed members
// @Tags team
// @Accept json
// @Produce json
// @Param request body RegisterTeamRequest true "Team details"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /team/register [post]
func HandleRegisterTeam(svc team.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RegisterTeamRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register team"); err != nil {
			return
		}

		members := make([]team.MemberSpec, 0, len(req.Members))
		for _, m := range req.Members {
			members = append(members, team.MemberSpec{Name: m.Name, Class: domain.CharacterClass(m.Class)})
		}

		created, err := svc.Register(r.Context(), req.TeamName, req.Password, members)
		if err != nil {
			respondServiceError(w, r, "Register team", err)
			return
		}

		log.Info("Team registered", "team", created.Name, "team_id", created.ID)
		respondJSON(w, http.StatusCreated, DataResponse{Message: "Team registered", Data: created})
	}
}

type LoginRequest struct {
	TeamName string `json:"team_name" validate:"required,max=100"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	Team  *domain.Team `json:"team"`
}

// HandleLogin authenticates a team and issues a session token
// @Summary Log in
// @Description Exchange team credentials for a bearer session token
// @Tags team
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} ErrorResponse
// @Router /team/login [post]
func HandleLogin(svc team.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req LoginRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Login"); err != nil {
			return
		}

		token, t, err := svc.Login(r.Context(), req.TeamName, req.Password)
		if err != nil {
			respondServiceError(w, r, "Login", err)
			return
		}

		log.Info("Team logged in", "team", t.Name, "team_id", t.ID)
		respondJSON(w, http.StatusOK, LoginResponse{Token: token, Team: t})
	}
}

// HandleLogout invalidates the presented session token
// @Summary Log out
// @Tags team
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /team/logout [post]
func HandleLogout(svc team.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Logout(r.Context(), bearerToken(r))
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Logged out"})
	}
}

// HandleGetRoster returns the authenticated team's three members with equipment
// @Summary Get roster
// @Tags team
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 401 {object} ErrorResponse
// @Router /team/roster [get]
func HandleGetRoster(svc team.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID, ok := requireTeamID(w, r)
		if !ok {
			return
		}

		players, err := svc.Roster(r.Context(), teamID)
		if err != nil {
			respondServiceError(w, r, "Get roster", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: players})
	}
}

// HandleGetInventory returns everything the authenticated team owns
// @Summary Get inventory
// @Tags team
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 401 {object} ErrorResponse
// @Router /team/inventory [get]
func HandleGetInventory(svc team.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID, ok := requireTeamID(w, r)
		if !ok {
			return
		}

		items, err := svc.Inventory(r.Context(), teamID)
		if err != nil {
			respondServiceError(w, r, "Get inventory", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: items})
	}
}

type EquipRequest struct {
	PlayerID string `json:"player_id" validate:"required,uuid"`
	ItemID   string `json:"item_id" validate:"required,uuid"`
}

// HandleEquip equips an owned item on a roster member
// @Summary Equip item
// @Description Equip a skill or set piece on one of the team's members
// @Tags team
// @Accept json
// @Produce json
// @Param request body EquipRequest true "Player and item"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /team/equip [post]
func HandleEquip(svc team.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		teamID, ok := requireTeamID(w, r)
		if !ok {
			return
		}

		var req EquipRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Equip item"); err != nil {
			return
		}
		playerID := uuid.MustParse(req.PlayerID)
		itemID := uuid.MustParse(req.ItemID)

		if err := svc.Equip(r.Context(), teamID, playerID, itemID); err != nil {
			respondServiceError(w, r, "Equip item", err)
			return
		}

		log.Info("Item equipped", "team_id", teamID, "player_id", playerID, "item_id", itemID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Item equipped"})
	}
}

// HandleUnequip removes an equipped item from a roster member
// @Summary Unequip item
// @Tags team
// @Accept json
// @Produce json
// @Param request body EquipRequest true "Player and item"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /team/unequip [post]
func HandleUnequip(svc team.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		teamID, ok := requireTeamID(w, r)
		if !ok {
			return
		}

		var req EquipRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Unequip item"); err != nil {
			return
		}
		playerID := uuid.MustParse(req.PlayerID)
		itemID := uuid.MustParse(req.ItemID)

		if err := svc.Unequip(r.Context(), teamID, playerID, itemID); err != nil {
			respondServiceError(w, r, "Unequip item", err)
			return
		}

		log.Info("Item unequipped", "team_id", teamID, "player_id", playerID, "item_id", itemID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Item unequipped"})
	}
}

// bearerToken extracts the token from an Authorization: Bearer header.
// Empty when the header is absent or malformed.
func bearerToken(r *http.Request) string {
	const prefix = "Bearer "
	auth := r.Header.Get("Authorization")
	if len(auth) > len(prefix) && auth[:len(prefix)] == prefix {
		return auth[len(prefix):]
	}
	return ""
}
