package handler

import (
	"net/http"

	"github.com/Maou3434/TOTS/internal/gamedata"
)

// GamedataResponse exposes the static tables clients need to render the game:
// class stat lines, the skill and set catalogs and the per-rank rarity tables.
type GamedataResponse struct {
	StartingStamina int         `json:"starting_stamina"`
	Classes         interface{} `json:"classes"`
	Skills          interface{} `json:"skills"`
	Sets            interface{} `json:"sets"`
	Ranks           interface{} `json:"ranks"`
}

// HandleGetGamedata returns the static game tables
// @Summary Get game data
// @Description Static class, skill, set and rank tables; safe to cache
// @Tags gamedata
// @Produce json
// @Success 200 {object} GamedataResponse
// @Router /gamedata [get]
func HandleGetGamedata(tables *gamedata.Tables) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, GamedataResponse{
			StartingStamina: tables.StartingStamina,
			Classes:         tables.Classes,
			Skills:          tables.Skills,
			Sets:            tables.Sets,
			Ranks:           tables.Ranks,
		})
	}
}
