package domain

import (
	"time"

	"github.com/google/uuid"
)

// MergeRequest asks the admin to fuse two same-name, same-rarity skills into
// one of the next rarity. Approval destroys both sources and creates the
// merged item; rejection changes nothing.
type MergeRequest struct {
	ID          uuid.UUID    `json:"id"`
	TeamID      uuid.UUID    `json:"team_id"`
	SkillID1    uuid.UUID    `json:"skill_id_1"`
	SkillID2    uuid.UUID    `json:"skill_id_2"`
	Status      ReviewStatus `json:"status"`
	RequestedAt time.Time    `json:"requested_at"`
	ReviewedAt  *time.Time   `json:"reviewed_at,omitempty"`

	// Joined display fields, populated by list queries.
	TeamName  string `json:"team_name,omitempty"`
	SkillName string `json:"skill_name,omitempty"`
	Rarity    Rarity `json:"rarity,omitempty"`
}
