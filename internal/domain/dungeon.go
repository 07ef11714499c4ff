package domain

import (
	"time"

	"github.com/google/uuid"
)

// Rank is a dungeon difficulty tier, E lowest to S highest. It drives the
// stamina cost of an attempt and the loot rarity weighting.
type Rank string

const (
	RankE Rank = "E"
	RankD Rank = "D"
	RankC Rank = "C"
	RankB Rank = "B"
	RankA Rank = "A"
	RankS Rank = "S"
)

// Ranks lists every rank from lowest to highest.
var Ranks = []Rank{RankE, RankD, RankC, RankB, RankA, RankS}

// Valid reports whether r is a known rank.
func (r Rank) Valid() bool {
	for _, v := range Ranks {
		if v == r {
			return true
		}
	}
	return false
}

// Dungeon is a catalog entry teams can attempt.
type Dungeon struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Rank        Rank      `json:"rank"`
	Description string    `json:"description"`
	MinLevel    int       `json:"min_level"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReviewStatus is the shared pending/approved/rejected state machine for
// dungeon attempts and merge requests. Terminal states admit no transition.
type ReviewStatus string

const (
	StatusPending  ReviewStatus = "pending"
	StatusApproved ReviewStatus = "approved"
	StatusRejected ReviewStatus = "rejected"
)

// Terminal reports whether the status admits no further transition.
func (s ReviewStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// DungeonAttempt is a team's request to run a dungeon, finalized exactly once
// by an admin review.
type DungeonAttempt struct {
	ID            uuid.UUID    `json:"id"`
	TeamID        uuid.UUID    `json:"team_id"`
	DungeonID     uuid.UUID    `json:"dungeon_id"`
	Status        ReviewStatus `json:"status"`
	AttemptedAt   time.Time    `json:"attempted_at"`
	ReviewedAt    *time.Time   `json:"reviewed_at,omitempty"`
	ReviewerNotes *string      `json:"reviewer_notes,omitempty"`

	// Joined display fields, populated by list queries.
	TeamName    string `json:"team_name,omitempty"`
	DungeonName string `json:"dungeon_name,omitempty"`
	DungeonRank Rank   `json:"dungeon_rank,omitempty"`
}
