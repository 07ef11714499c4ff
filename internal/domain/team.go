package domain

import (
	"time"

	"github.com/google/uuid"
)

// RosterSize is the fixed number of players on a team.
const RosterSize = 3

// MaxEquippedArtifacts caps the artifact/set-piece slots per player.
const MaxEquippedArtifacts = 4

// CharacterClass identifies a player's class and thereby its base stats.
type CharacterClass string

const (
	ClassFighter  CharacterClass = "fighter"
	ClassTank     CharacterClass = "tank"
	ClassHealer   CharacterClass = "healer"
	ClassAssassin CharacterClass = "assassin"
	ClassMage     CharacterClass = "mage"
	ClassRanger   CharacterClass = "ranger"
)

// CharacterClasses lists every valid class.
var CharacterClasses = []CharacterClass{
	ClassFighter, ClassTank, ClassHealer, ClassAssassin, ClassMage, ClassRanger,
}

// Valid reports whether c is a known class.
func (c CharacterClass) Valid() bool {
	for _, cc := range CharacterClasses {
		if c == cc {
			return true
		}
	}
	return false
}

// Team is a registered party with a shared inventory and stamina pool.
type Team struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"team_name"`
	PasswordHash string    `json:"-"`
	Stamina      int       `json:"stamina"`
	Players      []Player  `json:"players,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Player is one roster member. Equipment references point at inventory items
// owned by the same team; an item is equipped by at most one player team-wide.
type Player struct {
	ID                uuid.UUID      `json:"id"`
	TeamID            uuid.UUID      `json:"team_id"`
	Name              string         `json:"name"`
	Class             CharacterClass `json:"character_class"`
	Health            int            `json:"health"`
	Mana              int            `json:"mana"`
	Attack            int            `json:"attack"`
	Defense           int            `json:"defense"`
	EquippedSkill     *uuid.UUID     `json:"equipped_skill,omitempty"`
	EquippedArtifacts []uuid.UUID    `json:"equipped_artifacts"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// HasEquipped reports whether the player references itemID in any slot.
func (p *Player) HasEquipped(itemID uuid.UUID) bool {
	if p.EquippedSkill != nil && *p.EquippedSkill == itemID {
		return true
	}
	for _, id := range p.EquippedArtifacts {
		if id == itemID {
			return true
		}
	}
	return false
}
