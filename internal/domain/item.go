package domain

import (
	"time"

	"github.com/google/uuid"
)

// ItemType is the inventory item category.
type ItemType string

const (
	ItemTypeSkill    ItemType = "skill"
	ItemTypeArtifact ItemType = "artifact"
	ItemTypeSetPiece ItemType = "set_piece"
)

// Valid reports whether t is a known item type.
func (t ItemType) Valid() bool {
	return t == ItemTypeSkill || t == ItemTypeArtifact || t == ItemTypeSetPiece
}

// IsArtifact reports whether the type occupies an artifact slot and counts
// toward set bonuses.
func (t ItemType) IsArtifact() bool {
	return t == ItemTypeArtifact || t == ItemTypeSetPiece
}

// Rarity is the ordered item rarity tier.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// RarityOrder lists rarities from lowest to highest. Merging walks this
// sequence one step at a time.
var RarityOrder = []Rarity{
	RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary,
}

// Valid reports whether r is one of the five ordered rarities.
func (r Rarity) Valid() bool {
	return r.Index() >= 0
}

// Index returns the position of r in RarityOrder, or -1 for unknown values.
func (r Rarity) Index() int {
	for i, v := range RarityOrder {
		if v == r {
			return i
		}
	}
	return -1
}

// Next returns the successor rarity, clamped at legendary. Merging two
// legendaries therefore yields another legendary.
func (r Rarity) Next() Rarity {
	i := r.Index()
	if i < 0 || i >= len(RarityOrder)-1 {
		return RarityLegendary
	}
	return RarityOrder[i+1]
}

// ItemStats is the free-form stats payload stored alongside an item.
// Values are numbers or descriptive text pulled from the static tables.
type ItemStats map[string]any

// Well-known stats payload keys.
const (
	StatKeyPower     = "power"
	StatKeyEffect    = "effect"
	StatKeyBonusTwo  = "bonus_2pc"
	StatKeyBonusFour = "bonus_4pc"
)

// InventoryItem is one owned item row. ObtainedFrom points at the dungeon
// attempt that dropped it; merge-produced items carry no provenance.
type InventoryItem struct {
	ID           uuid.UUID  `json:"id"`
	TeamID       uuid.UUID  `json:"team_id"`
	Type         ItemType   `json:"item_type"`
	Name         string     `json:"item_name"`
	Rarity       Rarity     `json:"rarity"`
	Description  string     `json:"description"`
	Stats        ItemStats  `json:"stats"`
	ObtainedFrom *uuid.UUID `json:"obtained_from,omitempty"`
	ObtainedAt   time.Time  `json:"obtained_at"`
}
