package forge

import (
	"time"

	"github.com/google/uuid"

	"github.com/Maou3434/TOTS/internal/domain"
	"github.com/Maou3434/TOTS/internal/gamedata"
)

// ValidateSources checks the merge preconditions: two distinct skills owned
// by the same team, sharing name and rarity.
func ValidateSources(teamID uuid.UUID, a, b *domain.InventoryItem) error {
	if a.ID == b.ID {
		return domain.ErrMergeSameItem
	}
	if a.TeamID != teamID || b.TeamID != teamID {
		return domain.ErrItemNotOwned
	}
	if a.Type != domain.ItemTypeSkill || b.Type != domain.ItemTypeSkill {
		return domain.ErrMergeNotSkill
	}
	if a.Name != b.Name || a.Rarity != b.Rarity {
		return domain.ErrMergeMismatch
	}
	return nil
}

// Resolve produces the merged skill from two validated sources. The result
// takes the next rarity, clamped at legendary, and carries that rarity's
// effect text when the skill table knows it; otherwise the sources' text is
// inherited. The merged item has no drop provenance.
func Resolve(teamID uuid.UUID, a, b *domain.InventoryItem, tables *gamedata.Tables) (*domain.InventoryItem, error) {
	if err := ValidateSources(teamID, a, b); err != nil {
		return nil, err
	}

	rarity := a.Rarity.Next()
	effect := effectText(a, tables, rarity)

	return &domain.InventoryItem{
		ID:          uuid.New(),
		TeamID:      teamID,
		Type:        domain.ItemTypeSkill,
		Name:        a.Name,
		Rarity:      rarity,
		Description: a.Description,
		Stats: domain.ItemStats{
			domain.StatKeyEffect: effect,
		},
		ObtainedAt: time.Now(),
	}, nil
}

func effectText(src *domain.InventoryItem, tables *gamedata.Tables, rarity domain.Rarity) string {
	if def, ok := tables.Skills[src.Name]; ok {
		if text, ok := def[rarity]; ok {
			return text
		}
	}
	if text, ok := src.Stats[domain.StatKeyEffect].(string); ok {
		return text
	}
	return ""
}
