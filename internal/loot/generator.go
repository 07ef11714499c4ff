package loot

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/Maou3434/TOTS/internal/domain"
	"github.com/Maou3434/TOTS/internal/gamedata"
)

// Generator rolls dungeon drops from the static tables. Randomness is
// injected so tests can drive exact outcomes.
type Generator struct {
	tables *gamedata.Tables
	rnd    func() float64
}

// NewGenerator creates a generator; a nil rnd falls back to math/rand.
func NewGenerator(tables *gamedata.Tables, rnd func() float64) *Generator {
	if rnd == nil {
		rnd = rand.Float64
	}
	return &Generator{tables: tables, rnd: rnd}
}

// AttemptDrops generates the fixed drop set for one approved attempt: one
// skill plus two artifact-category drops, one artifact and one set piece.
// Every drop is tagged with the attempt it came from.
func (g *Generator) AttemptDrops(teamID, attemptID uuid.UUID, rank domain.Rank) []domain.InventoryItem {
	return []domain.InventoryItem{
		g.RollSkill(teamID, attemptID, rank),
		g.RollArtifact(teamID, attemptID, domain.ItemTypeArtifact),
		g.RollArtifact(teamID, attemptID, domain.ItemTypeSetPiece),
	}
}

// RollRarity walks the rank's weight table, subtracting weights from a scaled
// roll and returning the first rarity to absorb it. Unknown ranks and rolls
// that somehow survive the walk fall back to the table's first entry.
func (g *Generator) RollRarity(rank domain.Rank) domain.Rarity {
	def, ok := g.tables.Ranks[rank]
	if !ok || len(def.Weights) == 0 {
		return domain.RarityCommon
	}

	var total float64
	for _, w := range def.Weights {
		total += w.Weight
	}

	roll := g.rnd() * total
	for _, w := range def.Weights {
		roll -= w.Weight
		if roll < 0 {
			return w.Rarity
		}
	}
	return def.Weights[0].Rarity
}

// RollSkill drops a skill: uniform name, rank-weighted rarity, payload
// carrying the rarity's effect text.
func (g *Generator) RollSkill(teamID, attemptID uuid.UUID, rank domain.Rank) domain.InventoryItem {
	name := g.pick(g.tables.SkillNames())
	rarity := g.RollRarity(rank)
	effect := g.tables.Skills[name][rarity]

	return domain.InventoryItem{
		ID:          uuid.New(),
		TeamID:      teamID,
		Type:        domain.ItemTypeSkill,
		Name:        name,
		Rarity:      rarity,
		Description: fmt.Sprintf("%s skill", name),
		Stats: domain.ItemStats{
			domain.StatKeyEffect: effect,
		},
		ObtainedFrom: &attemptID,
		ObtainedAt:   time.Now(),
	}
}

// RollArtifact drops one artifact-category item: uniform set name, rarity
// fixed to common, payload carrying both set bonus texts.
func (g *Generator) RollArtifact(teamID, attemptID uuid.UUID, itemType domain.ItemType) domain.InventoryItem {
	name := g.pick(g.tables.SetNames())
	set := g.tables.Sets[name]

	return domain.InventoryItem{
		ID:          uuid.New(),
		TeamID:      teamID,
		Type:        itemType,
		Name:        name,
		Rarity:      domain.RarityCommon,
		Description: fmt.Sprintf("A piece of the %s", name),
		Stats: domain.ItemStats{
			domain.StatKeyBonusTwo:  set.TwoPiece.Text,
			domain.StatKeyBonusFour: set.FourPiece.Text,
		},
		ObtainedFrom: &attemptID,
		ObtainedAt:   time.Now(),
	}
}

func (g *Generator) pick(names []string) string {
	i := int(g.rnd() * float64(len(names)))
	if i >= len(names) {
		i = len(names) - 1
	}
	return names[i]
}
