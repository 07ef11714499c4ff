package gamedata

import (
	"sort"

	"github.com/Maou3434/TOTS/internal/domain"
)

// ClassStats is the base stat line a player starts with for its class.
type ClassStats struct {
	Health  int `yaml:"health"`
	Mana    int `yaml:"mana"`
	Attack  int `yaml:"attack"`
	Defense int `yaml:"defense"`
}

// SkillDef maps rarity tiers to the skill's effect text. Skills only exist at
// rare and above; the loot tables never roll below rare for skills.
type SkillDef map[domain.Rarity]string

// SetBonus is one tier of a set's bonus. Pierce is the fraction of enemy
// defense ignored when this bonus is active (0 for most sets); it is declared
// here so the damage step never has to interpret display text.
type SetBonus struct {
	Text   string  `yaml:"text"`
	Pierce float64 `yaml:"pierce,omitempty"`
}

// SetDef is a full artifact set definition.
type SetDef struct {
	TwoPiece  SetBonus `yaml:"two_piece"`
	FourPiece SetBonus `yaml:"four_piece"`
}

// RarityWeight is one entry of a rank's rarity table. Order matters: rarity
// rolls walk the slice in order, subtracting weights.
type RarityWeight struct {
	Rarity domain.Rarity `yaml:"rarity"`
	Weight float64       `yaml:"weight"`
}

// RankDef carries everything rank-dependent: the stamina an attempt costs and
// the rarity weighting for skill drops.
type RankDef struct {
	StaminaCost int            `yaml:"stamina_cost"`
	Weights     []RarityWeight `yaml:"weights"`
}

// Tables is the full static game-data set. It is immutable after Load.
type Tables struct {
	StartingStamina int                                   `yaml:"starting_stamina"`
	Classes         map[domain.CharacterClass]ClassStats  `yaml:"classes"`
	Skills          map[string]SkillDef                   `yaml:"skills"`
	Sets            map[string]SetDef                     `yaml:"sets"`
	Ranks           map[domain.Rank]RankDef               `yaml:"ranks"`
}

// SkillNames returns the skill table keys in sorted order for deterministic
// uniform sampling.
func (t *Tables) SkillNames() []string {
	return sortedKeys(t.Skills)
}

// SetNames returns the set table keys in sorted order.
func (t *Tables) SetNames() []string {
	return sortedKeys(t.Sets)
}

// BaseStats returns the base combat stats for a class, and whether the class
// is known.
func (t *Tables) BaseStats(class domain.CharacterClass) (domain.CombatStats, bool) {
	cs, ok := t.Classes[class]
	if !ok {
		return domain.CombatStats{}, false
	}
	return domain.CombatStats{Health: cs.Health, Mana: cs.Mana, Attack: cs.Attack, Defense: cs.Defense}, true
}

// StaminaCost returns the attempt cost for a rank; unknown ranks cost 0 and
// report false.
func (t *Tables) StaminaCost(rank domain.Rank) (int, bool) {
	rd, ok := t.Ranks[rank]
	if !ok {
		return 0, false
	}
	return rd.StaminaCost, true
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
