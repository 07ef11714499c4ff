package battle

import (
	"math"

	"github.com/Maou3434/TOTS/internal/domain"
	"github.com/Maou3434/TOTS/internal/sets"
)

// Combatant is one roster member with its resolved set bonuses and the stat
// line those bonuses produce.
type Combatant struct {
	Player  domain.Player      `json:"player"`
	Base    domain.CombatStats `json:"base_stats"`
	Stats   domain.CombatStats `json:"effective_stats"`
	Bonuses []sets.ActiveBonus `json:"active_bonuses,omitempty"`
}

// Pierce returns the strongest defense-penetration fraction among the
// combatant's active bonuses, 0 when none declares one.
func (c *Combatant) Pierce() float64 {
	var pierce float64
	for _, b := range c.Bonuses {
		if b.Pierce > pierce {
			pierce = b.Pierce
		}
	}
	return pierce
}

// Aggregate resolves set bonuses for a full roster and computes everyone's
// effective stats. Self effects apply against the holder's own base stats;
// ally effects from each member apply to every other member, against the
// receiver's base stats. Mana is never modified. With no active bonuses the
// effective line equals the base line.
func Aggregate(roster []domain.Player, inventory []domain.InventoryItem, ix *sets.Index) []Combatant {
	combatants := make([]Combatant, len(roster))
	for i := range roster {
		base := domain.BaseStats(&roster[i])
		combatants[i] = Combatant{
			Player:  roster[i],
			Base:    base,
			Stats:   base,
			Bonuses: ix.ActiveBonuses(&roster[i], inventory),
		}
	}

	for i := range combatants {
		for _, bonus := range combatants[i].Bonuses {
			for _, eff := range bonus.Effects {
				switch eff.Scope {
				case domain.ScopeSelf:
					c := &combatants[i]
					c.Stats.Add(eff.Stat, effectDelta(eff, c.Base))
				case domain.ScopeAlly:
					for j := range combatants {
						if j == i {
							continue
						}
						c := &combatants[j]
						c.Stats.Add(eff.Stat, effectDelta(eff, c.Base))
					}
				}
			}
		}
	}

	return combatants
}

// effectDelta resolves one effect against the receiver's base stats. Percent
// amounts round toward positive infinity, so a -10% cut on 12 ATK takes 1,
// not 2.
func effectDelta(eff domain.StatEffect, base domain.CombatStats) int {
	if !eff.Percent {
		return eff.Amount
	}
	return int(math.Ceil(float64(base.Stat(eff.Stat)) * float64(eff.Amount) / 100))
}
