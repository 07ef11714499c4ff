package battle

import (
	"fmt"
	"math"
)

// AttackResult is the outcome of one resolved attack.
type AttackResult struct {
	Damage           int      `json:"damage"`
	Attack           int      `json:"attack"`
	Defense          int      `json:"defense"`
	EffectiveDefense int      `json:"effective_defense"`
	Pierce           float64  `json:"pierce,omitempty"`
	Trace            []string `json:"trace"`
}

// ResolveAttack computes the damage of a single attack from aggregated stats.
// An attacker with an active defense-penetration bonus ignores
// floor(DEF * fraction) of the defender's defense before the subtraction.
// Damage never goes below zero; the defender's HP is left to the caller.
func ResolveAttack(attacker, defender *Combatant) AttackResult {
	atk := attacker.Stats.Attack
	def := defender.Stats.Defense
	pierce := attacker.Pierce()

	trace := []string{
		fmt.Sprintf("%s (%s) attacks %s (%s)",
			attacker.Player.Name, attacker.Player.Class,
			defender.Player.Name, defender.Player.Class),
	}
	for _, b := range attacker.Bonuses {
		trace = append(trace, fmt.Sprintf("%s %d-piece bonus active: %s", b.SetName, b.Tier, b.Text))
	}

	effDef := def
	if pierce > 0 {
		ignored := int(math.Floor(float64(def) * pierce))
		effDef = def - ignored
		trace = append(trace, fmt.Sprintf("pierce ignores %d of %d DEF (%.0f%%)", ignored, def, pierce*100))
	}

	damage := atk - effDef
	if damage < 0 {
		damage = 0
	}
	trace = append(trace, fmt.Sprintf("%s takes %d damage (ATK %d vs DEF %d)",
		defender.Player.Name, damage, atk, effDef))

	return AttackResult{
		Damage:           damage,
		Attack:           atk,
		Defense:          def,
		EffectiveDefense: effDef,
		Pierce:           pierce,
		Trace:            trace,
	}
}
