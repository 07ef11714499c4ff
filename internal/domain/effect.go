package domain

// Stat identifies one of the three combat stats that set bonuses can touch.
// Mana is never modified by any bonus path.
type Stat string

const (
	StatHealth  Stat = "health"
	StatAttack  Stat = "attack"
	StatDefense Stat = "defense"
)

// EffectScope says whose stats an effect clause modifies.
type EffectScope string

const (
	// ScopeSelf modifies the bonus-holder's own stats.
	ScopeSelf EffectScope = "self"
	// ScopeAlly modifies every other roster member's stats, computed against
	// each receiver's own base stat.
	ScopeAlly EffectScope = "ally"
)

// StatEffect is one parsed bonus clause. Percent effects are resolved against
// the receiving player's base stat, rounded up to the nearest integer.
type StatEffect struct {
	Scope   EffectScope `json:"scope" yaml:"scope"`
	Stat    Stat        `json:"stat" yaml:"stat"`
	Amount  int         `json:"amount" yaml:"amount"`
	Percent bool        `json:"percent,omitempty" yaml:"percent,omitempty"`
}

// CombatStats holds a fully-aggregated stat line for one player.
type CombatStats struct {
	Health  int `json:"health"`
	Mana    int `json:"mana"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
}

// BaseStats extracts the player's unmodified stat line.
func BaseStats(p *Player) CombatStats {
	return CombatStats{Health: p.Health, Mana: p.Mana, Attack: p.Attack, Defense: p.Defense}
}

// Stat returns the named stat's value.
func (c CombatStats) Stat(s Stat) int {
	switch s {
	case StatHealth:
		return c.Health
	case StatAttack:
		return c.Attack
	case StatDefense:
		return c.Defense
	default:
		return 0
	}
}

// Add adds delta to the named stat in place.
func (c *CombatStats) Add(s Stat, delta int) {
	switch s {
	case StatHealth:
		c.Health += delta
	case StatAttack:
		c.Attack += delta
	case StatDefense:
		c.Defense += delta
	}
}
