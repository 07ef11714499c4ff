package sets

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Maou3434/TOTS/internal/domain"
)

// Bonus effect text is semi-structured: comma-separated clauses, each either
// self-scoped ("Gains ATK +50", "Reduces own HP by 200") or ally-scoped
// ("increases allies' ATK by 15%"). Clauses that match neither pattern
// contribute nothing -- flavor text like "Starts battle with 30% power gauge"
// parses to zero effects.
var (
	selfEffectPattern = regexp.MustCompile(`(?i)(Gains|Increases|Reduces)\s*(?:own\s)?(HP|ATK|DEF)\s*(?:by\s|\+)?(-?\d+)(%?)`)
	allyEffectPattern = regexp.MustCompile(`(?i)(increases)\s*allies'\s*(HP|ATK|DEF)\s*(?:by\s|\+)?(\d+)(%?)`)
)

// ParseEffects turns one bonus effect text into structured stat effects.
// A clause is ally-scoped iff it mentions "allies"; everything else is
// self-scoped. Reduces negates the magnitude. A trailing % marks the amount
// as a percentage of the receiving player's base stat.
func ParseEffects(text string) []domain.StatEffect {
	var effects []domain.StatEffect

	for _, clause := range strings.Split(text, ",") {
		if strings.Contains(clause, "allies") {
			effects = append(effects, parseClause(clause, allyEffectPattern, domain.ScopeAlly)...)
		} else {
			effects = append(effects, parseClause(clause, selfEffectPattern, domain.ScopeSelf)...)
		}
	}

	return effects
}

func parseClause(clause string, pattern *regexp.Regexp, scope domain.EffectScope) []domain.StatEffect {
	var effects []domain.StatEffect

	for _, m := range pattern.FindAllStringSubmatch(clause, -1) {
		amount, err := strconv.Atoi(m[3])
		if err != nil {
			continue
		}
		if strings.EqualFold(m[1], "reduces") && amount > 0 {
			amount = -amount
		}

		effects = append(effects, domain.StatEffect{
			Scope:   scope,
			Stat:    statFromToken(m[2]),
			Amount:  amount,
			Percent: m[4] == "%",
		})
	}

	return effects
}

func statFromToken(token string) domain.Stat {
	switch strings.ToUpper(token) {
	case "HP":
		return domain.StatHealth
	case "ATK":
		return domain.StatAttack
	default:
		return domain.StatDefense
	}
}
