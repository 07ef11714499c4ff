package sets

import (
	"sort"

	"github.com/google/uuid"

	"github.com/Maou3434/TOTS/internal/domain"
	"github.com/Maou3434/TOTS/internal/gamedata"
)

// Set bonus activation tiers.
const (
	TierTwoPiece  = 2
	TierFourPiece = 4
)

// ActiveBonus is one activated set bonus on a player. Effects are the
// pre-parsed stat deltas; Pierce is the defense fraction ignored when
// attacking with this bonus active.
type ActiveBonus struct {
	SetName string
	Tier    int
	Text    string
	Effects []domain.StatEffect
	Pierce  float64
}

type parsedBonus struct {
	text    string
	effects []domain.StatEffect
	pierce  float64
}

type parsedSet struct {
	twoPiece  parsedBonus
	fourPiece parsedBonus
}

// Index holds the set table with effect text parsed once up front, so bonus
// resolution never touches the parser again.
type Index struct {
	sets map[string]parsedSet
}

// NewIndex parses every set definition in the table.
func NewIndex(defs map[string]gamedata.SetDef) *Index {
	ix := &Index{sets: make(map[string]parsedSet, len(defs))}
	for name, def := range defs {
		ix.sets[name] = parsedSet{
			twoPiece: parsedBonus{
				text:    def.TwoPiece.Text,
				effects: ParseEffects(def.TwoPiece.Text),
				pierce:  def.TwoPiece.Pierce,
			},
			fourPiece: parsedBonus{
				text:    def.FourPiece.Text,
				effects: ParseEffects(def.FourPiece.Text),
				pierce:  def.FourPiece.Pierce,
			},
		}
	}
	return ix
}

// ActiveBonuses resolves the player's equipped artifact references against the
// team inventory and returns every activated set bonus. Two items of a set
// activate its 2-piece effect, four activate the 4-piece effect as well; three
// items still give only the 2-piece effect. Items whose name matches no set
// definition silently contribute nothing.
func (ix *Index) ActiveBonuses(player *domain.Player, inventory []domain.InventoryItem) []ActiveBonus {
	if len(player.EquippedArtifacts) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*domain.InventoryItem, len(inventory))
	for i := range inventory {
		byID[inventory[i].ID] = &inventory[i]
	}

	counts := make(map[string]int)
	for _, id := range player.EquippedArtifacts {
		item, ok := byID[id]
		if !ok || !item.Type.IsArtifact() {
			continue
		}
		counts[item.Name]++
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	var bonuses []ActiveBonus
	for _, name := range names {
		count := counts[name]
		def, ok := ix.sets[name]
		if !ok {
			continue
		}
		if count >= TierTwoPiece {
			bonuses = append(bonuses, ActiveBonus{
				SetName: name,
				Tier:    TierTwoPiece,
				Text:    def.twoPiece.text,
				Effects: def.twoPiece.effects,
				Pierce:  def.twoPiece.pierce,
			})
		}
		if count >= TierFourPiece {
			bonuses = append(bonuses, ActiveBonus{
				SetName: name,
				Tier:    TierFourPiece,
				Text:    def.fourPiece.text,
				Effects: def.fourPiece.effects,
				Pierce:  def.fourPiece.pierce,
			})
		}
	}

	return bonuses
}
