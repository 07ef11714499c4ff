package gamedata

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Maou3434/TOTS/internal/domain"
)

//go:embed tables.yaml
var defaultTables []byte

// Load reads game-data tables from path, or from the embedded defaults when
// path is empty, and validates them.
func Load(path string) (*Tables, error) {
	data := defaultTables
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read game data file: %w", err)
		}
		data = b
	}

	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse game data: %w", err)
	}

	if err := t.validate(); err != nil {
		return nil, fmt.Errorf("invalid game data: %w", err)
	}
	return &t, nil
}

// MustLoad loads the embedded defaults and panics on failure. The embedded
// tables are covered by tests, so a failure here is a build defect.
func MustLoad() *Tables {
	t, err := Load("")
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Tables) validate() error {
	if t.StartingStamina <= 0 {
		return fmt.Errorf("starting_stamina must be positive")
	}

	for _, class := range domain.CharacterClasses {
		cs, ok := t.Classes[class]
		if !ok {
			return fmt.Errorf("missing class %q", class)
		}
		if cs.Health < 0 || cs.Mana < 0 || cs.Attack < 0 || cs.Defense < 0 {
			return fmt.Errorf("class %q has negative base stats", class)
		}
	}

	if len(t.Skills) == 0 {
		return fmt.Errorf("skill table is empty")
	}
	for name, def := range t.Skills {
		for _, r := range []domain.Rarity{domain.RarityRare, domain.RarityEpic, domain.RarityLegendary} {
			if def[r] == "" {
				return fmt.Errorf("skill %q is missing %s effect text", name, r)
			}
		}
	}

	if len(t.Sets) == 0 {
		return fmt.Errorf("set table is empty")
	}
	for name, def := range t.Sets {
		if def.TwoPiece.Text == "" || def.FourPiece.Text == "" {
			return fmt.Errorf("set %q is missing bonus text", name)
		}
		if def.TwoPiece.Pierce < 0 || def.TwoPiece.Pierce > 1 || def.FourPiece.Pierce < 0 || def.FourPiece.Pierce > 1 {
			return fmt.Errorf("set %q has pierce outside [0,1]", name)
		}
	}

	for _, rank := range domain.Ranks {
		rd, ok := t.Ranks[rank]
		if !ok {
			return fmt.Errorf("missing rank %q", rank)
		}
		if rd.StaminaCost <= 0 {
			return fmt.Errorf("rank %q stamina cost must be positive", rank)
		}
		if len(rd.Weights) == 0 {
			return fmt.Errorf("rank %q has no rarity weights", rank)
		}
		for _, w := range rd.Weights {
			if !w.Rarity.Valid() {
				return fmt.Errorf("rank %q references unknown rarity %q", rank, w.Rarity)
			}
			if w.Weight <= 0 {
				return fmt.Errorf("rank %q has non-positive weight for %q", rank, w.Rarity)
			}
		}
	}

	return nil
}
