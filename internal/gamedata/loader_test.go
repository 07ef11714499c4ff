package gamedata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maou3434/TOTS/internal/domain"
)

func TestLoad_EmbeddedDefaults(t *testing.T) {
	tables, err := Load("")

	require.NoError(t, err)
	assert.Positive(t, tables.StartingStamina)
	assert.NotEmpty(t, tables.SkillNames())
	assert.NotEmpty(t, tables.SetNames())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.ErrorContains(t, err, "failed to read game data file")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte("classes: [not: a: map"), 0644))

	_, err := Load(path)

	assert.ErrorContains(t, err, "failed to parse game data")
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Tables)
		wantErr string
	}{
		{
			name:    "Non-Positive Starting Stamina",
			mutate:  func(tb *Tables) { tb.StartingStamina = 0 },
			wantErr: "starting_stamina",
		},
		{
			name:    "Missing Class",
			mutate:  func(tb *Tables) { delete(tb.Classes, domain.ClassTank) },
			wantErr: "missing class",
		},
		{
			name: "Negative Base Stats",
			mutate: func(tb *Tables) {
				cs := tb.Classes[domain.ClassTank]
				cs.Attack = -1
				tb.Classes[domain.ClassTank] = cs
			},
			wantErr: "negative base stats",
		},
		{
			name:    "Empty Skill Table",
			mutate:  func(tb *Tables) { tb.Skills = nil },
			wantErr: "skill table is empty",
		},
		{
			name: "Skill Missing Tier Text",
			mutate: func(tb *Tables) {
				name := tb.SkillNames()[0]
				delete(tb.Skills[name], domain.RarityLegendary)
			},
			wantErr: "missing legendary effect text",
		},
		{
			name:    "Empty Set Table",
			mutate:  func(tb *Tables) { tb.Sets = nil },
			wantErr: "set table is empty",
		},
		{
			name: "Pierce Above One",
			mutate: func(tb *Tables) {
				name := tb.SetNames()[0]
				def := tb.Sets[name]
				def.FourPiece.Pierce = 1.5
				tb.Sets[name] = def
			},
			wantErr: "pierce outside [0,1]",
		},
		{
			name:    "Missing Rank",
			mutate:  func(tb *Tables) { delete(tb.Ranks, domain.RankS) },
			wantErr: "missing rank",
		},
		{
			name: "Non-Positive Stamina Cost",
			mutate: func(tb *Tables) {
				rd := tb.Ranks[domain.RankE]
				rd.StaminaCost = 0
				tb.Ranks[domain.RankE] = rd
			},
			wantErr: "stamina cost must be positive",
		},
		{
			name: "No Rarity Weights",
			mutate: func(tb *Tables) {
				rd := tb.Ranks[domain.RankE]
				rd.Weights = nil
				tb.Ranks[domain.RankE] = rd
			},
			wantErr: "no rarity weights",
		},
		{
			name: "Unknown Rarity In Weights",
			mutate: func(tb *Tables) {
				rd := tb.Ranks[domain.RankE]
				rd.Weights = []RarityWeight{{Rarity: "mythic", Weight: 1}}
				tb.Ranks[domain.RankE] = rd
			},
			wantErr: "unknown rarity",
		},
		{
			name: "Non-Positive Weight",
			mutate: func(tb *Tables) {
				rd := tb.Ranks[domain.RankE]
				rd.Weights = []RarityWeight{{Rarity: domain.RarityRare, Weight: 0}}
				tb.Ranks[domain.RankE] = rd
			},
			wantErr: "non-positive weight",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tables := MustLoad()
			tt.mutate(tables)

			err := tables.validate()

			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
