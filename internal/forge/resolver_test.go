package forge

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maou3434/TOTS/internal/domain"
	"github.com/Maou3434/TOTS/internal/gamedata"
)

func skillItem(teamID uuid.UUID, name string, rarity domain.Rarity) *domain.InventoryItem {
	return &domain.InventoryItem{
		ID:     uuid.New(),
		TeamID: teamID,
		Type:   domain.ItemTypeSkill,
		Name:   name,
		Rarity: rarity,
		Stats:  domain.ItemStats{domain.StatKeyEffect: "old text"},
	}
}

func TestResolve_RareShieldsMakeEpic(t *testing.T) {
	tables := gamedata.MustLoad()
	teamID := uuid.New()
	a := skillItem(teamID, "Shield", domain.RarityRare)
	b := skillItem(teamID, "Shield", domain.RarityRare)

	merged, err := Resolve(teamID, a, b, tables)

	require.NoError(t, err)
	assert.Equal(t, "Shield", merged.Name)
	assert.Equal(t, domain.RarityEpic, merged.Rarity)
	assert.Equal(t, domain.ItemTypeSkill, merged.Type)
	assert.Equal(t, tables.Skills["Shield"][domain.RarityEpic], merged.Stats[domain.StatKeyEffect])
	assert.Nil(t, merged.ObtainedFrom)
	assert.NotEqual(t, a.ID, merged.ID)
	assert.NotEqual(t, b.ID, merged.ID)
}

func TestResolve_LegendaryStaysLegendary(t *testing.T) {
	tables := gamedata.MustLoad()
	teamID := uuid.New()
	a := skillItem(teamID, "Berserk", domain.RarityLegendary)
	b := skillItem(teamID, "Berserk", domain.RarityLegendary)

	merged, err := Resolve(teamID, a, b, tables)

	require.NoError(t, err)
	assert.Equal(t, domain.RarityLegendary, merged.Rarity)
}

func TestResolve_UnknownSkillInheritsEffect(t *testing.T) {
	tables := gamedata.MustLoad()
	teamID := uuid.New()
	a := skillItem(teamID, "Forgotten Art", domain.RarityRare)
	b := skillItem(teamID, "Forgotten Art", domain.RarityRare)

	merged, err := Resolve(teamID, a, b, tables)

	require.NoError(t, err)
	assert.Equal(t, "old text", merged.Stats[domain.StatKeyEffect])
}

func TestValidateSources_Rejections(t *testing.T) {
	tables := gamedata.MustLoad()
	teamID := uuid.New()

	t.Run("same item", func(t *testing.T) {
		a := skillItem(teamID, "Shield", domain.RarityRare)
		_, err := Resolve(teamID, a, a, tables)
		assert.ErrorIs(t, err, domain.ErrMergeSameItem)
	})

	t.Run("not owned", func(t *testing.T) {
		a := skillItem(teamID, "Shield", domain.RarityRare)
		b := skillItem(uuid.New(), "Shield", domain.RarityRare)
		_, err := Resolve(teamID, a, b, tables)
		assert.ErrorIs(t, err, domain.ErrItemNotOwned)
	})

	t.Run("not a skill", func(t *testing.T) {
		a := skillItem(teamID, "Shield", domain.RarityRare)
		b := skillItem(teamID, "Shield", domain.RarityRare)
		b.Type = domain.ItemTypeArtifact
		_, err := Resolve(teamID, a, b, tables)
		assert.ErrorIs(t, err, domain.ErrMergeNotSkill)
	})

	t.Run("name mismatch", func(t *testing.T) {
		a := skillItem(teamID, "Shield", domain.RarityRare)
		b := skillItem(teamID, "Berserk", domain.RarityRare)
		_, err := Resolve(teamID, a, b, tables)
		assert.ErrorIs(t, err, domain.ErrMergeMismatch)
	})

	t.Run("rarity mismatch", func(t *testing.T) {
		a := skillItem(teamID, "Shield", domain.RarityRare)
		b := skillItem(teamID, "Shield", domain.RarityEpic)
		_, err := Resolve(teamID, a, b, tables)
		assert.ErrorIs(t, err, domain.ErrMergeMismatch)
	})
}
