package battle

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maou3434/TOTS/internal/domain"
	"github.com/Maou3434/TOTS/internal/gamedata"
	"github.com/Maou3434/TOTS/internal/repository"
	"github.com/Maou3434/TOTS/internal/sets"
)

type fakeTeamRepo struct {
	players map[uuid.UUID]domain.Player
	rosters map[uuid.UUID][]domain.Player
}

func (f *fakeTeamRepo) CreateTeam(ctx context.Context, team *domain.Team) error { return nil }
func (f *fakeTeamRepo) GetTeamByID(ctx context.Context, id uuid.UUID) (*domain.Team, error) {
	return nil, domain.ErrTeamNotFound
}
func (f *fakeTeamRepo) GetTeamByName(ctx context.Context, name string) (*domain.Team, error) {
	return nil, domain.ErrTeamNotFound
}
func (f *fakeTeamRepo) GetPlayerByID(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	p, ok := f.players[id]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	return &p, nil
}
func (f *fakeTeamRepo) GetPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]domain.Player, error) {
	return f.rosters[teamID], nil
}
func (f *fakeTeamRepo) DeductStamina(ctx context.Context, teamID uuid.UUID, cost int) error {
	return nil
}
func (f *fakeTeamRepo) BeginEquipTx(ctx context.Context) (repository.EquipTx, error) {
	return nil, domain.ErrStoreError
}

type fakeInventoryRepo struct {
	byTeam map[uuid.UUID][]domain.InventoryItem
}

func (f *fakeInventoryRepo) ListInventory(ctx context.Context, teamID uuid.UUID) ([]domain.InventoryItem, error) {
	return f.byTeam[teamID], nil
}
func (f *fakeInventoryRepo) GetItem(ctx context.Context, itemID uuid.UUID) (*domain.InventoryItem, error) {
	return nil, domain.ErrItemNotFound
}
func (f *fakeInventoryRepo) InsertItems(ctx context.Context, items []domain.InventoryItem) error {
	return nil
}

func TestSimulate_TwoBarePlayers(t *testing.T) {
	teamA, teamB := uuid.New(), uuid.New()
	attacker := domain.Player{ID: uuid.New(), TeamID: teamA, Name: "Ash", Class: domain.ClassFighter, Health: 120, Mana: 30, Attack: 12, Defense: 8}
	defender := domain.Player{ID: uuid.New(), TeamID: teamB, Name: "Rook", Class: domain.ClassTank, Health: 150, Mana: 20, Attack: 8, Defense: 15}

	teams := &fakeTeamRepo{
		players: map[uuid.UUID]domain.Player{attacker.ID: attacker, defender.ID: defender},
		rosters: map[uuid.UUID][]domain.Player{teamA: {attacker}, teamB: {defender}},
	}
	svc := NewService(teams, &fakeInventoryRepo{}, sets.NewIndex(nil))

	sim, err := svc.Simulate(context.Background(), attacker.ID, defender.ID)

	require.NoError(t, err)
	assert.Equal(t, 0, sim.Result.Damage) // ATK 12 vs DEF 15
	assert.Equal(t, sim.Attacker.Base, sim.Attacker.Stats)
}

func TestSimulate_SetBonusesApply(t *testing.T) {
	tables := gamedata.MustLoad()
	teamA, teamB := uuid.New(), uuid.New()
	attacker := domain.Player{ID: uuid.New(), TeamID: teamA, Name: "Ash", Class: domain.ClassFighter, Health: 120, Mana: 30, Attack: 12, Defense: 8}
	defender := domain.Player{ID: uuid.New(), TeamID: teamB, Name: "Rook", Class: domain.ClassTank, Health: 150, Mana: 20, Attack: 8, Defense: 15}

	var items []domain.InventoryItem
	for i := 0; i < 4; i++ {
		id := uuid.New()
		items = append(items, domain.InventoryItem{ID: id, TeamID: teamA, Type: domain.ItemTypeSetPiece, Name: "Lion's Set"})
		attacker.EquippedArtifacts = append(attacker.EquippedArtifacts, id)
	}

	teams := &fakeTeamRepo{
		players: map[uuid.UUID]domain.Player{attacker.ID: attacker, defender.ID: defender},
		rosters: map[uuid.UUID][]domain.Player{teamA: {attacker}, teamB: {defender}},
	}
	inv := &fakeInventoryRepo{byTeam: map[uuid.UUID][]domain.InventoryItem{teamA: items}}
	svc := NewService(teams, inv, sets.NewIndex(tables.Sets))

	sim, err := svc.Simulate(context.Background(), attacker.ID, defender.ID)

	require.NoError(t, err)
	// 2pc: ATK 12+50=62. 4pc pierce: DEF 15 - floor(15*0.20)=12. Damage 50.
	assert.Equal(t, 62, sim.Attacker.Stats.Attack)
	assert.Equal(t, 12, sim.Result.EffectiveDefense)
	assert.Equal(t, 50, sim.Result.Damage)
}

func TestSimulate_SamePlayerRejected(t *testing.T) {
	id := uuid.New()
	svc := NewService(&fakeTeamRepo{}, &fakeInventoryRepo{}, sets.NewIndex(nil))

	_, err := svc.Simulate(context.Background(), id, id)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSimulate_UnknownPlayer(t *testing.T) {
	svc := NewService(&fakeTeamRepo{}, &fakeInventoryRepo{}, sets.NewIndex(nil))

	_, err := svc.Simulate(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}
