package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/Maou3434/TOTS/internal/domain"
)

// Team defines the interface for team and roster persistence
type Team interface {
	// CreateTeam inserts the team and its full roster in one transaction.
	// A duplicate name surfaces as domain.ErrTeamNameTaken.
	CreateTeam(ctx context.Context, team *domain.Team) error
	GetTeamByID(ctx context.Context, id uuid.UUID) (*domain.Team, error)
	GetTeamByName(ctx context.Context, name string) (*domain.Team, error)
	GetPlayerByID(ctx context.Context, id uuid.UUID) (*domain.Player, error)
	GetPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]domain.Player, error)

	// DeductStamina subtracts cost from the team's stamina, failing with
	// domain.ErrInsufficientStamina when the pool cannot cover it.
	DeductStamina(ctx context.Context, teamID uuid.UUID, cost int) error

	BeginEquipTx(ctx context.Context) (EquipTx, error)
}

// EquipTx groups the statements an equip/unequip runs atomically. The roster
// read locks the rows so two concurrent equips of the same item cannot both
// pass validation.
type EquipTx interface {
	Tx // Commit, Rollback

	GetPlayersForUpdate(ctx context.Context, teamID uuid.UUID) ([]domain.Player, error)
	GetItem(ctx context.Context, itemID uuid.UUID) (*domain.InventoryItem, error)
	UpdatePlayerEquipment(ctx context.Context, player *domain.Player) error
}
