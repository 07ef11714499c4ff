package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/Maou3434/TOTS/internal/domain"
)

// Dungeon defines the interface for the dungeon catalog and attempt log
type Dungeon interface {
	ListDungeons(ctx context.Context) ([]domain.Dungeon, error)
	GetDungeon(ctx context.Context, id uuid.UUID) (*domain.Dungeon, error)
	SeedDungeons(ctx context.Context, dungeons []domain.Dungeon) error

	CreateAttempt(ctx context.Context, attempt *domain.DungeonAttempt) error
	GetAttempt(ctx context.Context, id uuid.UUID) (*domain.DungeonAttempt, error)
	HasPendingAttempt(ctx context.Context, teamID, dungeonID uuid.UUID) (bool, error)
	ListAttemptsByTeam(ctx context.Context, teamID uuid.UUID) ([]domain.DungeonAttempt, error)
	ListPendingAttempts(ctx context.Context) ([]domain.DungeonAttempt, error)

	BeginSubmitTx(ctx context.Context) (SubmitTx, error)
	BeginReviewTx(ctx context.Context) (ReviewTx, error)
}

// SubmitTx runs an attempt submission atomically: the stamina deduction and
// the attempt insert either both land or neither does, so a rejected insert
// (concurrent double-submit, store failure) never leaves the team charged
// for an attempt that was not filed.
type SubmitTx interface {
	Tx // Commit, Rollback

	// DeductStamina subtracts cost from the team's stamina, failing with
	// domain.ErrInsufficientStamina when the pool cannot cover it.
	DeductStamina(ctx context.Context, teamID uuid.UUID, cost int) error
	CreateAttempt(ctx context.Context, attempt *domain.DungeonAttempt) error
}

// ReviewTx runs an attempt review atomically: the status transition and, on
// approval, the loot insert either both land or neither does.
type ReviewTx interface {
	Tx // Commit, Rollback

	// TransitionAttempt moves a pending attempt to a terminal status. A
	// concurrent review that already claimed the row surfaces as
	// domain.ErrAlreadyReviewed.
	TransitionAttempt(ctx context.Context, id uuid.UUID, status domain.ReviewStatus, notes string) error
	InsertItems(ctx context.Context, items []domain.InventoryItem) error
}
