package dungeon

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Maou3434/TOTS/internal/domain"
	"github.com/Maou3434/TOTS/internal/event"
	"github.com/Maou3434/TOTS/internal/gamedata"
	"github.com/Maou3434/TOTS/internal/logger"
	"github.com/Maou3434/TOTS/internal/loot"
	"github.com/Maou3434/TOTS/internal/repository"
)

// Service defines the interface for dungeon catalog and attempt operations
type Service interface {
	ListDungeons(ctx context.Context) ([]domain.Dungeon, error)
	SubmitAttempt(ctx context.Context, teamID, dungeonID uuid.UUID) (*domain.DungeonAttempt, error)
	ListAttempts(ctx context.Context, teamID uuid.UUID) ([]domain.DungeonAttempt, error)
	ListPendingAttempts(ctx context.Context) ([]domain.DungeonAttempt, error)
	Review(ctx context.Context, attemptID uuid.UUID, approve bool, notes string) (*domain.DungeonAttempt, error)
}

type service struct {
	dungeons  repository.Dungeon
	teams     repository.Team
	tables    *gamedata.Tables
	generator *loot.Generator
	eventBus  event.Bus
}

// NewService creates a new dungeon service
func NewService(dungeons repository.Dungeon, teams repository.Team, tables *gamedata.Tables, generator *loot.Generator, eventBus event.Bus) Service {
	return &service{
		dungeons:  dungeons,
		teams:     teams,
		tables:    tables,
		generator: generator,
		eventBus:  eventBus,
	}
}

// ListDungeons returns the full catalog.
func (s *service) ListDungeons(ctx context.Context) ([]domain.Dungeon, error) {
	dungeons, err := s.dungeons.ListDungeons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list dungeons: %w", err)
	}
	return dungeons, nil
}

// SubmitAttempt files a pending attempt and deducts the rank's stamina cost
// up front. The deduction and the insert run in one transaction, so a team
// is never charged for an attempt that was not filed. A team can have at
// most one pending attempt per dungeon.
func (s *service) SubmitAttempt(ctx context.Context, teamID, dungeonID uuid.UUID) (*domain.DungeonAttempt, error) {
	dungeon, err := s.dungeons.GetDungeon(ctx, dungeonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get dungeon: %w", err)
	}

	cost, ok := s.tables.StaminaCost(dungeon.Rank)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidRank, dungeon.Rank)
	}

	pending, err := s.dungeons.HasPendingAttempt(ctx, teamID, dungeonID)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending attempts: %w", err)
	}
	if pending {
		return nil, domain.ErrAttemptPending
	}

	team, err := s.teams.GetTeamByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	attempt := &domain.DungeonAttempt{
		ID:          uuid.New(),
		TeamID:      teamID,
		DungeonID:   dungeonID,
		Status:      domain.StatusPending,
		AttemptedAt: time.Now(),
		TeamName:    team.Name,
		DungeonName: dungeon.Name,
		DungeonRank: dungeon.Rank,
	}

	tx, err := s.dungeons.BeginSubmitTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin submit transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.DeductStamina(ctx, teamID, cost); err != nil {
		return nil, fmt.Errorf("failed to deduct stamina: %w", err)
	}
	if err := tx.CreateAttempt(ctx, attempt); err != nil {
		return nil, fmt.Errorf("failed to create attempt: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit attempt: %w", err)
	}

	if err := s.eventBus.Publish(ctx, event.NewAttemptSubmittedEvent(attempt, team.Name, dungeon)); err != nil {
		logger.FromContext(ctx).Warn("failed to publish attempt event", "error", err)
	}

	return attempt, nil
}

// ListAttempts returns the team's attempt log.
func (s *service) ListAttempts(ctx context.Context, teamID uuid.UUID) ([]domain.DungeonAttempt, error) {
	attempts, err := s.dungeons.ListAttemptsByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}
	return attempts, nil
}

// ListPendingAttempts returns every attempt awaiting review.
func (s *service) ListPendingAttempts(ctx context.Context) ([]domain.DungeonAttempt, error) {
	attempts, err := s.dungeons.ListPendingAttempts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending attempts: %w", err)
	}
	return attempts, nil
}

// Review finalizes a pending attempt exactly once. Approval generates the
// fixed drop set and inserts it in the same transaction as the status flip;
// rejection changes nothing else. Stamina spent on submission is never
// refunded either way.
func (s *service) Review(ctx context.Context, attemptID uuid.UUID, approve bool, notes string) (*domain.DungeonAttempt, error) {
	attempt, err := s.dungeons.GetAttempt(ctx, attemptID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attempt: %w", err)
	}

	dungeon, err := s.dungeons.GetDungeon(ctx, attempt.DungeonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get dungeon: %w", err)
	}

	status := domain.StatusRejected
	if approve {
		status = domain.StatusApproved
	}

	tx, err := s.dungeons.BeginReviewTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin review transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.TransitionAttempt(ctx, attemptID, status, notes); err != nil {
		return nil, fmt.Errorf("failed to transition attempt: %w", err)
	}

	var drops []domain.InventoryItem
	if approve {
		drops = s.generator.AttemptDrops(attempt.TeamID, attemptID, dungeon.Rank)
		if err := tx.InsertItems(ctx, drops); err != nil {
			return nil, fmt.Errorf("failed to insert drops: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit review: %w", err)
	}

	now := time.Now()
	attempt.Status = status
	attempt.ReviewedAt = &now
	if notes != "" {
		attempt.ReviewerNotes = &notes
	}

	log := logger.FromContext(ctx)
	if err := s.eventBus.Publish(ctx, event.NewAttemptReviewedEvent(attemptID, attempt.TeamID, status, notes)); err != nil {
		log.Warn("failed to publish review event", "error", err)
	}
	if approve {
		if err := s.eventBus.Publish(ctx, event.NewLootDroppedEvent(attemptID, attempt.TeamID, drops)); err != nil {
			log.Warn("failed to publish loot event", "error", err)
		}
	}

	return attempt, nil
}
