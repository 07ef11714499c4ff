package forge

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Maou3434/TOTS/internal/domain"
	"github.com/Maou3434/TOTS/internal/event"
	"github.com/Maou3434/TOTS/internal/gamedata"
	"github.com/Maou3434/TOTS/internal/logger"
	"github.com/Maou3434/TOTS/internal/repository"
)

// Service defines the interface for skill merge operations
type Service interface {
	SubmitMergeRequest(ctx context.Context, teamID, skillID1, skillID2 uuid.UUID) (*domain.MergeRequest, error)
	ListMergeRequests(ctx context.Context, teamID uuid.UUID) ([]domain.MergeRequest, error)
	ListPendingMergeRequests(ctx context.Context) ([]domain.MergeRequest, error)
	ReviewMerge(ctx context.Context, requestID uuid.UUID, approve bool) (*domain.MergeRequest, error)
}

type service struct {
	merges   repository.Merge
	items    repository.Inventory
	tables   *gamedata.Tables
	eventBus event.Bus
}

// NewService creates a new forge service
func NewService(merges repository.Merge, items repository.Inventory, tables *gamedata.Tables, eventBus event.Bus) Service {
	return &service{merges: merges, items: items, tables: tables, eventBus: eventBus}
}

// SubmitMergeRequest validates the two source skills up front and files the
// request for admin review. Nothing is destroyed until approval.
func (s *service) SubmitMergeRequest(ctx context.Context, teamID, skillID1, skillID2 uuid.UUID) (*domain.MergeRequest, error) {
	a, err := s.items.GetItem(ctx, skillID1)
	if err != nil {
		return nil, fmt.Errorf("failed to get first skill: %w", err)
	}
	b, err := s.items.GetItem(ctx, skillID2)
	if err != nil {
		return nil, fmt.Errorf("failed to get second skill: %w", err)
	}

	if err := ValidateSources(teamID, a, b); err != nil {
		return nil, err
	}

	req := &domain.MergeRequest{
		ID:          uuid.New(),
		TeamID:      teamID,
		SkillID1:    a.ID,
		SkillID2:    b.ID,
		Status:      domain.StatusPending,
		RequestedAt: time.Now(),
		SkillName:   a.Name,
		Rarity:      a.Rarity,
	}

	if err := s.merges.CreateMergeRequest(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to create merge request: %w", err)
	}

	if err := s.eventBus.Publish(ctx, event.NewMergeRequestedEvent(req, a.Name, a.Rarity)); err != nil {
		logger.FromContext(ctx).Warn("failed to publish merge request event", "error", err)
	}

	return req, nil
}

// ListMergeRequests returns the team's merge requests, newest first.
func (s *service) ListMergeRequests(ctx context.Context, teamID uuid.UUID) ([]domain.MergeRequest, error) {
	reqs, err := s.merges.ListMergeRequestsByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list merge requests: %w", err)
	}
	return reqs, nil
}

// ListPendingMergeRequests returns every request awaiting review.
func (s *service) ListPendingMergeRequests(ctx context.Context) ([]domain.MergeRequest, error) {
	reqs, err := s.merges.ListPendingMergeRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending merge requests: %w", err)
	}
	return reqs, nil
}

// ReviewMerge finalizes a pending request exactly once. Approval re-validates
// the sources, destroys them and inserts the merged skill in one transaction;
// rejection only flips the status.
func (s *service) ReviewMerge(ctx context.Context, requestID uuid.UUID, approve bool) (*domain.MergeRequest, error) {
	req, err := s.merges.GetMergeRequest(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get merge request: %w", err)
	}

	status := domain.StatusRejected
	if approve {
		status = domain.StatusApproved
	}

	tx, err := s.merges.BeginMergeTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin merge transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.TransitionMergeRequest(ctx, requestID, status); err != nil {
		return nil, fmt.Errorf("failed to transition merge request: %w", err)
	}

	var merged *domain.InventoryItem
	if approve {
		a, err := tx.GetItem(ctx, req.SkillID1)
		if err != nil {
			return nil, fmt.Errorf("failed to get first skill: %w", err)
		}
		b, err := tx.GetItem(ctx, req.SkillID2)
		if err != nil {
			return nil, fmt.Errorf("failed to get second skill: %w", err)
		}

		merged, err = Resolve(req.TeamID, a, b, s.tables)
		if err != nil {
			return nil, err
		}

		if err := tx.DeleteItems(ctx, []uuid.UUID{a.ID, b.ID}); err != nil {
			return nil, fmt.Errorf("failed to destroy source skills: %w", err)
		}
		if err := tx.InsertItems(ctx, []domain.InventoryItem{*merged}); err != nil {
			return nil, fmt.Errorf("failed to insert merged skill: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit merge review: %w", err)
	}

	now := time.Now()
	req.Status = status
	req.ReviewedAt = &now

	if err := s.eventBus.Publish(ctx, event.NewMergeReviewedEvent(req.ID, req.TeamID, status, merged)); err != nil {
		logger.FromContext(ctx).Warn("failed to publish merge review event", "error", err)
	}

	return req, nil
}
