package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/Maou3434/TOTS/internal/domain"
)

// Merge defines the interface for skill merge requests
type Merge interface {
	CreateMergeRequest(ctx context.Context, req *domain.MergeRequest) error
	GetMergeRequest(ctx context.Context, id uuid.UUID) (*domain.MergeRequest, error)
	ListMergeRequestsByTeam(ctx context.Context, teamID uuid.UUID) ([]domain.MergeRequest, error)
	ListPendingMergeRequests(ctx context.Context) ([]domain.MergeRequest, error)

	BeginMergeTx(ctx context.Context) (MergeTx, error)
}

// MergeTx runs a merge review atomically: transition the request, destroy the
// two source skills and insert the merged one, or none of it.
type MergeTx interface {
	Tx // Commit, Rollback

	// TransitionMergeRequest moves a pending request to a terminal status; a
	// lost race surfaces as domain.ErrAlreadyReviewed.
	TransitionMergeRequest(ctx context.Context, id uuid.UUID, status domain.ReviewStatus) error
	GetItem(ctx context.Context, itemID uuid.UUID) (*domain.InventoryItem, error)
	DeleteItems(ctx context.Context, ids []uuid.UUID) error
	InsertItems(ctx context.Context, items []domain.InventoryItem) error
}
