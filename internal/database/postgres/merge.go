package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Maou3434/TOTS/internal/domain"
	"github.com/Maou3434/TOTS/internal/repository"
)

// MergeRepository implements repository.Merge for PostgreSQL
type MergeRepository struct {
	db *pgxpool.Pool
}

// NewMergeRepository creates a new merge request repository
func NewMergeRepository(db *pgxpool.Pool) *MergeRepository {
	return &MergeRepository{db: db}
}

// CreateMergeRequest files a new pending merge request
func (r *MergeRepository) CreateMergeRequest(ctx context.Context, req *domain.MergeRequest) error {
	query := `
		INSERT INTO merge_requests (id, team_id, skill_id_1, skill_id_2, status, requested_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query,
		req.ID, req.TeamID, req.SkillID1, req.SkillID2, req.Status, req.RequestedAt)
	if err != nil {
		return fmt.Errorf("failed to insert merge request: %w", err)
	}
	return nil
}

// mergeSelect pulls the display fields from the first source skill; both
// sources share name and rarity by the submission invariant.
const mergeSelect = `
	SELECT m.id, m.team_id, m.skill_id_1, m.skill_id_2, m.status,
	       m.requested_at, m.reviewed_at,
	       t.team_name,
	       COALESCE(i.item_name, ''), COALESCE(i.rarity, '')
	FROM merge_requests m
	JOIN teams t ON t.id = m.team_id
	LEFT JOIN inventory i ON i.id = m.skill_id_1`

// GetMergeRequest retrieves one merge request with its display fields
func (r *MergeRepository) GetMergeRequest(ctx context.Context, id uuid.UUID) (*domain.MergeRequest, error) {
	query := mergeSelect + ` WHERE m.id = $1`
	req, err := scanMergeRequest(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMergeNotFound
		}
		return nil, fmt.Errorf("failed to get merge request: %w", err)
	}
	return req, nil
}

// ListMergeRequestsByTeam returns the team's merge requests, newest first
func (r *MergeRepository) ListMergeRequestsByTeam(ctx context.Context, teamID uuid.UUID) ([]domain.MergeRequest, error) {
	query := mergeSelect + ` WHERE m.team_id = $1 ORDER BY m.requested_at DESC`
	return r.listMergeRequests(ctx, query, teamID)
}

// ListPendingMergeRequests returns every request awaiting review, oldest first
func (r *MergeRepository) ListPendingMergeRequests(ctx context.Context) ([]domain.MergeRequest, error) {
	query := mergeSelect + ` WHERE m.status = 'pending' ORDER BY m.requested_at`
	return r.listMergeRequests(ctx, query)
}

func (r *MergeRepository) listMergeRequests(ctx context.Context, query string, args ...any) ([]domain.MergeRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query merge requests: %w", err)
	}
	defer rows.Close()

	var requests []domain.MergeRequest
	for rows.Next() {
		req, err := scanMergeRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan merge request: %w", err)
		}
		requests = append(requests, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read merge requests: %w", err)
	}
	return requests, nil
}

func scanMergeRequest(row pgx.Row) (*domain.MergeRequest, error) {
	var req domain.MergeRequest
	err := row.Scan(
		&req.ID, &req.TeamID, &req.SkillID1, &req.SkillID2, &req.Status,
		&req.RequestedAt, &req.ReviewedAt,
		&req.TeamName, &req.SkillName, &req.Rarity)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// BeginMergeTx starts a transaction for a merge review
func (r *MergeRepository) BeginMergeTx(ctx context.Context) (repository.MergeTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin merge transaction: %w", err)
	}
	return &mergeTx{tx: tx}, nil
}

// mergeTx implements repository.MergeTx
type mergeTx struct {
	tx pgx.Tx
}

func (t *mergeTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *mergeTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// TransitionMergeRequest flips a pending request to a terminal status. The
// conditional WHERE makes concurrent reviews lose cleanly.
func (t *mergeTx) TransitionMergeRequest(ctx context.Context, id uuid.UUID, status domain.ReviewStatus) error {
	query := `
		UPDATE merge_requests
		SET status = $2, reviewed_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`
	tag, err := t.tx.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to transition merge request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := t.tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM merge_requests WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check merge request: %w", err)
		}
		if !exists {
			return domain.ErrMergeNotFound
		}
		return domain.ErrAlreadyReviewed
	}
	return nil
}

func (t *mergeTx) GetItem(ctx context.Context, itemID uuid.UUID) (*domain.InventoryItem, error) {
	return getItem(ctx, t.tx, itemID)
}

func (t *mergeTx) DeleteItems(ctx context.Context, ids []uuid.UUID) error {
	query := `DELETE FROM inventory WHERE id = ANY($1::uuid[])`
	if _, err := t.tx.Exec(ctx, query, uuidsToStrings(ids)); err != nil {
		return fmt.Errorf("failed to delete items: %w", err)
	}
	return nil
}

func (t *mergeTx) InsertItems(ctx context.Context, items []domain.InventoryItem) error {
	return insertItems(ctx, t.tx, items)
}
