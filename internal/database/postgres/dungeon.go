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

// DungeonRepository implements repository.Dungeon for PostgreSQL
type DungeonRepository struct {
	db *pgxpool.Pool
}

// NewDungeonRepository creates a new dungeon repository
func NewDungeonRepository(db *pgxpool.Pool) *DungeonRepository {
	return &DungeonRepository{db: db}
}

// ListDungeons returns the catalog ordered by difficulty
func (r *DungeonRepository) ListDungeons(ctx context.Context) ([]domain.Dungeon, error) {
	query := `
		SELECT id, name, rank, description, min_level, created_at
		FROM dungeons
		ORDER BY min_level, name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query dungeons: %w", err)
	}
	defer rows.Close()

	var dungeons []domain.Dungeon
	for rows.Next() {
		var d domain.Dungeon
		if err := rows.Scan(&d.ID, &d.Name, &d.Rank, &d.Description, &d.MinLevel, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan dungeon: %w", err)
		}
		dungeons = append(dungeons, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dungeons: %w", err)
	}
	return dungeons, nil
}

// GetDungeon retrieves one catalog entry
func (r *DungeonRepository) GetDungeon(ctx context.Context, id uuid.UUID) (*domain.Dungeon, error) {
	query := `
		SELECT id, name, rank, description, min_level, created_at
		FROM dungeons
		WHERE id = $1
	`
	var d domain.Dungeon
	err := r.db.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Name, &d.Rank, &d.Description, &d.MinLevel, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDungeonNotFound
		}
		return nil, fmt.Errorf("failed to get dungeon: %w", err)
	}
	return &d, nil
}

// SeedDungeons inserts catalog entries, skipping names that already exist
func (r *DungeonRepository) SeedDungeons(ctx context.Context, dungeons []domain.Dungeon) error {
	query := `
		INSERT INTO dungeons (id, name, rank, description, min_level)
		SELECT $1, $2, $3, $4, $5
		WHERE NOT EXISTS (SELECT 1 FROM dungeons WHERE name = $2)
	`
	for _, d := range dungeons {
		if _, err := r.db.Exec(ctx, query, d.ID, d.Name, d.Rank, d.Description, d.MinLevel); err != nil {
			return fmt.Errorf("failed to seed dungeon %s: %w", d.Name, err)
		}
	}
	return nil
}

// CreateAttempt files a new pending attempt
func (r *DungeonRepository) CreateAttempt(ctx context.Context, attempt *domain.DungeonAttempt) error {
	return createAttempt(ctx, r.db, attempt)
}

func createAttempt(ctx context.Context, q execer, attempt *domain.DungeonAttempt) error {
	query := `
		INSERT INTO dungeon_attempts (id, team_id, dungeon_id, status, attempted_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := q.Exec(ctx, query,
		attempt.ID, attempt.TeamID, attempt.DungeonID, attempt.Status, attempt.AttemptedAt)
	if err != nil {
		// The partial unique index rejects a second pending attempt for the
		// same team and dungeon.
		if isUniqueViolation(err) {
			return domain.ErrAttemptPending
		}
		return fmt.Errorf("failed to insert attempt: %w", err)
	}
	return nil
}

const attemptSelect = `
	SELECT a.id, a.team_id, a.dungeon_id, a.status, a.attempted_at,
	       a.reviewed_at, a.reviewer_notes,
	       t.team_name, d.name, d.rank
	FROM dungeon_attempts a
	JOIN teams t ON t.id = a.team_id
	JOIN dungeons d ON d.id = a.dungeon_id`

// GetAttempt retrieves one attempt with its display fields
func (r *DungeonRepository) GetAttempt(ctx context.Context, id uuid.UUID) (*domain.DungeonAttempt, error) {
	query := attemptSelect + ` WHERE a.id = $1`
	attempt, err := scanAttempt(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAttemptNotFound
		}
		return nil, fmt.Errorf("failed to get attempt: %w", err)
	}
	return attempt, nil
}

// HasPendingAttempt reports whether the team already has a pending attempt for
// the dungeon
func (r *DungeonRepository) HasPendingAttempt(ctx context.Context, teamID, dungeonID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM dungeon_attempts
			WHERE team_id = $1 AND dungeon_id = $2 AND status = 'pending'
		)
	`
	var pending bool
	if err := r.db.QueryRow(ctx, query, teamID, dungeonID).Scan(&pending); err != nil {
		return false, fmt.Errorf("failed to check pending attempts: %w", err)
	}
	return pending, nil
}

// ListAttemptsByTeam returns the team's attempt log, newest first
func (r *DungeonRepository) ListAttemptsByTeam(ctx context.Context, teamID uuid.UUID) ([]domain.DungeonAttempt, error) {
	query := attemptSelect + ` WHERE a.team_id = $1 ORDER BY a.attempted_at DESC`
	return r.listAttempts(ctx, query, teamID)
}

// ListPendingAttempts returns every attempt awaiting review, oldest first
func (r *DungeonRepository) ListPendingAttempts(ctx context.Context) ([]domain.DungeonAttempt, error) {
	query := attemptSelect + ` WHERE a.status = 'pending' ORDER BY a.attempted_at`
	return r.listAttempts(ctx, query)
}

func (r *DungeonRepository) listAttempts(ctx context.Context, query string, args ...any) ([]domain.DungeonAttempt, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attempts: %w", err)
	}
	defer rows.Close()

	var attempts []domain.DungeonAttempt
	for rows.Next() {
		attempt, err := scanAttempt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}
		attempts = append(attempts, *attempt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attempts: %w", err)
	}
	return attempts, nil
}

func scanAttempt(row pgx.Row) (*domain.DungeonAttempt, error) {
	var a domain.DungeonAttempt
	err := row.Scan(
		&a.ID, &a.TeamID, &a.DungeonID, &a.Status, &a.AttemptedAt,
		&a.ReviewedAt, &a.ReviewerNotes,
		&a.TeamName, &a.DungeonName, &a.DungeonRank)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// BeginSubmitTx starts a transaction for an attempt submission
func (r *DungeonRepository) BeginSubmitTx(ctx context.Context) (repository.SubmitTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin submit transaction: %w", err)
	}
	return &submitTx{tx: tx}, nil
}

// submitTx implements repository.SubmitTx
type submitTx struct {
	tx pgx.Tx
}

func (t *submitTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *submitTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *submitTx) DeductStamina(ctx context.Context, teamID uuid.UUID, cost int) error {
	return deductStamina(ctx, t.tx, teamID, cost)
}

func (t *submitTx) CreateAttempt(ctx context.Context, attempt *domain.DungeonAttempt) error {
	return createAttempt(ctx, t.tx, attempt)
}

// BeginReviewTx starts a transaction for an attempt review
func (r *DungeonRepository) BeginReviewTx(ctx context.Context) (repository.ReviewTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin review transaction: %w", err)
	}
	return &reviewTx{tx: tx}, nil
}

// reviewTx implements repository.ReviewTx
type reviewTx struct {
	tx pgx.Tx
}

func (t *reviewTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *reviewTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// TransitionAttempt flips a pending attempt to a terminal status. The
// conditional WHERE makes concurrent reviews lose cleanly.
func (t *reviewTx) TransitionAttempt(ctx context.Context, id uuid.UUID, status domain.ReviewStatus, notes string) error {
	query := `
		UPDATE dungeon_attempts
		SET status = $2, reviewed_at = NOW(), reviewer_notes = NULLIF($3, '')
		WHERE id = $1 AND status = 'pending'
	`
	tag, err := t.tx.Exec(ctx, query, id, status, notes)
	if err != nil {
		return fmt.Errorf("failed to transition attempt: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := t.tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM dungeon_attempts WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check attempt: %w", err)
		}
		if !exists {
			return domain.ErrAttemptNotFound
		}
		return domain.ErrAlreadyReviewed
	}
	return nil
}

func (t *reviewTx) InsertItems(ctx context.Context, items []domain.InventoryItem) error {
	return insertItems(ctx, t.tx, items)
}
