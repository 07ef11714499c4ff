package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Maou3434/TOTS/internal/domain"
)

// InventoryRepository implements repository.Inventory for PostgreSQL
type InventoryRepository struct {
	db *pgxpool.Pool
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// ListInventory returns every item the team owns, newest first
func (r *InventoryRepository) ListInventory(ctx context.Context, teamID uuid.UUID) ([]domain.InventoryItem, error) {
	query := itemSelect + ` WHERE team_id = $1 ORDER BY obtained_at DESC, id`
	rows, err := r.db.Query(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read inventory: %w", err)
	}
	return items, nil
}

// GetItem retrieves a single item by id
func (r *InventoryRepository) GetItem(ctx context.Context, itemID uuid.UUID) (*domain.InventoryItem, error) {
	return getItem(ctx, r.db, itemID)
}

// InsertItems inserts a batch of items
func (r *InventoryRepository) InsertItems(ctx context.Context, items []domain.InventoryItem) error {
	return insertItems(ctx, r.db, items)
}

// rowQuerier and execer cover the subset of pgxpool.Pool and pgx.Tx the
// shared item helpers need, so pool-level and in-transaction calls reuse them.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const itemSelect = `
	SELECT id, team_id, item_type, item_name, rarity, description, stats,
	       obtained_from, obtained_at
	FROM inventory`

func getItem(ctx context.Context, q rowQuerier, itemID uuid.UUID) (*domain.InventoryItem, error) {
	query := itemSelect + ` WHERE id = $1`
	item, err := scanItem(q.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

func scanItem(row pgx.Row) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	var stats []byte
	err := row.Scan(
		&item.ID, &item.TeamID, &item.Type, &item.Name, &item.Rarity,
		&item.Description, &stats, &item.ObtainedFrom, &item.ObtainedAt)
	if err != nil {
		return nil, err
	}
	item.Stats, err = unmarshalStats(stats)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func insertItems(ctx context.Context, q execer, items []domain.InventoryItem) error {
	query := `
		INSERT INTO inventory (id, team_id, item_type, item_name, rarity, description, stats, obtained_from, obtained_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	for _, item := range items {
		stats, err := marshalStats(item.Stats)
		if err != nil {
			return err
		}
		_, err = q.Exec(ctx, query,
			item.ID, item.TeamID, item.Type, item.Name, item.Rarity,
			item.Description, stats, item.ObtainedFrom, item.ObtainedAt)
		if err != nil {
			return fmt.Errorf("failed to insert item: %w", err)
		}
	}
	return nil
}
