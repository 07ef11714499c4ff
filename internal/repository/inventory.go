package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/Maou3434/TOTS/internal/domain"
)

// Inventory defines the interface for the shared team inventory
type Inventory interface {
	ListInventory(ctx context.Context, teamID uuid.UUID) ([]domain.InventoryItem, error)
	GetItem(ctx context.Context, itemID uuid.UUID) (*domain.InventoryItem, error)
	InsertItems(ctx context.Context, items []domain.InventoryItem) error
}
