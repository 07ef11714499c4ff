package repository

import "context"

// Tx defines the interface for transactional operations. Feature-specific
// transaction interfaces embed it and add their own statements.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
