package postgres

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Maou3434/TOTS/internal/domain"
)

// isUniqueViolation reports whether err is a PostgreSQL unique constraint error
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

// uuidsToStrings converts equipment references for storage in a uuid[] column
func uuidsToStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// stringsToUUIDs parses a uuid[] column read back as text
func stringsToUUIDs(raw []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, len(raw))
	for i, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("invalid uuid in array: %w", err)
		}
		out[i] = id
	}
	return out, nil
}

// marshalStats serializes an item stats payload for the jsonb column
func marshalStats(stats domain.ItemStats) ([]byte, error) {
	if stats == nil {
		stats = domain.ItemStats{}
	}
	data, err := json.Marshal(stats)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal item stats: %w", err)
	}
	return data, nil
}

// unmarshalStats deserializes the jsonb stats column
func unmarshalStats(data []byte) (domain.ItemStats, error) {
	stats := domain.ItemStats{}
	if len(data) == 0 {
		return stats, nil
	}
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item stats: %w", err)
	}
	return stats, nil
}
