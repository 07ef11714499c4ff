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

// TeamRepository implements repository.Team for PostgreSQL
type TeamRepository struct {
	db *pgxpool.Pool
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{db: db}
}

// CreateTeam inserts the team and its roster in one transaction
func (r *TeamRepository) CreateTeam(ctx context.Context, team *domain.Team) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin team transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	query := `
		INSERT INTO teams (id, team_name, password_hash, stamina, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = tx.Exec(ctx, query,
		team.ID, team.Name, team.PasswordHash, team.Stamina, team.CreatedAt, team.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTeamNameTaken
		}
		return fmt.Errorf("failed to insert team: %w", err)
	}

	playerQuery := `
		INSERT INTO players (id, team_id, name, character_class, health, mana, attack, defense, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	for _, p := range team.Players {
		_, err = tx.Exec(ctx, playerQuery,
			p.ID, p.TeamID, p.Name, p.Class, p.Health, p.Mana, p.Attack, p.Defense,
			p.CreatedAt, p.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert player: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit team transaction: %w", err)
	}
	return nil
}

// GetTeamByID retrieves a team with its roster
func (r *TeamRepository) GetTeamByID(ctx context.Context, id uuid.UUID) (*domain.Team, error) {
	query := `
		SELECT id, team_name, password_hash, stamina, created_at, updated_at
		FROM teams
		WHERE id = $1
	`
	return r.getTeam(ctx, query, id)
}

// GetTeamByName retrieves a team with its roster by display name
func (r *TeamRepository) GetTeamByName(ctx context.Context, name string) (*domain.Team, error) {
	query := `
		SELECT id, team_name, password_hash, stamina, created_at, updated_at
		FROM teams
		WHERE team_name = $1
	`
	return r.getTeam(ctx, query, name)
}

func (r *TeamRepository) getTeam(ctx context.Context, query string, arg any) (*domain.Team, error) {
	var team domain.Team
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&team.ID, &team.Name, &team.PasswordHash, &team.Stamina,
		&team.CreatedAt, &team.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	players, err := r.GetPlayersByTeam(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	team.Players = players
	return &team, nil
}

// GetPlayerByID retrieves a single roster member
func (r *TeamRepository) GetPlayerByID(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	query := playerSelect + ` WHERE id = $1`
	row := r.db.QueryRow(ctx, query, id)
	player, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

// GetPlayersByTeam retrieves the full roster ordered by creation
func (r *TeamRepository) GetPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]domain.Player, error) {
	query := playerSelect + ` WHERE team_id = $1 ORDER BY created_at, id`
	rows, err := r.db.Query(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()
	return collectPlayers(rows)
}

// DeductStamina subtracts cost atomically, refusing to go negative
func (r *TeamRepository) DeductStamina(ctx context.Context, teamID uuid.UUID, cost int) error {
	return deductStamina(ctx, r.db, teamID, cost)
}

// staminaStore covers the subset of pgxpool.Pool and pgx.Tx deductStamina
// needs, so the attempt-submission transaction reuses the same statement.
type staminaStore interface {
	execer
	rowQuerier
}

func deductStamina(ctx context.Context, q staminaStore, teamID uuid.UUID, cost int) error {
	query := `
		UPDATE teams
		SET stamina = stamina - $2, updated_at = NOW()
		WHERE id = $1 AND stamina >= $2
	`
	tag, err := q.Exec(ctx, query, teamID, cost)
	if err != nil {
		return fmt.Errorf("failed to deduct stamina: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Distinguish a missing team from an empty pool.
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM teams WHERE id = $1)`, teamID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check team: %w", err)
		}
		if !exists {
			return domain.ErrTeamNotFound
		}
		return domain.ErrInsufficientStamina
	}
	return nil
}

// BeginEquipTx starts a transaction for an equip or unequip operation
func (r *TeamRepository) BeginEquipTx(ctx context.Context) (repository.EquipTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin equip transaction: %w", err)
	}
	return &equipTx{tx: tx}, nil
}

// equipTx implements repository.EquipTx
type equipTx struct {
	tx pgx.Tx
}

func (t *equipTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *equipTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetPlayersForUpdate locks the roster rows so concurrent equips of the same
// item cannot both pass validation.
func (t *equipTx) GetPlayersForUpdate(ctx context.Context, teamID uuid.UUID) ([]domain.Player, error) {
	query := playerSelect + ` WHERE team_id = $1 ORDER BY created_at, id FOR UPDATE`
	rows, err := t.tx.Query(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock players: %w", err)
	}
	defer rows.Close()
	return collectPlayers(rows)
}

func (t *equipTx) GetItem(ctx context.Context, itemID uuid.UUID) (*domain.InventoryItem, error) {
	return getItem(ctx, t.tx, itemID)
}

func (t *equipTx) UpdatePlayerEquipment(ctx context.Context, player *domain.Player) error {
	query := `
		UPDATE players
		SET equipped_skill = $2, equipped_artifacts = $3::uuid[], updated_at = NOW()
		WHERE id = $1
	`
	tag, err := t.tx.Exec(ctx, query,
		player.ID, player.EquippedSkill, uuidsToStrings(player.EquippedArtifacts))
	if err != nil {
		return fmt.Errorf("failed to update equipment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

const playerSelect = `
	SELECT id, team_id, name, character_class, health, mana, attack, defense,
	       equipped_skill, equipped_artifacts::text[], created_at, updated_at
	FROM players`

func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var p domain.Player
	var artifacts []string
	err := row.Scan(
		&p.ID, &p.TeamID, &p.Name, &p.Class, &p.Health, &p.Mana, &p.Attack, &p.Defense,
		&p.EquippedSkill, &artifacts, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.EquippedArtifacts, err = stringsToUUIDs(artifacts)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectPlayers(rows pgx.Rows) ([]domain.Player, error) {
	var players []domain.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read players: %w", err)
	}
	return players, nil
}
