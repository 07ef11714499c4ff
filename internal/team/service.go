package team

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Maou3434/TOTS/internal/domain"
	"github.com/Maou3434/TOTS/internal/event"
	"github.com/Maou3434/TOTS/internal/gamedata"
	"github.com/Maou3434/TOTS/internal/logger"
	"github.com/Maou3434/TOTS/internal/repository"
)

// MemberSpec names one roster member at registration time.
type MemberSpec struct {
	Name  string
	Class domain.CharacterClass
}

// Service defines the interface for team account and roster operations
type Service interface {
	Register(ctx context.Context, name, password string, members []MemberSpec) (*domain.Team, error)
	Login(ctx context.Context, name, password string) (string, *domain.Team, error)
	Logout(ctx context.Context, token string)
	Authenticate(ctx context.Context, token string) (uuid.UUID, error)
	GetTeam(ctx context.Context, teamID uuid.UUID) (*domain.Team, error)
	Roster(ctx context.Context, teamID uuid.UUID) ([]domain.Player, error)
	Inventory(ctx context.Context, teamID uuid.UUID) ([]domain.InventoryItem, error)
	Equip(ctx context.Context, teamID, playerID, itemID uuid.UUID) error
	Unequip(ctx context.Context, teamID, playerID, itemID uuid.UUID) error
}

type service struct {
	teams    repository.Team
	items    repository.Inventory
	tables   *gamedata.Tables
	sessions *sessionStore
	eventBus event.Bus
}

// NewService creates a new team service
func NewService(teams repository.Team, items repository.Inventory, tables *gamedata.Tables, eventBus event.Bus) Service {
	return &service{
		teams:    teams,
		items:    items,
		tables:   tables,
		sessions: newSessionStore(DefaultSessionCacheSize, DefaultSessionTTL),
		eventBus: eventBus,
	}
}

// Register creates a team with exactly three members, each starting on its
// class base stats, and the full starting stamina pool.
func (s *service) Register(ctx context.Context, name, password string, members []MemberSpec) (*domain.Team, error) {
	if name == "" || password == "" {
		return nil, fmt.Errorf("%w: team name and password are required", domain.ErrInvalidInput)
	}
	if len(members) != domain.RosterSize {
		return nil, domain.ErrRosterSize
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	team := &domain.Team{
		ID:           uuid.New(),
		Name:         name,
		PasswordHash: string(hash),
		Stamina:      s.tables.StartingStamina,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	for _, m := range members {
		base, ok := s.tables.BaseStats(m.Class)
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidClass, m.Class)
		}
		if m.Name == "" {
			return nil, fmt.Errorf("%w: member name is required", domain.ErrInvalidInput)
		}
		team.Players = append(team.Players, domain.Player{
			ID:        uuid.New(),
			TeamID:    team.ID,
			Name:      m.Name,
			Class:     m.Class,
			Health:    base.Health,
			Mana:      base.Mana,
			Attack:    base.Attack,
			Defense:   base.Defense,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	if err := s.teams.CreateTeam(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	if err := s.eventBus.Publish(ctx, event.NewTeamRegisteredEvent(team.ID, team.Name)); err != nil {
		logger.FromContext(ctx).Warn("failed to publish team registration event", "error", err)
	}

	return team, nil
}

// Login verifies the credentials and mints a session token. Unknown names and
// wrong passwords fail identically.
func (s *service) Login(ctx context.Context, name, password string) (string, *domain.Team, error) {
	team, err := s.teams.GetTeamByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrTeamNotFound) {
			return "", nil, domain.ErrInvalidCredential
		}
		return "", nil, fmt.Errorf("failed to get team: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(team.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredential
	}

	token := s.sessions.Create(team.ID)
	return token, team, nil
}

// Logout revokes the session token.
func (s *service) Logout(ctx context.Context, token string) {
	s.sessions.Revoke(token)
}

// Authenticate resolves a bearer token to its team.
func (s *service) Authenticate(ctx context.Context, token string) (uuid.UUID, error) {
	teamID, ok := s.sessions.Lookup(token)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return teamID, nil
}

// GetTeam returns the team with its roster.
func (s *service) GetTeam(ctx context.Context, teamID uuid.UUID) (*domain.Team, error) {
	team, err := s.teams.GetTeamByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// Roster returns the team's three members.
func (s *service) Roster(ctx context.Context, teamID uuid.UUID) ([]domain.Player, error) {
	players, err := s.teams.GetPlayersByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}
	return players, nil
}

// Inventory returns the team's shared item pool.
func (s *service) Inventory(ctx context.Context, teamID uuid.UUID) ([]domain.InventoryItem, error) {
	items, err := s.items.ListInventory(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	return items, nil
}

// Equip puts an owned item into the player's matching slot. All checks and
// the write run in one transaction over locked roster rows, so a concurrent
// equip of the same item cannot double-assign it.
func (s *service) Equip(ctx context.Context, teamID, playerID, itemID uuid.UUID) error {
	tx, err := s.teams.BeginEquipTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin equip transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	players, err := tx.GetPlayersForUpdate(ctx, teamID)
	if err != nil {
		return fmt.Errorf("failed to get roster: %w", err)
	}

	player := findPlayer(players, playerID)
	if player == nil {
		return domain.ErrPlayerNotFound
	}

	item, err := tx.GetItem(ctx, itemID)
	if err != nil {
		return fmt.Errorf("failed to get item: %w", err)
	}
	if item.TeamID != teamID {
		return domain.ErrItemNotOwned
	}

	for i := range players {
		if players[i].HasEquipped(itemID) {
			return domain.ErrAlreadyEquipped
		}
	}

	switch {
	case item.Type == domain.ItemTypeSkill:
		if player.EquippedSkill != nil {
			return domain.ErrSlotFull
		}
		player.EquippedSkill = &itemID
	case item.Type.IsArtifact():
		if len(player.EquippedArtifacts) >= domain.MaxEquippedArtifacts {
			return domain.ErrArtifactCap
		}
		player.EquippedArtifacts = append(player.EquippedArtifacts, itemID)
	default:
		return domain.ErrWrongSlot
	}

	if err := tx.UpdatePlayerEquipment(ctx, player); err != nil {
		return fmt.Errorf("failed to update equipment: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit equip: %w", err)
	}
	return nil
}

// Unequip clears the item from the player's slots.
func (s *service) Unequip(ctx context.Context, teamID, playerID, itemID uuid.UUID) error {
	tx, err := s.teams.BeginEquipTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin equip transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	players, err := tx.GetPlayersForUpdate(ctx, teamID)
	if err != nil {
		return fmt.Errorf("failed to get roster: %w", err)
	}

	player := findPlayer(players, playerID)
	if player == nil {
		return domain.ErrPlayerNotFound
	}

	switch {
	case player.EquippedSkill != nil && *player.EquippedSkill == itemID:
		player.EquippedSkill = nil
	case removeArtifact(player, itemID):
	default:
		return domain.ErrNotEquipped
	}

	if err := tx.UpdatePlayerEquipment(ctx, player); err != nil {
		return fmt.Errorf("failed to update equipment: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit unequip: %w", err)
	}
	return nil
}

func findPlayer(players []domain.Player, id uuid.UUID) *domain.Player {
	for i := range players {
		if players[i].ID == id {
			return &players[i]
		}
	}
	return nil
}

func removeArtifact(player *domain.Player, itemID uuid.UUID) bool {
	for i, id := range player.EquippedArtifacts {
		if id == itemID {
			player.EquippedArtifacts = append(player.EquippedArtifacts[:i], player.EquippedArtifacts[i+1:]...)
			return true
		}
	}
	return false
}
