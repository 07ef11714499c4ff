package battle

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Maou3434/TOTS/internal/domain"
	"github.com/Maou3434/TOTS/internal/repository"
	"github.com/Maou3434/TOTS/internal/sets"
)

// Service defines the interface for battle simulation
type Service interface {
	Simulate(ctx context.Context, attackerID, defenderID uuid.UUID) (*Simulation, error)
}

// Simulation is one resolved attack with both sides' aggregated stats.
// Applying the damage to anyone's HP is the caller's business.
type Simulation struct {
	Attacker Combatant    `json:"attacker"`
	Defender Combatant    `json:"defender"`
	Result   AttackResult `json:"result"`
}

type service struct {
	teams repository.Team
	items repository.Inventory
	index *sets.Index
}

// NewService creates a new battle service
func NewService(teams repository.Team, items repository.Inventory, index *sets.Index) Service {
	return &service{teams: teams, items: items, index: index}
}

// Simulate loads both players' rosters and inventories fresh from the store,
// aggregates every member's stats and resolves one attack between the two.
// The attacker and defender may be on the same team.
func (s *service) Simulate(ctx context.Context, attackerID, defenderID uuid.UUID) (*Simulation, error) {
	if attackerID == defenderID {
		return nil, fmt.Errorf("%w: attacker and defender are the same player", domain.ErrInvalidInput)
	}

	attacker, err := s.loadCombatant(ctx, attackerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load attacker: %w", err)
	}
	defender, err := s.loadCombatant(ctx, defenderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load defender: %w", err)
	}

	result := ResolveAttack(attacker, defender)
	return &Simulation{Attacker: *attacker, Defender: *defender, Result: result}, nil
}

// loadCombatant aggregates the whole roster around the named player, so ally
// effects from teammates land before the attack resolves.
func (s *service) loadCombatant(ctx context.Context, playerID uuid.UUID) (*Combatant, error) {
	player, err := s.teams.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	roster, err := s.teams.GetPlayersByTeam(ctx, player.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}

	inventory, err := s.items.ListInventory(ctx, player.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}

	combatants := Aggregate(roster, inventory, s.index)
	for i := range combatants {
		if combatants[i].Player.ID == playerID {
			return &combatants[i], nil
		}
	}
	return nil, domain.ErrPlayerNotFound
}
