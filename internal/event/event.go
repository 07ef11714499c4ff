package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Maou3434/TOTS/internal/domain"
)

// Type represents the type of an event
type Type string

// Event types published by the services.
const (
	TeamRegistered   Type = "team.registered"
	AttemptSubmitted Type = "attempt.submitted"
	AttemptReviewed  Type = "attempt.reviewed"
	LootDropped      Type = "loot.dropped"
	MergeRequested   Type = "merge.requested"
	MergeReviewed    Type = "merge.reviewed"
)

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"`
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// TeamRegisteredPayloadV1 is the typed payload for team registration events
type TeamRegisteredPayloadV1 struct {
	TeamID    uuid.UUID `json:"team_id"`
	TeamName  string    `json:"team_name"`
	Timestamp int64     `json:"timestamp"`
}

// AttemptSubmittedPayloadV1 is the typed payload for attempt submission events
type AttemptSubmittedPayloadV1 struct {
	AttemptID   uuid.UUID   `json:"attempt_id"`
	TeamID      uuid.UUID   `json:"team_id"`
	TeamName    string      `json:"team_name"`
	DungeonID   uuid.UUID   `json:"dungeon_id"`
	DungeonName string      `json:"dungeon_name"`
	Rank        domain.Rank `json:"rank"`
	Timestamp   int64       `json:"timestamp"`
}

// AttemptReviewedPayloadV1 is the typed payload for attempt review events
type AttemptReviewedPayloadV1 struct {
	AttemptID uuid.UUID           `json:"attempt_id"`
	TeamID    uuid.UUID           `json:"team_id"`
	Status    domain.ReviewStatus `json:"status"`
	Notes     string              `json:"notes,omitempty"`
	Timestamp int64               `json:"timestamp"`
}

// LootDropV1 is one generated drop inside a loot event
type LootDropV1 struct {
	ItemID uuid.UUID       `json:"item_id"`
	Type   domain.ItemType `json:"item_type"`
	Name   string          `json:"item_name"`
	Rarity domain.Rarity   `json:"rarity"`
}

// LootDroppedPayloadV1 is the typed payload for loot generation events
type LootDroppedPayloadV1 struct {
	AttemptID uuid.UUID    `json:"attempt_id"`
	TeamID    uuid.UUID    `json:"team_id"`
	Drops     []LootDropV1 `json:"drops"`
	Timestamp int64        `json:"timestamp"`
}

// MergeRequestedPayloadV1 is the typed payload for merge request events
type MergeRequestedPayloadV1 struct {
	RequestID uuid.UUID     `json:"request_id"`
	TeamID    uuid.UUID     `json:"team_id"`
	SkillName string        `json:"skill_name"`
	Rarity    domain.Rarity `json:"rarity"`
	Timestamp int64         `json:"timestamp"`
}

// MergeReviewedPayloadV1 is the typed payload for merge review events
type MergeReviewedPayloadV1 struct {
	RequestID    uuid.UUID           `json:"request_id"`
	TeamID       uuid.UUID           `json:"team_id"`
	Status       domain.ReviewStatus `json:"status"`
	ResultName   string              `json:"result_name,omitempty"`
	ResultRarity domain.Rarity       `json:"result_rarity,omitempty"`
	Timestamp    int64               `json:"timestamp"`
}

// Type-safe event constructors

// NewTeamRegisteredEvent creates a new team registration event
func NewTeamRegisteredEvent(teamID uuid.UUID, teamName string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TeamRegistered,
		Payload: TeamRegisteredPayloadV1{
			TeamID:    teamID,
			TeamName:  teamName,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewAttemptSubmittedEvent creates a new attempt submission event
func NewAttemptSubmittedEvent(attempt *domain.DungeonAttempt, teamName string, dungeon *domain.Dungeon) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AttemptSubmitted,
		Payload: AttemptSubmittedPayloadV1{
			AttemptID:   attempt.ID,
			TeamID:      attempt.TeamID,
			TeamName:    teamName,
			DungeonID:   dungeon.ID,
			DungeonName: dungeon.Name,
			Rank:        dungeon.Rank,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewAttemptReviewedEvent creates a new attempt review event
func NewAttemptReviewedEvent(attemptID, teamID uuid.UUID, status domain.ReviewStatus, notes string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AttemptReviewed,
		Payload: AttemptReviewedPayloadV1{
			AttemptID: attemptID,
			TeamID:    teamID,
			Status:    status,
			Notes:     notes,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewLootDroppedEvent creates a new loot generation event
func NewLootDroppedEvent(attemptID, teamID uuid.UUID, items []domain.InventoryItem) Event {
	drops := make([]LootDropV1, len(items))
	for i, item := range items {
		drops[i] = LootDropV1{ItemID: item.ID, Type: item.Type, Name: item.Name, Rarity: item.Rarity}
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    LootDropped,
		Payload: LootDroppedPayloadV1{
			AttemptID: attemptID,
			TeamID:    teamID,
			Drops:     drops,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewMergeRequestedEvent creates a new merge request event
func NewMergeRequestedEvent(req *domain.MergeRequest, skillName string, rarity domain.Rarity) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MergeRequested,
		Payload: MergeRequestedPayloadV1{
			RequestID: req.ID,
			TeamID:    req.TeamID,
			SkillName: skillName,
			Rarity:    rarity,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewMergeReviewedEvent creates a new merge review event
func NewMergeReviewedEvent(requestID, teamID uuid.UUID, status domain.ReviewStatus, result *domain.InventoryItem) Event {
	payload := MergeReviewedPayloadV1{
		RequestID: requestID,
		TeamID:    teamID,
		Status:    status,
		Timestamp: time.Now().Unix(),
	}
	if result != nil {
		payload.ResultName = result.Name
		payload.ResultRarity = result.Rarity
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    MergeReviewed,
		Payload: payload,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously;
// their errors are collected, not short-circuited.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
