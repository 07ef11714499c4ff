package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Team errors
	ErrMsgTeamNotFound      = "team not found"
	ErrMsgTeamNameTaken     = "team name already exists"
	ErrMsgInvalidCredential = "invalid team credentials"
	ErrMsgPlayerNotFound    = "player not found"
	ErrMsgRosterSize        = "a team has exactly three members"

	// Item errors
	ErrMsgItemNotFound    = "item not found"
	ErrMsgItemNotOwned    = "item does not belong to this team"
	ErrMsgWrongSlot       = "item cannot go in that slot"
	ErrMsgArtifactCap     = "artifact slots are full"
	ErrMsgSlotFull        = "skill slot is already occupied"
	ErrMsgAlreadyEquipped = "item is already equipped by another member"
	ErrMsgNotEquipped     = "item is not equipped"

	// Dungeon errors
	ErrMsgDungeonNotFound     = "dungeon not found"
	ErrMsgAttemptNotFound     = "attempt not found"
	ErrMsgAttemptPending      = "an attempt for this dungeon is already pending"
	ErrMsgInsufficientStamina = "not enough stamina"
	ErrMsgAlreadyReviewed     = "request has already been reviewed"

	// Merge errors
	ErrMsgMergeNotFound = "merge request not found"
	ErrMsgMergeMismatch = "merge sources must share name and rarity"
	ErrMsgMergeNotSkill = "only skills can be merged"
	ErrMsgMergeSameItem = "merge sources must be two different items"

	// Validation / system errors
	ErrMsgInvalidInput = "invalid input"
	ErrMsgInvalidClass = "invalid character class"
	ErrMsgInvalidRank  = "invalid dungeon rank"
	ErrMsgConflict     = "state changed concurrently"
	ErrMsgStoreError   = "store error"
	ErrMsgUnauthorized = "unauthorized"

	// ErrMsgTxClosed matches pgx's error for double-finished transactions,
	// filtered out of rollback logging.
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Team errors
	ErrTeamNotFound      = errors.New(ErrMsgTeamNotFound)
	ErrTeamNameTaken     = errors.New(ErrMsgTeamNameTaken)
	ErrInvalidCredential = errors.New(ErrMsgInvalidCredential)
	ErrPlayerNotFound    = errors.New(ErrMsgPlayerNotFound)
	ErrRosterSize        = errors.New(ErrMsgRosterSize)

	// Item errors
	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrItemNotOwned    = errors.New(ErrMsgItemNotOwned)
	ErrWrongSlot       = errors.New(ErrMsgWrongSlot)
	ErrArtifactCap     = errors.New(ErrMsgArtifactCap)
	ErrSlotFull        = errors.New(ErrMsgSlotFull)
	ErrAlreadyEquipped = errors.New(ErrMsgAlreadyEquipped)
	ErrNotEquipped     = errors.New(ErrMsgNotEquipped)

	// Dungeon errors
	ErrDungeonNotFound     = errors.New(ErrMsgDungeonNotFound)
	ErrAttemptNotFound     = errors.New(ErrMsgAttemptNotFound)
	ErrAttemptPending      = errors.New(ErrMsgAttemptPending)
	ErrInsufficientStamina = errors.New(ErrMsgInsufficientStamina)
	ErrAlreadyReviewed     = errors.New(ErrMsgAlreadyReviewed)

	// Merge errors
	ErrMergeNotFound = errors.New(ErrMsgMergeNotFound)
	ErrMergeMismatch = errors.New(ErrMsgMergeMismatch)
	ErrMergeNotSkill = errors.New(ErrMsgMergeNotSkill)
	ErrMergeSameItem = errors.New(ErrMsgMergeSameItem)

	// Validation / system errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
	ErrInvalidClass = errors.New(ErrMsgInvalidClass)
	ErrInvalidRank  = errors.New(ErrMsgInvalidRank)
	ErrConflict     = errors.New(ErrMsgConflict)
	ErrStoreError   = errors.New(ErrMsgStoreError)
	ErrUnauthorized = errors.New(ErrMsgUnauthorized)
)
