package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidID             = "Invalid id"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Team operation error messages
	ErrMsgRegisterTeamFailed = "Failed to register team"
	ErrMsgLoginFailed        = "Failed to log in"
	ErrMsgGetRosterFailed    = "Failed to get roster"
	ErrMsgGetInventoryFailed = "Failed to get inventory"
	ErrMsgEquipFailed        = "Failed to equip item"
	ErrMsgUnequipFailed      = "Failed to unequip item"

	// Dungeon operation error messages
	ErrMsgListDungeonsFailed  = "Failed to list dungeons"
	ErrMsgSubmitAttemptFailed = "Failed to submit attempt"
	ErrMsgListAttemptsFailed  = "Failed to list attempts"
	ErrMsgReviewAttemptFailed = "Failed to review attempt"

	// Merge operation error messages
	ErrMsgSubmitMergeFailed = "Failed to submit merge request"
	ErrMsgListMergesFailed  = "Failed to list merge requests"
	ErrMsgReviewMergeFailed = "Failed to review merge request"

	// Battle operation error messages
	ErrMsgSimulateFailed = "Failed to simulate battle"
)
