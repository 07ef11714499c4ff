package config

const (
	// Default file locations
	DefaultDeadLetterPath = "logs/dead_letter_events.jsonl"
)
