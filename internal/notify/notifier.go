// Package notify pings the admin Discord channel when something needs review.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Maou3434/TOTS/internal/event"
)

const (
	colorAttempt = 0x5865F2 // Discord Blurple
	colorMerge   = 0xFFD700 // Gold
)

var titleCase = cases.Title(language.English)

// Notifier sends admin review pings over Discord. It only uses REST calls, so
// the session never opens a gateway connection.
type Notifier struct {
	session   *discordgo.Session
	channelID string
}

// New creates a notifier for the given bot token and channel
func New(token, channelID string) (*Notifier, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	return &Notifier{session: session, channelID: channelID}, nil
}

// Register subscribes the notifier to the review-worthy event types
func (n *Notifier) Register(bus event.Bus) {
	bus.Subscribe(event.AttemptSubmitted, n.handleAttemptSubmitted)
	bus.Subscribe(event.MergeRequested, n.handleMergeRequested)
}

func (n *Notifier) handleAttemptSubmitted(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.AttemptSubmittedPayloadV1](evt)
	if err != nil {
		slog.Warn("failed to decode attempt payload", "error", err, "event_type", evt.Type)
		return nil
	}

	embed := attemptEmbed(payload)
	if _, err := n.session.ChannelMessageSendEmbed(n.channelID, embed); err != nil {
		slog.Error("failed to send attempt notification", "error", err, "attempt_id", payload.AttemptID)
		return err
	}

	slog.Info("attempt notification sent", "attempt_id", payload.AttemptID, "team", payload.TeamName)
	return nil
}

func (n *Notifier) handleMergeRequested(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.MergeRequestedPayloadV1](evt)
	if err != nil {
		slog.Warn("failed to decode merge payload", "error", err, "event_type", evt.Type)
		return nil
	}

	embed := mergeEmbed(payload)
	if _, err := n.session.ChannelMessageSendEmbed(n.channelID, embed); err != nil {
		slog.Error("failed to send merge notification", "error", err, "request_id", payload.RequestID)
		return err
	}

	slog.Info("merge notification sent", "request_id", payload.RequestID, "skill", payload.SkillName)
	return nil
}

func attemptEmbed(payload event.AttemptSubmittedPayloadV1) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Dungeon Attempt Awaiting Review",
		Description: fmt.Sprintf("**%s** wants to run **%s**.", payload.TeamName, payload.DungeonName),
		Color:       colorAttempt,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Team", Value: payload.TeamName, Inline: true},
			{Name: "Dungeon", Value: payload.DungeonName, Inline: true},
			{Name: "Rank", Value: string(payload.Rank), Inline: true},
		},
		Timestamp: time.Now().Format(time.RFC3339),
		Footer:    &discordgo.MessageEmbedFooter{Text: "Dungeon Attempts"},
	}
}

func mergeEmbed(payload event.MergeRequestedPayloadV1) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Skill Merge Awaiting Review",
		Description: fmt.Sprintf("A team wants to merge two copies of **%s**.", payload.SkillName),
		Color:       colorMerge,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Skill", Value: payload.SkillName, Inline: true},
			{Name: "Rarity", Value: titleCase.String(string(payload.Rarity)), Inline: true},
		},
		Timestamp: time.Now().Format(time.RFC3339),
		Footer:    &discordgo.MessageEmbedFooter{Text: "Skill Merges"},
	}
}
