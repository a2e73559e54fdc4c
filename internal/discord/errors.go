package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
)

// reportError captures err in Sentry and replaces the deferred response
// with a generic error embed carrying the event code.
func (b *Bot) reportError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	b.log.Errorw("command failed", "command", i.ApplicationCommandData().Name, "error", err)

	if b.Config.SentryDSN == "" {
		b.sendError(s, i, "Internal Error",
			"An internal error occurred. If this keeps happening, contact the bot operator.")
		return
	}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		if user := interactionUser(i); user != nil {
			scope.SetUser(sentry.User{ID: user.ID, Username: user.Username})
		}
	})

	id := hub.CaptureException(err)
	if id == nil {
		uid := uuid.New().String()
		id = (*sentry.EventID)(&uid)
	}

	b.sendError(s, i, "Internal Error", fmt.Sprintf(
		"An internal error occurred. If this keeps happening, contact the bot operator with error code `%s`.",
		string(*id)))
}

// interactionUser returns the invoking user for both guild and DM
// interactions.
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}
