package discord

import (
	"context"
	"fmt"

	"emperror.dev/errors"
	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	"github.com/UnstoppableBlob/hypixel-stats-dc-bot/internal/hypixel"
)

// optionMap flattens interaction options by name.
func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

// stringOption returns the named string option, or empty when absent.
func stringOption(m map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if opt, ok := m[name]; ok {
		return opt.StringValue()
	}
	return ""
}

// lookupPlayer fetches the player document for a username or UUID. On
// failure it sends the appropriate error message to Discord and returns
// nil.
func (b *Bot) lookupPlayer(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, ident string) *hypixel.Player {
	if ident == "" {
		b.sendError(s, i, "Invalid Input", "Player name is required")
		return nil
	}

	b.Metrics.IncLookup()

	var (
		player *hypixel.Player
		err    error
	)
	// Minecraft names are at most 16 characters, so anything that parses
	// as a UUID cannot be a name.
	if _, uuidErr := uuid.Parse(ident); uuidErr == nil {
		player, err = b.Hypixel.PlayerByUUID(ctx, ident)
	} else {
		player, err = b.Hypixel.PlayerByName(ctx, ident)
	}
	if err == nil {
		return player
	}

	switch {
	case errors.Is(err, hypixel.ErrPlayerNotFound):
		b.sendError(s, i, "Player Not Found", fmt.Sprintf("Could not find player `%s` on Hypixel.", ident))
	case errors.Is(err, hypixel.ErrThrottled):
		b.sendError(s, i, "Slow Down", "The Hypixel API is throttling requests right now. Try again in a minute.")
	default:
		b.reportError(s, i, err)
	}
	return nil
}

// avatarURL renders the player's Minecraft head via Crafatar.
func avatarURL(p *hypixel.Player) string {
	if p.UUID == "" {
		return ""
	}
	return fmt.Sprintf("https://crafatar.com/avatars/%s?overlay", p.UUID)
}
