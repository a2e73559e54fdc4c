// Package discord implements the slash-command frontend of the bot.
package discord

import (
	"time"

	"emperror.dev/errors"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/UnstoppableBlob/hypixel-stats-dc-bot/internal/hypixel"
	"github.com/UnstoppableBlob/hypixel-stats-dc-bot/internal/metrics"
	"github.com/UnstoppableBlob/hypixel-stats-dc-bot/internal/statquery"
)

// Embed accent colors, one per game plus error red.
const (
	colorError   = 0xff0000
	colorBedwars = 0xe67e22
	colorSkywars = 0x3498db
	colorSlumber = 0x9b59b6
	colorNeutral = 0x2ecc71
)

var gameChoices = []*discordgo.ApplicationCommandOptionChoice{
	{Name: "Bedwars", Value: "bedwars"},
	{Name: "SkyWars", Value: "skywars"},
	{Name: "Slumber Hotel", Value: "slumber"},
}

// Command definitions
var commands = []*discordgo.ApplicationCommand{
	{
		Name:        "stats",
		Description: "Look up a single Hypixel stat by fuzzy name",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "player",
				Description: "Minecraft username or UUID",
				Required:    true,
			},
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "query",
				Description:  "Stat to look up (e.g. 'bedwars final kills')",
				Required:     true,
				Autocomplete: true,
			},
		},
	},
	{
		Name:        "profile",
		Description: "Show a player's game profiles",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "player",
				Description: "Minecraft username or UUID",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "game",
				Description: "Limit the profile to one game",
				Required:    false,
				Choices:     gameChoices,
			},
		},
	},
	{
		Name:        "summary",
		Description: "Get an AI-written summary of a player's stats",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "player",
				Description: "Minecraft username or UUID",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "game",
				Description: "Game to focus the summary on",
				Required:    false,
				Choices:     gameChoices,
			},
		},
	},
	{
		Name:        "about",
		Description: "Show bot version and runtime info",
	},
}

// NewBot wires up the Discord session and command handlers.
func NewBot(config *Config, hypixelClient *hypixel.Client, m *metrics.Client, log *zap.SugaredLogger) (*Bot, error) {
	session, err := discordgo.New("Bot " + config.DiscordToken)
	if err != nil {
		return nil, errors.Wrap(err, "creating Discord session")
	}

	bot := &Bot{
		Session:   session,
		Config:    config,
		Hypixel:   hypixelClient,
		OpenAI:    NewOpenAIClient(config.OpenAIKey, config.OpenAIModel, config.MaxTokens, config.Temperature),
		Metrics:   m,
		Catalog:   statquery.Catalog(),
		handlers:  make(map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)),
		log:       log,
		startedAt: time.Now(),
	}

	bot.handlers["stats"] = bot.handleStatsCommand
	bot.handlers["profile"] = bot.handleProfileCommand
	bot.handlers["summary"] = bot.handleSummaryCommand
	bot.handlers["about"] = bot.handleAboutCommand

	return bot, nil
}

// Start opens the gateway connection and registers the slash commands.
func (b *Bot) Start() error {
	b.Session.AddHandler(b.interactionHandler)

	if err := b.Session.Open(); err != nil {
		return errors.Wrap(err, "opening Discord session")
	}

	registered, err := b.registerCommands()
	if err != nil {
		return errors.Wrap(err, "registering commands")
	}
	b.Commands = registered

	scope := "globally"
	if b.Config.GuildID != "" {
		scope = "in guild " + b.Config.GuildID
	}
	b.log.Infow("bot is running", "user", b.Session.State.User.String(), "commands", len(registered), "scope", scope)
	return nil
}

// Stop removes the registered commands and closes the session.
func (b *Bot) Stop() error {
	b.log.Info("removing commands")
	for _, cmd := range b.Commands {
		if err := b.Session.ApplicationCommandDelete(b.Session.State.User.ID, b.Config.GuildID, cmd.ID); err != nil {
			b.log.Warnw("removing command", "command", cmd.Name, "error", err)
		}
	}

	return b.Session.Close()
}

func (b *Bot) registerCommands() ([]*discordgo.ApplicationCommand, error) {
	registered := make([]*discordgo.ApplicationCommand, len(commands))

	for i, cmd := range commands {
		created, err := b.Session.ApplicationCommandCreate(b.Session.State.User.ID, b.Config.GuildID, cmd)
		if err != nil {
			return nil, errors.Wrapf(err, "creating command %q", cmd.Name)
		}
		registered[i] = created
	}

	return registered, nil
}

// interactionHandler fans interactions out to command handlers and the
// autocomplete responder.
func (b *Bot) interactionHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if handler, ok := b.handlers[name]; ok {
			b.Metrics.IncCommand(name)
			handler(s, i)
		}
	case discordgo.InteractionApplicationCommandAutocomplete:
		if i.ApplicationCommandData().Name == "stats" {
			b.handleStatsAutocomplete(s, i)
		}
	}
}

// deferResponse acknowledges the interaction so handlers get time to call
// out to the Hypixel API.
func (b *Bot) deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		b.log.Errorw("acknowledging interaction", "error", err)
		return false
	}
	return true
}

// sendError replaces the deferred response with an error embed.
func (b *Bot) sendError(s *discordgo.Session, i *discordgo.InteractionCreate, title, description string) {
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       colorError,
	}

	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		b.log.Errorw("editing error response", "error", err)
	}
}

// sendEmbeds replaces the deferred response with the given embeds.
func (b *Bot) sendEmbeds(s *discordgo.Session, i *discordgo.InteractionCreate, embeds ...*discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &embeds,
	}); err != nil {
		b.log.Errorw("editing interaction response", "error", err)
	}
}
