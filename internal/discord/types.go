package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/UnstoppableBlob/hypixel-stats-dc-bot/internal/hypixel"
	"github.com/UnstoppableBlob/hypixel-stats-dc-bot/internal/metrics"
	"github.com/UnstoppableBlob/hypixel-stats-dc-bot/internal/statquery"
)

// Bot is the Discord frontend. It owns the gateway session and fans
// incoming slash commands out to their handlers.
type Bot struct {
	Session  *discordgo.Session
	Config   *Config
	Hypixel  *hypixel.Client
	OpenAI   *OpenAIClient
	Metrics  *metrics.Client
	Catalog  []statquery.Entry
	Commands []*discordgo.ApplicationCommand

	handlers  map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)
	log       *zap.SugaredLogger
	startedAt time.Time
}

// Config holds everything the bot needs from the environment.
type Config struct {
	DiscordToken  string
	HypixelAPIKey string
	// GuildID scopes command registration to one guild. Empty registers
	// commands globally, which Discord rolls out slowly.
	GuildID string

	OpenAIKey   string
	OpenAIModel string
	MaxTokens   int
	Temperature float64

	SentryDSN string

	Influx metrics.Config
}

// OpenAIClient wraps the OpenAI API client used for stat summaries. A nil
// *OpenAIClient means summaries fall back to plain formatting.
type OpenAIClient struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
}
