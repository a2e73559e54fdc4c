package discord

import (
	"os"
	"strconv"

	"emperror.dev/errors"
	"github.com/sashabaranov/go-openai"

	"github.com/UnstoppableBlob/hypixel-stats-dc-bot/internal/metrics"
)

// LoadConfig reads the bot configuration from the environment.
func LoadConfig() (*Config, error) {
	maxTokens := 300
	if s := os.Getenv("OPENAI_MAX_TOKENS"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			maxTokens = v
		}
	}

	temperature := 0.7
	if s := os.Getenv("OPENAI_TEMPERATURE"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			temperature = v
		}
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = openai.GPT4oMini
	}

	return &Config{
		DiscordToken:  os.Getenv("DISCORD_TOKEN"),
		HypixelAPIKey: os.Getenv("HYPIXEL_API_KEY"),
		GuildID:       os.Getenv("GUILD_ID"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   model,
		MaxTokens:     maxTokens,
		Temperature:   temperature,
		SentryDSN:     os.Getenv("SENTRY_DSN"),
		Influx: metrics.Config{
			URL:    os.Getenv("INFLUX_URL"),
			Token:  os.Getenv("INFLUX_TOKEN"),
			Org:    os.Getenv("INFLUX_ORG"),
			Bucket: os.Getenv("INFLUX_BUCKET"),
		},
	}, nil
}

// Validate checks that the required settings are present. OpenAI, Sentry
// and InfluxDB are all optional and degrade to disabled features.
func (c *Config) Validate() error {
	if c.DiscordToken == "" {
		return errors.New("DISCORD_TOKEN is required")
	}
	if c.HypixelAPIKey == "" {
		return errors.New("HYPIXEL_API_KEY is required")
	}
	return nil
}
