package discord

import (
	"context"
	"fmt"
	"strings"
	"time"

	"emperror.dev/errors"
	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/UnstoppableBlob/hypixel-stats-dc-bot/internal/hypixel"
	"github.com/UnstoppableBlob/hypixel-stats-dc-bot/internal/statquery"
)

// minConfidence is the score above which the top match is answered
// directly instead of offering a suggestion list.
const minConfidence = 0.5

// suggestionCount caps how many alternatives a low-confidence query offers.
const suggestionCount = 5

// handleStatsCommand handles the /stats command.
func (b *Bot) handleStatsCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.deferResponse(s, i) {
		return
	}

	opts := optionMap(i.ApplicationCommandData().Options)
	playerIdent := stringOption(opts, "player")
	query := stringOption(opts, "query")

	b.Metrics.IncResolve()
	matches, err := statquery.Resolve(query, b.Catalog, suggestionCount)
	if err != nil {
		if errors.Is(err, statquery.ErrInvalidInput) {
			b.sendError(s, i, "Invalid Query", "Give me a stat name to look for, e.g. `bedwars final kills`.")
		} else {
			b.reportError(s, i, err)
		}
		return
	}
	if len(matches) == 0 {
		b.sendError(s, i, "No Match",
			fmt.Sprintf("Nothing in the stat catalog looks like `%s`. Try the autocomplete suggestions.", query))
		return
	}

	// Ambiguous query: offer the candidates instead of guessing.
	if matches[0].Score < minConfidence && len(matches) > 1 {
		b.sendSuggestions(s, i, query, matches)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	player := b.lookupPlayer(ctx, s, i, playerIdent)
	if player == nil {
		return
	}

	entry := matches[0].Entry
	value, ok := player.Lookup(entry.Path)
	if !ok {
		// Players without data for a stat simply have no key for it.
		value = nil
	}

	b.sendEmbeds(s, i, b.formatStatEmbed(player, entry, value, matches[0].Score))
}

// formatStatEmbed renders a single resolved stat.
func (b *Bot) formatStatEmbed(player *hypixel.Player, entry statquery.Entry, value any, score float64) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: cases.Title(language.English).String(entry.Label),
		Color: colorForMode(entry.Mode),
		Author: &discordgo.MessageEmbedAuthor{
			Name:    player.Displayname,
			IconURL: avatarURL(player),
		},
		Description: fmt.Sprintf("**%s**", hypixel.FormatValue(value)),
		Footer: &discordgo.MessageEmbedFooter{
			Text: entry.Mode.String(),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
	if score < 1 {
		embed.Footer.Text = fmt.Sprintf("%s • %.0f%% match", entry.Mode.String(), score*100)
	}
	return embed
}

// sendSuggestions lists the closest catalog entries for a query too vague
// to answer directly.
func (b *Bot) sendSuggestions(s *discordgo.Session, i *discordgo.InteractionCreate, query string, matches []statquery.Match) {
	b.sendEmbeds(s, i, b.formatSuggestionsEmbed(query, matches))
}

func (b *Bot) formatSuggestionsEmbed(query string, matches []statquery.Match) *discordgo.MessageEmbed {
	caser := cases.Title(language.English)
	lines := make([]string, len(matches))
	for n, m := range matches {
		lines[n] = fmt.Sprintf("%d. **%s** (%.0f%%)", n+1, caser.String(m.Entry.Label), m.Score*100)
	}

	return &discordgo.MessageEmbed{
		Title: "Did you mean...",
		Description: fmt.Sprintf("`%s` didn't match a stat exactly. Closest candidates:\n\n%s",
			query, strings.Join(lines, "\n")),
		Color: colorNeutral,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Re-run /stats with one of these names",
		},
	}
}

// handleStatsAutocomplete answers query autocomplete with catalog labels.
func (b *Bot) handleStatsAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var input string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "query" && opt.Focused {
			input = opt.StringValue()
		}
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: b.buildQueryChoices(input),
		},
	}); err != nil {
		b.log.Errorw("sending autocomplete choices", "error", err)
	}
}

// buildQueryChoices ranks catalog labels against the partial input.
// Discord caps autocomplete at 25 choices.
func (b *Bot) buildQueryChoices(input string) []*discordgo.ApplicationCommandOptionChoice {
	const maxChoices = 25

	var entries []statquery.Entry
	if matches, err := statquery.Resolve(input, b.Catalog, maxChoices); err == nil && len(matches) > 0 {
		for _, m := range matches {
			entries = append(entries, m.Entry)
		}
	} else {
		// Nothing typed yet, or nothing close: offer the catalog head.
		entries = b.Catalog
		if len(entries) > maxChoices {
			entries = entries[:maxChoices]
		}
	}

	caser := cases.Title(language.English)
	choices := make([]*discordgo.ApplicationCommandOptionChoice, len(entries))
	for n, e := range entries {
		choices[n] = &discordgo.ApplicationCommandOptionChoice{
			Name:  caser.String(e.Label),
			Value: e.Label,
		}
	}
	return choices
}

func colorForMode(mode statquery.GameMode) int {
	switch mode {
	case statquery.Bedwars:
		return colorBedwars
	case statquery.Skywars:
		return colorSkywars
	case statquery.SlumberHotel:
		return colorSlumber
	default:
		return colorNeutral
	}
}
