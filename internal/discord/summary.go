package discord

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/dustin/go-humanize"

	"github.com/UnstoppableBlob/hypixel-stats-dc-bot/internal/hypixel"
)

// summaryTimeout bounds the whole summary flow. Discord allows 15 minutes
// after a deferred response but nobody waits that long.
const summaryTimeout = 20 * time.Second

// handleSummaryCommand handles the /summary command.
func (b *Bot) handleSummaryCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.deferResponse(s, i) {
		return
	}

	opts := optionMap(i.ApplicationCommandData().Options)
	playerIdent := stringOption(opts, "player")
	game := stringOption(opts, "game")

	ctx, cancel := context.WithTimeout(context.Background(), summaryTimeout)
	defer cancel()

	player := b.lookupPlayer(ctx, s, i, playerIdent)
	if player == nil {
		return
	}

	digest := statsDigest(player, game)

	if !b.OpenAI.Enabled() {
		b.sendEmbeds(s, i, b.formatSummaryEmbed(player, digest, false))
		return
	}

	prompt := fmt.Sprintf(
		"Write a short, friendly summary of this Hypixel player's statistics. "+
			"Two paragraphs at most, highlight what stands out, no markdown headers.\n\n"+
			"Player: %s\n%s",
		player.Displayname, digest)

	text, err := b.OpenAI.GenerateResponse(ctx, prompt)
	if err != nil {
		b.log.Warnw("summary generation failed, falling back to plain stats", "error", err)
		b.sendEmbeds(s, i, b.formatSummaryEmbed(player, digest, false))
		return
	}

	b.sendEmbeds(s, i, b.formatSummaryEmbed(player, text, true))
}

// formatSummaryEmbed wraps summary text in an embed. The footer marks
// whether the text came from the LLM or the plain fallback.
func (b *Bot) formatSummaryEmbed(player *hypixel.Player, text string, ai bool) *discordgo.MessageEmbed {
	footer := "Plain stats digest (AI summary disabled)"
	if ai {
		footer = "AI-generated summary, numbers may be paraphrased"
	}

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📜 %s's Stats Summary", player.Displayname),
		Color: colorNeutral,
		Author: &discordgo.MessageEmbedAuthor{
			Name:    player.Displayname,
			IconURL: avatarURL(player),
		},
		Description: truncate(text, 4000),
		Footer: &discordgo.MessageEmbedFooter{
			Text: footer,
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// statsDigest flattens the player's overviews into plain text, both as LLM
// input and as the fallback summary body.
func statsDigest(player *hypixel.Player, game string) string {
	var sections []string

	if game == "" || game == "bedwars" {
		o := player.Bedwars()
		lines := []string{fmt.Sprintf("Bedwars: level %d, winstreak %d, karma %s",
			o.Level, o.Winstreak, humanize.Comma(o.Karma))}
		for _, m := range o.Modes {
			lines = append(lines, fmt.Sprintf(
				"- %s: %d wins / %d losses (WLR %.2f), %d final kills / %d final deaths (FKDR %.2f), %d beds broken",
				m.Name, m.Wins, m.Losses, m.WLR, m.FinalKills, m.FinalDeaths, m.FKDR, m.BedsBroken))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if game == "" || game == "skywars" {
		o := player.Skywars()
		lines := []string{fmt.Sprintf("SkyWars: level %.2f (%s prestige), %s souls gathered",
			o.Level, o.Prestige, humanize.Comma(o.SoulsGathered))}
		for _, m := range o.Modes {
			lines = append(lines, fmt.Sprintf(
				"- %s: %d wins / %d losses (WLR %.2f), %d kills / %d deaths (KDR %.2f)",
				m.Name, m.Wins, m.Losses, m.WLR, m.Kills, m.Deaths, m.KDR))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if game == "" || game == "slumber" {
		o := player.Slumber()
		sections = append(sections, fmt.Sprintf(
			"Slumber Hotel: %d wins / %d losses (WLR %.2f) in %d games, %d kills / %d deaths (KDR %.2f), %s coins, %d quests completed",
			o.Wins, o.Losses, o.WLR, o.GamesPlayed, o.Kills, o.Deaths, o.KDR,
			humanize.Comma(o.Coins), o.QuestsCompleted))
	}

	return strings.Join(sections, "\n\n")
}

// truncate caps s at n runes, appending an ellipsis when it cuts.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
