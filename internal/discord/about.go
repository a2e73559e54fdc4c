package discord

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/dustin/go-humanize"

	"github.com/UnstoppableBlob/hypixel-stats-dc-bot/internal/buildinfo"
)

// handleAboutCommand handles the /about command.
func (b *Bot) handleAboutCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.deferResponse(s, i) {
		return
	}

	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	botInfo := fmt.Sprintf("**Version:** %s\n**Go:** %s\n**Started:** %s",
		buildinfo.Version(),
		runtime.Version(),
		humanize.Time(b.startedAt),
	)

	runtimeInfo := fmt.Sprintf("**Memory:** %s\n**Goroutines:** %s\n**Guilds:** %s",
		humanize.Bytes(stats.Alloc),
		humanize.Comma(int64(runtime.NumGoroutine())),
		humanize.Comma(int64(len(s.State.Guilds))),
	)

	statsInfo := fmt.Sprintf("**Catalog entries:** %s\n**Games:** Bedwars, SkyWars, Slumber Hotel",
		humanize.Comma(int64(len(b.Catalog))),
	)

	b.sendEmbeds(s, i, &discordgo.MessageEmbed{
		Title: "About this bot",
		Description: "Looks up Hypixel player statistics. " +
			"Use `/stats` for a single stat, `/profile` for the full picture.",
		Color: colorNeutral,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "🤖 Bot", Value: botInfo, Inline: true},
			{Name: "⚙️ Runtime", Value: runtimeInfo, Inline: true},
			{Name: "📊 Stats", Value: statsInfo, Inline: true},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
