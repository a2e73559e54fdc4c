package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/dustin/go-humanize"

	"github.com/UnstoppableBlob/hypixel-stats-dc-bot/internal/hypixel"
)

// handleProfileCommand handles the /profile command.
func (b *Bot) handleProfileCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.deferResponse(s, i) {
		return
	}

	opts := optionMap(i.ApplicationCommandData().Options)
	playerIdent := stringOption(opts, "player")
	game := stringOption(opts, "game")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	player := b.lookupPlayer(ctx, s, i, playerIdent)
	if player == nil {
		return
	}

	var embeds []*discordgo.MessageEmbed
	if game == "" || game == "bedwars" {
		embeds = append(embeds, b.formatBedwarsEmbed(player))
	}
	if game == "" || game == "skywars" {
		embeds = append(embeds, b.formatSkywarsEmbed(player))
	}
	if game == "" || game == "slumber" {
		embeds = append(embeds, b.formatSlumberEmbed(player))
	}

	b.sendEmbeds(s, i, embeds...)
}

// formatBedwarsEmbed renders the Bedwars overview.
func (b *Bot) formatBedwarsEmbed(player *hypixel.Player) *discordgo.MessageEmbed {
	o := player.Bedwars()

	progression := fmt.Sprintf("**Level:** %s\n**Winstreak:** %s\n**Karma:** %s\n**Tokens:** %s\n**Quests:** %s",
		humanize.Comma(o.Level),
		humanize.Comma(o.Winstreak),
		humanize.Comma(o.Karma),
		humanize.Comma(o.Tokens),
		humanize.Comma(o.QuestsCompleted),
	)

	resources := fmt.Sprintf("**Iron:** %s\n**Gold:** %s\n**Diamonds:** %s\n**Emeralds:** %s",
		humanize.Comma(o.Iron),
		humanize.Comma(o.Gold),
		humanize.Comma(o.Diamonds),
		humanize.Comma(o.Emeralds),
	)

	fields := []*discordgo.MessageEmbedField{
		{Name: "⭐ Progression", Value: progression, Inline: true},
		{Name: "⛏️ Resources", Value: resources, Inline: true},
	}

	for _, m := range o.Modes {
		value := fmt.Sprintf("**W/L:** %s / %s (%s)\n**K/D:** %s / %s (%s)\n**Finals:** %s / %s (%s)\n**Beds:** %s / %s (%s)",
			humanize.Comma(m.Wins), humanize.Comma(m.Losses), formatRatio(m.WLR),
			humanize.Comma(m.Kills), humanize.Comma(m.Deaths), formatRatio(m.KDR),
			humanize.Comma(m.FinalKills), humanize.Comma(m.FinalDeaths), formatRatio(m.FKDR),
			humanize.Comma(m.BedsBroken), humanize.Comma(m.BedsLost), formatRatio(m.BBLR),
		)
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "🛏️ " + m.Name,
			Value:  value,
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🛏️ %s's Bedwars Profile", player.Displayname),
		Color: colorBedwars,
		Author: &discordgo.MessageEmbedAuthor{
			Name:    player.Displayname,
			IconURL: avatarURL(player),
		},
		Fields: fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Modes without recorded games are hidden",
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// formatSkywarsEmbed renders the Skywars overview.
func (b *Bot) formatSkywarsEmbed(player *hypixel.Player) *discordgo.MessageEmbed {
	o := player.Skywars()

	progression := fmt.Sprintf("**Level:** %s (%s)\n**Experience:** %s\n**Coins:** %s",
		humanize.CommafWithDigits(o.Level, 2),
		o.Prestige,
		humanize.Comma(o.Experience),
		humanize.Comma(o.Coins),
	)

	souls := fmt.Sprintf("**Gathered:** %s\n**Well Uses:** %s\n**Legendaries:** %s\n**Rares:** %s\n**Paid:** %s",
		humanize.Comma(o.SoulsGathered),
		humanize.Comma(o.SoulWellUses),
		humanize.Comma(o.SoulWellLegendaries),
		humanize.Comma(o.SoulWellRares),
		humanize.Comma(o.PaidSouls),
	)

	misc := fmt.Sprintf("**Eggs Thrown:** %s\n**Pearls Thrown:** %s\n**Arrows:** %s / %s (%s)",
		humanize.Comma(o.EggsThrown),
		humanize.Comma(o.EnderpearlsThrown),
		humanize.Comma(o.ArrowsHit),
		humanize.Comma(o.ArrowsShot),
		formatRatio(o.ArrowHitRatio),
	)

	fields := []*discordgo.MessageEmbedField{
		{Name: "⭐ Progression", Value: progression, Inline: true},
		{Name: "💀 Souls", Value: souls, Inline: true},
		{Name: "🏹 Projectiles", Value: misc, Inline: true},
	}

	for _, m := range o.Modes {
		value := fmt.Sprintf("**W/L:** %s / %s (%s)\n**K/D:** %s / %s (%s)\n**Assists:** %s",
			humanize.Comma(m.Wins), humanize.Comma(m.Losses), formatRatio(m.WLR),
			humanize.Comma(m.Kills), humanize.Comma(m.Deaths), formatRatio(m.KDR),
			humanize.Comma(m.Assists),
		)
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "⚔️ " + m.Name,
			Value:  value,
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("⚔️ %s's SkyWars Profile", player.Displayname),
		Color: colorSkywars,
		Author: &discordgo.MessageEmbedAuthor{
			Name:    player.Displayname,
			IconURL: avatarURL(player),
		},
		Fields: fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Modes without recorded games are hidden",
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// formatSlumberEmbed renders the Slumber Hotel overview.
func (b *Bot) formatSlumberEmbed(player *hypixel.Player) *discordgo.MessageEmbed {
	o := player.Slumber()

	record := fmt.Sprintf("**W/L:** %s / %s (%s)\n**Games:** %s",
		humanize.Comma(o.Wins), humanize.Comma(o.Losses), formatRatio(o.WLR),
		humanize.Comma(o.GamesPlayed),
	)

	combat := fmt.Sprintf("**K/D:** %s / %s (%s)",
		humanize.Comma(o.Kills), humanize.Comma(o.Deaths), formatRatio(o.KDR),
	)

	economy := fmt.Sprintf("**Coins:** %s\n**Quests:** %s",
		humanize.Comma(o.Coins),
		humanize.Comma(o.QuestsCompleted),
	)

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🛌 %s's Slumber Hotel Profile", player.Displayname),
		Color: colorSlumber,
		Author: &discordgo.MessageEmbedAuthor{
			Name:    player.Displayname,
			IconURL: avatarURL(player),
		},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "🏆 Record", Value: record, Inline: true},
			{Name: "⚔️ Combat", Value: combat, Inline: true},
			{Name: "💰 Economy", Value: economy, Inline: true},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// formatRatio renders a pre-rounded ratio without trailing zeros.
func formatRatio(r float64) string {
	return humanize.CommafWithDigits(r, 2)
}
