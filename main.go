package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"emperror.dev/errors"
	"github.com/dustin/go-humanize"
	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"

	"github.com/UnstoppableBlob/hypixel-stats-dc-bot/internal/buildinfo"
	"github.com/UnstoppableBlob/hypixel-stats-dc-bot/internal/discord"
	"github.com/UnstoppableBlob/hypixel-stats-dc-bot/internal/hypixel"
	"github.com/UnstoppableBlob/hypixel-stats-dc-bot/internal/logsetup"
	"github.com/UnstoppableBlob/hypixel-stats-dc-bot/internal/metrics"
	"github.com/UnstoppableBlob/hypixel-stats-dc-bot/internal/statquery"
)

var app = &cli.App{
	Name:    "hypixel-stats-bot",
	Usage:   "Discord bot for Hypixel player statistics",
	Version: buildinfo.Version(),

	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug logging",
		},
	},

	Commands: []*cli.Command{
		{
			Name:   "bot",
			Usage:  "Run the Discord bot",
			Action: runBot,
		},
		{
			Name:      "player",
			Usage:     "Look up a player's stats from the command line",
			ArgsUsage: "<name or UUID>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "game",
					Usage: "only show one game (bedwars, skywars, slumber)",
				},
			},
			Action: runPlayer,
		},
		{
			Name:      "resolve",
			Usage:     "Match a free-form query against the stat catalog",
			ArgsUsage: "<query>",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "top",
					Usage: "number of matches to show",
					Value: 5,
				},
			},
			Action: runResolve,
		},
	},
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runBot(c *cli.Context) error {
	logger, err := logsetup.Setup(c.Bool("debug"))
	if err != nil {
		return errors.Wrap(err, "setting up logging")
	}
	defer logger.Sync()
	log := logger.Sugar()

	cfg, err := discord.LoadConfig()
	if err != nil {
		return errors.Wrap(err, "loading config")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:     cfg.SentryDSN,
			Release: buildinfo.Version(),
		})
		if err != nil {
			return errors.Wrap(err, "setting up sentry")
		}
		log.Debug("set up sentry")
	}

	m := metrics.New(cfg.Influx, log.Named("metrics"))

	bot, err := discord.NewBot(cfg, hypixel.NewClient(cfg.HypixelAPIKey, log.Named("hypixel")), m, log.Named("bot"))
	if err != nil {
		return errors.Wrap(err, "creating bot")
	}

	ctx, cancel := signal.NotifyContext(c.Context, os.Interrupt, os.Kill)
	defer cancel()

	go m.Run(ctx)

	if err := bot.Start(); err != nil {
		return errors.Wrap(err, "starting bot")
	}
	defer func() {
		if err := bot.Stop(); err != nil {
			log.Errorf("stopping bot: %v", err)
		}
	}()

	log.Info("bot is running, press Ctrl-C to exit")
	<-ctx.Done()

	log.Info("interrupt received, shutting down")
	return nil
}

func runPlayer(c *cli.Context) error {
	ident := c.Args().First()
	if ident == "" {
		return errors.New("player name or UUID is required")
	}

	game := c.String("game")
	switch game {
	case "", "bedwars", "skywars", "slumber":
	default:
		return errors.Errorf("unknown game %q", game)
	}

	apiKey := os.Getenv("HYPIXEL_API_KEY")
	if apiKey == "" {
		return errors.New("HYPIXEL_API_KEY is not set")
	}

	logger, err := logsetup.Setup(c.Bool("debug"))
	if err != nil {
		return errors.Wrap(err, "setting up logging")
	}
	defer logger.Sync()

	client := hypixel.NewClient(apiKey, logger.Sugar().Named("hypixel"))

	ctx, cancel := context.WithTimeout(c.Context, 15*time.Second)
	defer cancel()

	var player *hypixel.Player
	if _, uuidErr := uuid.Parse(ident); uuidErr == nil {
		player, err = client.PlayerByUUID(ctx, ident)
	} else {
		player, err = client.PlayerByName(ctx, ident)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", player.Displayname, player.UUID)

	if game == "" || game == "bedwars" {
		printBedwars(player.Bedwars())
	}
	if game == "" || game == "skywars" {
		printSkywars(player.Skywars())
	}
	if game == "" || game == "slumber" {
		printSlumber(player.Slumber())
	}
	return nil
}

func printBedwars(o hypixel.BedwarsOverview) {
	fmt.Printf("\nBedwars: level %d, winstreak %d, %s tokens, %s karma\n",
		o.Level, o.Winstreak, humanize.Comma(o.Tokens), humanize.Comma(o.Karma))

	for _, m := range o.Modes {
		fmt.Printf("  %-14s %s wins / %s losses (WLR %.2f), %s finals / %s final deaths (FKDR %.2f), %s beds broken\n",
			m.Name, humanize.Comma(m.Wins), humanize.Comma(m.Losses), m.WLR,
			humanize.Comma(m.FinalKills), humanize.Comma(m.FinalDeaths), m.FKDR,
			humanize.Comma(m.BedsBroken))
	}
}

func printSkywars(o hypixel.SkywarsOverview) {
	fmt.Printf("\nSkyWars: level %.2f (%s), %s souls gathered, %s coins\n",
		o.Level, o.Prestige, humanize.Comma(o.SoulsGathered), humanize.Comma(o.Coins))

	for _, m := range o.Modes {
		fmt.Printf("  %-14s %s wins / %s losses (WLR %.2f), %s kills / %s deaths (KDR %.2f)\n",
			m.Name, humanize.Comma(m.Wins), humanize.Comma(m.Losses), m.WLR,
			humanize.Comma(m.Kills), humanize.Comma(m.Deaths), m.KDR)
	}
}

func printSlumber(o hypixel.SlumberOverview) {
	fmt.Printf("\nSlumber Hotel: %s wins / %s losses (WLR %.2f) in %s games, %s kills / %s deaths (KDR %.2f), %s coins\n",
		humanize.Comma(o.Wins), humanize.Comma(o.Losses), o.WLR, humanize.Comma(o.GamesPlayed),
		humanize.Comma(o.Kills), humanize.Comma(o.Deaths), o.KDR, humanize.Comma(o.Coins))
}

func runResolve(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if query == "" {
		return errors.New("query is required")
	}

	matches, err := statquery.Resolve(query, statquery.Catalog(), c.Int("top"))
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Println("No matches.")
		return nil
	}

	for i, m := range matches {
		fmt.Printf("%2d. %-40s %5.1f%%  %s\n", i+1, m.Entry.Label, m.Score*100, m.Entry.Mode)
	}
	return nil
}
