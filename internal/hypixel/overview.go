package hypixel

import "math"

// bedwarsModes maps display names to the key prefixes used under
// stats.Bedwars. The empty prefix selects the lifetime counters.
var bedwarsModes = []struct {
	name   string
	prefix string
}{
	{"Overall", ""},
	{"Solo", "eight_one_"},
	{"Doubles", "eight_two_"},
	{"Trios", "four_three_"},
	{"Quads", "four_four_"},
	{"4v4", "four_two_"},
	{"Dream Mode", "dream_"},
}

// skywarsModes maps display names to the key prefixes used under
// stats.SkyWars.
var skywarsModes = []struct {
	name   string
	prefix string
}{
	{"Overall", ""},
	{"Solo Normal", "solo_normal_"},
	{"Solo Insane", "solo_insane_"},
	{"Teams Normal", "team_normal_"},
	{"Teams Insane", "team_insane_"},
	{"Ranked", "ranked_normal_"},
	{"Mega", "mega_"},
	{"Mini", "mini_"},
	{"Labs", "lab_"},
}

// BedwarsModeStats holds one Bedwars playlist's counters and ratios.
type BedwarsModeStats struct {
	Name        string
	Wins        int64
	Losses      int64
	WLR         float64
	Kills       int64
	Deaths      int64
	KDR         float64
	FinalKills  int64
	FinalDeaths int64
	FKDR        float64
	BedsBroken  int64
	BedsLost    int64
	BBLR        float64
}

// BedwarsOverview is the Bedwars view of a player document.
type BedwarsOverview struct {
	Level           int64
	Tokens          int64
	QuestsCompleted int64
	Karma           int64
	Winstreak       int64
	Coins           int64
	Iron            int64
	Gold            int64
	Diamonds        int64
	Emeralds        int64
	Modes           []BedwarsModeStats
}

// SkywarsModeStats holds one Skywars playlist's counters and ratios.
type SkywarsModeStats struct {
	Name    string
	Wins    int64
	Losses  int64
	WLR     float64
	Kills   int64
	Deaths  int64
	KDR     float64
	Assists int64
}

// SkywarsOverview is the Skywars view of a player document.
type SkywarsOverview struct {
	Level               float64
	Prestige            string
	Experience          int64
	Coins               int64
	SoulsGathered       int64
	SoulWellUses        int64
	SoulWellLegendaries int64
	SoulWellRares       int64
	PaidSouls           int64
	EggsThrown          int64
	EnderpearlsThrown   int64
	ArrowsShot          int64
	ArrowsHit           int64
	ArrowHitRatio       float64
	Modes               []SkywarsModeStats
}

// SlumberOverview is the Slumber Hotel view of a player document.
type SlumberOverview struct {
	Wins            int64
	Losses          int64
	WLR             float64
	GamesPlayed     int64
	Kills           int64
	Deaths          int64
	KDR             float64
	Coins           int64
	QuestsCompleted int64
}

// Ratio divides n by d rounded to two decimals, clamping the denominator
// to one so fresh players read as their raw numerator instead of dividing
// by zero.
func Ratio(n, d float64) float64 {
	if d < 1 {
		d = 1
	}
	return math.Round(n/d*100) / 100
}

// SkywarsLevel converts raw Skywars experience to a fractional level.
// Progression interpolates linearly between fixed breakpoints up to level
// twelve and is a flat ten thousand experience per level beyond that.
func SkywarsLevel(xp float64) float64 {
	if xp <= 0 {
		return 0
	}
	if xp >= 15000 {
		return (xp-15000)/10000 + 12
	}
	xps := []float64{0, 20, 70, 150, 250, 500, 1000, 2000, 3500, 6000, 10000, 15000}
	for i := 1; i < len(xps); i++ {
		if xp < xps[i] {
			return float64(i) + (xp-xps[i-1])/(xps[i]-xps[i-1]) - 1
		}
	}
	return 0
}

// SkywarsPrestige names the prestige band a Skywars level falls in.
func SkywarsPrestige(level float64) string {
	switch l := math.Floor(level); {
	case l < 5:
		return "Stone"
	case l < 10:
		return "Iron"
	case l < 15:
		return "Gold"
	case l < 20:
		return "Diamond"
	case l < 25:
		return "Emerald"
	case l < 30:
		return "Sapphire"
	case l < 35:
		return "Ruby"
	case l < 40:
		return "Crystal"
	case l < 45:
		return "Opal"
	case l < 50:
		return "Amethyst"
	case l < 60:
		return "Rainbow"
	default:
		return "Mythic"
	}
}

// Bedwars extracts the Bedwars overview from the player document. Playlists
// the player never touched are left out of Modes.
func (p *Player) Bedwars() BedwarsOverview {
	tokens := p.Number("total_tokens")
	if tokens == 0 {
		tokens = p.Number("rewards", "total_tokens")
	}

	o := BedwarsOverview{
		Level:           p.Int("achievements", "bedwars_level"),
		Tokens:          int64(tokens),
		QuestsCompleted: p.Int("achievements", "bedwars_quests_completed"),
		Karma:           p.Int("karma"),
		Winstreak:       p.Int("stats", "Bedwars", "winstreak"),
		Coins:           p.Int("stats", "Bedwars", "coins"),
		Iron:            p.Int("stats", "Bedwars", "iron_resources_collected_bedwars"),
		Gold:            p.Int("stats", "Bedwars", "gold_resources_collected_bedwars"),
		Diamonds:        p.Int("stats", "Bedwars", "diamond_resources_collected_bedwars"),
		Emeralds:        p.Int("stats", "Bedwars", "emerald_resources_collected_bedwars"),
	}

	for _, mode := range bedwarsModes {
		stat := func(key string) float64 {
			return p.Number("stats", "Bedwars", mode.prefix+key)
		}
		wins := stat("wins_bedwars")
		losses := stat("losses_bedwars")
		kills := stat("kills_bedwars")
		deaths := stat("deaths_bedwars")
		finalKills := stat("final_kills_bedwars")
		finalDeaths := stat("final_deaths_bedwars")
		bedsBroken := stat("beds_broken_bedwars")
		bedsLost := stat("beds_lost_bedwars")

		if wins+losses+kills+deaths+finalKills+finalDeaths+bedsBroken+bedsLost == 0 {
			continue
		}
		o.Modes = append(o.Modes, BedwarsModeStats{
			Name:        mode.name,
			Wins:        int64(wins),
			Losses:      int64(losses),
			WLR:         Ratio(wins, losses),
			Kills:       int64(kills),
			Deaths:      int64(deaths),
			KDR:         Ratio(kills, deaths),
			FinalKills:  int64(finalKills),
			FinalDeaths: int64(finalDeaths),
			FKDR:        Ratio(finalKills, finalDeaths),
			BedsBroken:  int64(bedsBroken),
			BedsLost:    int64(bedsLost),
			BBLR:        Ratio(bedsBroken, bedsLost),
		})
	}
	return o
}

// Skywars extracts the Skywars overview from the player document. The level
// is derived from raw experience, which older documents store under a
// legacy key.
func (p *Player) Skywars() SkywarsOverview {
	xp := p.Number("stats", "SkyWars", "experience")
	if xp == 0 {
		xp = p.Number("stats", "SkyWars", "skywars_experience")
	}
	level := SkywarsLevel(xp)

	arrowsShot := p.Number("stats", "SkyWars", "arrows_shot")
	arrowsHit := p.Number("stats", "SkyWars", "arrows_hit")

	o := SkywarsOverview{
		Level:               level,
		Prestige:            SkywarsPrestige(level),
		Experience:          int64(xp),
		Coins:               p.Int("stats", "SkyWars", "coins"),
		SoulsGathered:       p.Int("stats", "SkyWars", "souls_gathered"),
		SoulWellUses:        p.Int("stats", "SkyWars", "soul_well_uses"),
		SoulWellLegendaries: p.Int("stats", "SkyWars", "soul_well_leg"),
		SoulWellRares:       p.Int("stats", "SkyWars", "soul_well_rares"),
		PaidSouls:           p.Int("stats", "SkyWars", "paid_souls"),
		EggsThrown:          p.Int("stats", "SkyWars", "egg_thrown"),
		EnderpearlsThrown:   p.Int("stats", "SkyWars", "enderpearls_thrown"),
		ArrowsShot:          int64(arrowsShot),
		ArrowsHit:           int64(arrowsHit),
		ArrowHitRatio:       Ratio(arrowsHit, arrowsShot),
	}

	for _, mode := range skywarsModes {
		stat := func(key string) float64 {
			return p.Number("stats", "SkyWars", mode.prefix+key)
		}
		wins := stat("wins")
		losses := stat("losses")
		kills := stat("kills")
		deaths := stat("deaths")
		assists := stat("assists")

		if wins+losses+kills+deaths+assists == 0 {
			continue
		}
		o.Modes = append(o.Modes, SkywarsModeStats{
			Name:    mode.name,
			Wins:    int64(wins),
			Losses:  int64(losses),
			WLR:     Ratio(wins, losses),
			Kills:   int64(kills),
			Deaths:  int64(deaths),
			KDR:     Ratio(kills, deaths),
			Assists: int64(assists),
		})
	}
	return o
}

// Slumber extracts the Slumber Hotel overview from the player document.
func (p *Player) Slumber() SlumberOverview {
	wins := p.Number("stats", "Slumber", "wins")
	losses := p.Number("stats", "Slumber", "losses")
	kills := p.Number("stats", "Slumber", "kills")
	deaths := p.Number("stats", "Slumber", "deaths")

	return SlumberOverview{
		Wins:            int64(wins),
		Losses:          int64(losses),
		WLR:             Ratio(wins, losses),
		GamesPlayed:     p.Int("stats", "Slumber", "games_played"),
		Kills:           int64(kills),
		Deaths:          int64(deaths),
		KDR:             Ratio(kills, deaths),
		Coins:           p.Int("stats", "Slumber", "coins"),
		QuestsCompleted: p.Int("stats", "Slumber", "quests_completed"),
	}
}
