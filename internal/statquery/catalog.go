package statquery

// GameMode identifies which Hypixel game a catalog entry belongs to.
type GameMode int

const (
	Bedwars GameMode = iota
	Skywars
	SlumberHotel
)

func (m GameMode) String() string {
	switch m {
	case Bedwars:
		return "Bedwars"
	case Skywars:
		return "Skywars"
	case SlumberHotel:
		return "Slumber Hotel"
	default:
		return "Unknown"
	}
}

// Entry maps a human-typable stat label to the key path that locates the
// value inside a raw Hypixel player object. Labels are stored normalized
// (lowercase, single spaces) so an exact query always scores maximum.
type Entry struct {
	Label string
	Path  []string
	Mode  GameMode
}

// bedwarsModes are the Bedwars playlist key prefixes under stats.Bedwars.
// An empty label/prefix pair is the lifetime aggregate.
var bedwarsModes = []struct {
	label  string
	prefix string
}{
	{"", ""},
	{"solo", "eight_one_"},
	{"doubles", "eight_two_"},
	{"trios", "four_three_"},
	{"quads", "four_four_"},
	{"4v4", "four_two_"},
	{"dream", "dream_"},
}

// skywarsModes are the Skywars playlist key prefixes under stats.SkyWars.
var skywarsModes = []struct {
	label  string
	prefix string
}{
	{"", ""},
	{"solo normal", "solo_normal_"},
	{"solo insane", "solo_insane_"},
	{"team normal", "team_normal_"},
	{"team insane", "team_insane_"},
	{"ranked", "ranked_normal_"},
	{"mega", "mega_"},
	{"mini", "mini_"},
	{"lab", "lab_"},
}

var catalog = buildCatalog()

// Catalog returns the process-wide stat catalog. It is built once at startup
// and must be treated as read-only.
func Catalog() []Entry {
	return catalog
}

func buildCatalog() []Entry {
	var entries []Entry

	add := func(label string, mode GameMode, path ...string) {
		entries = append(entries, Entry{Label: label, Path: path, Mode: mode})
	}

	// Bedwars progression lives outside stats.Bedwars. Karma and achievement
	// points are account-wide but surface alongside it.
	add("bedwars level", Bedwars, "achievements", "bedwars_level")
	add("bedwars quests completed", Bedwars, "achievements", "bedwars_quests_completed")
	add("karma", Bedwars, "karma")
	add("achievement points", Bedwars, "achievementPoints")
	add("bedwars coins", Bedwars, "stats", "Bedwars", "coins")
	add("bedwars winstreak", Bedwars, "stats", "Bedwars", "winstreak")

	add("bedwars iron collected", Bedwars, "stats", "Bedwars", "iron_resources_collected_bedwars")
	add("bedwars gold collected", Bedwars, "stats", "Bedwars", "gold_resources_collected_bedwars")
	add("bedwars diamonds collected", Bedwars, "stats", "Bedwars", "diamond_resources_collected_bedwars")
	add("bedwars emeralds collected", Bedwars, "stats", "Bedwars", "emerald_resources_collected_bedwars")

	bedwarsCounters := []struct{ label, key string }{
		{"wins", "wins_bedwars"},
		{"losses", "losses_bedwars"},
		{"kills", "kills_bedwars"},
		{"deaths", "deaths_bedwars"},
		{"final kills", "final_kills_bedwars"},
		{"final deaths", "final_deaths_bedwars"},
		{"beds broken", "beds_broken_bedwars"},
		{"beds lost", "beds_lost_bedwars"},
	}
	for _, mode := range bedwarsModes {
		for _, c := range bedwarsCounters {
			label := "bedwars " + c.label
			if mode.label != "" {
				label = "bedwars " + mode.label + " " + c.label
			}
			add(label, Bedwars, "stats", "Bedwars", mode.prefix+c.key)
		}
	}

	add("skywars experience", Skywars, "stats", "SkyWars", "experience")
	add("skywars coins", Skywars, "stats", "SkyWars", "coins")
	add("skywars souls", Skywars, "stats", "SkyWars", "souls")
	add("skywars souls gathered", Skywars, "stats", "SkyWars", "souls_gathered")
	add("skywars soul well uses", Skywars, "stats", "SkyWars", "soul_well_uses")
	add("skywars soul well legendaries", Skywars, "stats", "SkyWars", "soul_well_leg")
	add("skywars soul well rares", Skywars, "stats", "SkyWars", "soul_well_rares")
	add("skywars paid souls", Skywars, "stats", "SkyWars", "paid_souls")
	add("skywars eggs thrown", Skywars, "stats", "SkyWars", "egg_thrown")
	add("skywars enderpearls thrown", Skywars, "stats", "SkyWars", "enderpearls_thrown")
	add("skywars arrows shot", Skywars, "stats", "SkyWars", "arrows_shot")
	add("skywars arrows hit", Skywars, "stats", "SkyWars", "arrows_hit")

	skywarsCounters := []struct{ label, key string }{
		{"wins", "wins"},
		{"losses", "losses"},
		{"kills", "kills"},
		{"deaths", "deaths"},
		{"assists", "assists"},
	}
	for _, mode := range skywarsModes {
		for _, c := range skywarsCounters {
			label := "skywars " + c.label
			if mode.label != "" {
				label = "skywars " + mode.label + " " + c.label
			}
			add(label, Skywars, "stats", "SkyWars", mode.prefix+c.key)
		}
	}

	add("slumber hotel wins", SlumberHotel, "stats", "Slumber", "wins")
	add("slumber hotel losses", SlumberHotel, "stats", "Slumber", "losses")
	add("slumber hotel games played", SlumberHotel, "stats", "Slumber", "games_played")
	add("slumber hotel kills", SlumberHotel, "stats", "Slumber", "kills")
	add("slumber hotel deaths", SlumberHotel, "stats", "Slumber", "deaths")
	add("slumber hotel coins", SlumberHotel, "stats", "Slumber", "coins")
	add("slumber hotel quests completed", SlumberHotel, "stats", "Slumber", "quests_completed")

	return entries
}
