package statquery

import (
	"math"
	"reflect"
	"testing"

	"emperror.dev/errors"
)

// scenarioCatalog is the small catalog used by the disambiguation tests.
var scenarioCatalog = []Entry{
	{Label: "skywars team wins", Path: []string{"stats", "SkyWars", "team_normal_wins"}, Mode: Skywars},
	{Label: "skywars solo wins", Path: []string{"stats", "SkyWars", "solo_normal_wins"}, Mode: Skywars},
	{Label: "bedwars final kills", Path: []string{"stats", "Bedwars", "final_kills_bedwars"}, Mode: Bedwars},
}

func TestResolveExactLabelScoresMax(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"bedwars final kills", "bedwars final kills"},
		{"BEDWARS Final Kills", "bedwars final kills"},
		{"  bedwars   final kills  ", "bedwars final kills"},
		{"Skywars Team Normal Wins", "skywars team normal wins"},
		{"slumber hotel wins", "slumber hotel wins"},
	}

	for _, test := range tests {
		matches, err := Resolve(test.query, Catalog(), DefaultTopN)
		if err != nil {
			t.Fatalf("Resolve(%q) returned error: %v", test.query, err)
		}
		if len(matches) == 0 {
			t.Fatalf("Resolve(%q) returned no matches", test.query)
		}
		if matches[0].Entry.Label != test.want {
			t.Errorf("Resolve(%q) top match = %q, want %q", test.query, matches[0].Entry.Label, test.want)
		}
		if math.Abs(matches[0].Score-1.0) > 1e-9 {
			t.Errorf("Resolve(%q) top score = %v, want 1.0", test.query, matches[0].Score)
		}
	}
}

func TestResolveSortedNonIncreasing(t *testing.T) {
	queries := []string{"wins", "final", "skywars kills", "bed", "solo insane deaths"}

	for _, query := range queries {
		matches, err := Resolve(query, Catalog(), 25)
		if err != nil {
			t.Fatalf("Resolve(%q) returned error: %v", query, err)
		}
		for i := 1; i < len(matches); i++ {
			if matches[i].Score > matches[i-1].Score {
				t.Errorf("Resolve(%q) not sorted: score[%d]=%v > score[%d]=%v",
					query, i, matches[i].Score, i-1, matches[i-1].Score)
			}
		}
	}
}

func TestResolveLength(t *testing.T) {
	catalog := Catalog()

	tests := []struct {
		topN int
		want int
	}{
		{1, 1},
		{5, 5},
		{len(catalog), len(catalog)},
		{len(catalog) + 100, len(catalog)},
	}

	for _, test := range tests {
		matches, err := Resolve("wins", catalog, test.topN)
		if err != nil {
			t.Fatalf("Resolve with topN=%d returned error: %v", test.topN, err)
		}
		if len(matches) != test.want {
			t.Errorf("Resolve with topN=%d returned %d matches, want %d", test.topN, len(matches), test.want)
		}
	}
}

func TestResolveIdempotent(t *testing.T) {
	first, err := Resolve("skywars team", scenarioCatalog, 2)
	if err != nil {
		t.Fatalf("first Resolve returned error: %v", err)
	}
	second, err := Resolve("skywars team", scenarioCatalog, 2)
	if err != nil {
		t.Fatalf("second Resolve returned error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different output:\nfirst:  %v\nsecond: %v", first, second)
	}
}

func TestResolveSkywarsTeamScenario(t *testing.T) {
	matches, err := Resolve("skywars team", scenarioCatalog, 2)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Entry.Label != "skywars team wins" {
		t.Errorf("top match = %q, want 'skywars team wins'", matches[0].Entry.Label)
	}
	if matches[1].Entry.Label != "skywars solo wins" {
		t.Errorf("second match = %q, want 'skywars solo wins'", matches[1].Entry.Label)
	}
	for i, m := range matches {
		if m.Score < ScoreCutoff {
			t.Errorf("match %d score %v is below cutoff %v", i, m.Score, ScoreCutoff)
		}
	}

	// The blend is deterministic: 0.6*(2/3) + 0.4*(12/17) for the top entry.
	if want := 0.6*(2.0/3.0) + 0.4*(12.0/17.0); math.Abs(matches[0].Score-want) > 1e-9 {
		t.Errorf("top score = %v, want %v", matches[0].Score, want)
	}
}

func TestResolveNonsenseReturnsEmpty(t *testing.T) {
	matches, err := Resolve("xyzzy nonsense", scenarioCatalog, DefaultTopN)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("expected empty result for nonsense query, got %d matches (top %q at %v)",
			len(matches), matches[0].Entry.Label, matches[0].Score)
	}
}

func TestResolveTiesKeepCatalogOrder(t *testing.T) {
	catalog := []Entry{
		{Label: "alpha one", Path: []string{"a", "one"}, Mode: Bedwars},
		{Label: "alpha two", Path: []string{"a", "two"}, Mode: Bedwars},
	}

	matches, err := Resolve("alpha", catalog, 2)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Score != matches[1].Score {
		t.Fatalf("expected tied scores, got %v and %v", matches[0].Score, matches[1].Score)
	}
	if matches[0].Entry.Label != "alpha one" || matches[1].Entry.Label != "alpha two" {
		t.Errorf("tie did not keep catalog order: got [%q, %q]", matches[0].Entry.Label, matches[1].Entry.Label)
	}
}

func TestResolveInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		query string
		topN  int
	}{
		{"empty query", "", DefaultTopN},
		{"whitespace query", "   ", DefaultTopN},
		{"punctuation only", "?!...", DefaultTopN},
		{"zero topN", "wins", 0},
		{"negative topN", "wins", -3},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Resolve(test.query, scenarioCatalog, test.topN)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Resolve(%q, topN=%d) error = %v, want ErrInvalidInput", test.query, test.topN, err)
			}
		})
	}
}

func TestResolveEmptyCatalog(t *testing.T) {
	_, err := Resolve("wins", nil, DefaultTopN)
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("Resolve with empty catalog error = %v, want ErrEmptyCatalog", err)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Bedwars Final Kills", "bedwars final kills"},
		{"  BEDWARS   final   kills ", "bedwars final kills"},
		{"sky-wars_team.wins!", "sky wars team wins"},
		{"4v4 wins", "4v4 wins"},
		{"???", ""},
		{"", ""},
	}

	for _, test := range tests {
		if got := normalize(test.in); got != test.want {
			t.Errorf("normalize(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestTokenJaccard(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"skywars team", "skywars team wins", 2.0 / 3.0},
		{"skywars team", "skywars solo wins", 0.25},
		{"skywars team", "bedwars final kills", 0},
		{"wins", "wins", 1},
	}

	for _, test := range tests {
		if got := tokenJaccard(test.a, test.b); math.Abs(got-test.want) > 1e-9 {
			t.Errorf("tokenJaccard(%q, %q) = %v, want %v", test.a, test.b, got, test.want)
		}
	}
}

func TestEditSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"skywars team", "skywars team wins", 12.0 / 17.0},
		{"wins", "wins", 1},
		{"", "", 1},
	}

	for _, test := range tests {
		if got := editSimilarity(test.a, test.b); math.Abs(got-test.want) > 1e-9 {
			t.Errorf("editSimilarity(%q, %q) = %v, want %v", test.a, test.b, got, test.want)
		}
	}
}

func BenchmarkResolve(b *testing.B) {
	catalog := Catalog()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Resolve("skywars team wins", catalog, DefaultTopN)
	}
}
