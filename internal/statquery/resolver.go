// Package statquery resolves free-text stat queries against the fixed catalog
// of known Hypixel stat paths.
//
// Matching blends two similarity measures over normalized strings: the
// Jaccard index of the whitespace token sets (weight 0.6) and a Levenshtein
// edit similarity (weight 0.4). The blend rewards shared words first and
// near-misses in spelling second, which is the behavior people expect from a
// "did you mean" box. The weights and the 0.15 score cutoff are fixed so
// suggestion ordering stays deterministic.
package statquery

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"emperror.dev/errors"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	jaccardWeight = 0.6
	editWeight    = 0.4

	// ScoreCutoff is the floor below which a best match is considered noise.
	// If not even the top-ranked entry reaches it, Resolve returns nothing.
	ScoreCutoff = 0.15

	// DefaultTopN is the suggestion count handlers ask for.
	DefaultTopN = 5
)

var (
	ErrInvalidInput = errors.New("statquery: invalid input")
	ErrEmptyCatalog = errors.New("statquery: empty catalog")
)

// Match pairs a catalog entry with its similarity to a query, in [0,1].
type Match struct {
	Entry Entry
	Score float64
}

// Resolve ranks catalog entries by similarity to query and returns the top
// topN of them, best first. Ties keep catalog order. When even the best entry
// scores below ScoreCutoff the result is empty; the caller is responsible for
// telling the user nothing matched.
//
// Resolve is a pure function of its arguments and is safe to call from any
// number of goroutines.
func Resolve(query string, catalog []Entry, topN int) ([]Match, error) {
	q := normalize(query)
	if q == "" {
		return nil, errors.Wrap(ErrInvalidInput, "query is empty")
	}
	if topN < 1 {
		return nil, errors.Wrapf(ErrInvalidInput, "topN must be positive, got %d", topN)
	}
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}

	matches := make([]Match, len(catalog))
	for i, entry := range catalog {
		matches[i] = Match{Entry: entry, Score: score(q, normalize(entry.Label))}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if matches[0].Score < ScoreCutoff {
		return nil, nil
	}
	if topN < len(matches) {
		matches = matches[:topN]
	}
	return matches, nil
}

// score blends token overlap with character-level edit similarity. Both
// inputs must already be normalized.
func score(query, label string) float64 {
	return jaccardWeight*tokenJaccard(query, label) + editWeight*editSimilarity(query, label)
}

// normalize lowercases s, replaces every non-alphanumeric rune with a space
// and collapses whitespace runs, so "BEDWARS  Final-Kills!" and
// "bedwars final kills" compare equal.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// tokenJaccard is |A∩B| / |A∪B| over the whitespace token sets of a and b.
func tokenJaccard(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 1
	}

	shared := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			shared++
		}
	}
	union := len(setA) + len(setB) - shared
	if union == 0 {
		return 0
	}
	return float64(shared) / float64(union)
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(s) {
		set[tok] = struct{}{}
	}
	return set
}

// editSimilarity is 1 minus the Levenshtein distance normalized by the longer
// string's rune count.
func editSimilarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longest {
		longest = n
	}
	if longest == 0 {
		return 1
	}
	dist := fuzzy.LevenshteinDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}
