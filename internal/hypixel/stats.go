package hypixel

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// Lookup walks the player document along path and returns the value at the
// end of it. The second return is false when any segment is missing.
func (p *Player) Lookup(path []string) (any, bool) {
	var current any = p.raw
	for _, key := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Number returns the numeric value at path. Missing or non-numeric values
// count as zero, matching how the stats themselves treat absent counters.
func (p *Player) Number(path ...string) float64 {
	v, ok := p.Lookup(path)
	if !ok {
		return 0
	}
	f, ok := toFloat(v)
	if !ok {
		return 0
	}
	return f
}

// Int is Number truncated to an integer count.
func (p *Player) Int(path ...string) int64 {
	return int64(p.Number(path...))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// FormatValue renders a raw stat value for humans. Whole numbers get
// thousands separators, fractional ones keep two decimals.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "0"
	case bool:
		return strconv.FormatBool(t)
	case string:
		return t
	}

	f, ok := toFloat(v)
	if !ok {
		return fmt.Sprintf("%v", v)
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return humanize.Comma(int64(f))
	}
	return humanize.CommafWithDigits(f, 2)
}
