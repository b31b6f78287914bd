package selector

import (
	"math"
	"strconv"
	"strings"

	"github.com/sevenuz/cake/types"
)

// Seconds per duration unit.
var unitSeconds = map[rune]int64{
	'y': 365 * 24 * 60 * 60,
	'w': 7 * 24 * 60 * 60,
	'd': 24 * 60 * 60,
	'h': 60 * 60,
	'm': 60,
	's': 1,
}

// ParseRelative parses a relative duration such as "1y2d3h" into seconds.
// A repeated unit overwrites the earlier value.
func ParseRelative(expr string) (int64, error) {
	values := make(map[rune]int64, len(unitSeconds))
	var digits strings.Builder
	for _, c := range expr {
		switch {
		case c >= '0' && c <= '9':
			digits.WriteRune(c)
		case unitSeconds[c] != 0:
			if digits.Len() == 0 {
				return 0, types.NewParseError("duration", "missing number before unit "+strconv.QuoteRune(c)+" in "+strconv.Quote(expr), nil)
			}
			n, err := strconv.ParseInt(digits.String(), 10, 64)
			if err != nil {
				return 0, types.NewParseError("duration", "invalid number in "+strconv.Quote(expr), err)
			}
			values[c] = n
			digits.Reset()
		default:
			return 0, types.NewParseError("duration", "unexpected character "+strconv.QuoteRune(c)+" in "+strconv.Quote(expr)+", use y w d h m s", nil)
		}
	}
	if digits.Len() > 0 {
		return 0, types.NewParseError("duration", "number without unit at the end of "+strconv.Quote(expr), nil)
	}
	if len(values) == 0 {
		return 0, types.NewParseError("duration", "empty duration", nil)
	}

	var total int64
	for unit, n := range values {
		if n > math.MaxInt64/unitSeconds[unit] {
			return 0, types.NewParseError("duration", "duration too large", nil)
		}
		part := n * unitSeconds[unit]
		if total > math.MaxInt64-part {
			return 0, types.NewParseError("duration", "duration too large", nil)
		}
		total += part
	}
	return total, nil
}

// Cutoff returns now minus the relative duration expr, or nil when expr is
// empty.
func Cutoff(expr string, now int64) (*int64, error) {
	if expr == "" {
		return nil, nil
	}
	secs, err := ParseRelative(expr)
	if err != nil {
		return nil, err
	}
	t := now - secs
	return &t, nil
}
