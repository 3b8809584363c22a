package extremes

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Direction selects which extreme is computed. It is a closed set: Max and Min.
type Direction uint8

const (
	Max Direction = iota + 1
	Min
)

// Directions lists every direction in report order.
var Directions = [...]Direction{Max, Min}

// ParseDirection accepts "max" or "min" in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max":
		return Max, nil
	case "min":
		return Min, nil
	default:
		return 0, fmt.Errorf("unknown direction %q (must be max or min)", s)
	}
}

func (d Direction) String() string {
	switch d {
	case Max:
		return "max"
	case Min:
		return "min"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// Valid reports whether d is Max or Min.
func (d Direction) Valid() bool {
	return d == Max || d == Min
}

// Compare orders a against b under d: negative when a is more extreme than
// b, zero when they are numerically equal, positive otherwise.
// Max orders descending, Min ascending. Equality is exact decimal equality,
// so 1.0 and 1.00 compare equal.
func (d Direction) Compare(a, b decimal.Decimal) int {
	switch d {
	case Max:
		return b.Cmp(a)
	case Min:
		return a.Cmp(b)
	default:
		panic(fmt.Sprintf("extremes: invalid direction %d", uint8(d)))
	}
}

func (d Direction) index() int {
	return int(d) - 1
}
