package growth

import (
	"fmt"
	"math"
	"strings"
)

// Class is a canonical complexity class.
//
// Classes are declared in growth order, which is also the order used to break
// ties between equally good fits: the lower-order class wins.
type Class int

const (
	// Constant is O(1).
	Constant Class = iota
	// Logarithmic is O(log n).
	Logarithmic
	// Linear is O(n).
	Linear
	// Linearithmic is O(n log n).
	Linearithmic
	// Quadratic is O(n^2).
	Quadratic
	// Cubic is O(n^3).
	Cubic
	// Exponential is O(2^n).
	Exponential
	// Factorial is O(n!).
	Factorial
)

type classInfo struct {
	logGrowth func(n float64) float64
	name      string
	notation  string
}

var classes = [...]classInfo{
	Constant: {
		name:      "constant",
		notation:  "O(1)",
		logGrowth: func(float64) float64 { return 0 },
	},
	Logarithmic: {
		name:      "logarithmic",
		notation:  "O(log n)",
		logGrowth: func(n float64) float64 { return math.Log(log2Floor(n)) },
	},
	Linear: {
		name:      "linear",
		notation:  "O(n)",
		logGrowth: math.Log,
	},
	Linearithmic: {
		name:      "linearithmic",
		notation:  "O(n log n)",
		logGrowth: func(n float64) float64 { return math.Log(n) + math.Log(log2Floor(n)) },
	},
	Quadratic: {
		name:      "quadratic",
		notation:  "O(n^2)",
		logGrowth: func(n float64) float64 { return 2 * math.Log(n) },
	},
	Cubic: {
		name:      "cubic",
		notation:  "O(n^3)",
		logGrowth: func(n float64) float64 { return 3 * math.Log(n) },
	},
	Exponential: {
		name:      "exponential",
		notation:  "O(2^n)",
		logGrowth: func(n float64) float64 { return n * math.Ln2 },
	},
	Factorial: {
		name:     "factorial",
		notation: "O(n!)",
		logGrowth: func(n float64) float64 {
			lg, _ := math.Lgamma(n + 1)

			return lg
		},
	},
}

// log2Floor is log2(n) clamped to 1 so that log-based reference functions
// stay positive at n = 1 and n = 2.
func log2Floor(n float64) float64 {
	return math.Max(1, math.Log2(n))
}

// Classes returns every [Class] in growth order.
func Classes() []Class {
	out := make([]Class, len(classes))
	for i := range classes {
		out[i] = Class(i)
	}

	return out
}

// ClassNames returns the text form of every [Class] in growth order.
func ClassNames() []string {
	out := make([]string, len(classes))
	for i, c := range classes {
		out[i] = c.name
	}

	return out
}

// ParseClass returns the [Class] named s. Matching is case-insensitive.
func ParseClass(s string) (Class, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, c := range classes {
		if c.name == name {
			return Class(i), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown complexity class %q", ErrInvalidInput, s)
}

// Valid reports whether c is one of the canonical classes.
func (c Class) Valid() bool {
	return c >= 0 && int(c) < len(classes)
}

// String returns the lowercase name of the class, e.g. "linearithmic".
func (c Class) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Class(%d)", int(c))
	}

	return classes[c].name
}

// Notation returns the Big O notation of the class, e.g. "O(n log n)".
func (c Class) Notation() string {
	if !c.Valid() {
		return "O(?)"
	}

	return classes[c].notation
}

// LogGrowth returns ln f(n) for the reference growth function f of the class.
//
// Working in log space keeps [Exponential] and [Factorial] finite for any size
// a caller could reasonably measure. Invalid classes return NaN.
func (c Class) LogGrowth(n int) float64 {
	if !c.Valid() {
		return math.NaN()
	}

	return classes[c].logGrowth(float64(n))
}

// MarshalText implements [encoding.TextMarshaler].
func (c Class) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: unknown complexity class %d", ErrInvalidInput, int(c))
	}

	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Class) UnmarshalText(text []byte) error {
	parsed, err := ParseClass(string(text))
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}
