package workload

import (
	"errors"
	"fmt"
	"slices"

	"go.jacobcolvin.com/bigo/growth"
	"go.jacobcolvin.com/bigo/measure"
)

// Sentinel errors returned by the registry.
var (
	ErrUnknownWorkload = errors.New("unknown workload")
	ErrSizeCeiling     = errors.New("size exceeds workload ceiling")
)

// Workload is a built-in reference algorithm with a known complexity class.
type Workload struct {
	// Run executes the algorithm at size n, recording its operations on c.
	Run func(n int, c *measure.Counter)
	// Name identifies the workload on the command line.
	Name string
	// Description is a one-line summary of the algorithm.
	Description string
	// Sizes are default input sizes that classify cleanly.
	Sizes []int
	// Expected is the class the algorithm belongs to.
	Expected growth.Class
	// MaxSize is the largest size the workload accepts.
	MaxSize int
}

// CheckSizes returns [ErrSizeCeiling] if any size exceeds [Workload.MaxSize].
func (w Workload) CheckSizes(sizes []int) error {
	for _, n := range sizes {
		if n > w.MaxSize {
			return fmt.Errorf("%w: %s accepts sizes up to %d, got %d", ErrSizeCeiling, w.Name, w.MaxSize, n)
		}
	}

	return nil
}

var registry = []Workload{
	{
		Name:        "constant",
		Description: "read the middle element of an implicit array",
		Expected:    growth.Constant,
		Sizes:       []int{10, 1000, 100000},
		MaxSize:     1 << 62,
		Run:         middleElement,
	},
	{
		Name:        "logarithmic",
		Description: "binary search for a value past the end of a sorted range",
		Expected:    growth.Logarithmic,
		Sizes:       []int{1 << 4, 1 << 8, 1 << 12, 1 << 16},
		MaxSize:     1 << 62,
		Run:         binarySearch,
	},
	{
		Name:        "linear",
		Description: "sum every element of an implicit array",
		Expected:    growth.Linear,
		Sizes:       []int{10, 100, 1000, 10000},
		MaxSize:     1 << 30,
		Run:         linearScan,
	},
	{
		Name:        "linearithmic",
		Description: "merge sort a reversed slice",
		Expected:    growth.Linearithmic,
		Sizes:       []int{1 << 4, 1 << 8, 1 << 12, 1 << 16},
		MaxSize:     1 << 24,
		Run:         mergeSortReversed,
	},
	{
		Name:        "quadratic",
		Description: "brute force two-sum with no solution",
		Expected:    growth.Quadratic,
		Sizes:       []int{128, 512, 2048},
		MaxSize:     1 << 15,
		Run:         twoSum,
	},
	{
		Name:        "cubic",
		Description: "visit every ordered triple of elements",
		Expected:    growth.Cubic,
		Sizes:       []int{16, 64, 256},
		MaxSize:     1 << 10,
		Run:         triples,
	},
	{
		Name:        "exponential",
		Description: "enumerate every subset of a set",
		Expected:    growth.Exponential,
		Sizes:       []int{8, 12, 16, 20},
		MaxSize:     26,
		Run:         subsets,
	},
	{
		Name:        "factorial",
		Description: "generate every permutation with Heap's algorithm",
		Expected:    growth.Factorial,
		Sizes:       []int{4, 6, 8, 10},
		MaxSize:     12,
		Run:         permutations,
	},
}

// All returns every built-in workload in growth order.
func All() []Workload {
	return slices.Clone(registry)
}

// Names returns the names of every built-in workload in growth order.
func Names() []string {
	names := make([]string, len(registry))
	for i, w := range registry {
		names[i] = w.Name
	}

	return names
}

// Lookup returns the workload called name.
func Lookup(name string) (Workload, error) {
	for _, w := range registry {
		if w.Name == name {
			return w, nil
		}
	}

	return Workload{}, fmt.Errorf("%w: %q", ErrUnknownWorkload, name)
}
