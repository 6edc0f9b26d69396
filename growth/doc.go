// Package growth classifies the empirical growth of an algorithm's cost.
//
// A [Profiler] runs a unit of [Work] at a sequence of strictly increasing
// input sizes, one size at a time, and fits the measured costs to the nearest
// canonical [Class]:
//
//	res, err := growth.Profile(func(n int) float64 {
//	    return float64(countComparisons(n))
//	}, []int{10, 100, 1000})
//
//	fmt.Println(res.Class.Notation()) // O(n log n)
//
// Costs that were measured elsewhere can be classified with [Profiler.Fit].
//
// # Fitting
//
// For each pair of consecutive samples the observed ratio ln(c2/c1) is
// compared with the ratio each class predicts, ln(f(n2)/f(n1)). A class's
// error is the root mean square of those differences. The class with the
// lowest error wins; every class within the tolerance of that error is kept as
// a candidate and the lowest-order candidate is selected. When more than one
// class fits, [Result.Ambiguous] is set and all candidates are reported.
//
// Ratio tests resolve neighbouring classes such as [Linear] and
// [Linearithmic] only when sizes are far enough apart; steps of 10x or more
// separate them comfortably.
//
// # Anomalies
//
// Costs are expected to grow with size. Samples that break that order are
// excluded from the fit and reported in [Result.Anomalies] instead of failing
// the run, since timing noise is normal.
package growth
