// Package measure adapts algorithms into [growth.Work] functions.
//
// Three cost models are available: explicit operation counts ([Counted]),
// wall-clock time ([Timed], [Timer]) and heap allocation ([Allocated]). All of
// them run the algorithm synchronously, so consecutive samples never overlap.
//
//	work := measure.Counted(func(n int, c *measure.Counter) {
//	    for i := 0; i < n; i++ {
//	        c.Inc()
//	    }
//	})
//
//	res, err := growth.Profile(work, []int{10, 100, 1000})
package measure
