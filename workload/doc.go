// Package workload provides reference algorithms, one per complexity class,
// that count their own operations with a [measure.Counter].
//
// They are used to exercise the profiler from the command line and as
// fixtures in tests. Each [Workload] carries default sizes that classify
// cleanly and a size ceiling, since the profiler itself never bounds how long
// a run may take.
package workload
