// Package profile captures pprof profiles while a workload is measured.
//
// The CPU profile covers the whole measurement. Heap and allocs profiles are
// snapshots written after it, which is useful next to "--mode alloc" to see
// where the counted bytes come from.
//
//	cfg := profile.NewConfig()
//	cfg.RegisterFlags(cmd.Flags())
//
//	err := cfg.Capture(func() error {
//	    res, err = profiler.Profile(work, sizes)
//	    return err
//	})
//
// Profiles are then inspected with "go tool pprof".
package profile
