// Package log builds [log/slog] handlers for the bigo command.
//
// Three formats are supported: [FormatJSON] and [FormatLogfmt] use the
// standard library handlers, and [FormatText] uses charm.land/log for
// readable terminal output. Levels are [LevelError], [LevelWarn],
// [LevelInfo] and [LevelDebug]; the profiler reports measurement anomalies at
// warn and each sample at debug.
//
// Typical usage creates a [Config], registers flags, then installs a handler
// at startup:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	handler, err := cfg.NewHandler(os.Stderr)
//	slog.SetDefault(slog.New(handler))
package log
