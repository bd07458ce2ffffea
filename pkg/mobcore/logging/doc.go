// Package logging provides a minimal logging facade for the mobcore wrapper.
//
// The Logger interface wraps a subset of the standard library's log/slog
// functionality. Applications can hand the wrapper a custom implementation or
// a configured *slog.Logger:
//
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	logger := logging.New(slog.New(handler))
//
// Passing nil to New binds to slog.Default(). Discard returns a logger that
// drops every record, which keeps test output quiet.
package logging
