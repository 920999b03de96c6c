// Package logging provides structured logging utilities with context propagation.
//
// Key features:
//   - JSON and text output formats
//   - Request ID and trace ID propagation
//   - Context-aware logging
//
// Example usage:
//
//	logger := logging.NewLogger(logging.Options{Level: "debug"})
//	logger.Info("application started", slog.String("version", "1.0"))
//
//	func handle(ctx context.Context) {
//	    logging.WithRequestID(ctx, slog.Default()).Info("processing request")
//	}
package logging
