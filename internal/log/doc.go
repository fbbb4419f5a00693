// Package log builds the structured loggers used by deckcount, on top of
// the standard slog package.
//
// Diagnostics always go to stderr so the report on stdout stays clean.
// By default only warnings and errors are shown; verbose mode lowers the
// level to Debug.
//
// # Clipping
//
// The ClipHandler wraps any slog.Handler and shortens attribute values
// that would otherwise flood the terminal:
//   - strings longer than the rune limit are cut and suffixed with the
//     number of dropped runes
//   - slices and arrays longer than the item limit are replaced by a
//     short description with their length
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Debug("catalog loaded", "path", path, "records", records)
//	slog.SetDefault(logger)
package log
