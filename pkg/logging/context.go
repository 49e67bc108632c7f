package logging

import "log/slog"

// WithView creates a logger carrying a materialized view's name.
//
// Example:
//
//	log := logging.WithView("orders_over_100")
//	log.Debug("refreshed", "rows", n)
func WithView(name string) *slog.Logger {
	return GetLogger().With("view", name)
}

// WithJoin creates a logger carrying the snapshot sizes of a join's two
// sides.
func WithJoin(leftRows, rightRows int) *slog.Logger {
	return GetLogger().With("left_rows", leftRows, "right_rows", rightRows)
}
