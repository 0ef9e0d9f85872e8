// Package chargelog configures the runner's structured logger: a
// log/slog handler writing to stdout, stderr, or a size/age-rotated
// file via lumberjack, matching the logging setup conventions this
// corpus uses (one slog.Logger, a Config struct selecting sink and
// format, package-level Init/InitWithConfig).
package chargelog
