// Package log builds the application logger on top of the standard slog
// package, using the tint handler for compact, colorized terminal output.
//
// dosat logs to stderr so that reports on stdout stay pipeable. The default
// level is Warn; verbose mode lowers it to Debug, which surfaces the
// resolved configuration and the intermediate solubility value of each
// computation.
package log
