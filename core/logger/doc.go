// Package logger provides slog attribute helpers with consistent keys
// for dispatch and middleware logging. Helpers return an empty Attr for
// nil or empty inputs, so call sites never need nil checks.
package logger
