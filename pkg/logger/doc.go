// Package logger builds the structured slog loggers used by the OSRM client
// tools. Output is human-readable text by default and JSON on request, with
// the level parsed from its usual lowercase name.
package logger
