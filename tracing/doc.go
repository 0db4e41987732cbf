// Package tracing provides a thin wrapper around OpenTelemetry tracing so that
// the rest of the code-base can start and end spans without depending on the
// upstream packages directly. Nothing is re-implemented - all functionality is
// delegated to OpenTelemetry.
package tracing
