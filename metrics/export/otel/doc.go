// Package otel bridges learnkit session metrics into an OpenTelemetry
// meter using observable instruments: values are pulled from a metrics
// snapshot on each collection cycle rather than pushed per event.
package otel
