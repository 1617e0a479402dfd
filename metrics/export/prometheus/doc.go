// Package prometheus renders learnkit session metrics in Prometheus text
// exposition format, without depending on the Prometheus client library.
package prometheus
