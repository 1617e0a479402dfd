package internaldefs

import (
	learnkit "github.com/openlearnhq/learnkit"
)

// CounterDef pairs a metric ID with its stable exported name and help
// text.
type CounterDef struct {
	ID   learnkit.MetricID
	Name string
	Help string
}

// HistogramDef pairs a histogram metric ID with its exported name and
// help text.
type HistogramDef struct {
	ID   learnkit.MetricID
	Name string
	Help string
}

// CounterDefs lists every exported counter in declaration order.
var CounterDefs = []CounterDef{
	{ID: learnkit.MetricLoginSuccess, Name: "learnkit_login_success_total", Help: "Successful login attempts."},
	{ID: learnkit.MetricLoginFailure, Name: "learnkit_login_failure_total", Help: "Failed login attempts."},
	{ID: learnkit.MetricRegisterSuccess, Name: "learnkit_register_success_total", Help: "Successful registrations."},
	{ID: learnkit.MetricRegisterFailure, Name: "learnkit_register_failure_total", Help: "Failed registrations."},
	{ID: learnkit.MetricRevalidationSuccess, Name: "learnkit_revalidation_success_total", Help: "Startup revalidations that confirmed the stored credential."},
	{ID: learnkit.MetricRevalidationFailure, Name: "learnkit_revalidation_failure_total", Help: "Startup revalidations that cleared the session."},
	{ID: learnkit.MetricLogout, Name: "learnkit_logout_total", Help: "Logout operations."},
	{ID: learnkit.MetricAccountDeleted, Name: "learnkit_account_deleted_total", Help: "Successful account deletions."},
	{ID: learnkit.MetricAccountDeleteFailed, Name: "learnkit_account_delete_failed_total", Help: "Failed account deletions."},
	{ID: learnkit.MetricStorageFailure, Name: "learnkit_storage_failure_total", Help: "Durable storage operations that failed and were absorbed."},
}

// HistogramDefs lists every exported histogram.
var HistogramDefs = []HistogramDef{
	{ID: learnkit.MetricRequestLatency, Name: "learnkit_request_latency_seconds", Help: "Auth endpoint round-trip latency histogram."},
}

// HistogramBounds are the upper bucket bounds in seconds, aligned with
// the in-process histogram.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix holds name-safe variants of HistogramBounds for
// exporters that cannot carry an le label.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets pads or truncates a raw snapshot slice to the fixed
// bucket width.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets converts per-bucket counts into the cumulative form
// both exporters emit.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
