// Package learnkit provides a client-side session engine for the OpenLearn
// learning-management REST API: credential handling, durable session
// persistence, startup revalidation, and role-derived authorization state.
//
// The package is designed for UI front-ends and tooling that embed the API:
// Session methods are safe to call from multiple goroutines after
// initialization through [Builder.Build].
//
// # Architecture boundaries
//
// learnkit is the public surface. It exposes [Session], [Builder], [Config],
// and value types (SessionSnapshot, Result, AuditEvent, etc.). Route
// authorization decisions live in the guard subpackage, raw REST access in
// api, and durable key-value persistence behind [storage.Store].
//
// # What this package must NOT do
//
//   - Expose raw role strings or direct field mutation of session state.
//     Consumers read snapshots and derived projections only.
//   - Perform I/O outside of Session methods (construction via Builder is
//     allocation-only until Build).
//   - Distinguish transport failures from credential rejection during
//     startup revalidation: any failure clears the session (fail closed).
//
// # Session lifecycle
//
// A Session starts empty and not ready. [Session.Initialize] restores a
// persisted (token, identity) pair, if any, and revalidates it against the
// server in the background. Readiness flips to true exactly once and stays
// true; callers that gate rendering should wait via [Session.WaitReady]
// before evaluating guard decisions.
package learnkit
