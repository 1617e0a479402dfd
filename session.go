package learnkit

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/openlearnhq/learnkit/api"
	"github.com/openlearnhq/learnkit/storage"
)

const (
	keyToken = "token"
	keyUser  = "user"
)

// Session owns the current identity, the credential token, and the
// ready lifecycle. It is the only component that mutates session state;
// everything else reads snapshots. Safe for concurrent use.
//
// Concurrent mutating calls are not serialized against each other: the
// last write wins, matching the single-UI-caller model the API was
// designed for.
type Session struct {
	config  Config
	client  *api.Client
	store   storage.Store
	logger  zerolog.Logger
	audit   *auditDispatcher
	metrics *Metrics

	mu       sync.RWMutex
	identity *Identity
	token    string

	initialized atomic.Bool
	ready       atomic.Bool
	readyOnce   sync.Once
	readyCh     chan struct{}
}

// Client returns the underlying REST client, bound to this session's
// credential. Use it for catalog, enrollment, and profile operations; the
// server enforces role restrictions on its side.
func (s *Session) Client() *api.Client {
	return s.client
}

// Initialize restores a previously persisted session, if any, and must be
// called exactly once. With nothing (or only half a pair) in storage it
// returns with the session ready and empty, without touching the network.
// With a stored pair it installs the persisted identity optimistically and
// revalidates the token against the server in the background; readiness
// flips once that completes. Any revalidation failure clears the session —
// an unverifiable token is treated as invalid regardless of cause.
func (s *Session) Initialize(ctx context.Context) error {
	if !s.initialized.CompareAndSwap(false, true) {
		return ErrAlreadyInitialized
	}

	token, errToken := s.store.Get(ctx, s.key(keyToken))
	rawUser, errUser := s.store.Get(ctx, s.key(keyUser))
	if errToken != nil || errUser != nil || token == "" || rawUser == "" {
		if errToken != nil && !errors.Is(errToken, storage.ErrNotFound) {
			s.logger.Warn().Err(errToken).Msg("session restore skipped: storage unavailable")
			s.metricInc(MetricStorageFailure)
		}
		if errUser != nil && !errors.Is(errUser, storage.ErrNotFound) {
			s.logger.Warn().Err(errUser).Msg("session restore skipped: storage unavailable")
			s.metricInc(MetricStorageFailure)
		}
		s.markReady()
		return nil
	}

	var identity Identity
	if err := json.Unmarshal([]byte(rawUser), &identity); err != nil {
		// A corrupt snapshot gets the same treatment as a rejected
		// token: clear both halves and start unauthenticated.
		s.logger.Warn().Err(err).Msg("persisted identity corrupt, clearing session")
		s.clear(ctx)
		s.markReady()
		return nil
	}

	s.mu.Lock()
	s.identity = &identity
	s.token = token
	s.mu.Unlock()

	// Revalidation outlives the Initialize call; the caller's cancel
	// must not abort it halfway and strand a stale snapshot.
	go s.revalidate(context.WithoutCancel(ctx))
	return nil
}

func (s *Session) revalidate(ctx context.Context) {
	defer s.markReady()

	user, err := s.client.Me(ctx)
	if err != nil {
		// Fail closed: no distinction between a rejected credential
		// and an unreachable server.
		s.logger.Warn().Err(err).Msg("token revalidation failed, clearing session")
		s.metricInc(MetricRevalidationFailure)
		s.emitAudit(ctx, auditEvent{
			EventType: auditRevalidation,
			Success:   false,
			Error:     errors.Join(ErrSessionInvalid, err).Error(),
		})
		s.clear(ctx)
		return
	}

	// Credential unchanged; the authoritative identity replaces the
	// persisted snapshot.
	identity := identityFromUser(user)
	s.mu.Lock()
	s.identity = &identity
	if err := s.persistLocked(ctx, s.token, identity); err != nil {
		s.logger.Warn().Err(err).Msg("persisting revalidated identity failed")
		s.metricInc(MetricStorageFailure)
	}
	s.mu.Unlock()

	s.metricInc(MetricRevalidationSuccess)
	s.emitAudit(ctx, auditEvent{
		EventType: auditRevalidation,
		UserID:    identity.ID,
		Email:     identity.Email,
		Success:   true,
	})
	s.logger.Debug().Str("user", identity.Email).Msg("session revalidated")
}

// Ready reports whether the initial revalidation window has closed. It is
// false only between Initialize and the completion of startup
// revalidation.
func (s *Session) Ready() bool {
	return s.ready.Load()
}

// WaitReady blocks until the session is ready or ctx is done. Guard
// evaluations must not run before readiness.
func (s *Session) WaitReady(ctx context.Context) error {
	if !s.initialized.Load() {
		return ErrNotInitialized
	}
	select {
	case <-s.readyCh:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Session) markReady() {
	s.readyOnce.Do(func() {
		s.ready.Store(true)
		close(s.readyCh)
	})
}

// Snapshot returns a read-only copy of the session state.
func (s *Session) Snapshot() SessionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := SessionSnapshot{
		Token: s.token,
		Ready: s.ready.Load(),
	}
	if s.identity != nil {
		identity := *s.identity
		snap.Identity = &identity
	}
	return snap
}

// Identity returns a copy of the current identity, or nil while
// unauthenticated.
func (s *Session) Identity() *Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	identity := *s.identity
	return &identity
}

// Token returns the current bearer credential, empty while
// unauthenticated.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsAuthenticated reports whether an identity is present.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil
}

// IsAdmin reports whether the current identity holds [RoleAdmin].
func (s *Session) IsAdmin() bool { return s.hasRole(RoleAdmin) }

// IsInstructor reports whether the current identity holds
// [RoleInstructor].
func (s *Session) IsInstructor() bool { return s.hasRole(RoleInstructor) }

// IsStudent reports whether the current identity holds [RoleStudent].
func (s *Session) IsStudent() bool { return s.hasRole(RoleStudent) }

func (s *Session) hasRole(role Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil && s.identity.Role == role
}

// Close flushes and stops the audit dispatcher. The session is unusable
// afterwards.
func (s *Session) Close() {
	if s == nil {
		return
	}
	if s.audit != nil {
		s.audit.Close()
	}
}

// AuditDropped reports audit events discarded under backpressure.
func (s *Session) AuditDropped() uint64 {
	if s == nil || s.audit == nil {
		return 0
	}
	return s.audit.Dropped()
}

// MetricsSnapshot returns a point-in-time copy of all session metrics.
func (s *Session) MetricsSnapshot() MetricsSnapshot {
	if s == nil || s.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return s.metrics.Snapshot()
}

func (s *Session) metricInc(id MetricID) {
	if s == nil || s.metrics == nil {
		return
	}
	s.metrics.Inc(id)
}

func (s *Session) key(name string) string {
	if s.config.Storage.Namespace == "" {
		return name
	}
	return s.config.Storage.Namespace + ":" + name
}

// adopt installs a fresh (token, identity) pair in memory and writes it
// through to durable storage in the same critical section.
func (s *Session) adopt(ctx context.Context, token string, identity Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = &identity
	s.token = token
	if err := s.persistLocked(ctx, token, identity); err != nil {
		s.logger.Warn().Err(err).Msg("persisting session failed")
		s.metricInc(MetricStorageFailure)
	}
}

func (s *Session) persistLocked(ctx context.Context, token string, identity Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, s.key(keyToken), token); err != nil {
		return err
	}
	return s.store.Set(ctx, s.key(keyUser), string(raw))
}

// clear erases credential and identity from memory and durable storage.
// Storage errors are logged, never surfaced: clearing must not fail.
func (s *Session) clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = nil
	s.token = ""
	if err := s.store.Delete(ctx, s.key(keyToken)); err != nil {
		s.logger.Warn().Err(err).Msg("deleting stored token failed")
		s.metricInc(MetricStorageFailure)
	}
	if err := s.store.Delete(ctx, s.key(keyUser)); err != nil {
		s.logger.Warn().Err(err).Msg("deleting stored identity failed")
		s.metricInc(MetricStorageFailure)
	}
}
