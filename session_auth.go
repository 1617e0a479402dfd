package learnkit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openlearnhq/learnkit/api"
)

// Fallback messages shown when the server's error payload carries none.
const (
	msgLoginFailed    = "Login failed"
	msgRegisterFailed = "Registration failed"
	msgDeleteFailed   = "Failed to delete account"
)

// Login exchanges credentials for a session. On success the returned token
// and identity are installed in memory and durable storage together. On
// failure session state is untouched and the Result carries the server's
// message verbatim when present.
func (s *Session) Login(ctx context.Context, email, password string) Result {
	start := time.Now()
	resp, err := s.client.Login(ctx, email, password)
	s.observeLatency(start)
	if err != nil {
		s.metricInc(MetricLoginFailure)
		s.emitAudit(ctx, auditEvent{
			EventType: auditLogin,
			Email:     email,
			Success:   false,
			Error:     err.Error(),
		})
		return failureResult(ErrAuthRejected, err, msgLoginFailed)
	}

	identity := identityFromUser(&resp.User)
	s.adopt(ctx, resp.Token, identity)

	s.metricInc(MetricLoginSuccess)
	s.emitAudit(ctx, auditEvent{
		EventType: auditLogin,
		UserID:    identity.ID,
		Email:     identity.Email,
		Success:   true,
	})
	s.logger.Info().Str("user", identity.Email).Msg("logged in")
	return Result{OK: true}
}

// Register creates an account and signs it in, with the same contract as
// [Session.Login]. An empty role defaults to [RoleStudent].
func (s *Session) Register(ctx context.Context, email, password string, role Role) Result {
	if role == "" {
		role = RoleStudent
	}

	start := time.Now()
	resp, err := s.client.Register(ctx, email, password, string(role))
	s.observeLatency(start)
	if err != nil {
		s.metricInc(MetricRegisterFailure)
		s.emitAudit(ctx, auditEvent{
			EventType: auditRegister,
			Email:     email,
			Success:   false,
			Error:     err.Error(),
		})
		return failureResult(ErrAuthRejected, err, msgRegisterFailed)
	}

	identity := identityFromUser(&resp.User)
	s.adopt(ctx, resp.Token, identity)

	s.metricInc(MetricRegisterSuccess)
	s.emitAudit(ctx, auditEvent{
		EventType: auditRegister,
		UserID:    identity.ID,
		Email:     identity.Email,
		Success:   true,
		Metadata:  map[string]string{"role": string(identity.Role)},
	})
	s.logger.Info().Str("user", identity.Email).Str("role", string(identity.Role)).Msg("registered")
	return Result{OK: true}
}

// Logout clears credential and identity from memory and durable storage.
// It is synchronous, unconditional, idempotent, and never fails.
func (s *Session) Logout() {
	ctx := context.Background()

	s.mu.RLock()
	userID, email := "", ""
	if s.identity != nil {
		userID, email = s.identity.ID, s.identity.Email
	}
	s.mu.RUnlock()

	s.clear(ctx)

	s.metricInc(MetricLogout)
	s.emitAudit(ctx, auditEvent{
		EventType: auditLogout,
		UserID:    userID,
		Email:     email,
		Success:   true,
	})
	s.logger.Info().Msg("logged out")
}

// DeleteAccount removes the account behind the current credential. Success
// implies a logout; failure leaves session state untouched.
func (s *Session) DeleteAccount(ctx context.Context) Result {
	s.mu.RLock()
	userID, email := "", ""
	if s.identity != nil {
		userID, email = s.identity.ID, s.identity.Email
	}
	s.mu.RUnlock()

	start := time.Now()
	err := s.client.DeleteAccount(ctx)
	s.observeLatency(start)
	if err != nil {
		s.metricInc(MetricAccountDeleteFailed)
		s.emitAudit(ctx, auditEvent{
			EventType: auditAccountDelete,
			UserID:    userID,
			Email:     email,
			Success:   false,
			Error:     err.Error(),
		})
		return failureResult(ErrOperationFailed, err, msgDeleteFailed)
	}

	s.metricInc(MetricAccountDeleted)
	s.emitAudit(ctx, auditEvent{
		EventType: auditAccountDelete,
		UserID:    userID,
		Email:     email,
		Success:   true,
	})
	s.Logout()
	return Result{OK: true}
}

func (s *Session) observeLatency(start time.Time) {
	if s.metrics != nil {
		s.metrics.Observe(MetricRequestLatency, time.Since(start))
	}
}

func failureResult(sentinel, cause error, fallback string) Result {
	message := fallback
	var apiErr *api.Error
	if errors.As(cause, &apiErr) && apiErr.Message != "" {
		message = apiErr.Message
	}
	return Result{
		Message: message,
		Err:     fmt.Errorf("%w: %w", sentinel, cause),
	}
}
