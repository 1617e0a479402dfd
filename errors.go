package learnkit

import "errors"

var (
	// ErrAuthRejected is returned (wrapped in Result.Err) when the server
	// rejects a login or registration attempt. Session state is unchanged.
	ErrAuthRejected = errors.New("authentication rejected")
	// ErrSessionInvalid is returned when a stored credential fails startup
	// revalidation for any reason. The session clears itself in response.
	ErrSessionInvalid = errors.New("session invalid")
	// ErrOperationFailed is returned (wrapped in Result.Err) when an
	// account mutation fails. Session state is unchanged.
	ErrOperationFailed = errors.New("operation failed")
	// ErrAlreadyInitialized is returned when Initialize is called more
	// than once on the same Session.
	ErrAlreadyInitialized = errors.New("session already initialized")
	// ErrNotInitialized is returned by WaitReady before Initialize ran.
	ErrNotInitialized = errors.New("session not initialized")
	// ErrStorageRequired is returned by Build when no storage backend was
	// provided.
	ErrStorageRequired = errors.New("storage backend required")
)
