package ports

import "context"

// SubmissionGuard provides a short-lived duplicate-submission check for
// public forms, backed by Redis.
type SubmissionGuard interface {
	// Seen reports whether an identical submission was marked recently.
	Seen(ctx context.Context, key string) (bool, error)
	// Mark records the submission so repeats within the TTL are rejected.
	Mark(ctx context.Context, key string) error
}
