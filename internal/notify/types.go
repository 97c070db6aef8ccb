package notify

import (
	"context"
	"fmt"
)

// Permission is the host's answer about showing notifications.
type Permission string

const (
	PermissionUnknown Permission = "unknown"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// Outcome is how a notify attempt ended.
type Outcome string

const (
	OutcomeDelivered Outcome = "delivered"
	OutcomeDenied    Outcome = "denied"
	OutcomeFailed    Outcome = "failed"
)

// PromptPolicy decides whether a denied permission is asked for again.
type PromptPolicy string

const (
	// PromptEveryAttempt requests permission on every notify while it is
	// not granted.
	PromptEveryAttempt PromptPolicy = "every-attempt"
	// PromptOnce remembers an explicit denial for the gateway's lifetime.
	PromptOnce PromptPolicy = "once"
)

// ParsePromptPolicy parses a configured policy name. Empty selects
// PromptEveryAttempt.
func ParsePromptPolicy(value string) (PromptPolicy, error) {
	switch PromptPolicy(value) {
	case "", PromptEveryAttempt:
		return PromptEveryAttempt, nil
	case PromptOnce:
		return PromptOnce, nil
	}
	return "", fmt.Errorf("unknown notification prompt policy %q", value)
}

// Notification is what gets shown.
type Notification struct {
	Title string
	Body  string
	Icon  string
}

// Channel is the host notification subsystem. Implementations may block in
// RequestPermission while the user answers a prompt.
type Channel interface {
	PermissionGranted(ctx context.Context) (bool, error)
	RequestPermission(ctx context.Context) (Permission, error)
	Send(ctx context.Context, n Notification) error
}

// Result reports a notify attempt. It is never an error for the caller to
// act on; Err only carries the reason for OutcomeFailed.
type Result struct {
	ID         string
	Outcome    Outcome
	Permission Permission
	Err        error
}

// Delivered reports whether the notification reached the host channel.
func (r Result) Delivered() bool {
	return r.Outcome == OutcomeDelivered
}
