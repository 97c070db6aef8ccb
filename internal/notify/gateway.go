package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/logue/drop-compress-image/internal/i18n"
)

// ErrNoChannel is reported when the gateway has no host channel.
var ErrNoChannel = errors.New("no notification channel")

// Messages renders localized notification text. *i18n.Translator satisfies it.
type Messages interface {
	T(id string, data map[string]any) string
	Plural(id string, count int, data map[string]any) string
}

// Gateway delivers best-effort desktop notifications behind the host's
// permission prompt. Notify never panics or returns an error; every failure
// ends in a logged Result. Safe for concurrent use.
type Gateway struct {
	channel  Channel
	messages Messages
	policy   PromptPolicy
	logger   hclog.Logger

	mu     sync.Mutex
	denied bool
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithPromptPolicy sets the permission prompt policy.
func WithPromptPolicy(policy PromptPolicy) Option {
	return func(g *Gateway) {
		g.policy = policy
	}
}

// WithMessages sets the localizer used by the convenience methods.
func WithMessages(messages Messages) Option {
	return func(g *Gateway) {
		g.messages = messages
	}
}

// WithLogger sets the logger.
func WithLogger(logger hclog.Logger) Option {
	return func(g *Gateway) {
		g.logger = logger
	}
}

// NewGateway creates a gateway over channel.
func NewGateway(channel Channel, opts ...Option) *Gateway {
	g := &Gateway{
		channel:  channel,
		messages: idMessages{},
		policy:   PromptEveryAttempt,
		logger:   hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.messages == nil {
		g.messages = idMessages{}
	}
	g.logger = g.logger.Named("notify")
	return g
}

// Notify shows a notification if permission is, or becomes, granted.
func (g *Gateway) Notify(ctx context.Context, title, body, icon string) (res Result) {
	res = Result{ID: uuid.NewString(), Permission: PermissionUnknown}
	logger := g.logger.With("id", res.ID)

	defer func() {
		if r := recover(); r != nil {
			res.Outcome = OutcomeFailed
			res.Err = fmt.Errorf("notification channel panicked: %v", r)
			logger.Error("notification failed", "error", res.Err)
		}
	}()

	if g.channel == nil {
		return g.fail(logger, res, ErrNoChannel)
	}

	if g.deniedBefore() {
		res.Permission = PermissionDenied
		res.Outcome = OutcomeDenied
		logger.Debug("notification skipped, permission denied earlier")
		return res
	}

	granted, err := g.channel.PermissionGranted(ctx)
	if err != nil {
		return g.fail(logger, res, fmt.Errorf("query permission: %w", err))
	}

	if !granted {
		permission, err := g.channel.RequestPermission(ctx)
		if err != nil {
			return g.fail(logger, res, fmt.Errorf("request permission: %w", err))
		}
		if permission != PermissionGranted {
			if permission == PermissionDenied {
				res.Permission = PermissionDenied
				g.rememberDenied()
			}
			res.Outcome = OutcomeDenied
			logger.Info("notification permission not granted", "permission", permission)
			return res
		}
	}
	res.Permission = PermissionGranted

	if err := g.channel.Send(ctx, Notification{Title: title, Body: body, Icon: icon}); err != nil {
		return g.fail(logger, res, fmt.Errorf("send notification: %w", err))
	}

	res.Outcome = OutcomeDelivered
	logger.Debug("notification delivered", "title", title)
	return res
}

// NotifyConversionComplete announces one converted file.
func (g *Gateway) NotifyConversionComplete(ctx context.Context, fileName, format string) Result {
	return g.Notify(ctx,
		g.currentMessages().T(i18n.KeyCompleteTitle, nil),
		g.currentMessages().T(i18n.KeyCompleteMessage, map[string]any{
			"File":   fileName,
			"Format": strings.ToUpper(format),
		}),
		"",
	)
}

// NotifyBatchComplete announces a finished batch of count files.
func (g *Gateway) NotifyBatchComplete(ctx context.Context, count int, format string) Result {
	return g.Notify(ctx,
		g.currentMessages().T(i18n.KeyBatchCompleteTitle, nil),
		g.currentMessages().Plural(i18n.KeyBatchCompleteMessage, count, map[string]any{
			"Format": strings.ToUpper(format),
		}),
		"",
	)
}

// NotifyError announces a failed conversion with message as the body.
func (g *Gateway) NotifyError(ctx context.Context, message string) Result {
	return g.Notify(ctx, g.currentMessages().T(i18n.KeyErrorTitle, nil), message, "")
}

func (g *Gateway) fail(logger hclog.Logger, res Result, err error) Result {
	res.Outcome = OutcomeFailed
	res.Err = err
	logger.Error("notification failed", "error", err)
	return res
}

// SetPromptPolicy changes the prompt policy for later attempts. Switching to
// PromptEveryAttempt drops a remembered denial.
func (g *Gateway) SetPromptPolicy(policy PromptPolicy) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.policy = policy
	if policy != PromptOnce {
		g.denied = false
	}
}

// PromptPolicy returns the current prompt policy.
func (g *Gateway) PromptPolicy() PromptPolicy {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.policy
}

// SetMessages replaces the localizer used by the convenience methods.
func (g *Gateway) SetMessages(messages Messages) {
	if messages == nil {
		messages = idMessages{}
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.messages = messages
}

// ForgetDenial drops a denial remembered under PromptOnce, so the next
// attempt asks again.
func (g *Gateway) ForgetDenial() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.denied = false
}

func (g *Gateway) currentMessages() Messages {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.messages
}

func (g *Gateway) deniedBefore() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.policy == PromptOnce && g.denied
}

func (g *Gateway) rememberDenied() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.policy == PromptOnce {
		g.denied = true
	}
}

// idMessages renders message IDs verbatim when no localizer is configured.
type idMessages struct{}

func (idMessages) T(id string, _ map[string]any) string { return id }

func (idMessages) Plural(id string, _ int, _ map[string]any) string { return id }
