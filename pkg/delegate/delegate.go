// Package delegate delivers classified push outcomes to caller callbacks.
package delegate

import (
	"github.com/notifykit/mpns/pkg/logger"
	"github.com/notifykit/mpns/pkg/notification"
	"github.com/notifykit/mpns/pkg/response"
)

// Delegate receives the result of each push attempt. Exactly one of the two
// methods is invoked per classified response: MessageSent for successful
// outcomes, MessageFailed for everything else. The outcome's ShouldRetry
// flag is advisory; the delegate is not retried or re-invoked.
type Delegate interface {
	MessageSent(n *notification.Notification, outcome response.Outcome)
	MessageFailed(n *notification.Notification, outcome response.Outcome)
}

// Funcs adapts plain functions to the Delegate interface. Nil fields are
// simply skipped.
type Funcs struct {
	OnSent   func(n *notification.Notification, outcome response.Outcome)
	OnFailed func(n *notification.Notification, outcome response.Outcome)
}

// MessageSent calls OnSent when set.
func (f Funcs) MessageSent(n *notification.Notification, outcome response.Outcome) {
	if f.OnSent != nil {
		f.OnSent(n, outcome)
	}
}

// MessageFailed calls OnFailed when set.
func (f Funcs) MessageFailed(n *notification.Notification, outcome response.Outcome) {
	if f.OnFailed != nil {
		f.OnFailed(n, outcome)
	}
}

// Notifier fires a delegate from classified outcomes with panic recovery,
// so a misbehaving callback cannot take down the sender.
type Notifier struct {
	delegate Delegate
	logger   logger.Logger
}

// NewNotifier creates a notifier for the given delegate. The delegate may
// be nil, in which case Notify does nothing.
func NewNotifier(d Delegate, log logger.Logger) *Notifier {
	if log == nil {
		log = logger.Discard
	}
	return &Notifier{delegate: d, logger: log}
}

// Notify invokes exactly one delegate callback for the outcome.
func (r *Notifier) Notify(n *notification.Notification, outcome response.Outcome) {
	if r.delegate == nil {
		return
	}

	if outcome.IsSuccessful() {
		r.safeCallback(func() { r.delegate.MessageSent(n, outcome) }, "sent", n)
	} else {
		r.safeCallback(func() { r.delegate.MessageFailed(n, outcome) }, "failed", n)
	}
}

// safeCallback executes a callback with panic recovery.
func (r *Notifier) safeCallback(callback func(), kind string, n *notification.Notification) {
	defer func() {
		if recovered := recover(); recovered != nil {
			r.logger.Error("Delegate callback panicked",
				"callback", kind,
				"message_id", n.MessageID(),
				"panic", recovered)
		}
	}()

	callback()
}
