// Package service defines interfaces for external collaborators the use
// cases depend on (push gateway, signing, delegate-supplied content).
package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrPushTokenInvalid marks a push rejection that means the device token is
// permanently gone (uninstalled, expired). Callers treat it as a cleanup
// signal rather than a delivery failure.
var ErrPushTokenInvalid = errors.New("push token no longer valid")

// PushTransport sends content-free background wake notifications to Wallet
// clients. Implementations hold a long-lived connection to the production
// push gateway and are safe for concurrent use.
type PushTransport interface {
	// Push sends one wake notification to the device token under the given
	// topic (the subject's type identifier). A permanently invalid token is
	// reported as ErrPushTokenInvalid; any other error indicates a transport
	// or configuration problem and is returned as-is.
	Push(ctx context.Context, pushToken, topic string) error
}
