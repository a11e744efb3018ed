// Package push implements the APNs transport for Wallet wake notifications.
package push

import (
	"context"
	"log/slog"
	"time"

	"walletpass/config"
	"walletpass/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/sideshow/apns2"
	"github.com/sideshow/apns2/certificate"
	"go.uber.org/fx"
)

// ErrCertificateMissing is returned when the APNs client certificate cannot
// be loaded.
var ErrCertificateMissing = errors.New("APNs certificate missing")

// wakePayload is the content-free background payload Wallet expects; the
// client re-fetches the subject after waking, the push carries nothing.
const wakePayload = `{"aps":{}}`

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type apnsTransport struct {
	client *apns2.Client
	logger *slog.Logger
}

// NewAPNsTransport creates the process-lifetime push client. Wallet pushes
// are only accepted by the production APNs gateway; the sandbox gateway is
// never valid for this protocol, so no environment switch exists.
func NewAPNsTransport(params Params) (service.PushTransport, error) {
	if params.Config.APNs == nil {
		return nil, errors.Wrap(ErrCertificateMissing, "apns is not configured")
	}

	cert, err := certificate.FromP12File(params.Config.APNs.CertificatePath, params.Config.APNs.CertificateKey)
	if err != nil {
		return nil, errors.Wrapf(ErrCertificateMissing, "load %s: %v", params.Config.APNs.CertificatePath, err)
	}

	return &apnsTransport{
		client: apns2.NewClient(cert).Production(),
		logger: params.Logger,
	}, nil
}

// Push sends one background wake notification. Permanently invalid tokens
// surface as service.ErrPushTokenInvalid so callers can clean up the device;
// every other rejection is a transport or configuration problem.
func (t *apnsTransport) Push(ctx context.Context, pushToken, topic string) error {
	notification := &apns2.Notification{
		DeviceToken: pushToken,
		Topic:       topic,
		Payload:     []byte(wakePayload),
		Expiration:  time.Unix(0, 0), // Fire-and-forget: no APNs-side queuing.
	}

	response, err := t.client.PushWithContext(ctx, notification)
	if err != nil {
		return errors.Wrap(err, "apns push failed")
	}
	if response.Sent() {
		return nil
	}

	switch response.Reason {
	case apns2.ReasonBadDeviceToken, apns2.ReasonUnregistered:
		t.logger.DebugContext(ctx, "APNs reported stale device token",
			slog.String("reason", response.Reason))

		return errors.Wrapf(service.ErrPushTokenInvalid, "apns reason %s", response.Reason)
	default:
		return errors.Errorf("apns rejected push: status %d, reason %s", response.StatusCode, response.Reason)
	}
}
