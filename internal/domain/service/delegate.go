package service

import (
	"context"

	"walletpass/internal/domain/entity"
)

// WalletDelegate is the seam to the issuer's business logic. The delegate
// owns the subject's JSON content and template assets; this service owns
// everything else (manifesting, signing, packaging, registrations, push).
type WalletDelegate interface {
	// TemplateDir returns the directory holding the subject's template
	// assets (icon.png and friends). The directory is shared between
	// concurrent requests and is never mutated by the packager.
	TemplateDir(ctx context.Context, subject *entity.Subject) (string, error)

	// Encode returns the subject's business JSON (pass.json / order.json
	// content). The serialNumber field must equal subject.SerialNumber().
	Encode(ctx context.Context, subject *entity.Subject) ([]byte, error)

	// PersonalizationContent returns the personalization.json payload for
	// subjects that require the personalize flow, or nil for those that
	// don't or whose flow already completed.
	PersonalizationContent(ctx context.Context, subject *entity.Subject) ([]byte, error)

	// SignManifest may take over signature generation entirely. Return
	// handled=true after writing the signature file into stagingDir to skip
	// the built-in signer; return handled=false to use it.
	SignManifest(ctx context.Context, stagingDir string, manifest []byte) (handled bool, err error)
}
