package service

import "context"

// Signer produces a detached, DER-encoded CMS signature over arbitrary bytes
// using the issuer certificate chain. The same signer covers manifest bytes
// during packaging and raw personalization tokens during the personalize flow.
type Signer interface {
	Sign(ctx context.Context, data []byte) ([]byte, error)
}
