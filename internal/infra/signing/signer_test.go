package signing

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"walletpass/config"

	"github.com/pkg/errors"
	"github.com/smallstep/pkcs7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSigningMaterial generates a throwaway CA plus a leaf certificate it
// signed, and writes them as PEM files: the leaf stands in for the issuer
// certificate and key, the CA for the WWDR intermediate.
func writeSigningMaterial(t *testing.T) *config.SigningConfig {
	t.Helper()

	caKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	caTemplate := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "Pass Signing Test CA"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature,
		IsCA:                  true,
		BasicConstraintsValid: true,
	}
	caDER, err := x509.CreateCertificate(rand.Reader, caTemplate, caTemplate, &caKey.PublicKey, caKey)
	require.NoError(t, err)
	caCert, err := x509.ParseCertificate(caDER)
	require.NoError(t, err)

	leafKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	leafTemplate := &x509.Certificate{
		SerialNumber: big.NewInt(2),
		Subject:      pkix.Name{CommonName: "Pass Signing Test"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
	}
	leafDER, err := x509.CreateCertificate(rand.Reader, leafTemplate, caCert, &leafKey.PublicKey, caKey)
	require.NoError(t, err)

	dir := t.TempDir()
	certPath := filepath.Join(dir, "cert.pem")
	keyPath := filepath.Join(dir, "key.pem")
	wwdrPath := filepath.Join(dir, "wwdr.pem")

	leafPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: leafDER})
	require.NoError(t, os.WriteFile(certPath, leafPEM, 0o600))
	caPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: caDER})
	require.NoError(t, os.WriteFile(wwdrPath, caPEM, 0o600))

	keyDER, err := x509.MarshalPKCS8PrivateKey(leafKey)
	require.NoError(t, err)
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: keyDER})
	require.NoError(t, os.WriteFile(keyPath, keyPEM, 0o600))

	return &config.SigningConfig{
		CertificatePath: certPath,
		PrivateKeyPath:  keyPath,
		WWDRPath:        wwdrPath,
	}
}

func TestNewSigner_NilConfig(t *testing.T) {
	_, err := NewSigner(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCertificateMissing))
}

func TestNewSigner_MissingArtifacts(t *testing.T) {
	base := writeSigningMaterial(t)

	tests := []struct {
		name    string
		mutate  func(cfg *config.SigningConfig)
		wantErr error
	}{
		{
			name:    "missing certificate",
			mutate:  func(cfg *config.SigningConfig) { cfg.CertificatePath = "/does/not/exist.pem" },
			wantErr: ErrCertificateMissing,
		},
		{
			name:    "missing private key",
			mutate:  func(cfg *config.SigningConfig) { cfg.PrivateKeyPath = "/does/not/exist.pem" },
			wantErr: ErrPrivateKeyMissing,
		},
		{
			name:    "missing wwdr certificate",
			mutate:  func(cfg *config.SigningConfig) { cfg.WWDRPath = "/does/not/exist.pem" },
			wantErr: ErrWWDRMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := *base
			tt.mutate(&cfg)

			_, err := NewSigner(&cfg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestNewSigner_GarbagePEM(t *testing.T) {
	cfg := writeSigningMaterial(t)
	require.NoError(t, os.WriteFile(cfg.CertificatePath, []byte("not pem"), 0o600))

	_, err := NewSigner(cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCertificateMissing))
}

func TestNewSigner_MissingOpenSSLBinary(t *testing.T) {
	cfg := writeSigningMaterial(t)
	cfg.KeyPassword = "secret"
	cfg.OpenSSLPath = "/does/not/exist/openssl"

	_, err := NewSigner(cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOpenSSLMissing))
}

func TestPKCS7Signer_ProducesVerifiableDetachedSignature(t *testing.T) {
	cfg := writeSigningMaterial(t)

	signer, err := NewSigner(cfg)
	require.NoError(t, err)

	manifest := []byte(`{"pass.json":"aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d"}`)
	signature, err := signer.Sign(context.Background(), manifest)
	require.NoError(t, err)
	require.NotEmpty(t, signature)

	parsed, err := pkcs7.Parse(signature)
	require.NoError(t, err)

	// Detached: the signature does not embed the content; re-attach it to verify.
	parsed.Content = manifest
	require.NoError(t, parsed.Verify())
}

func TestPKCS7Signer_SignaturesDifferPerInput(t *testing.T) {
	cfg := writeSigningMaterial(t)

	signer, err := NewSigner(cfg)
	require.NoError(t, err)

	first, err := signer.Sign(context.Background(), []byte("first manifest"))
	require.NoError(t, err)
	second, err := signer.Sign(context.Background(), []byte("second manifest"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
