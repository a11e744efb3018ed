package signing

import (
	"bytes"
	"context"
	"crypto"
	"crypto/x509"
	"encoding/pem"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"walletpass/config"
	"walletpass/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/smallstep/pkcs7"
)

// Configuration errors, one per missing artifact so operators can fix the
// deployment instead of guessing.
var (
	// ErrCertificateMissing is returned when the signer certificate cannot be read.
	ErrCertificateMissing = errors.New("signer certificate missing")
	// ErrPrivateKeyMissing is returned when the signer private key cannot be read.
	ErrPrivateKeyMissing = errors.New("signer private key missing")
	// ErrWWDRMissing is returned when the WWDR intermediate certificate cannot be read.
	ErrWWDRMissing = errors.New("WWDR intermediate certificate missing")
	// ErrOpenSSLMissing is returned when the encrypted-key path requires an
	// openssl binary that cannot be found.
	ErrOpenSSLMissing = errors.New("openssl binary missing")
	// ErrSigningFailed marks an execution failure with valid configuration:
	// subprocess exit, timeout, or CMS assembly error.
	ErrSigningFailed = errors.New("signature generation failed")
)

const passwordEnvKey = "WALLETPASS_SIGNING_KEY_PASSWORD"

// NewSigner selects a signing strategy once, at construction: in-process CMS
// for unencrypted keys, an openssl subprocess when the key is password
// protected. Both produce a detached DER CMS signature over the input bytes.
func NewSigner(cfg *config.SigningConfig) (service.Signer, error) {
	if cfg == nil {
		return nil, errors.Wrap(ErrCertificateMissing, "signing is not configured")
	}

	certPEM, err := os.ReadFile(cfg.CertificatePath)
	if err != nil {
		return nil, errors.Wrapf(ErrCertificateMissing, "read %s: %v", cfg.CertificatePath, err)
	}
	keyPEM, err := os.ReadFile(cfg.PrivateKeyPath)
	if err != nil {
		return nil, errors.Wrapf(ErrPrivateKeyMissing, "read %s: %v", cfg.PrivateKeyPath, err)
	}
	wwdrPEM, err := os.ReadFile(cfg.WWDRPath)
	if err != nil {
		return nil, errors.Wrapf(ErrWWDRMissing, "read %s: %v", cfg.WWDRPath, err)
	}

	if cfg.KeyPassword != "" {
		binary := cfg.OpenSSLPath
		if binary == "" {
			binary = "openssl"
		}
		resolved, err := exec.LookPath(binary)
		if err != nil {
			return nil, errors.Wrapf(ErrOpenSSLMissing, "lookup %s: %v", binary, err)
		}

		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}

		return &opensslSigner{
			binary:   resolved,
			certPath: cfg.CertificatePath,
			keyPath:  cfg.PrivateKeyPath,
			wwdrPath: cfg.WWDRPath,
			password: cfg.KeyPassword,
			timeout:  timeout,
		}, nil
	}

	cert, err := parseCertificate(certPEM)
	if err != nil {
		return nil, errors.Wrapf(ErrCertificateMissing, "parse %s: %v", cfg.CertificatePath, err)
	}
	wwdr, err := parseCertificate(wwdrPEM)
	if err != nil {
		return nil, errors.Wrapf(ErrWWDRMissing, "parse %s: %v", cfg.WWDRPath, err)
	}
	key, err := parsePrivateKey(keyPEM)
	if err != nil {
		return nil, errors.Wrapf(ErrPrivateKeyMissing, "parse %s: %v", cfg.PrivateKeyPath, err)
	}

	return &pkcs7Signer{cert: cert, wwdr: wwdr, key: key}, nil
}

// pkcs7Signer signs in-process. Used when the private key is unencrypted.
type pkcs7Signer struct {
	cert *x509.Certificate
	wwdr *x509.Certificate
	key  crypto.PrivateKey
}

func (s *pkcs7Signer) Sign(_ context.Context, data []byte) ([]byte, error) {
	signed, err := pkcs7.NewSignedData(data)
	if err != nil {
		return nil, errors.Wrapf(ErrSigningFailed, "init signed data: %v", err)
	}
	signed.SetDigestAlgorithm(pkcs7.OIDDigestAlgorithmSHA256)

	if err := signed.AddSignerChain(s.cert, s.key, []*x509.Certificate{s.wwdr}, pkcs7.SignerInfoConfig{}); err != nil {
		return nil, errors.Wrapf(ErrSigningFailed, "add signer chain: %v", err)
	}

	// Detached signature: the manifest bytes travel separately in the bundle.
	signed.Detach()

	signature, err := signed.Finish()
	if err != nil {
		return nil, errors.Wrapf(ErrSigningFailed, "finish: %v", err)
	}

	return signature, nil
}

// opensslSigner shells out to openssl smime for password-protected keys,
// passing the passphrase through the environment rather than argv.
type opensslSigner struct {
	binary   string
	certPath string
	keyPath  string
	wwdrPath string
	password string
	timeout  time.Duration
}

func (s *opensslSigner) Sign(ctx context.Context, data []byte) ([]byte, error) {
	workDir, err := os.MkdirTemp("", "walletpass-sign-")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create signing scratch dir")
	}
	defer os.RemoveAll(workDir)

	inPath := filepath.Join(workDir, "content")
	if err := os.WriteFile(inPath, data, 0o600); err != nil {
		return nil, errors.Wrap(err, "failed to stage signing input")
	}
	outPath := filepath.Join(workDir, SignatureFilename)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.binary,
		"smime", "-binary", "-sign",
		"-signer", s.certPath,
		"-inkey", s.keyPath,
		"-certfile", s.wwdrPath,
		"-in", inPath,
		"-out", outPath,
		"-outform", "DER",
		"-passin", "env:"+passwordEnvKey,
	)
	cmd.Env = append(os.Environ(), passwordEnvKey+"="+s.password)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, errors.Wrapf(ErrSigningFailed, "openssl timed out after %s", s.timeout)
		}

		return nil, errors.Wrapf(ErrSigningFailed, "openssl: %v: %s", err, stderr.String())
	}

	signature, err := os.ReadFile(outPath)
	if err != nil {
		return nil, errors.Wrapf(ErrSigningFailed, "read signature output: %v", err)
	}

	return signature, nil
}

func parseCertificate(pemBytes []byte) (*x509.Certificate, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, errors.New("no PEM block found")
	}

	return x509.ParseCertificate(block.Bytes)
}

func parsePrivateKey(pemBytes []byte) (crypto.PrivateKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, errors.New("no PEM block found")
	}

	if key, err := x509.ParsePKCS8PrivateKey(block.Bytes); err == nil {
		return key, nil
	}
	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}
	if key, err := x509.ParseECPrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	return nil, errors.New("unsupported private key format")
}
