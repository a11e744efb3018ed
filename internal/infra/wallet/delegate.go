// Package wallet provides the filesystem-backed default delegate. Each type
// identifier owns a template directory under the configured root; the
// subject's business JSON is the template content file with the identity
// fields overwritten per subject.
package wallet

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"walletpass/config"
	"walletpass/internal/domain/entity"
	"walletpass/internal/domain/service"

	"github.com/pkg/errors"
)

// personalizationFilename is the optional template file whose presence marks
// the pass type as requiring the personalize flow.
const personalizationFilename = "personalization.json"

type fsDelegate struct {
	root string
}

// NewDelegate creates the filesystem-backed wallet delegate rooted at the
// configured template path.
func NewDelegate(cfg *config.Config) service.WalletDelegate {
	return &fsDelegate{root: cfg.Wallet.TemplatePath}
}

func (d *fsDelegate) TemplateDir(ctx context.Context, subject *entity.Subject) (string, error) {
	dir := filepath.Join(d.root, subject.TypeIdentifier)
	info, err := os.Stat(dir)
	if err != nil {
		return "", errors.Wrapf(err, "template directory for %s", subject.TypeIdentifier)
	}
	if !info.IsDir() {
		return "", errors.Errorf("template path %s is not a directory", dir)
	}

	return dir, nil
}

// Encode loads the template's content file and stamps the subject identity
// into it. The template ships placeholder values for these fields.
func (d *fsDelegate) Encode(ctx context.Context, subject *entity.Subject) ([]byte, error) {
	dir, err := d.TemplateDir(ctx, subject)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(filepath.Join(dir, subject.Kind.ContentFilename()))
	if err != nil {
		return nil, errors.Wrap(err, "read template content")
	}

	var content map[string]any
	if err := json.Unmarshal(raw, &content); err != nil {
		return nil, errors.Wrap(err, "parse template content")
	}

	content["serialNumber"] = subject.SerialNumber()
	content["authenticationToken"] = subject.AuthenticationToken
	if subject.Kind == entity.KindOrder {
		content["orderTypeIdentifier"] = subject.TypeIdentifier
	} else {
		content["passTypeIdentifier"] = subject.TypeIdentifier
	}

	return json.Marshal(content)
}

// PersonalizationContent returns the template's personalization.json when
// present, nil otherwise.
func (d *fsDelegate) PersonalizationContent(ctx context.Context, subject *entity.Subject) ([]byte, error) {
	dir, err := d.TemplateDir(ctx, subject)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(filepath.Join(dir, personalizationFilename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "read personalization template")
	}

	return raw, nil
}

// SignManifest defers to the built-in signer.
func (d *fsDelegate) SignManifest(ctx context.Context, stagingDir string, manifest []byte) (bool, error) {
	return false, nil
}
