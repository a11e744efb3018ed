// Package bundle stages, manifests, signs and compresses wallet bundles.
package bundle

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"walletpass/internal/domain/entity"
	"walletpass/internal/domain/service"
	"walletpass/internal/infra/signing"

	"github.com/klauspost/compress/zip"
	"github.com/pkg/errors"
)

const (
	// SetMinSize and SetMaxSize bound the bundle-of-bundles variant; the
	// platform rejects archives outside this range.
	SetMinSize = 2
	SetMaxSize = 10

	// SetMIMEType is the content type of a bundle-of-passes archive.
	SetMIMEType = "application/vnd.apple.pkpasses"
)

var (
	// ErrTemplateNotDirectory is returned when the delegate's template path
	// does not resolve to a directory.
	ErrTemplateNotDirectory = errors.New("template path is not a directory")
	// ErrSetSize is returned when a bundle set holds fewer than 2 or more
	// than 10 items.
	ErrSetSize = errors.New("bundle set must contain between 2 and 10 items")
)

// PackageInput carries everything needed to produce one signed archive.
type PackageInput struct {
	Kind            entity.SubjectKind
	SerialNumber    string
	Content         []byte // Encoded pass.json / order.json bytes.
	TemplateDir     string
	Personalization []byte // Optional personalization.json bytes, nil to omit.
}

// Packager assembles signed wallet bundles. Templates are copied into a
// fresh staging directory per call, so one template can serve any number of
// concurrent requests.
type Packager struct {
	signer   service.Signer
	delegate service.WalletDelegate
}

// NewPackager is the constructor for Packager.
func NewPackager(signer service.Signer, delegate service.WalletDelegate) *Packager {
	return &Packager{
		signer:   signer,
		delegate: delegate,
	}
}

// Package stages the template plus the subject JSON, manifests and signs the
// staging root, and returns the compressed archive bytes. The staging
// directory is removed on every path out, including cancellation.
func (p *Packager) Package(ctx context.Context, in PackageInput) ([]byte, error) {
	info, err := os.Stat(in.TemplateDir)
	if err != nil || !info.IsDir() {
		return nil, errors.Wrapf(ErrTemplateNotDirectory, "template %s", in.TemplateDir)
	}

	staging, err := os.MkdirTemp("", "walletpass-bundle-")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create staging dir")
	}
	defer os.RemoveAll(staging)

	if err := copyDir(in.TemplateDir, staging); err != nil {
		return nil, errors.Wrap(err, "failed to stage template")
	}

	if err := os.WriteFile(filepath.Join(staging, in.Kind.ContentFilename()), in.Content, 0o644); err != nil {
		return nil, errors.Wrap(err, "failed to write subject content")
	}

	// The template may ship a personalization.json of its own; the input
	// decides whether the bundle carries one.
	if in.Personalization != nil {
		if err := os.WriteFile(filepath.Join(staging, "personalization.json"), in.Personalization, 0o644); err != nil {
			return nil, errors.Wrap(err, "failed to write personalization content")
		}
	} else if err := os.Remove(filepath.Join(staging, "personalization.json")); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "failed to drop personalization content")
	}

	manifest, err := signing.BuildManifest(staging, manifestAlgorithm(in.Kind))
	if err != nil {
		return nil, err
	}

	if err := p.sign(ctx, staging, manifest); err != nil {
		return nil, err
	}

	return zipDir(staging)
}

// PackageSet packages 2-10 subjects individually and wraps the results in
// one outer archive with numbered member names. No signature is produced at
// the outer level; each inner bundle carries its own.
func (p *Packager) PackageSet(ctx context.Context, inputs []PackageInput) ([]byte, error) {
	if len(inputs) < SetMinSize || len(inputs) > SetMaxSize {
		return nil, errors.Wrapf(ErrSetSize, "got %d items", len(inputs))
	}

	var buf bytes.Buffer
	outer := zip.NewWriter(&buf)

	for i, in := range inputs {
		archive, err := p.Package(ctx, in)
		if err != nil {
			return nil, err
		}

		member, err := outer.Create(fmt.Sprintf("pass%d.pkpass", i))
		if err != nil {
			return nil, errors.Wrap(err, "failed to add set member")
		}
		if _, err := member.Write(archive); err != nil {
			return nil, errors.Wrap(err, "failed to write set member")
		}
	}

	if err := outer.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to finalize set archive")
	}

	return buf.Bytes(), nil
}

// sign lets the delegate take over signature generation; otherwise the
// configured signer produces the detached CMS signature.
func (p *Packager) sign(ctx context.Context, staging string, manifest []byte) error {
	if p.delegate != nil {
		handled, err := p.delegate.SignManifest(ctx, staging, manifest)
		if err != nil {
			return errors.Wrap(err, "delegate signing failed")
		}
		if handled {
			return nil
		}
	}

	signature, err := p.signer.Sign(ctx, manifest)
	if err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(staging, signing.SignatureFilename), signature, 0o644); err != nil {
		return errors.Wrap(err, "failed to write signature")
	}

	return nil
}

func manifestAlgorithm(kind entity.SubjectKind) signing.HashAlgorithm {
	if kind == entity.KindOrder {
		return signing.AlgorithmSHA256
	}

	return signing.AlgorithmSHA1
}

// copyDir copies every regular file under src into dst, preserving relative
// paths. Symlinks and other irregular entries are skipped.
func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			if rel == "." {
				return nil
			}

			return os.MkdirAll(target, 0o755)
		}
		if !d.Type().IsRegular() {
			return nil
		}

		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()

		return err
	}

	return out.Close()
}

// zipDir compresses the directory contents with members rooted at the
// contents directly; the archive carries no enclosing top-level folder.
func zipDir(root string) ([]byte, error) {
	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		member, err := writer.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}

		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		_, err = io.Copy(member, file)

		return err
	})
	if walkErr != nil {
		return nil, errors.Wrap(walkErr, "failed to compress bundle")
	}

	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to finalize bundle archive")
	}

	return buf.Bytes(), nil
}
