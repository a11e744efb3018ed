// Package signing implements the manifest and signature engine for wallet
// bundles: per-file content digests serialized as canonical JSON, covered by
// a detached DER CMS signature.
package signing

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"hash"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gowebpki/jcs"
	"github.com/pkg/errors"
)

const (
	// ManifestFilename is the protocol-mandated manifest member name.
	ManifestFilename = "manifest.json"
	// SignatureFilename is the protocol-mandated signature member name.
	SignatureFilename = "signature"
)

// HashAlgorithm selects the per-file digest the manifest carries. The pass
// format mandates SHA-1, the order format SHA-256.
type HashAlgorithm int

const (
	// AlgorithmSHA1 is used by the legacy .pkpass manifest format.
	AlgorithmSHA1 HashAlgorithm = iota
	// AlgorithmSHA256 is used by the .order manifest format.
	AlgorithmSHA256
)

func (a HashAlgorithm) newHash() hash.Hash {
	if a == AlgorithmSHA256 {
		return sha256.New()
	}

	return sha1.New()
}

// BuildManifest digests every regular file under root and serializes the
// relative-path to lowercase-hex-digest mapping as canonical JSON. The
// result is returned and also written to root/manifest.json.
func BuildManifest(root string, alg HashAlgorithm) ([]byte, error) {
	entries := make(map[string]string)

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

		// The manifest never covers itself or the signature.
		if rel == ManifestFilename || rel == SignatureFilename {
			return nil
		}

		digest, err := hashFile(path, alg)
		if err != nil {
			return err
		}
		entries[filepath.ToSlash(rel)] = digest

		return nil
	})
	if walkErr != nil {
		return nil, errors.Wrap(walkErr, "failed to walk bundle root")
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize manifest")
	}

	// RFC 8785 canonical form: key-sorted, stable byte representation.
	manifest, err := jcs.Transform(raw)
	if err != nil {
		return nil, errors.Wrap(err, "failed to canonicalize manifest")
	}

	if err := os.WriteFile(filepath.Join(root, ManifestFilename), manifest, 0o644); err != nil {
		return nil, errors.Wrap(err, "failed to write manifest.json")
	}

	return manifest, nil
}

// hashFile computes the lowercase hex digest of a file's contents.
func hashFile(path string, alg HashAlgorithm) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to open bundle member")
	}
	defer file.Close()

	hasher := alg.newHash()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", errors.Wrap(err, "failed to hash bundle member")
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
