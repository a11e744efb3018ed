package signing

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBundleFile(t *testing.T, root, name string, content []byte) {
	t.Helper()

	path := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o644))
}

func TestBuildManifest_SHA1Digests(t *testing.T) {
	root := t.TempDir()
	writeBundleFile(t, root, "pass.json", []byte("hello"))
	writeBundleFile(t, root, "icon.png", []byte("icon"))

	manifest, err := BuildManifest(root, AlgorithmSHA1)
	require.NoError(t, err)

	var entries map[string]string
	require.NoError(t, json.Unmarshal(manifest, &entries))

	assert.Equal(t, map[string]string{
		"pass.json": "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d",
		"icon.png":  "f8995ba5891b07e328c60d6bd6c10159878c5a13",
	}, entries)
}

func TestBuildManifest_SHA256Digests(t *testing.T) {
	root := t.TempDir()
	writeBundleFile(t, root, "order.json", []byte("hello"))

	manifest, err := BuildManifest(root, AlgorithmSHA256)
	require.NoError(t, err)

	var entries map[string]string
	require.NoError(t, json.Unmarshal(manifest, &entries))

	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", entries["order.json"])
}

func TestBuildManifest_CoversNestedFilesWithSlashPaths(t *testing.T) {
	root := t.TempDir()
	writeBundleFile(t, root, "pass.json", []byte("{}"))
	writeBundleFile(t, root, filepath.Join("en.lproj", "pass.strings"), []byte("strings"))

	manifest, err := BuildManifest(root, AlgorithmSHA1)
	require.NoError(t, err)

	var entries map[string]string
	require.NoError(t, json.Unmarshal(manifest, &entries))

	assert.Contains(t, entries, "en.lproj/pass.strings")
}

func TestBuildManifest_ExcludesManifestAndSignature(t *testing.T) {
	root := t.TempDir()
	writeBundleFile(t, root, "pass.json", []byte("{}"))
	writeBundleFile(t, root, ManifestFilename, []byte("stale"))
	writeBundleFile(t, root, SignatureFilename, []byte("stale"))

	manifest, err := BuildManifest(root, AlgorithmSHA1)
	require.NoError(t, err)

	var entries map[string]string
	require.NoError(t, json.Unmarshal(manifest, &entries))

	assert.NotContains(t, entries, ManifestFilename)
	assert.NotContains(t, entries, SignatureFilename)
	assert.Contains(t, entries, "pass.json")
}

func TestBuildManifest_WritesManifestFile(t *testing.T) {
	root := t.TempDir()
	writeBundleFile(t, root, "pass.json", []byte("{}"))

	manifest, err := BuildManifest(root, AlgorithmSHA1)
	require.NoError(t, err)

	written, err := os.ReadFile(filepath.Join(root, ManifestFilename))
	require.NoError(t, err)
	assert.Equal(t, manifest, written)
}

func TestBuildManifest_CanonicalKeyOrder(t *testing.T) {
	root := t.TempDir()
	writeBundleFile(t, root, "zeta.png", []byte("z"))
	writeBundleFile(t, root, "alpha.png", []byte("a"))

	manifest, err := BuildManifest(root, AlgorithmSHA1)
	require.NoError(t, err)

	assert.Less(t, bytes.Index(manifest, []byte(`"alpha.png"`)), bytes.Index(manifest, []byte(`"zeta.png"`)))
}
