package export

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"finitefield.org/strategy-report/internal/report/content"
	"finitefield.org/strategy-report/internal/report/page"
	"finitefield.org/strategy-report/internal/report/testutil"
)

func TestExportWritesDocumentAndAssets(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "site")
	manifest, err := Export(context.Background(), dir, content.Default(), page.Options{})
	require.NoError(t, err)

	require.Equal(t, content.Default().Digest(), manifest.Digest)
	index, ok := manifest.Lookup("index.html")
	require.True(t, ok)
	_, ok = manifest.Lookup("static/reveal.js")
	require.True(t, ok)

	body, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	sum := sha256.Sum256(body)
	require.Equal(t, hex.EncodeToString(sum[:]), index.SHA256)
	require.Equal(t, len(body), index.Size)

	doc := testutil.ParseHTML(t, body)
	require.Equal(t, 1, doc.Find(`script[src="static/reveal.js"]`).Length())
	require.Equal(t, 3, doc.Find("section#enterprise [data-card]").Length())

	_, err = os.Stat(filepath.Join(dir, "static", "reveal.js"))
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, ManifestName))
	require.NoError(t, err)
	var onDisk Manifest
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	require.Equal(t, manifest, onDisk)
}

func TestExportHonoursCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Export(ctx, t.TempDir(), content.Default(), page.Options{})
	require.True(t, errors.Is(err, context.Canceled))
}

func TestManifestLookupMissing(t *testing.T) {
	t.Parallel()

	m := Manifest{Files: []File{{Path: "a"}, {Path: "c"}}}
	_, ok := m.Lookup("b")
	require.False(t, ok)
}
