// Package export writes the rendered report and its assets to a directory so
// it can be published by any static file host.
package export

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"finitefield.org/strategy-report/internal/report/content"
	"finitefield.org/strategy-report/internal/report/page"
	"finitefield.org/strategy-report/public"
)

// ManifestName is written next to index.html and lists every exported file.
const ManifestName = "manifest.json"

// File describes one exported file.
type File struct {
	Path   string `json:"path"`
	Size   int    `json:"size"`
	SHA256 string `json:"sha256"`
}

// Manifest lists the exported files in path order.
type Manifest struct {
	Digest string `json:"content_digest,omitempty"`
	Files  []File `json:"files"`
}

// Export renders report into dir/index.html and copies the embedded static
// assets under dir/static. Asset links are made relative so the output can be
// opened from disk. The document is anchor-checked before anything is written.
func Export(ctx context.Context, dir string, report content.Report, opts page.Options) (Manifest, error) {
	if opts.AssetPrefix == "" {
		opts.AssetPrefix = "static/"
	}
	body, err := page.RenderBytes(ctx, report, opts)
	if err != nil {
		return Manifest{}, fmt.Errorf("export: render: %w", err)
	}

	static, err := public.StaticFS()
	if err != nil {
		return Manifest{}, fmt.Errorf("export: embed static: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Manifest{}, fmt.Errorf("export: create %s: %w", dir, err)
	}

	manifest := Manifest{Digest: report.Digest()}
	write := func(rel string, data []byte) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		target := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("export: create %s: %w", filepath.Dir(target), err)
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("export: write %s: %w", target, err)
		}
		sum := sha256.Sum256(data)
		manifest.Files = append(manifest.Files, File{Path: rel, Size: len(data), SHA256: hex.EncodeToString(sum[:])})
		return nil
	}

	if err := write("index.html", body); err != nil {
		return Manifest{}, err
	}
	err = fs.WalkDir(static, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(static, p)
		if err != nil {
			return err
		}
		return write(path.Join("static", p), data)
	})
	if err != nil {
		return Manifest{}, fmt.Errorf("export: assets: %w", err)
	}

	sort.Slice(manifest.Files, func(i, j int) bool { return manifest.Files[i].Path < manifest.Files[j].Path })

	encoded, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return Manifest{}, fmt.Errorf("export: encode manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ManifestName), append(encoded, '\n'), 0o644); err != nil {
		return Manifest{}, fmt.Errorf("export: write manifest: %w", err)
	}
	return manifest, nil
}

// Lookup returns the manifest entry for rel.
func (m Manifest) Lookup(rel string) (File, bool) {
	i := sort.Search(len(m.Files), func(i int) bool { return m.Files[i].Path >= rel })
	if i < len(m.Files) && m.Files[i].Path == rel {
		return m.Files[i], true
	}
	return File{}, false
}
