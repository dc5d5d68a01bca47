// Package filestore is an asset bucket on a local filesystem, used when no
// hosted storage is configured and in tests.
package filestore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/buzkaaclicker/folio"
	"github.com/spf13/afero"
)

type Bucket struct {
	Fs afero.Fs
	// Url prefix under which Fs is served, e.g. "/uploads".
	BaseUrl string
}

var _ folio.AssetBucket = (*Bucket)(nil)

// NewBucket confines the bucket to dir.
func NewBucket(dir string, baseUrl string) *Bucket {
	return &Bucket{Fs: afero.NewBasePathFs(afero.NewOsFs(), dir), BaseUrl: baseUrl}
}

// Upload never overwrites an existing object.
func (b *Bucket) Upload(ctx context.Context, path string, contentType string, body io.Reader) error {
	if err := b.Fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	f, err := b.Fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := io.Copy(f, body); err != nil {
		_ = f.Close()
		_ = b.Fs.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func (b *Bucket) PublicUrl(path string) string {
	return strings.TrimRight(b.BaseUrl, "/") + "/" + strings.TrimLeft(path, "/")
}
