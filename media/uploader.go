package media

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/buzkaaclicker/folio"
)

const DefaultPrefix = "avatars/"

// Uploader stores images under <Prefix><unix millis><extension>.
type Uploader struct {
	Bucket folio.AssetBucket
	Prefix string
	Now    func() time.Time
}

var _ folio.AssetUploader = (*Uploader)(nil)

func (u *Uploader) Upload(ctx context.Context, filename string, contentType string, body io.Reader) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", folio.ErrNotImage
	}

	path := u.Path(filename)
	if err := u.Bucket.Upload(ctx, path, contentType, body); err != nil {
		return "", fmt.Errorf("upload asset: %w", err)
	}
	return u.Bucket.PublicUrl(path), nil
}

func (u *Uploader) Path(filename string) string {
	now := time.Now
	if u.Now != nil {
		now = u.Now
	}
	millis := now().UnixNano() / int64(time.Millisecond)
	return u.Prefix + strconv.FormatInt(millis, 10) + strings.ToLower(filepath.Ext(filename))
}
