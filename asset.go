package folio

import (
	"context"
	"errors"
	"io"
)

var ErrNotImage = errors.New("asset is not an image")

// AssetBucket is a named remote object storage bucket.
type AssetBucket interface {
	Upload(ctx context.Context, path string, contentType string, body io.Reader) error

	// Public url of path. Pure function of the path.
	PublicUrl(path string) string
}

type AssetUploader interface {
	// Stores an image under a generated path and returns its public url.
	Upload(ctx context.Context, filename string, contentType string, body io.Reader) (string, error)
}
