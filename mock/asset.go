package mock

import (
	"context"
	"io"
)

type AssetUploader struct {
	UploadFn func(ctx context.Context, filename string, contentType string, body io.Reader) (string, error)
}

func (u AssetUploader) Upload(ctx context.Context, filename string, contentType string, body io.Reader) (string, error) {
	return u.UploadFn(ctx, filename, contentType, body)
}
