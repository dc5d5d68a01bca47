package supabase

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/buzkaaclicker/folio"
	"github.com/gofiber/fiber/v2"
)

// Bucket is a storage bucket of the hosted project.
type Bucket struct {
	Client *Client
	Name   string
}

var _ folio.AssetBucket = (*Bucket)(nil)

func (b *Bucket) Upload(ctx context.Context, path string, contentType string, body io.Reader) error {
	data, err := ioutil.ReadAll(body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	uri := b.Client.Endpoint() + "/storage/v1/object/" + b.Name + "/" + path
	_, err = b.Client.send(ctx, fiber.MethodPost, uri, contentType, data, func(req *fiber.Request) {
		req.Header.Set(fiber.HeaderCacheControl, "max-age=3600")
		req.Header.Set("x-upsert", "false")
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", path, err)
	}
	return nil
}

func (b *Bucket) PublicUrl(path string) string {
	return b.Client.Endpoint() + "/storage/v1/object/public/" + b.Name + "/" + path
}
