// file: internals/helpers/oss/oss_client.go
package oss

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"path"
	"strings"
	"time"

	alioss "github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
)

// ImageStorage is the opaque upload-and-get-URL collaborator used by the
// news and centers handlers. Implementations must make Delete idempotent:
// removing a key that is already gone is not an error.
type ImageStorage interface {
	Upload(folder, filename string, r io.Reader) (url, key string, err error)
	Delete(key string) error
}

type Client struct {
	bucket    *alioss.Bucket
	publicURL string
}

type Config struct {
	Endpoint        string
	AccessKeyID     string
	AccessKeySecret string
	BucketName      string
	PublicBaseURL   string // optional CDN/custom domain
}

func NewClient(cfg Config) (*Client, error) {
	cli, err := alioss.New(cfg.Endpoint, cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		return nil, fmt.Errorf("oss client: %w", err)
	}
	bucket, err := cli.Bucket(cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("oss bucket: %w", err)
	}
	base := strings.TrimRight(cfg.PublicBaseURL, "/")
	if base == "" {
		base = fmt.Sprintf("https://%s.%s", cfg.BucketName, strings.TrimPrefix(cfg.Endpoint, "https://"))
	}
	return &Client{bucket: bucket, publicURL: base}, nil
}

const (
	webpMaxDim  = 1600
	webpQuality = 80
)

// Upload stores the object under folder/<timestamp>-<uuid><ext> and
// returns its public URL plus the object key used for later deletion.
// Recognizable images (jpeg/png/webp) are downscaled to fit
// webpMaxDim and recompressed to webp first; other payloads are
// stored as received.
func (c *Client) Upload(folder, filename string, r io.Reader) (string, string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", "", fmt.Errorf("oss upload read: %w", err)
	}
	ext := strings.ToLower(path.Ext(filename))
	body := raw
	if img, ok := decodeImage(raw, ext); ok {
		if encoded, encErr := encodeWebP(downscale(img, webpMaxDim, webpMaxDim), webpQuality); encErr == nil {
			body = encoded
			ext = ".webp"
		}
	}
	key := fmt.Sprintf("%s/%d-%s%s", folder, time.Now().UnixMilli(), uuid.NewString()[:8], ext)
	if err := c.bucket.PutObject(key, bytes.NewReader(body)); err != nil {
		return "", "", fmt.Errorf("oss upload: %w", err)
	}
	return c.publicURL + "/" + key, key, nil
}

// Delete removes an object. A missing object is treated as already deleted.
func (c *Client) Delete(key string) error {
	if strings.TrimSpace(key) == "" {
		return nil
	}
	if err := c.bucket.DeleteObject(key); err != nil {
		if svcErr, ok := err.(alioss.ServiceError); ok && svcErr.StatusCode == 404 {
			return nil
		}
		log.Printf("[OSS] delete %s: %v", key, err)
		return err
	}
	return nil
}
