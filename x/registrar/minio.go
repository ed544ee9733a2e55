package registrar

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hashsign/hashsign/core"
)

// MinioConfig holds the object storage connection settings.
type MinioConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	UseSSL    bool   `yaml:"useSSL"`
	Bucket    string `yaml:"bucket"`
}

type minioClient struct {
	client *minio.Client
	bucket string
}

// NewMinioClient creates a content-addressed blob client backed by
// S3-compatible object storage and ensures the bucket exists.
func NewMinioClient(cfg MinioConfig) (core.BlobClient, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint missing")
	}

	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio new: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mc.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
		exists, xerr := mc.BucketExists(ctx, cfg.Bucket)
		if xerr != nil || !exists {
			return nil, fmt.Errorf("minio bucket ensure: %w", err)
		}
	}

	return &minioClient{client: mc, bucket: cfg.Bucket}, nil
}

// Upload stores the payload under the hex sha256 of its content. Re-uploads
// of the same payload land on the same key, so an orphan from a failed
// create costs nothing on retry.
func (c *minioClient) Upload(ctx context.Context, payload []byte) (string, error) {
	ctx, span := tracer.Start(ctx, "Registrar.Minio.Upload")
	defer span.End()

	sum := sha256.Sum256(payload)
	key := hex.EncodeToString(sum[:])

	_, err := c.client.PutObject(ctx, c.bucket, key, bytes.NewReader(payload), int64(len(payload)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	return key, nil
}

// Download returns the payload stored under the given identifier.
func (c *minioClient) Download(ctx context.Context, contentID string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "Registrar.Minio.Download")
	defer span.End()

	obj, err := c.client.GetObject(ctx, c.bucket, contentID, minio.GetObjectOptions{})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	defer obj.Close()

	payload, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return nil, err
	}

	return payload, nil
}
