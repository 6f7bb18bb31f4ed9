package storage

import (
	"agrochat/agrochat/config"
	"bytes"
	"context"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOClient archives uploaded transcription audio. Archival is a
// best-effort side channel: callers log upload errors and carry on.
type MinIOClient struct {
	client *minio.Client
	bucket string
}

func NewMinIOClient(cfg config.Config) (*MinIOClient, error) {
	// Use insecure for local (no HTTPS)
	bucket := cfg.MinIOBucket
	client, err := minio.New(
		cfg.MinIOEndpoint,
		&minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
			Secure: false,
		},
	)
	if err != nil {
		return nil, err
	}
	// Create bucket if not exists
	exists, err := client.BucketExists(context.Background(), bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(context.Background(), bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}
	return &MinIOClient{client: client, bucket: bucket}, nil
}

func (m *MinIOClient) UploadAudio(ctx context.Context, filename string, data []byte) (string, error) {
	key := filepath.Join("audio", uuid.New().String()+filepath.Ext(filename))

	_, err := m.client.PutObject(ctx, m.bucket, key,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		return "", err
	}
	return key, nil
}
