// Package minio sube copias de seguridad a un almacenamiento compatible con S3.
package minio

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/jhoicas/stock-pesca/internal/application/inventory"
	"github.com/jhoicas/stock-pesca/pkg/config"
)

var _ inventory.BackupSink = (*BackupSink)(nil)

// NewClient crea el cliente MinIO/S3.
func NewClient(cfg config.BackupConfig) (*minio.Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio: cliente %s: %w", cfg.Endpoint, err)
	}
	return client, nil
}

// EnsureBucket crea el bucket si no existe.
func EnsureBucket(ctx context.Context, client *minio.Client, bucket string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("minio: consultar bucket %q: %w", bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("minio: crear bucket %q: %w", bucket, err)
		}
	}
	return nil
}

// BackupSink sube cada copia como un objeto JSON del bucket.
type BackupSink struct {
	client *minio.Client
	bucket string
}

// NewBackupSink construye el destino de copias.
func NewBackupSink(client *minio.Client, bucket string) *BackupSink {
	return &BackupSink{client: client, bucket: bucket}
}

// Upload sube data con la clave indicada y devuelve bucket/clave.
func (s *BackupSink) Upload(ctx context.Context, objectKey string, data []byte) (string, error) {
	info, err := s.client.PutObject(ctx, s.bucket, objectKey, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", err
	}
	return s.bucket + "/" + info.Key, nil
}
