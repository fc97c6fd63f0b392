package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"precifica_ti/internal/infrastructure/config"
	"precifica_ti/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

const objectPrefix = "editais/"

// MinIOStorage keeps the raw uploaded editais.
type MinIOStorage struct {
	client *minio.Client
	bucket string
}

var _ interfaces.IDocumentStorage = (*MinIOStorage)(nil)

// NewMinIOStorage connects to MinIO and creates the bucket when missing.
func NewMinIOStorage(ctx context.Context, cfg config.MinIOConfig) (*MinIOStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
		}
		logrus.WithField("bucket", cfg.Bucket).Info("[storage] bucket created")
	}
	return &MinIOStorage{client: client, bucket: cfg.Bucket}, nil
}

func (s *MinIOStorage) Upload(ctx context.Context, fileName, contentType string, data []byte) (string, error) {
	name := ObjectName(uuid.NewString(), fileName)
	if contentType == "" {
		contentType = ContentType(fileName)
	}
	_, err := s.client.PutObject(ctx, s.bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", name, err)
	}
	logrus.WithFields(logrus.Fields{"bucket": s.bucket, "object": name, "size": len(data)}).Info("[storage] edital stored")
	return name, nil
}

func (s *MinIOStorage) Delete(ctx context.Context, objectName string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove %s: %w", objectName, err)
	}
	logrus.WithFields(logrus.Fields{"bucket": s.bucket, "object": objectName}).Info("[storage] edital removed")
	return nil
}

// ObjectName builds editais/<id>-<base name>, with path separators and
// spaces removed from the original name.
func ObjectName(id, fileName string) string {
	base := filepath.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if base == "." || base == "/" {
		base = "edital"
	}
	base = strings.ReplaceAll(base, " ", "_")
	return objectPrefix + id + "-" + base
}

func ContentType(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".txt":
		return "text/plain"
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}
	return "application/octet-stream"
}
