package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"edu_feedback_backend/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ReportStorage stores generated export files.
type ReportStorage interface {
	Upload(ctx context.Context, filename string, data []byte, contentType string) (string, error)
}

// NewReportStorage picks the provider by config; anything but
// "minio" falls back to the local directory provider.
func NewReportStorage(cfg *config.StorageConfig) (ReportStorage, error) {
	if cfg.Type == "minio" {
		return NewMinioReportStorage(cfg)
	}
	return &LocalReportStorage{Config: cfg}, nil
}

// LocalReportStorage writes reports under a local directory.
type LocalReportStorage struct {
	Config *config.StorageConfig
}

func (p *LocalReportStorage) Upload(ctx context.Context, filename string, data []byte, contentType string) (string, error) {
	dst := filepath.Join(p.Config.LocalPath, filename)
	dir := filepath.Dir(dst)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return "", err
	}
	return dst, nil
}

// MinioReportStorage uploads reports to a MinIO bucket.
type MinioReportStorage struct {
	Config *config.StorageConfig
	Client *minio.Client
}

func NewMinioReportStorage(cfg *config.StorageConfig) (*MinioReportStorage, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: false,
	})
	if err != nil {
		return nil, err
	}
	return &MinioReportStorage{Config: cfg, Client: client}, nil
}

func (p *MinioReportStorage) Upload(ctx context.Context, filename string, data []byte, contentType string) (string, error) {
	_, err := p.Client.PutObject(ctx, p.Config.MinioBucket, filename,
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType: contentType,
		})
	if err != nil {
		return "", err
	}
	return p.Config.MinioBucket + "/" + filename, nil
}
