package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage хранит загруженные изображения (аватары, проекты, сертификаты, чеки оплаты)
type Storage interface {
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
	// GetURL возвращает публичный URL, который сохраняется в БД
	GetURL(ctx context.Context, path string) (string, error)
}

type Config struct {
	Type          string // local, s3, cloudinary
	BasePath      string // local
	BaseURL       string
	Bucket        string
	Region        string
	AccessKey     string
	SecretKey     string
	Endpoint      string // S3-совместимые хранилища (R2, MinIO)
	CloudinaryURL string
}

func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local", "":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	case "cloudinary":
		return NewCloudinaryStorage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
