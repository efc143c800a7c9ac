package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorage загружает изображения в Cloudinary.
// public_id = путь без расширения, формат Cloudinary определяет сам.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStorage(cfg Config) (*CloudinaryStorage, error) {
	var (
		cld *cloudinary.Cloudinary
		err error
	)
	if cfg.CloudinaryURL != "" {
		cld, err = cloudinary.NewFromURL(cfg.CloudinaryURL)
	} else {
		// читает CLOUDINARY_URL из окружения
		cld, err = cloudinary.New()
	}
	if err != nil {
		return nil, fmt.Errorf("cloudinary init error: %w", err)
	}
	return &CloudinaryStorage{cld: cld}, nil
}

func publicID(p string) string {
	p = strings.TrimLeft(p, "/")
	return strings.TrimSuffix(p, path.Ext(p))
}

func (s *CloudinaryStorage) Save(ctx context.Context, p string, reader io.Reader, contentType string) error {
	res, err := s.cld.Upload.Upload(ctx, reader, uploader.UploadParams{
		PublicID:     publicID(p),
		ResourceType: "image",
	})
	if err != nil {
		return fmt.Errorf("cloudinary upload failed: %w", err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("cloudinary upload failed: %s", res.Error.Message)
	}
	return nil
}

func (s *CloudinaryStorage) Delete(ctx context.Context, p string) error {
	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID(p)})
	if err != nil {
		return fmt.Errorf("cloudinary destroy failed: %w", err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("cloudinary destroy failed: %s", res.Error.Message)
	}
	return nil
}

func (s *CloudinaryStorage) Exists(ctx context.Context, p string) (bool, error) {
	res, err := s.cld.Admin.Asset(ctx, admin.AssetParams{PublicID: publicID(p)})
	if err != nil {
		return false, fmt.Errorf("cloudinary asset lookup failed: %w", err)
	}
	return res.Error.Message == "", nil
}

func (s *CloudinaryStorage) GetURL(ctx context.Context, p string) (string, error) {
	img, err := s.cld.Image(publicID(p))
	if err != nil {
		return "", fmt.Errorf("cloudinary url build failed: %w", err)
	}
	return img.String()
}
