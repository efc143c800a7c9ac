package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"vinixport_backend/internal/imageprocessor"
	"vinixport_backend/internal/logger"
	"vinixport_backend/internal/storage"
	"vinixport_backend/internal/validator"
	"vinixport_backend/pkg/apperrors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// Категории загружаемых изображений, они же префиксы ключей в хранилище
const (
	MediaAvatar       = "avatars"
	MediaProject      = "projects"
	MediaCertificate  = "certificates"
	MediaPaymentProof = "payment-proofs"
)

type MediaConfig struct {
	MaxSize      int64
	AllowedTypes []string
}

// MediaService превращает ссылку на изображение из запроса в URL для хранения в БД
type MediaService interface {
	// ResolveImage: "" -> "", http(s) URL -> как есть, data URL -> загрузка в хранилище.
	ResolveImage(ctx context.Context, ownerID, kind, ref string) (string, error)
	// DiscardImage удаляет файл, загруженный ResolveImage, когда запись в БД не удалась.
	// URL вне ключей владельца (внешние ссылки, чужие файлы) не трогает.
	DiscardImage(ctx context.Context, ownerID, kind, url string)
}

type mediaService struct {
	storage   storage.Storage
	processor *imageprocessor.Processor
	config    MediaConfig
}

func NewMediaService(store storage.Storage, processor *imageprocessor.Processor, config MediaConfig) MediaService {
	if config.MaxSize <= 0 {
		config.MaxSize = 10 * 1024 * 1024
	}
	if len(config.AllowedTypes) == 0 {
		config.AllowedTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
	}
	return &mediaService{
		storage:   store,
		processor: processor,
		config:    config,
	}
}

func (s *mediaService) ResolveImage(ctx context.Context, ownerID, kind, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	switch {
	case ref == "":
		return "", nil
	case validator.IsHTTPURL(ref):
		return ref, nil
	case validator.IsDataURL(ref):
		return s.storeDataURL(ctx, ownerID, kind, ref)
	default:
		return "", apperrors.ErrInvalidImageRef
	}
}

func (s *mediaService) storeDataURL(ctx context.Context, ownerID, kind, ref string) (string, error) {
	data, err := decodeDataURL(ref, s.config.MaxSize)
	if err != nil {
		return "", err
	}

	// заявленный в data URL тип не проверяем, смотрим на сами байты
	mt := mimetype.Detect(data)
	if !s.isAllowed(mt) {
		return "", apperrors.ErrInvalidFileType.WithDetails(map[string]string{"detected": mt.String()})
	}

	img, err := s.processor.Process(data, mt.String(), mt.Extension())
	if err != nil {
		if errors.Is(err, imageprocessor.ErrDecode) {
			return "", apperrors.ErrInvalidFileType.WithError(err)
		}
		return "", apperrors.InternalError(err)
	}

	key := fmt.Sprintf("%s/%s/%s%s", kind, ownerID, uuid.NewString(), img.Ext)
	if err := s.storage.Save(ctx, key, bytes.NewReader(img.Data), img.ContentType); err != nil {
		logger.CtxWithError(ctx, "failed to store image", err, "key", key)
		return "", apperrors.Wrap(err, apperrors.CodeExternalServiceError, "media", "Failed to store image", http.StatusBadGateway)
	}

	url, err := s.storage.GetURL(ctx, key)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	logger.CtxDebug(ctx, "image stored", "key", key, "bytes", len(img.Data), "resized", img.Resized)
	return url, nil
}

func (s *mediaService) DiscardImage(ctx context.Context, ownerID, kind, url string) {
	prefix := kind + "/" + ownerID + "/"
	idx := strings.Index(url, prefix)
	if ownerID == "" || idx < 0 {
		return
	}
	key := url[idx:]
	if q := strings.IndexAny(key, "?#"); q >= 0 {
		key = key[:q]
	}

	if err := s.storage.Delete(context.WithoutCancel(ctx), key); err != nil {
		logger.CtxWithError(ctx, "failed to discard orphaned image", err, "key", key)
		return
	}
	logger.CtxInfo(ctx, "orphaned image discarded", "key", key)
}

func (s *mediaService) isAllowed(mt *mimetype.MIME) bool {
	for _, allowed := range s.config.AllowedTypes {
		if mt.Is(allowed) {
			return true
		}
	}
	return false
}

// decodeDataURL разбирает data:<mime>;base64,<payload> с учетом лимита размера
func decodeDataURL(ref string, maxSize int64) ([]byte, error) {
	idx := strings.Index(ref, ";base64,")
	if idx < 0 {
		return nil, apperrors.ErrInvalidImageRef
	}
	payload := ref[idx+len(";base64,"):]

	// base64 раздувает данные на 4/3, отсекаем заведомо большие до декодирования
	if int64(base64.StdEncoding.DecodedLen(len(payload))) > maxSize+2 {
		return nil, apperrors.ErrFileTooLarge
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		if err != nil {
			return nil, apperrors.ErrInvalidImageRef.WithError(err)
		}
	}
	if int64(len(data)) > maxSize {
		return nil, apperrors.ErrFileTooLarge
	}
	if len(data) == 0 {
		return nil, apperrors.ErrInvalidImageRef
	}
	return data, nil
}
