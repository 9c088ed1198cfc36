// Package storage provides S3-compatible object storage for cover images.
package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"devlog/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MediaStore uploads post cover images to an S3-compatible bucket and hands
// back the public URL persisted on the post row.
type MediaStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewMediaStore connects to the configured object storage endpoint.
// Media storage is optional: an empty endpoint returns (nil, nil) and the
// upload feature stays disabled.
func NewMediaStore(cfg *config.Config) (*MediaStore, error) {
	if cfg.MediaEndpoint == "" {
		return nil, nil
	}

	client, err := minio.New(cfg.MediaEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MediaAccessKey, cfg.MediaSecretKey, ""),
		Secure: cfg.MediaUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize media storage: %w", err)
	}

	publicURL := cfg.MediaPublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.MediaUseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.MediaEndpoint, cfg.MediaBucket)
	}

	return &MediaStore{
		client:    client,
		bucket:    cfg.MediaBucket,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}, nil
}

// UploadCover stores a cover image under a unique object name derived from
// the post slug and returns its public URL.
func (s *MediaStore) UploadCover(ctx context.Context, slug, fileName string, file io.Reader, size int64) (string, error) {
	fileExt := strings.ToLower(filepath.Ext(fileName))
	if fileExt == "" {
		fileExt = ".jpg"
	}

	contentType := mime.TypeByExtension(fileExt)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectName := fmt.Sprintf("covers/%s/%s%s", slug, uuid.New().String(), fileExt)

	_, err := s.client.PutObject(ctx, s.bucket, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"post-slug":         slug,
				"uploaded-at":       time.Now().Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", fmt.Errorf("failed to upload cover image: %w", err)
	}

	return fmt.Sprintf("%s/%s", s.publicURL, objectName), nil
}
