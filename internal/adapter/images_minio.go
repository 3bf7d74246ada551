package adapter

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/MKhiriev/go-search-keeper/internal/config"
	"github.com/MKhiriev/go-search-keeper/internal/logger"
)

// objectGetter is the part of *minio.Client used for images.
type objectGetter interface {
	FGetObject(ctx context.Context, bucketName, objectName, filePath string, opts minio.GetObjectOptions) error
}

// minioImageSync downloads images from an S3-compatible bucket where each
// object is named by its image id.
type minioImageSync struct {
	client objectGetter
	bucket string
	dir    string
	logger *logger.Logger
}

// NewMinioImageSync constructs an [ImageSync] backed by a MinIO bucket.
func NewMinioImageSync(cfg config.Minio, dir string, logger *logger.Logger) (ImageSync, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseTLS,
	})
	if err != nil {
		logger.Err(err).Str("func", "NewMinioImageSync").Msg("minio client error")
		return nil, fmt.Errorf("minio client: %w", err)
	}

	return newMinioImageSync(client, cfg.Bucket, dir, logger), nil
}

func newMinioImageSync(client objectGetter, bucket, dir string, logger *logger.Logger) *minioImageSync {
	return &minioImageSync{
		client: client,
		bucket: bucket,
		dir:    dir,
		logger: logger,
	}
}

// Sync downloads every updated object and removes every deleted image.
func (m *minioImageSync) Sync(ctx context.Context, updated, deleted []string) error {
	log := logger.FromContext(ctx)

	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return fmt.Errorf("create images dir: %w", err)
	}

	var errs []error
	for _, id := range updated {
		path, err := imagePath(m.dir, id)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if err = m.client.FGetObject(ctx, m.bucket, id, path, minio.GetObjectOptions{}); err != nil {
			log.Err(err).
				Str("func", "minioImageSync.Sync").
				Str("bucket", m.bucket).
				Str("image_id", id).
				Msg("failed to download image object")
			errs = append(errs, fmt.Errorf("%w: %s: %w", ErrImageFetch, id, err))
		}
	}

	if err := removeImages(ctx, m.dir, deleted); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
