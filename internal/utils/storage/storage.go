package storage

import (
	"DishAndMovie/internal/utils"
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

const (
	DriverLocal = "local"
	DriverS3    = "s3"

	// FolderMovies is the subfolder used for movie posters.
	FolderMovies = "movies"
)

type FileStorage interface {
	// Save stores the file under uploads/<subFolder>/ with a generated unique
	// name and returns its locator. A nil or empty file yields "".
	Save(ctx context.Context, file *multipart.FileHeader, subFolder string) (string, error)
	// Delete removes the file behind a locator returned by Save. Failures
	// are logged and never returned.
	Delete(ctx context.Context, locator string)
}

// New picks the backend named by STORAGE_DRIVER.
func New(ctx context.Context, cfg utils.Config) (FileStorage, error) {
	switch cfg.StorageDriver {
	case "", DriverLocal:
		return NewLocalStorage(cfg.StoragePublicRoot), nil
	case DriverS3:
		return NewS3Storage(ctx, S3Options{
			Bucket:    cfg.AWSS3Bucket,
			Region:    cfg.AWSS3Region,
			AccessKey: cfg.AWSAccessKey,
			SecretKey: cfg.AWSSecretKey,
			Endpoint:  cfg.AWSS3Endpoint,
		})
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.StorageDriver)
	}
}

func uniqueName(filename string) string {
	return uuid.NewString() + "_" + filepath.Base(filename)
}

func objectKey(subFolder, name string) string {
	return path.Join("uploads", subFolder, name)
}

func isEmpty(file *multipart.FileHeader) bool {
	return file == nil || file.Size == 0 || file.Filename == ""
}
