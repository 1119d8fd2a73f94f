package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/johnquangdev/meeting-notes/pkg/config"
)

// Archiver keeps a copy of processed transcripts in object storage so the
// local transcript directory can be cleaned without losing history.
type Archiver struct {
	client *minio.Client
	bucket string
}

// NewArchiver connects to the configured object store and makes sure the
// archive bucket exists.
func NewArchiver(ctx context.Context, cfg *config.StorageConfig) (*Archiver, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	a := &Archiver{client: client, bucket: cfg.BucketName}
	if err := a.ensureBucket(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Archiver) ensureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// ArchiveTranscript uploads a processed transcript file under a dated object
// name and returns that name.
func (a *Archiver) ArchiveTranscript(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open transcript for archive: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat transcript: %w", err)
	}

	objectName := fmt.Sprintf("transcripts/%s-%s", time.Now().Format("2006-01-02"), filepath.Base(path))
	_, err = a.client.PutObject(ctx, a.bucket, objectName, f, info.Size(), minio.PutObjectOptions{
		ContentType: "text/plain",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload transcript: %w", err)
	}
	return objectName, nil
}

// ListArchived lists archived transcript object names.
func (a *Archiver) ListArchived(ctx context.Context) ([]string, error) {
	var names []string
	objects := a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{
		Prefix:    "transcripts/",
		Recursive: true,
	})
	for object := range objects {
		if object.Err != nil {
			return nil, fmt.Errorf("error listing archived transcripts: %w", object.Err)
		}
		names = append(names, object.Key)
	}
	return names, nil
}
