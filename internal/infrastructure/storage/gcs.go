package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
)

type GCSStore struct {
	cl     *gcs.Client
	bucket string
}

var _ PhotoStore = (*GCSStore)(nil)

func NewGCSStore(ctx context.Context, bucket string) (*GCSStore, error) {
	cl, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage: create client: %w", err)
	}
	return &GCSStore{cl: cl, bucket: bucket}, nil
}

func (s *GCSStore) publicURL(path string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, path)
}

func (s *GCSStore) Put(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	w := s.cl.Bucket(s.bucket).Object(path).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("storage: write %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("storage: close %s: %w", path, err)
	}
	return s.publicURL(path), nil
}

// Copy duplicates an object server-side. Journal links copy the bath
// photo rather than share it, so removing the link can delete the copy
// without touching the bath's own image.
func (s *GCSStore) Copy(ctx context.Context, srcPath, dstPath string) (string, error) {
	src := s.cl.Bucket(s.bucket).Object(srcPath)
	dst := s.cl.Bucket(s.bucket).Object(dstPath)
	if _, err := dst.CopierFrom(src).Run(ctx); err != nil {
		return "", fmt.Errorf("storage: copy %s -> %s: %w", srcPath, dstPath, err)
	}
	return s.publicURL(dstPath), nil
}

func (s *GCSStore) Delete(ctx context.Context, path string) error {
	if err := s.cl.Bucket(s.bucket).Object(path).Delete(ctx); err != nil {
		return fmt.Errorf("storage: delete %s: %w", path, err)
	}
	return nil
}
