package storage

import "context"

// PhotoStore is the object-store boundary for bath and journal photos.
// Paths are bucket-relative; Put and Copy return the public URL of the
// written object.
type PhotoStore interface {
	Put(ctx context.Context, path string, data []byte, contentType string) (string, error)
	Copy(ctx context.Context, srcPath, dstPath string) (string, error)
	Delete(ctx context.Context, path string) error
}
