package storemock

import (
	"context"
	"sync"

	"petshop-backend/internal/infrastructure/storage"
)

var _ storage.PhotoStore = (*Store)(nil)

// Store is an in-memory PhotoStore. Default behavior keeps objects in
// a map; override the Fn fields to inject failures.
type Store struct {
	mu      sync.Mutex
	objects map[string][]byte

	PutFn    func(ctx context.Context, path string, data []byte, contentType string) (string, error)
	CopyFn   func(ctx context.Context, srcPath, dstPath string) (string, error)
	DeleteFn func(ctx context.Context, path string) error
}

func New() *Store { return &Store{objects: make(map[string][]byte)} }

func (s *Store) Has(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[path]
	return ok
}

func (s *Store) Put(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	if s.PutFn != nil {
		return s.PutFn(ctx, path, data, contentType)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[path] = data
	return "https://cdn.test/" + path, nil
}

func (s *Store) Copy(ctx context.Context, srcPath, dstPath string) (string, error) {
	if s.CopyFn != nil {
		return s.CopyFn(ctx, srcPath, dstPath)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[dstPath] = s.objects[srcPath]
	return "https://cdn.test/" + dstPath, nil
}

func (s *Store) Delete(ctx context.Context, path string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, path)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, path)
	return nil
}
