package blobmock

import (
	"context"
	"sync"

	"bursary-portal/internal/domain/document"
)

var _ document.Store = (*Store)(nil)

// Store is a function-backed document.Store. With no functions set it keeps blobs
// in memory and returns "mem://<key>" references.
type Store struct {
	PutFn    func(ctx context.Context, key string, f document.File) (string, error)
	DeleteFn func(ctx context.Context, ref string) error

	mu      sync.Mutex
	Blobs   map[string]document.File
	Deleted []string
}

func (s *Store) Put(ctx context.Context, key string, f document.File) (string, error) {
	if s.PutFn != nil {
		return s.PutFn(ctx, key, f)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Blobs == nil {
		s.Blobs = map[string]document.File{}
	}
	ref := "mem://" + key
	s.Blobs[ref] = f
	return ref, nil
}

func (s *Store) Delete(ctx context.Context, ref string) error {
	s.mu.Lock()
	s.Deleted = append(s.Deleted, ref)
	delete(s.Blobs, ref)
	s.mu.Unlock()
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, ref)
	}
	return nil
}
