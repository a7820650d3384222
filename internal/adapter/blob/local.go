// Package blob implements document.Store on Google Drive and on the local disk.
package blob

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"bursary-portal/internal/domain/document"
)

var _ document.Store = (*LocalStore)(nil)

// LocalStore writes documents under a media root. References are slash-separated
// paths relative to that root, prefixed with "media/".
type LocalStore struct {
	root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("create media root: %w", err)
	}
	return &LocalStore{root: root}, nil
}

func (s *LocalStore) resolve(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if clean == "." || filepath.IsAbs(clean) || strings.HasPrefix(clean, "..") {
		return "", fmt.Errorf("invalid document key %q", key)
	}
	return filepath.Join(s.root, clean), nil
}

func (s *LocalStore) Put(ctx context.Context, key string, f document.File) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	dst, err := s.resolve(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return "", fmt.Errorf("%w: %v", document.ErrStoreUnavailable, err)
	}
	if err := os.WriteFile(dst, f.Data, 0o640); err != nil {
		return "", fmt.Errorf("%w: %v", document.ErrStoreUnavailable, err)
	}
	return "media/" + filepath.ToSlash(filepath.Clean(filepath.FromSlash(key))), nil
}

func (s *LocalStore) Delete(ctx context.Context, ref string) error {
	key, ok := strings.CutPrefix(ref, "media/")
	if !ok {
		return fmt.Errorf("not a media reference: %q", ref)
	}
	dst, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: %v", document.ErrStoreUnavailable, err)
	}
	return nil
}

func contentType(ext string) string {
	if ct := mime.TypeByExtension(strings.ToLower(ext)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
