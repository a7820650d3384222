// Package document describes uploaded files and where they end up.
package document

import (
	"context"
	"errors"
)

var ErrStoreUnavailable = errors.New("document store unavailable")

// File is an upload held in memory until validation passes.
type File struct {
	Filename    string
	ContentType string
	Data        []byte
}

func (f File) Empty() bool { return len(f.Data) == 0 }

// Store persists opaque blobs and hands back a stable reference (URL or key).
type Store interface {
	Put(ctx context.Context, key string, f File) (string, error)
	Delete(ctx context.Context, ref string) error
}
