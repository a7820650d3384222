package blob

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"bursary-portal/internal/domain/document"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_PutAndDelete(t *testing.T) {
	root := filepath.Join(t.TempDir(), "media")
	s, err := NewLocalStore(root)
	require.NoError(t, err)
	ctx := context.Background()

	ref, err := s.Put(ctx, "applications/abc/document.pdf", document.File{Data: []byte("fees")})
	require.NoError(t, err)
	assert.Equal(t, "media/applications/abc/document.pdf", ref)

	b, err := os.ReadFile(filepath.Join(root, "applications", "abc", "document.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "fees", string(b))

	require.NoError(t, s.Delete(ctx, ref))
	_, err = os.Stat(filepath.Join(root, "applications", "abc", "document.pdf"))
	assert.True(t, os.IsNotExist(err))

	// deleting twice is fine
	require.NoError(t, s.Delete(ctx, ref))
}

func TestLocalStore_RejectsEscapingKeys(t *testing.T) {
	s, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	for _, key := range []string{"../outside.pdf", "/etc/passwd", "", "a/../../b"} {
		_, err := s.Put(context.Background(), key, document.File{Data: []byte("x")})
		assert.Error(t, err, "key %q", key)
	}
	assert.Error(t, s.Delete(context.Background(), "gdrive:abc"))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/pdf", contentType(".PDF"))
	assert.Equal(t, "application/octet-stream", contentType(".weird"))
}
