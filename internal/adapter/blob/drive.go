package blob

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"bursary-portal/internal/domain/document"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
)

const driveRefPrefix = "gdrive:"

var _ document.Store = (*DriveStore)(nil)

// DriveStore keeps documents in one Google Drive folder. References have the form
// "gdrive:<file id>".
type DriveStore struct {
	svc      *drive.Service
	folderID string
}

func NewDriveStore(svc *drive.Service, folderID string) *DriveStore {
	return &DriveStore{svc: svc, folderID: folderID}
}

func (s *DriveStore) Put(ctx context.Context, key string, f document.File) (string, error) {
	meta := &drive.File{
		// Drive names are flat; keep the key so files stay traceable to their application.
		Name:    strings.ReplaceAll(key, "/", "_"),
		Parents: []string{s.folderID},
	}
	ct := f.ContentType
	if ct == "" {
		ct = contentType(path.Ext(f.Filename))
	}
	created, err := s.svc.Files.Create(meta).
		Media(bytes.NewReader(f.Data), googleapi.ContentType(ct)).
		SupportsAllDrives(true). // Required for Shared Drives
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("%w: drive upload %s: %v", document.ErrStoreUnavailable, key, err)
	}
	return driveRefPrefix + created.Id, nil
}

func (s *DriveStore) Delete(ctx context.Context, ref string) error {
	id, ok := strings.CutPrefix(ref, driveRefPrefix)
	if !ok || id == "" {
		return fmt.Errorf("not a drive reference: %q", ref)
	}
	err := s.svc.Files.Delete(id).SupportsAllDrives(true).Context(ctx).Do()
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == 404 {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: drive delete %s: %v", document.ErrStoreUnavailable, id, err)
	}
	return nil
}
