// Package storage builds clients for external document storage.
package storage

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// NewDriveService authenticates with a service account key file. The target folder
// must be shared with the service account (Editor access).
func NewDriveService(ctx context.Context, keyFile string) (*drive.Service, error) {
	credJSON, err := os.ReadFile(keyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file %s: %w", keyFile, err)
	}
	return NewDriveServiceFromJSON(ctx, credJSON)
}

func NewDriveServiceFromJSON(ctx context.Context, credJSON []byte) (*drive.Service, error) {
	config, err := google.JWTConfigFromJSON(credJSON, drive.DriveFileScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}
	srv, err := drive.NewService(ctx, option.WithHTTPClient(config.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return srv, nil
}
