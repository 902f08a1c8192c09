package service

import "context"

// DriveServiceInterface defines the contract for Google Drive operations
type DriveServiceInterface interface {
	FindFileID(ctx context.Context, folderID, name string) (string, error)
	DownloadFile(ctx context.Context, fileID string) ([]byte, error)
}

// Ensure DriveService implements DriveServiceInterface
var _ DriveServiceInterface = (*DriveService)(nil)
