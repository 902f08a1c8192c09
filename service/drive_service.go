package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"artfulito-store/repository"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// DriveService handles Google Drive API operations
type DriveService struct {
	client *drive.Service
}

// NewDriveService creates a new DriveService instance
// credentialsPath should be the path to the Service Account JSON file
func NewDriveService(ctx context.Context, credentialsPath string) (*DriveService, error) {
	driveService, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveService{
		client: driveService,
	}, nil
}

// Ensure DriveService implements DriveFileDownloader
var _ repository.DriveFileDownloader = (*DriveService)(nil)

// FindFileID returns the ID of the file with the given name in a Drive folder
func (ds *DriveService) FindFileID(ctx context.Context, folderID, name string) (string, error) {
	query := fileInFolderQuery(folderID, name)

	r, err := ds.client.Files.List().
		Q(query).
		Fields("files(id, name, modifiedTime)").
		OrderBy("modifiedTime desc").
		PageSize(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to list files: %w", err)
	}

	if len(r.Files) == 0 {
		return "", fmt.Errorf("file %s not found in folder %s", name, folderID)
	}

	log.Printf("✓ Found %s in Drive folder %s (file id: %s)", name, folderID, r.Files[0].Id)
	return r.Files[0].Id, nil
}

// DownloadFile downloads the content of a Drive file
func (ds *DriveService) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := ds.client.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("drive download returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", fileID, err)
	}

	return data, nil
}

var driveQueryEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// fileInFolderQuery builds the Drive search for a non-trashed file by name in a folder
func fileInFolderQuery(folderID, name string) string {
	return fmt.Sprintf("'%s' in parents and name = '%s' and trashed=false",
		driveQueryEscaper.Replace(folderID), driveQueryEscaper.Replace(name))
}
