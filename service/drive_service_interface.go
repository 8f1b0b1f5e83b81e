package service

// DriveServiceInterface defines the contract for Google Drive operations.
type DriveServiceInterface interface {
	ListImages(folderID string) ([]DriveImage, error)
	DownloadImage(fileID string) ([]byte, error)
}
