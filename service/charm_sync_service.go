package service

import (
	"errors"
	"fmt"
	"log"

	"navillera/utils"
)

// CharmSyncService imports charm images from the hosted Google Drive folder
// into the local charms directory. Existing files are never overwritten, so
// a re-run only picks up new uploads.
type CharmSyncService struct {
	driveService DriveServiceInterface
	files        CharmFileServiceInterface
}

// NewCharmSyncService creates a new CharmSyncService.
func NewCharmSyncService(driveService DriveServiceInterface, files CharmFileServiceInterface) *CharmSyncService {
	return &CharmSyncService{
		driveService: driveService,
		files:        files,
	}
}

// ImportFromDrive pulls every image in the Drive folder that is missing
// locally. Returns imported count, skipped count, total images seen, and any
// fatal error. Per-file failures are logged and counted as skipped.
func (s *CharmSyncService) ImportFromDrive(folderID string) (imported, skipped, total int, err error) {
	log.Printf("🔄 Starting charm import from Drive folder: %s", folderID)

	images, err := s.driveService.ListImages(folderID)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: failed to list drive images: %v", ErrCollaborator, err)
	}
	total = len(images)
	log.Printf("📦 Processing %d hosted charm images", total)

	for _, img := range images {
		if !utils.SafeRenameFilename(img.Name) {
			log.Printf("⏭️  Skipping %s (unsafe filename)", img.Name)
			skipped++
			continue
		}
		if s.files.Exists(img.Name) {
			skipped++
			continue
		}

		data, err := s.driveService.DownloadImage(img.ID)
		if err != nil {
			log.Printf("❌ Error downloading %s: %v", img.Name, err)
			skipped++
			continue
		}
		if err := s.files.Save(img.Name, data, false); err != nil {
			if errors.Is(err, ErrConflict) {
				skipped++
				continue
			}
			log.Printf("❌ Error saving %s: %v", img.Name, err)
			skipped++
			continue
		}
		log.Printf("🆕 Imported charm image: %s", img.Name)
		imported++
	}

	log.Printf("🎉 Charm import completed: %d imported, %d skipped, %d total", imported, skipped, total)
	return imported, skipped, total, nil
}
