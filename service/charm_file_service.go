package service

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"navillera/utils"
)

// CharmFileService manages the charm image files on disk: upload, rename,
// delete, and safe path resolution for serving. Filename safety is enforced
// here (no path separators, allow-listed extensions, restrictive character
// allow-list) so the charms directory can never be escaped.
// Implements CharmFileServiceInterface.
type CharmFileService struct {
	charmsDir string
	optimizer *ImageOptimizer
}

// NewCharmFileService creates a CharmFileService over the charms directory.
// The optimizer may be nil; thumbnails are then skipped.
func NewCharmFileService(charmsDir string, optimizer *ImageOptimizer) *CharmFileService {
	return &CharmFileService{charmsDir: charmsDir, optimizer: optimizer}
}

// Ensure CharmFileService implements CharmFileServiceInterface
var _ CharmFileServiceInterface = (*CharmFileService)(nil)

// resolve joins a validated filename onto the charms directory and re-checks
// the result stays inside it.
func (s *CharmFileService) resolve(filename string) (string, error) {
	dest := filepath.Join(s.charmsDir, filename)
	if !strings.HasPrefix(dest, filepath.Clean(s.charmsDir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("%w: invalid path", ErrValidation)
	}
	return dest, nil
}

// Path returns the on-disk path for an existing charm image.
func (s *CharmFileService) Path(filename string) (string, error) {
	if !utils.SafeRenameFilename(filename) {
		return "", fmt.Errorf("%w: invalid filename", ErrValidation)
	}
	dest, err := s.resolve(filename)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(dest); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, filename)
		}
		return "", fmt.Errorf("failed to stat %s: %w", filename, err)
	}
	return dest, nil
}

// Upload writes an uploaded image under the given filename. An existing file
// is only replaced when overwrite is set. A thumbnail cache entry is built
// best-effort; cache failures are logged, not surfaced.
func (s *CharmFileService) Upload(filename string, data []byte, overwrite bool) error {
	if !utils.SafeImageFilename(filename) {
		return fmt.Errorf("%w: invalid filename", ErrValidation)
	}
	return s.save(filename, data, overwrite)
}

// Save writes an image under the lenient allow-list that also accepts
// parenthesized index suffixes. Used by the Drive import, which must accept
// the letter/number charm names; the upload endpoint keeps the strict rule.
func (s *CharmFileService) Save(filename string, data []byte, overwrite bool) error {
	if !utils.SafeRenameFilename(filename) {
		return fmt.Errorf("%w: invalid filename", ErrValidation)
	}
	return s.save(filename, data, overwrite)
}

func (s *CharmFileService) save(filename string, data []byte, overwrite bool) error {
	dest, err := s.resolve(filename)
	if err != nil {
		return err
	}

	if _, err := os.Stat(dest); err == nil && !overwrite {
		return fmt.Errorf("%w: %s", ErrConflict, filename)
	}

	if err := os.MkdirAll(s.charmsDir, 0755); err != nil {
		return fmt.Errorf("failed to create charms directory: %w", err)
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return fmt.Errorf("failed to write charm file: %w", err)
	}
	log.Printf("✅ Charm uploaded: %s (%d bytes)", filename, len(data))

	if s.optimizer != nil {
		if err := s.optimizer.WarmCache(filename, data); err != nil {
			log.Printf("warning: failed to build thumbnail cache for %s: %v", filename, err)
		}
	}
	return nil
}

// Rename renames a charm image. The target is only replaced when overwrite
// is set. Parenthesized index suffixes are allowed here, matching the
// letter/number charm naming.
func (s *CharmFileService) Rename(oldName, newName string, overwrite bool) error {
	if !utils.SafeRenameFilename(oldName) || !utils.SafeRenameFilename(newName) {
		return fmt.Errorf("%w: invalid filename", ErrValidation)
	}
	oldPath, err := s.resolve(oldName)
	if err != nil {
		return err
	}
	newPath, err := s.resolve(newName)
	if err != nil {
		return err
	}

	if _, err := os.Stat(oldPath); err != nil {
		return fmt.Errorf("%w: source file %s", ErrNotFound, oldName)
	}
	if _, err := os.Stat(newPath); err == nil {
		if !overwrite {
			return fmt.Errorf("%w: target filename %s", ErrConflict, newName)
		}
		if err := os.Remove(newPath); err != nil {
			return fmt.Errorf("failed to remove existing target: %w", err)
		}
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("failed to rename charm file: %w", err)
	}
	log.Printf("✅ Charm renamed: %s -> %s", oldName, newName)

	if s.optimizer != nil {
		s.optimizer.Invalidate(oldName)
		s.optimizer.Invalidate(newName)
	}
	return nil
}

// Delete removes a charm image.
func (s *CharmFileService) Delete(filename string) error {
	if !utils.SafeImageFilename(filename) {
		return fmt.Errorf("%w: invalid filename", ErrValidation)
	}
	target, err := s.resolve(filename)
	if err != nil {
		return err
	}

	if _, err := os.Stat(target); err != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, filename)
	}
	if err := os.Remove(target); err != nil {
		return fmt.Errorf("failed to delete charm file: %w", err)
	}
	log.Printf("✅ Charm deleted: %s", filename)

	if s.optimizer != nil {
		s.optimizer.Invalidate(filename)
	}
	return nil
}

// Exists reports whether a charm image is present.
func (s *CharmFileService) Exists(filename string) bool {
	_, err := s.Path(filename)
	return err == nil
}
