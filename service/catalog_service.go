package service

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"navillera/models"
	"navillera/pricing"
	"navillera/utils"
)

// CatalogService derives priced, categorized catalog entries from the image
// files in the charms directory. Derivation is pure and deterministic: an
// unchanged filename set always yields identical entries.
// Implements CatalogServiceInterface.
type CatalogService struct {
	charmsDir string
}

// NewCatalogService creates a CatalogService over the given charms directory.
func NewCatalogService(charmsDir string) *CatalogService {
	return &CatalogService{charmsDir: charmsDir}
}

// Ensure CatalogService implements CatalogServiceInterface
var _ CatalogServiceInterface = (*CatalogService)(nil)

// ListFilenames returns the catalog image filenames in the charms directory.
func (s *CatalogService) ListFilenames() ([]string, error) {
	entries, err := os.ReadDir(s.charmsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read charms directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if utils.IsCatalogImage(e.Name()) {
			files = append(files, e.Name())
		}
	}
	return files, nil
}

// Derive builds one catalog entry per filename. IDs are stable per filename.
func (s *CatalogService) Derive(filenames []string) []models.CatalogEntry {
	entries := make([]models.CatalogEntry, 0, len(filenames))
	for _, f := range filenames {
		entries = append(entries, models.CatalogEntry{
			ID:          "catalog-" + f,
			Filename:    f,
			ImageURL:    "/charms/" + f,
			Category:    pricing.CategoryFor(f),
			Price:       pricing.Price(f),
			DisplayName: utils.DisplayName(f),
			SoldOut:     utils.IsSoldOut(f),
		})
	}
	return entries
}

// Catalog lists the catalog filtered by category, with per-category counts.
// The All and A-Z views are sorted gold-first then by derived letter; other
// views keep directory order.
func (s *CatalogService) Catalog(category models.Category) (*models.CatalogResponse, error) {
	files, err := s.ListFilenames()
	if err != nil {
		return nil, err
	}
	all := s.Derive(files)

	counts := map[models.Category]int{models.CategoryAll: len(all)}
	for _, e := range all {
		counts[e.Category]++
	}

	if category == "" {
		category = models.CategoryAll
	}
	items := all
	if category != models.CategoryAll {
		items = make([]models.CatalogEntry, 0, len(all))
		for _, e := range all {
			if e.Category == category {
				items = append(items, e)
			}
		}
	}

	if category == models.CategoryAll || category == models.CategoryLetters {
		items = SortForDisplay(items)
	}

	return &models.CatalogResponse{
		Category: category,
		Items:    items,
		Counts:   counts,
	}, nil
}

// EntryByID resolves a catalog entry ID (as used by the drag layer) to its
// current entry.
func (s *CatalogService) EntryByID(id string) (models.CatalogEntry, bool) {
	files, err := s.ListFilenames()
	if err != nil {
		return models.CatalogEntry{}, false
	}
	for _, e := range s.Derive(files) {
		if e.ID == id {
			return e, true
		}
	}
	return models.CatalogEntry{}, false
}

// EntryByFilename resolves a charm filename to its derived entry.
func (s *CatalogService) EntryByFilename(filename string) (models.CatalogEntry, bool) {
	files, err := s.ListFilenames()
	if err != nil {
		return models.CatalogEntry{}, false
	}
	for _, e := range s.Derive(files) {
		if e.Filename == filename {
			return e, true
		}
	}
	return models.CatalogEntry{}, false
}

// SortForDisplay orders entries for the All and A-Z views: entries whose
// filename contains "gold" first, the rest by derived sort letter. The sort
// is stable, so ties keep input order. Returns a new slice.
func SortForDisplay(entries []models.CatalogEntry) []models.CatalogEntry {
	sorted := make([]models.CatalogEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		a := strings.ToLower(sorted[i].Filename)
		b := strings.ToLower(sorted[j].Filename)
		goldA := strings.Contains(a, "gold")
		goldB := strings.Contains(b, "gold")
		if goldA != goldB {
			return goldA
		}
		return utils.SortLetter(a) < utils.SortLetter(b)
	})
	return sorted
}
