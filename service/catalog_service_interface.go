package service

import "navillera/models"

// CatalogServiceInterface defines the contract for catalog derivation.
type CatalogServiceInterface interface {
	ListFilenames() ([]string, error)
	Derive(filenames []string) []models.CatalogEntry
	Catalog(category models.Category) (*models.CatalogResponse, error)
	EntryByID(id string) (models.CatalogEntry, bool)
	EntryByFilename(filename string) (models.CatalogEntry, bool)
}
