package service

import "context"

// CatalogPDFServiceInterface defines the printable catalog generator.
type CatalogPDFServiceInterface interface {
	RenderCatalogHTML() (string, error)
	GeneratePDF(ctx context.Context) ([]byte, error)
}

var _ CatalogPDFServiceInterface = (*CatalogPDFService)(nil)
