package controller

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"

	"navillera/models"
	"navillera/service"
)

// CatalogController handles catalog listing, charm image serving, and the
// admin catalog export endpoints.
type CatalogController struct {
	catalog   service.CatalogServiceInterface
	files     service.CharmFileServiceInterface
	optimizer *service.ImageOptimizer
	pdf       service.CatalogPDFServiceInterface
	sync      *service.CharmSyncService
	folderID  string
}

// NewCatalogController creates a new CatalogController. pdf, sync and
// folderID are optional; the matching endpoints report unavailability when
// unset.
func NewCatalogController(
	catalog service.CatalogServiceInterface,
	files service.CharmFileServiceInterface,
	optimizer *service.ImageOptimizer,
	pdf service.CatalogPDFServiceInterface,
	sync *service.CharmSyncService,
	folderID string,
) *CatalogController {
	return &CatalogController{
		catalog:   catalog,
		files:     files,
		optimizer: optimizer,
		pdf:       pdf,
		sync:      sync,
		folderID:  folderID,
	}
}

// GetCatalog handles GET /api/catalog?category=
// An empty or unknown category falls back to All.
func (c *CatalogController) GetCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	category := models.CategoryAll
	if raw := r.URL.Query().Get("category"); raw != "" {
		for _, known := range models.Categories() {
			if string(known) == raw {
				category = known
				break
			}
		}
	}

	response, err := c.catalog.Catalog(category)
	if err != nil {
		log.Printf("❌ GetCatalog: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to list catalog")
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// ServeCharm handles GET /charms/{filename}?size=thumb|medium
// Without a size parameter the original file is served; with one, a cached
// JPEG rendition.
func (c *CatalogController) ServeCharm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	raw := strings.TrimPrefix(r.URL.Path, "/charms/")
	filename, err := url.PathUnescape(raw)
	if err != nil || filename == "" {
		writeError(w, http.StatusBadRequest, "Invalid charm filename")
		return
	}

	path, err := c.files.Path(filename)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	size := r.URL.Query().Get("size")
	if size != "thumb" && size != "medium" {
		http.ServeFile(w, r, path)
		return
	}

	source, err := os.ReadFile(path)
	if err != nil {
		log.Printf("❌ ServeCharm: reading %s: %v", filename, err)
		writeError(w, http.StatusInternalServerError, "Failed to read charm image")
		return
	}
	data, err := c.optimizer.Rendition(filename, source, size)
	if err != nil {
		// Fall back to the original when the image cannot be optimized.
		log.Printf("⚠️  ServeCharm: rendition failed for %s: %v", filename, err)
		http.ServeFile(w, r, path)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(data)
}

// RenderCatalog handles GET /admin/catalog/render
// Serves the printable catalog HTML consumed by the PDF exporter.
func (c *CatalogController) RenderCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if c.pdf == nil {
		writeError(w, http.StatusServiceUnavailable, "Catalog export not configured")
		return
	}

	html, err := c.pdf.RenderCatalogHTML()
	if err != nil {
		log.Printf("❌ RenderCatalog: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to render catalog")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// DownloadCatalogPDF handles GET /admin/catalog/pdf
func (c *CatalogController) DownloadCatalogPDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if c.pdf == nil {
		writeError(w, http.StatusServiceUnavailable, "Catalog export not configured")
		return
	}

	log.Println("📄 Generating catalog PDF")
	data, err := c.pdf.GeneratePDF(r.Context())
	if err != nil {
		log.Printf("❌ DownloadCatalogPDF: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate catalog PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="charm-catalog.pdf"`)
	w.Write(data)
}

// SyncCharms handles GET/POST /admin/charms/sync
// Imports missing charm images from the configured Drive folder.
func (c *CatalogController) SyncCharms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if c.sync == nil || c.folderID == "" {
		writeError(w, http.StatusServiceUnavailable, "Drive import not configured")
		return
	}

	imported, skipped, total, err := c.sync.ImportFromDrive(c.folderID)
	if err != nil {
		log.Printf("❌ SyncCharms: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to import charms")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"imported": imported,
		"skipped":  skipped,
		"total":    total,
		"message":  fmt.Sprintf("Imported %d of %d charm images", imported, total),
	})
}
