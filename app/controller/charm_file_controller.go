package controller

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"navillera/models"
	"navillera/service"
)

// maxUploadBytes caps charm image uploads at 10 MB.
const maxUploadBytes = 10 << 20

// CharmFileController handles the charm image management endpoints.
type CharmFileController struct {
	files service.CharmFileServiceInterface
}

// NewCharmFileController creates a new CharmFileController.
func NewCharmFileController(files service.CharmFileServiceInterface) *CharmFileController {
	return &CharmFileController{files: files}
}

// Upload handles POST /api/charm/upload
// Multipart form with a "file" part; optional "filename" and "overwrite"
// fields. The stored name defaults to the uploaded file's name.
func (c *CharmFileController) Upload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		log.Printf("❌ Upload: failed to parse form: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid upload form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing file")
		return
	}
	defer file.Close()

	filename := r.FormValue("filename")
	if filename == "" {
		filename = header.Filename
	}
	overwrite := r.FormValue("overwrite") == "true"

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("❌ Upload: failed to read file: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to read upload")
		return
	}

	if err := c.files.Upload(filename, data, overwrite); err != nil {
		log.Printf("❌ Upload: %v", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// Rename handles POST /api/charm/rename
func (c *CharmFileController) Rename(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.RenameCharmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.OldName == "" || req.NewName == "" {
		writeError(w, http.StatusBadRequest, "oldName and newName are required")
		return
	}

	if err := c.files.Rename(req.OldName, req.NewName, req.Overwrite); err != nil {
		log.Printf("❌ Rename: %v", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// Delete handles POST /api/charm/delete
func (c *CharmFileController) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.DeleteCharmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Filename == "" {
		writeError(w, http.StatusBadRequest, "filename is required")
		return
	}

	if err := c.files.Delete(req.Filename); err != nil {
		log.Printf("❌ Delete: %v", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
