package controller

import (
	"encoding/json"
	"log"
	"net/http"

	"navillera/models"
	"navillera/repository"
)

// BaseColorController handles base-color availability.
type BaseColorController struct {
	colors repository.BaseColorRepositoryInterface
}

// NewBaseColorController creates a new BaseColorController.
func NewBaseColorController(colors repository.BaseColorRepositoryInterface) *BaseColorController {
	return &BaseColorController{colors: colors}
}

// Handle dispatches GET and POST /api/base-colors.
func (c *BaseColorController) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		c.get(w, r)
	case http.MethodPost:
		c.update(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// get returns the bare color -> available mapping. A failed read degrades to
// every color available rather than an error, so the storefront never loses
// its colors.
func (c *BaseColorController) get(w http.ResponseWriter, _ *http.Request) {
	colors, err := c.colors.Read()
	if err != nil {
		log.Printf("⚠️  Base colors read failed, defaulting to all available: %v", err)
		colors = make(map[models.BaseColor]bool)
		for _, color := range models.BaseColors() {
			colors[color] = true
		}
	}
	writeJSON(w, http.StatusOK, colors)
}

// update toggles one color's availability.
func (c *BaseColorController) update(w http.ResponseWriter, r *http.Request) {
	var req models.BaseColorUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid data")
		return
	}
	if !req.Color.Valid() || req.SoldOut == nil {
		writeError(w, http.StatusBadRequest, "Invalid data")
		return
	}

	if err := c.colors.SetSoldOut(req.Color, *req.SoldOut); err != nil {
		log.Printf("❌ Base color update failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to update base color")
		return
	}

	log.Printf("💾 Base color %s soldOut=%v", req.Color, *req.SoldOut)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
