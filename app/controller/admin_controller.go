package controller

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"navillera/models"
)

// AdminController handles the admin-mode password gate. The gate only toggles
// admin affordances in the storefront; it is not an authorization boundary.
type AdminController struct {
	password string
}

// NewAdminController creates a new AdminController. An empty password
// disables the gate entirely.
func NewAdminController(password string) *AdminController {
	return &AdminController{password: password}
}

// Verify handles POST /api/admin/verify
func (c *AdminController) Verify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if c.password == "" {
		writeError(w, http.StatusServiceUnavailable, "Admin mode not configured")
		return
	}

	var req models.AdminVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ok := subtle.ConstantTimeCompare([]byte(req.Password), []byte(c.password)) == 1
	writeJSON(w, http.StatusOK, map[string]any{"valid": ok})
}
