package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"navillera/models"
	"navillera/repository"
)

// StockController handles charm stock tracking.
type StockController struct {
	stock repository.StockRepositoryInterface
}

// NewStockController creates a new StockController.
func NewStockController(stock repository.StockRepositoryInterface) *StockController {
	return &StockController{stock: stock}
}

// Handle dispatches GET and POST /api/stock.
func (c *StockController) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		c.get(w, r)
	case http.MethodPost:
		c.update(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (c *StockController) get(w http.ResponseWriter, r *http.Request) {
	stock, err := c.stock.GetAll(r.Context())
	if err != nil {
		log.Printf("❌ Stock read failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to read stock")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"stock":   stock,
	})
}

func (c *StockController) update(w http.ResponseWriter, r *http.Request) {
	var req models.StockUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CharmName == "" || req.Quantity == nil {
		writeError(w, http.StatusBadRequest, "charmName and quantity are required")
		return
	}

	quantity, err := c.stock.Set(r.Context(), req.CharmName, *req.Quantity)
	if err != nil {
		log.Printf("❌ Stock update failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to update stock")
		return
	}

	log.Printf("💾 Stock updated: %s -> %d", req.CharmName, quantity)
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"charmName": req.CharmName,
		"quantity":  quantity,
		"message":   fmt.Sprintf("Stock for %s set to %d", req.CharmName, quantity),
	})
}
