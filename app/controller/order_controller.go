package controller

import (
	"encoding/json"
	"log"
	"net/http"

	"navillera/models"
	"navillera/repository"
	"navillera/service"
)

// OrderController handles stateless order submission and the admin listing.
type OrderController struct {
	orders service.OrderServiceInterface
	reader repository.OrderReaderInterface
}

// NewOrderController creates a new OrderController. reader may be nil when no
// spreadsheet is configured; the listing endpoint reports 503 in that case.
func NewOrderController(orders service.OrderServiceInterface, reader repository.OrderReaderInterface) *OrderController {
	return &OrderController{orders: orders, reader: reader}
}

// Submit handles POST /api/orders
// The body carries the customer fields and a flattened bracelet snapshot;
// every price is recomputed server-side from the charm filenames.
func (c *OrderController) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var sub models.OrderSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := service.FromSubmission(sub)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if err := c.orders.Submit(r.Context(), order); err != nil {
		log.Printf("❌ Order submission failed for %s: %v", order.CustomerName, err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"order":   order,
	})
}

// List handles GET /admin/orders
func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if c.reader == nil {
		writeError(w, http.StatusServiceUnavailable, "Order spreadsheet not configured")
		return
	}

	records, err := c.reader.List(r.Context())
	if err != nil {
		log.Printf("❌ Failed to list orders: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to list orders")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"orders":  records,
	})
}
