package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"navillera/bracelet"
	"navillera/models"
	"navillera/service"
)

// BuilderController handles the bracelet builder session endpoints.
type BuilderController struct {
	builder service.BuilderServiceInterface
	catalog service.CatalogServiceInterface
	orders  service.OrderServiceInterface
}

// NewBuilderController creates a new BuilderController.
func NewBuilderController(
	builder service.BuilderServiceInterface,
	catalog service.CatalogServiceInterface,
	orders service.OrderServiceInterface,
) *BuilderController {
	return &BuilderController{builder: builder, catalog: catalog, orders: orders}
}

// Create handles POST /api/builder
func (c *BuilderController) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.CreateBuilderRequest
	if r.Body != nil {
		// An empty body starts a session with the defaults.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	state, err := c.builder.Create(req.Size, req.BaseColor)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, state)
}

// sessionAction splits "/api/builder/{id}/action" into its parts. The action
// segment is empty for "/api/builder/{id}".
func sessionAction(path string) (sessionID, action string) {
	rest := strings.TrimPrefix(path, "/api/builder/")
	parts := strings.SplitN(rest, "/", 2)
	sessionID = parts[0]
	if len(parts) == 2 {
		action = parts[1]
	}
	return sessionID, action
}

// Dispatch routes everything under /api/builder/{id}.
func (c *BuilderController) Dispatch(w http.ResponseWriter, r *http.Request) {
	sessionID, action := sessionAction(r.URL.Path)
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "Missing session id")
		return
	}

	switch {
	case action == "" && r.Method == http.MethodGet:
		c.getState(w, sessionID)
	case action == "" && r.Method == http.MethodDelete:
		c.builder.Drop(sessionID)
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	case action == "resize" && r.Method == http.MethodPost:
		c.resize(w, r, sessionID)
	case action == "base-color" && r.Method == http.MethodPost:
		c.setColor(w, r, sessionID)
	case action == "drag-end" && r.Method == http.MethodPost:
		c.dragEnd(w, r, sessionID)
	case action == "cart/increment" && r.Method == http.MethodPost:
		c.cartIncrement(w, r, sessionID)
	case action == "cart/decrement" && r.Method == http.MethodPost:
		c.cartDecrement(w, r, sessionID)
	case action == "cart/remove" && r.Method == http.MethodPost:
		c.cartRemove(w, r, sessionID)
	case action == "quote" && r.Method == http.MethodGet:
		c.quote(w, r, sessionID)
	case action == "reset" && r.Method == http.MethodPost:
		c.reset(w, sessionID)
	case action == "checkout" && r.Method == http.MethodPost:
		c.checkout(w, r, sessionID)
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

func (c *BuilderController) getState(w http.ResponseWriter, sessionID string) {
	state, err := c.builder.State(sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (c *BuilderController) resize(w http.ResponseWriter, r *http.Request, sessionID string) {
	var req models.ResizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	state, err := c.builder.With(sessionID, func(b *bracelet.Bracelet) error {
		if err := b.Resize(req.Size); err != nil {
			return fmt.Errorf("%w: %v", service.ErrValidation, err)
		}
		return nil
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (c *BuilderController) setColor(w http.ResponseWriter, r *http.Request, sessionID string) {
	var req models.BaseColorChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	state, err := c.builder.SetColor(sessionID, req.BaseColor)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// dragEnd applies a drag outcome. A rejected or no-op drag still returns the
// current state; the client reconciles against it either way.
func (c *BuilderController) dragEnd(w http.ResponseWriter, r *http.Request, sessionID string) {
	var req models.DragEndRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.SourceID == "" {
		writeError(w, http.StatusBadRequest, "sourceId is required")
		return
	}

	target := -1
	if req.TargetSlot != nil {
		target = *req.TargetSlot
	}
	state, err := c.builder.With(sessionID, func(b *bracelet.Bracelet) error {
		b.DragEnd(req.SourceID, target, c.catalog.EntryByID)
		return nil
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (c *BuilderController) cartIncrement(w http.ResponseWriter, r *http.Request, sessionID string) {
	c.cartOp(w, r, sessionID, func(b *bracelet.Bracelet, filename string) {
		b.Increment(filename)
	})
}

func (c *BuilderController) cartDecrement(w http.ResponseWriter, r *http.Request, sessionID string) {
	c.cartOp(w, r, sessionID, func(b *bracelet.Bracelet, filename string) {
		b.Decrement(filename)
	})
}

func (c *BuilderController) cartRemove(w http.ResponseWriter, r *http.Request, sessionID string) {
	c.cartOp(w, r, sessionID, func(b *bracelet.Bracelet, filename string) {
		b.RemoveAll(filename)
	})
}

// cartOp runs one cart mutation. A group that cannot be changed (absent
// filename, full bracelet) leaves the state untouched.
func (c *BuilderController) cartOp(w http.ResponseWriter, r *http.Request, sessionID string, op func(*bracelet.Bracelet, string)) {
	var req models.CartLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Filename == "" {
		writeError(w, http.StatusBadRequest, "filename is required")
		return
	}
	state, err := c.builder.With(sessionID, func(b *bracelet.Bracelet) error {
		op(b, req.Filename)
		return nil
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// quote handles GET /api/builder/{id}/quote?meetupPlace=
func (c *BuilderController) quote(w http.ResponseWriter, r *http.Request, sessionID string) {
	meetupPlace := r.URL.Query().Get("meetupPlace")

	var quote models.QuoteResponse
	_, err := c.builder.With(sessionID, func(b *bracelet.Bracelet) error {
		quote = service.Quote(b, meetupPlace)
		return nil
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func (c *BuilderController) reset(w http.ResponseWriter, sessionID string) {
	state, err := c.builder.With(sessionID, func(b *bracelet.Bracelet) error {
		b.Reset()
		return nil
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// checkout validates the customer fields, snapshots the bracelet into an
// order, records it, and resets the bracelet on success.
func (c *BuilderController) checkout(w http.ResponseWriter, r *http.Request, sessionID string) {
	var req models.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := service.ValidateCheckout(req); err != nil {
		writeServiceError(w, err)
		return
	}

	var order *models.Order
	_, err := c.builder.With(sessionID, func(b *bracelet.Bracelet) error {
		order = service.FromBuilder(req, b)
		if err := c.orders.Submit(r.Context(), order); err != nil {
			return err
		}
		b.Reset()
		return nil
	})
	if err != nil {
		log.Printf("❌ Checkout failed for session %s: %v", sessionID, err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"order":   order,
	})
}
