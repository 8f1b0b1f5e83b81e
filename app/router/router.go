package router

import (
	"net/http"

	"navillera/app/controller"
)

type Controllers struct {
	Catalog   *controller.CatalogController
	CharmFile *controller.CharmFileController
	BaseColor *controller.BaseColorController
	Stock     *controller.StockController
	Builder   *controller.BuilderController
	Order     *controller.OrderController
	Admin     *controller.AdminController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// SetupRoutes registers every endpoint on a fresh ServeMux.
func SetupRoutes(controllers *Controllers) *http.ServeMux {
	mux := http.NewServeMux()

	// Ping endpoint
	mux.HandleFunc("/ping", pingHandler)

	// Catalog listing and charm image serving
	mux.HandleFunc("/api/catalog", controllers.Catalog.GetCatalog)
	mux.HandleFunc("/charms/", controllers.Catalog.ServeCharm)

	// Charm image management
	mux.HandleFunc("/api/charm/upload", controllers.CharmFile.Upload)
	mux.HandleFunc("/api/charm/rename", controllers.CharmFile.Rename)
	mux.HandleFunc("/api/charm/delete", controllers.CharmFile.Delete)

	// Base color availability and charm stock
	mux.HandleFunc("/api/base-colors", controllers.BaseColor.Handle)
	mux.HandleFunc("/api/stock", controllers.Stock.Handle)

	// Builder sessions: POST /api/builder creates, everything under
	// /api/builder/{id} dispatches by action suffix
	mux.HandleFunc("/api/builder", controllers.Builder.Create)
	mux.HandleFunc("/api/builder/", controllers.Builder.Dispatch)

	// Stateless order submission
	mux.HandleFunc("/api/orders", controllers.Order.Submit)
	mux.HandleFunc("/admin/orders", controllers.Order.List)

	// Admin mode gate
	mux.HandleFunc("/api/admin/verify", controllers.Admin.Verify)

	// Catalog export and Drive import
	mux.HandleFunc("/admin/catalog/render", controllers.Catalog.RenderCatalog)
	mux.HandleFunc("/admin/catalog/pdf", controllers.Catalog.DownloadCatalogPDF)
	mux.HandleFunc("/admin/charms/sync", controllers.Catalog.SyncCharms)

	return mux
}
