package router

import (
	"net/http"

	"artfulito-store/app/controller"
)

type Controllers struct {
	Product *controller.ProductController
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

// SetupRoutes registers every route on mux.
// staticDir is served under /static/ and may be empty to disable it.
func SetupRoutes(mux *http.ServeMux, controllers *Controllers, staticDir string) {
	// Ping endpoint
	mux.HandleFunc("/ping", pingHandler)

	// Product detail page (detail.html is the legacy page name)
	mux.HandleFunc("/product", controllers.Product.GetProductPage)
	mux.HandleFunc("/detail.html", controllers.Product.GetProductPage)

	// Rendered exports of the detail page
	mux.HandleFunc("/product/snapshot.png", controllers.Product.GetProductSnapshot)
	mux.HandleFunc("/product/sheet.pdf", controllers.Product.GetProductSheet)

	// Detail view as JSON
	mux.HandleFunc("/api/product", controllers.Product.GetProductView)

	// Static assets, including products.json for the default catalog source
	if staticDir != "" {
		mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	}
}
