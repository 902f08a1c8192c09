package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"mime"
	"net/http"

	"artfulito-store/repository"
	"artfulito-store/service"
	"artfulito-store/utils"
)

// SnapshotRenderer renders product pages to images and documents
type SnapshotRenderer interface {
	CapturePNG(ctx context.Context, productID string) ([]byte, error)
	PrintPDF(ctx context.Context, productID string) ([]byte, error)
}

// ProductController handles HTTP requests for the product detail page
type ProductController struct {
	catalog   repository.CatalogRepositoryInterface
	opts      service.ViewOptions
	snapshots SnapshotRenderer
}

// NewProductController creates a new ProductController
func NewProductController(
	catalog repository.CatalogRepositoryInterface,
	opts service.ViewOptions,
	snapshots SnapshotRenderer,
) *ProductController {
	return &ProductController{
		catalog:   catalog,
		opts:      opts,
		snapshots: snapshots,
	}
}

// loadPage runs one page view: load, render and apply the requested image
func (c *ProductController) loadPage(r *http.Request) (*service.DetailPage, *service.HTMLDisplay, error) {
	query := r.URL.Query()

	page := service.NewDetailPage(c.catalog, c.opts)
	page.Load(r.Context(), query)

	display := service.NewHTMLDisplay(c.opts.Storefront.WithDefaults().SiteName)
	if err := page.Render(display); err != nil {
		return nil, nil, err
	}

	if page.Mode() == service.ModeDetail {
		if idx := utils.ImageIndexFromQuery(query, service.ImageVariantCount); idx != 0 {
			if err := page.SelectImage(idx); err != nil {
				return nil, nil, err
			}
		}
	}

	return page, display, nil
}

// GetProductPage handles GET /product?id=1&image=0
// Renders the detail page, or the not-found page with status 404
func (c *ProductController) GetProductPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		log.Printf("❌ GetProductPage: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	page, display, err := c.loadPage(r)
	if err != nil {
		log.Printf("❌ GetProductPage: Error rendering page: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	htmlContent, err := display.Render()
	if err != nil {
		log.Printf("❌ GetProductPage: Error rendering HTML: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if page.Mode() == service.ModeNotFound {
		status = http.StatusNotFound
	} else {
		log.Printf("✅ GetProductPage: Rendered product id=%s", page.Product().ID)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(htmlContent); err != nil {
		log.Printf("❌ GetProductPage: Error writing HTML response: %v", err)
	}
}

// GetProductView handles GET /api/product?id=1&image=0
// Returns the detail view as JSON
func (c *ProductController) GetProductView(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		log.Printf("❌ GetProductView: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	page, _, err := c.loadPage(r)
	if err != nil {
		log.Printf("❌ GetProductView: Error rendering view: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"error": "failed to render view"})
		return
	}

	view, ok := page.View()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{"error": "product not found"})
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// GetProductSnapshot handles GET /product/snapshot.png?id=1
func (c *ProductController) GetProductSnapshot(w http.ResponseWriter, r *http.Request) {
	c.serveRendered(w, r, "GetProductSnapshot", "image/png", "png", c.snapshots.CapturePNG)
}

// GetProductSheet handles GET /product/sheet.pdf?id=1
func (c *ProductController) GetProductSheet(w http.ResponseWriter, r *http.Request) {
	c.serveRendered(w, r, "GetProductSheet", "application/pdf", "pdf", c.snapshots.PrintPDF)
}

func (c *ProductController) serveRendered(
	w http.ResponseWriter,
	r *http.Request,
	name, contentType, ext string,
	render func(ctx context.Context, productID string) ([]byte, error),
) {
	if r.Method != http.MethodGet {
		log.Printf("❌ %s: Method not allowed: %s", name, r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Resolve first so unknown products never start a browser
	page := service.NewDetailPage(c.catalog, c.opts)
	if page.Load(r.Context(), r.URL.Query()) != service.ModeDetail {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	productID := page.Product().ID.String()

	data, err := render(r.Context(), productID)
	if err != nil {
		log.Printf("❌ %s: Error rendering product %s: %v", name, productID, err)
		http.Error(w, fmt.Sprintf("Failed to render product: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", inlineDisposition(fmt.Sprintf("product_%s.%s", productID, ext)))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("❌ %s: Error writing response: %v", name, err)
	}
}

// inlineDisposition builds an RFC 6266 inline header, with RFC 2231 encoding for non-ASCII names
func inlineDisposition(filename string) string {
	if v := mime.FormatMediaType("inline", map[string]string{"filename": filename}); v != "" {
		return v
	}
	return "inline"
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ Error encoding JSON response: %v", err)
	}
}
