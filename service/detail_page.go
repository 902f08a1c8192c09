package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"

	"artfulito-store/models"
	"artfulito-store/repository"
	"artfulito-store/utils"
)

// Display is the host page the detail page is applied to.
// It owns three regions: the detail container, the loading indicator and
// the not-found placeholder.
type Display interface {
	ShowDetail(view models.DetailView)
	ShowNotFound()
	HideLoading()
	SetTitle(title string)
}

// Mode is the rendering outcome of a detail page
type Mode int

const (
	// ModeLoading means Load has not settled the page yet
	ModeLoading Mode = iota
	// ModeNotFound means the id was missing, the catalog failed or nothing matched
	ModeNotFound
	// ModeDetail means a product was resolved
	ModeDetail
)

func (m Mode) String() string {
	switch m {
	case ModeNotFound:
		return "not-found"
	case ModeDetail:
		return "detail"
	default:
		return "loading"
	}
}

// DetailPage is the controller for one page view.
// It is created per request and holds the selected product for that view only.
type DetailPage struct {
	catalog repository.CatalogRepositoryInterface
	opts    ViewOptions

	mode    Mode
	cause   error
	product *models.Product
	gallery *Gallery
	display Display
}

// NewDetailPage creates a page controller reading from the given catalog
func NewDetailPage(catalog repository.CatalogRepositoryInterface, opts ViewOptions) *DetailPage {
	return &DetailPage{
		catalog: catalog,
		opts:    opts.withDefaults(),
		mode:    ModeLoading,
	}
}

// Load extracts the id, reads the catalog and resolves the product.
// A missing id settles the page as not found before the catalog is read.
func (p *DetailPage) Load(ctx context.Context, query url.Values) Mode {
	if p.mode != ModeLoading {
		return p.mode
	}

	id, present := utils.ProductIDFromQuery(query)
	if !present {
		return p.notFound(ErrMissingProductID)
	}

	catalog, err := p.loadCatalog(ctx)
	if err != nil {
		return p.notFound(err)
	}

	product, err := ResolveProduct(id, present, catalog)
	if err != nil {
		return p.notFound(fmt.Errorf("%w: id=%s", err, id))
	}

	p.product = product
	p.mode = ModeDetail
	return p.mode
}

func (p *DetailPage) loadCatalog(ctx context.Context) ([]models.Product, error) {
	catalog, err := p.catalog.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	return catalog, nil
}

func (p *DetailPage) notFound(cause error) Mode {
	p.mode = ModeNotFound
	p.cause = cause
	log.Printf("⚠️  DetailPage: showing not found: %v", cause)
	return p.mode
}

// Mode returns the current rendering outcome
func (p *DetailPage) Mode() Mode {
	return p.mode
}

// Cause returns why the page is in not-found mode, for logging only
func (p *DetailPage) Cause() error {
	return p.cause
}

// Product returns the selected product, nil unless the page is in detail mode
func (p *DetailPage) Product() *models.Product {
	return p.product
}

// Gallery returns the gallery state, nil until the detail view is rendered
func (p *DetailPage) Gallery() *Gallery {
	return p.gallery
}

// View returns the current detail view
func (p *DetailPage) View() (models.DetailView, bool) {
	if p.mode != ModeDetail || p.gallery == nil {
		return models.DetailView{}, false
	}
	return BuildDetailView(*p.product, p.gallery.Active, p.opts), true
}

// Render applies the settled page to the display
func (p *DetailPage) Render(display Display) error {
	switch p.mode {
	case ModeNotFound:
		display.HideLoading()
		display.ShowNotFound()
	case ModeDetail:
		if p.gallery == nil {
			p.gallery = NewGallery(p.product.Image)
		}
		view := BuildDetailView(*p.product, p.gallery.Active, p.opts)
		display.ShowDetail(view)
		display.SetTitle(view.Title)
		display.HideLoading()
	default:
		return errors.New("detail page has not been loaded")
	}

	p.display = display
	return nil
}

// SelectImage switches the main image to variant k and re-applies the detail view.
// The page must be rendered in detail mode.
func (p *DetailPage) SelectImage(k int) error {
	if p.mode != ModeDetail || p.gallery == nil || p.display == nil {
		return errors.New("no detail view is rendered")
	}

	p.gallery.Select(k)
	view := BuildDetailView(*p.product, p.gallery.Active, p.opts)
	p.display.ShowDetail(view)
	return nil
}
