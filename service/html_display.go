package service

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"artfulito-store/models"
	"artfulito-store/templates"
)

const productDetailTemplate = "product_detail.html"

var pageTemplate = template.Must(template.ParseFS(templates.FS, productDetailTemplate))

// HTMLDisplay collects the state of the page regions and writes it as HTML.
// A fresh display starts with only the loading indicator visible.
type HTMLDisplay struct {
	title           string
	loadingVisible  bool
	notFoundVisible bool
	detail          *models.DetailView
}

// NewHTMLDisplay creates a display titled with the site name
func NewHTMLDisplay(siteName string) *HTMLDisplay {
	return &HTMLDisplay{
		title:          siteName,
		loadingVisible: true,
	}
}

// Ensure HTMLDisplay implements Display
var _ Display = (*HTMLDisplay)(nil)

// ShowDetail installs the detail view into the detail container
func (d *HTMLDisplay) ShowDetail(view models.DetailView) {
	d.detail = &view
}

// ShowNotFound reveals the not-found placeholder
func (d *HTMLDisplay) ShowNotFound() {
	d.notFoundVisible = true
}

// HideLoading hides the loading indicator
func (d *HTMLDisplay) HideLoading() {
	d.loadingVisible = false
}

// SetTitle sets the page title
func (d *HTMLDisplay) SetTitle(title string) {
	d.title = title
}

// Title returns the current page title
func (d *HTMLDisplay) Title() string {
	return d.title
}

// LoadingVisible reports whether the loading indicator is shown
func (d *HTMLDisplay) LoadingVisible() bool {
	return d.loadingVisible
}

// NotFoundVisible reports whether the not-found placeholder is shown
func (d *HTMLDisplay) NotFoundVisible() bool {
	return d.notFoundVisible
}

// Detail returns the installed detail view, if any
func (d *HTMLDisplay) Detail() (models.DetailView, bool) {
	if d.detail == nil {
		return models.DetailView{}, false
	}
	return *d.detail, true
}

// Render executes the page template into a byte slice
func (d *HTMLDisplay) Render() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.WriteHTML(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteHTML executes the page template into w
func (d *HTMLDisplay) WriteHTML(w io.Writer) error {
	data := struct {
		Title           string
		LoadingVisible  bool
		NotFoundVisible bool
		Detail          *models.DetailView
	}{
		Title:           d.title,
		LoadingVisible:  d.loadingVisible,
		NotFoundVisible: d.notFoundVisible,
		Detail:          d.detail,
	}

	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	return nil
}
