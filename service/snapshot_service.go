package service

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const detailSelector = ".detail-container"

// SnapshotService renders product detail pages in headless Chrome
type SnapshotService struct {
	baseURL string        // Base URL the detail pages are served from (e.g., "http://localhost:8080")
	timeout time.Duration
}

// NewSnapshotService creates a new SnapshotService
func NewSnapshotService(baseURL string, timeout time.Duration) *SnapshotService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &SnapshotService{
		baseURL: baseURL,
		timeout: timeout,
	}
}

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// ProductURL returns the detail page URL for a product
func (s *SnapshotService) ProductURL(productID string) string {
	return fmt.Sprintf("%s/product?id=%s", s.baseURL, url.QueryEscape(productID))
}

// newBrowser starts a headless browser bound to ctx with the service timeout
func (s *SnapshotService) newBrowser(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if chromePath := detectChromePath(); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	return browserCtx, func() {
		browserCancel()
		allocCancel()
		cancel()
	}
}

// CapturePNG takes a PNG screenshot of the detail container of a product page
func (s *SnapshotService) CapturePNG(ctx context.Context, productID string) ([]byte, error) {
	browserCtx, cancel := s.newBrowser(ctx)
	defer cancel()

	renderURL := s.ProductURL(productID)
	log.Printf("📸 CapturePNG: rendering %s", renderURL)

	var buf []byte
	err := chromedp.Run(browserCtx,
		chromedp.EmulateViewport(1200, 900),
		chromedp.Navigate(renderURL),
		chromedp.WaitVisible(detailSelector),
		chromedp.Screenshot(detailSelector, &buf, chromedp.NodeVisible),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to capture screenshot: %w", err)
	}

	return buf, nil
}

// PrintPDF prints a product page as an A4 product sheet
func (s *SnapshotService) PrintPDF(ctx context.Context, productID string) ([]byte, error) {
	browserCtx, cancel := s.newBrowser(ctx)
	defer cancel()

	renderURL := s.ProductURL(productID)
	log.Printf("📄 PrintPDF: rendering %s", renderURL)

	var pdfBuf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(renderURL),
		chromedp.WaitVisible(detailSelector),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4 = 8.27" x 11.69"
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdfBuf, nil
}
