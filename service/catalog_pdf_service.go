package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"navillera/models"
	"navillera/utils"
)

const catalogTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Georgia, serif; margin: 0; padding: 24px; }
  h1 { text-align: center; letter-spacing: 2px; }
  h2 { border-bottom: 1px solid #ccc; padding-bottom: 4px; margin-top: 32px; }
  .grid { display: flex; flex-wrap: wrap; gap: 16px; }
  .charm { width: 140px; text-align: center; page-break-inside: avoid; }
  .charm img { width: 120px; height: 120px; object-fit: contain; }
  .charm .name { font-size: 13px; margin-top: 4px; }
  .charm .price { font-size: 12px; color: #666; }
  .sold { opacity: 0.4; }
</style>
</head>
<body>
<h1>Charm Catalog</h1>
{{range .Sections}}
<h2>{{.Category}}</h2>
<div class="grid">
  {{range .Items}}
  <div class="charm{{if .SoldOut}} sold{{end}}">
    <img src="{{$.BaseURL}}{{.ImageURL}}?size=medium" alt="{{.DisplayName}}">
    <div class="name">{{.DisplayName}}</div>
    <div class="price">{{formatAED .Price}}</div>
  </div>
  {{end}}
</div>
{{end}}
<p style="margin-top:40px;font-size:11px;color:#999;text-align:center">Generated {{.Generated}}</p>
</body>
</html>`

// CatalogPDFService renders the charm catalog as printable HTML and converts
// it to PDF through a headless Chrome instance.
type CatalogPDFService struct {
	catalog CatalogServiceInterface
	baseURL string
	tmpl    *template.Template
}

// NewCatalogPDFService creates a CatalogPDFService. baseURL is the address the
// headless browser uses to reach this server's own image endpoints.
func NewCatalogPDFService(catalog CatalogServiceInterface, baseURL string) *CatalogPDFService {
	tmpl := template.Must(template.New("catalog").Funcs(template.FuncMap{
		"formatAED": utils.FormatAED,
	}).Parse(catalogTemplate))
	return &CatalogPDFService{catalog: catalog, baseURL: baseURL, tmpl: tmpl}
}

// detectChromePath locates a Chrome/Chromium executable. CHROME_PATH wins,
// then common installation paths.
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

type catalogSection struct {
	Category models.Category
	Items    []models.CatalogEntry
}

// RenderCatalogHTML renders the full catalog grouped by category, skipping
// empty categories.
func (s *CatalogPDFService) RenderCatalogHTML() (string, error) {
	var sections []catalogSection
	for _, cat := range models.Categories() {
		if cat == models.CategoryAll {
			continue
		}
		resp, err := s.catalog.Catalog(cat)
		if err != nil {
			return "", fmt.Errorf("listing %s: %w", cat, err)
		}
		if len(resp.Items) == 0 {
			continue
		}
		sections = append(sections, catalogSection{Category: cat, Items: resp.Items})
	}

	data := struct {
		Sections  []catalogSection
		BaseURL   string
		Generated string
	}{
		Sections:  sections,
		BaseURL:   s.baseURL,
		Generated: time.Now().Format("2006-01-02 15:04"),
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering catalog template: %w", err)
	}
	return buf.String(), nil
}

// GeneratePDF drives headless Chrome against the server's own render endpoint
// and prints the result to PDF.
func (s *CatalogPDFService) GeneratePDF(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
	)
	if chromePath := detectChromePath(); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := s.baseURL + "/admin/catalog/render"

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 1123),
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(2*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("generating catalog PDF: %w", err)
	}
	return pdfBuf, nil
}
