package usecase

import (
	"bytes"
	"context"
	"fmt"

	"resume-hosting/internal/render"
)

// Renderer turns a self-contained HTML page into paginated PDF bytes.
// Implementations may swap rendering engines freely.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// Exporter produces downloadable documents from the aggregated resume. Every
// export path aggregates exactly once per request.
type Exporter struct {
	aggregator *Aggregator
	renderer   Renderer
}

func NewExporter(aggregator *Aggregator, renderer Renderer) *Exporter {
	return &Exporter{aggregator: aggregator, renderer: renderer}
}

// ExportPDF renders the resume to HTML and rasterizes it. Returns the PDF
// bytes and the download filename.
func (e *Exporter) ExportPDF(ctx context.Context) ([]byte, string, error) {
	doc, err := e.aggregator.Aggregate(ctx)
	if err != nil {
		return nil, "", err
	}

	html := render.ResumeHTML(doc)
	pdf, err := e.renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate PDF: %w", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		return nil, "", fmt.Errorf("failed to generate PDF: invalid output (len=%d)", len(pdf))
	}
	return pdf, doc.FileStem() + ".pdf", nil
}

// ExportWord builds the Word document directly from the aggregated resume.
func (e *Exporter) ExportWord(ctx context.Context) ([]byte, string, error) {
	doc, err := e.aggregator.Aggregate(ctx)
	if err != nil {
		return nil, "", err
	}

	out, err := render.ResumeDocx(doc)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate Word document: %w", err)
	}
	return out, doc.FileStem() + ".docx", nil
}
