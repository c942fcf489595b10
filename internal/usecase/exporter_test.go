package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRenderer struct {
	html string
	out  []byte
	err  error
}

func (r *stubRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	r.html = html
	if r.err != nil {
		return nil, r.err
	}
	return r.out, nil
}

func TestExportPDF(t *testing.T) {
	renderer := &stubRenderer{out: []byte("%PDF-1.4 fake")}
	exporter := NewExporter(NewAggregator(testStore()), renderer)

	pdf, filename, err := exporter.ExportPDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Jane_Doe.pdf", filename)
	assert.Equal(t, []byte("%PDF-1.4 fake"), pdf)

	// the rendered page reflects the end-to-end scenario: open-ended role,
	// duties in ascending order_index order
	assert.Contains(t, renderer.html, "Jane Doe")
	assert.Contains(t, renderer.html, "June 2021 – Present")
	first := strings.Index(renderer.html, "Built the platform")
	second := strings.Index(renderer.html, "Ran incident response")
	third := strings.Index(renderer.html, "Mentored the team")
	require.True(t, first >= 0 && second >= 0 && third >= 0)
	assert.Less(t, first, second)
	assert.Less(t, second, third)
}

func TestExportPDFRendererFailure(t *testing.T) {
	exporter := NewExporter(NewAggregator(testStore()), &stubRenderer{err: errors.New("chrome did not start")})

	pdf, _, err := exporter.ExportPDF(context.Background())
	assert.Nil(t, pdf, "no partial PDF on render failure")
	assert.ErrorContains(t, err, "failed to generate PDF")
}

func TestExportPDFRejectsNonPDFOutput(t *testing.T) {
	exporter := NewExporter(NewAggregator(testStore()), &stubRenderer{out: []byte("<html>oops</html>")})

	pdf, _, err := exporter.ExportPDF(context.Background())
	assert.Nil(t, pdf)
	assert.ErrorContains(t, err, "invalid output")
}

func TestExportPDFStoreFailure(t *testing.T) {
	store := testStore()
	store.experienceErr = errors.New("store unreachable")
	renderer := &stubRenderer{out: []byte("%PDF-1.4 fake")}
	exporter := NewExporter(NewAggregator(store), renderer)

	pdf, _, err := exporter.ExportPDF(context.Background())
	assert.Nil(t, pdf)
	assert.Error(t, err)
	assert.Empty(t, renderer.html, "renderer must not run when aggregation fails")
}

func TestExportWord(t *testing.T) {
	exporter := NewExporter(NewAggregator(testStore()), &stubRenderer{})

	out, filename, err := exporter.ExportWord(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Jane_Doe.docx", filename)
	assert.True(t, strings.HasPrefix(string(out), "PK"), "docx output must be a zip archive")
}

func TestExportWordIdempotent(t *testing.T) {
	exporter := NewExporter(NewAggregator(testStore()), &stubRenderer{})

	first, _, err := exporter.ExportWord(context.Background())
	require.NoError(t, err)
	second, _, err := exporter.ExportWord(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second, "identical input must produce identical bytes")
}
