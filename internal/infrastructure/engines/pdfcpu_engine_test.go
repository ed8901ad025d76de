package engines_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdfutils/internal/domain/entities"
	"pdfutils/internal/infrastructure/engines"
	"pdfutils/internal/testutil"
)

func newPDFCPU() *engines.PDFCPUEngine {
	cfg := entities.DefaultConfig()
	return engines.NewPDFCPUEngine(cfg.Engine, cfg.Watermark)
}

func pageWidths(t *testing.T, path string) []float64 {
	t.Helper()
	dims, err := api.PageDimsFile(path)
	require.NoError(t, err)

	widths := make([]float64, 0, len(dims))
	for _, d := range dims {
		widths = append(widths, d.Width)
	}
	return widths
}

func TestPDFCPUEngine_PageCount(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WritePDF(t, dir, "doc.pdf", 3)

	n, err := newPDFCPU().PageCount(path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	garbage := filepath.Join(dir, "garbage.pdf")
	require.NoError(t, os.WriteFile(garbage, []byte("not a pdf"), 0o644))
	_, err = newPDFCPU().PageCount(garbage)
	assert.Error(t, err)
}

func TestPDFCPUEngine_MergeKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	a := testutil.WritePDFWithOffset(t, dir, "a.pdf", 2, 0)
	b := testutil.WritePDFWithOffset(t, dir, "b.pdf", 1, 10)
	out := filepath.Join(dir, "merged.pdf")

	require.NoError(t, newPDFCPU().Merge([]string{b, a}, out))

	assert.Equal(t, []float64{
		testutil.PageWidth(11),
		testutil.PageWidth(1),
		testutil.PageWidth(2),
	}, pageWidths(t, out))
}

func TestPDFCPUEngine_ExtractPages(t *testing.T) {
	dir := t.TempDir()
	src := testutil.WritePDF(t, dir, "doc.pdf", 5)
	engine := newPDFCPU()

	rangeOut := filepath.Join(dir, "range.pdf")
	require.NoError(t, engine.ExtractPages(src, rangeOut, entities.PageRange{Start: 2, End: 4}))
	assert.Equal(t, []float64{testutil.PageWidth(2), testutil.PageWidth(3), testutil.PageWidth(4)}, pageWidths(t, rangeOut))

	pageOut := filepath.Join(dir, "page.pdf")
	require.NoError(t, engine.ExtractPages(src, pageOut, entities.PageRange{Start: 5, End: 5}))
	assert.Equal(t, []float64{testutil.PageWidth(5)}, pageWidths(t, pageOut))
}

func TestPDFCPUEngine_StampPDF(t *testing.T) {
	dir := t.TempDir()
	src := testutil.WritePDF(t, dir, "doc.pdf", 3)
	stamp := testutil.WritePDF(t, dir, "stamp.pdf", 2)
	out := filepath.Join(dir, "doc_watermarked.pdf")

	require.NoError(t, newPDFCPU().StampPDF(src, stamp, out))

	assert.Equal(t, pageWidths(t, src), pageWidths(t, out))
	for page := 1; page <= 3; page++ {
		assert.Zero(t, xObjectCount(t, src, page), "source page %d", page)
		assert.Equal(t, 1, xObjectCount(t, out, page), "stamped page %d", page)
	}
}

// xObjectCount число XObject в ресурсах страницы; наложение добавляет форму
func xObjectCount(t *testing.T, path string, page int) int {
	t.Helper()
	ctx, err := api.ReadContextFile(path)
	require.NoError(t, err)
	require.GreaterOrEqual(t, ctx.PageCount, page)

	pageDict, _, _, err := ctx.PageDict(page, false)
	require.NoError(t, err)

	obj, found := pageDict.Find("Resources")
	if !found {
		return 0
	}
	resources, err := ctx.DereferenceDict(obj)
	require.NoError(t, err)

	obj, found = resources.Find("XObject")
	if !found {
		return 0
	}
	xObjects, err := ctx.DereferenceDict(obj)
	require.NoError(t, err)
	return len(xObjects)
}

func TestPDFCPUEngine_StampImage(t *testing.T) {
	dir := t.TempDir()
	src := testutil.WritePDF(t, dir, "doc.pdf", 2)
	img := testutil.WritePNG(t, dir, "logo.png", 40, 20)
	out := filepath.Join(dir, "doc_watermarked.pdf")

	require.NoError(t, newPDFCPU().StampImage(src, img, out))

	n, err := api.PageCountFile(out)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, xObjectCount(t, out, 1))
	assert.Equal(t, 1, xObjectCount(t, out, 2))
}

func TestPDFCPUEngine_Optimize(t *testing.T) {
	dir := t.TempDir()
	src := testutil.WritePDF(t, dir, "doc.pdf", 4)
	out := filepath.Join(dir, "doc_compressed.pdf")

	require.NoError(t, newPDFCPU().Optimize(src, out))
	assert.Equal(t, pageWidths(t, src), pageWidths(t, out))
}

func TestNew(t *testing.T) {
	cfg := entities.DefaultConfig()
	engine, err := engines.New(cfg)
	require.NoError(t, err)
	assert.Equal(t, entities.BackendPDFCPU, engine.Name())

	cfg.Engine.Backend = "ghostscript"
	_, err = engines.New(cfg)
	assert.ErrorIs(t, err, entities.ErrInvalidBackend)
}

func TestNew_UniPDFWithoutLicense(t *testing.T) {
	t.Setenv("UNIDOC_LICENSE_API_KEY", "")
	cfg := entities.DefaultConfig()
	cfg.Engine.Backend = entities.BackendUniPDF

	_, err := engines.New(cfg)
	assert.ErrorIs(t, err, engines.ErrLicenseMissing)
}
