package usecases_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdfutils/internal/domain/entities"
	usecases "pdfutils/internal/usecase"
)

func TestCompressPDF(t *testing.T) {
	dir := workspace(t, "doc.pdf")
	engine := newFakeEngine()
	engine.outputSize = 40
	tk := newToolkit(engine)

	result, err := tk.Compress.Execute(dir, "1")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "doc_compressed.pdf"), result.OutputFile)
	assert.Equal(t, int64(100), result.OriginalSize)
	assert.Equal(t, int64(40), result.CompressedSize)
	assert.InDelta(t, 60.0, result.CompressionRatio, 1e-9)
	assert.True(t, result.IsEffective())
	assert.Equal(t, "100 -> 40 bytes (60.0% saved)", usecases.Summary(result))
}

func TestCompressPDF_LargerOutputIsNotAnError(t *testing.T) {
	dir := workspace(t, "doc.pdf")
	engine := newFakeEngine()
	engine.outputSize = 150
	tk := newToolkit(engine)

	result, err := tk.Compress.Execute(dir, "1")
	require.NoError(t, err)
	assert.False(t, result.IsEffective())
	assert.Equal(t, int64(-50), result.SavedSpace)
}

func TestCompressPDF_InvalidSelection(t *testing.T) {
	tk := newToolkit(newFakeEngine())

	_, err := tk.Compress.Execute(workspace(t, "doc.pdf"), "2")
	assert.True(t, entities.IsKind(err, entities.KindValidation))
}

func TestCompressDirectory(t *testing.T) {
	dir := workspace(t, "a.pdf", "b.pdf", "old_compressed.pdf")
	engine := newFakeEngine()
	tk := newToolkit(engine)

	result, err := tk.CompressDirectory.Execute(dir)
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalFiles)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, []string{filepath.Join(dir, "a.pdf"), filepath.Join(dir, "b.pdf")}, engine.optimized)
}
