package controllers_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdfutils/internal/domain/entities"
	"pdfutils/internal/infrastructure/logging"
	"pdfutils/internal/infrastructure/repositories"
	"pdfutils/internal/interface/controllers"
	usecases "pdfutils/internal/usecase"
)

// stubEngine создает выходные файлы и считает каждый документ трехстраничным
type stubEngine struct {
	merged [][]string
}

func (s *stubEngine) Name() string                    { return "stub" }
func (s *stubEngine) PageCount(string) (int, error)   { return 3, nil }
func (s *stubEngine) Optimize(_, output string) error { return touch(output) }
func (s *stubEngine) StampPDF(_, _, output string) error {
	return touch(output)
}
func (s *stubEngine) StampImage(_, _, output string) error {
	return touch(output)
}
func (s *stubEngine) ExtractPages(_, output string, _ entities.PageRange) error {
	return touch(output)
}
func (s *stubEngine) Merge(inputs []string, output string) error {
	s.merged = append(s.merged, inputs)
	return touch(output)
}

func touch(path string) error {
	return os.WriteFile(path, []byte("%PDF"), 0o644)
}

func setup(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, touch(filepath.Join(dir, name)))
	}
	return dir
}

func run(t *testing.T, engine *stubEngine, input string) string {
	t.Helper()
	fileRepo := repositories.NewFileSystemRepository()
	logger := logging.NewWriterLogger(io.Discard, "info")
	toolkit := usecases.NewToolkit(engine, fileRepo, logger)

	var out bytes.Buffer
	controller := controllers.NewCLIController(toolkit, fileRepo, logger, strings.NewReader(input), &out, "")
	require.NoError(t, controller.Run())
	return out.String()
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}

func TestCLIController_MenuAndExit(t *testing.T) {
	out := run(t, &stubEngine{}, lines("9", "7"))

	assert.Contains(t, out, "PDF Processor Menu\n1. Merge PDFs\n2. Split PDF\n3. Add Watermark\n4. Compress PDF\n5. Rename PDF\n6. List PDFs\n7. Exit\n")
	assert.Contains(t, out, "Invalid choice. Please try again.")
	assert.Contains(t, out, "Exiting PDF Processor. Goodbye!")
}

func TestCLIController_EOFExitsCleanly(t *testing.T) {
	out := run(t, &stubEngine{}, "6\n")
	assert.Contains(t, out, "Enter the directory path")
}

func TestCLIController_List(t *testing.T) {
	dir := setup(t, "b.pdf", "a.pdf")
	out := run(t, &stubEngine{}, lines("6", filepath.Join(dir, "missing"), dir, "7"))

	assert.Contains(t, out, "Invalid directory. Please try again.")
	assert.Contains(t, out, "Available PDFs:\n1. a.pdf\n2. b.pdf\n")
}

func TestCLIController_ListEmpty(t *testing.T) {
	dir := setup(t)
	out := run(t, &stubEngine{}, lines("6", dir, "7"))
	assert.Contains(t, out, "No PDF files found in the directory.")
}

func TestCLIController_Merge(t *testing.T) {
	dir := setup(t, "a.pdf", "b.pdf", "c.pdf")
	engine := &stubEngine{}
	out := run(t, engine, lines("1", dir, "3,1", "out.pdf", "7"))

	assert.Contains(t, out, "Merged PDF created at: "+filepath.Join(dir, "out.pdf"))
	require.Len(t, engine.merged, 1)
	assert.Equal(t, []string{filepath.Join(dir, "c.pdf"), filepath.Join(dir, "a.pdf")}, engine.merged[0])
}

func TestCLIController_MergeErrorsReturnToMenu(t *testing.T) {
	dir := setup(t, "a.pdf", "b.pdf")
	out := run(t, &stubEngine{}, lines("1", dir, "1,2", "out.txt", "6", dir, "7"))

	assert.Contains(t, out, "Error: merge: file name must end with .pdf")
	assert.NotContains(t, out, "out.txt\n")
	assert.Equal(t, 2, strings.Count(out, "Available PDFs:"))
}

func TestCLIController_MergeNeedsTwoFiles(t *testing.T) {
	dir := setup(t, "a.pdf")
	out := run(t, &stubEngine{}, lines("1", dir, "7"))
	assert.Contains(t, out, "Not enough PDFs to merge.")
}

func TestCLIController_SplitByRanges(t *testing.T) {
	dir := setup(t, "doc.pdf")
	out := run(t, &stubEngine{}, lines("2", dir, "1", "2", "1-2,3-3", "7"))

	assert.Contains(t, out, "PDF split by ranges and saved in directory: "+dir)
	assert.FileExists(t, filepath.Join(dir, "doc_pages_1_to_2.pdf"))
	assert.FileExists(t, filepath.Join(dir, "doc_pages_3_to_3.pdf"))
}

func TestCLIController_SplitInvalidRange(t *testing.T) {
	dir := setup(t, "doc.pdf")
	out := run(t, &stubEngine{}, lines("2", dir, "1", "2", "2-9", "7"))

	assert.Contains(t, out, "Error: split: invalid page range")
	assert.NoFileExists(t, filepath.Join(dir, "doc_pages_2_to_9.pdf"))
}

func TestCLIController_SplitInvalidMode(t *testing.T) {
	dir := setup(t, "doc.pdf")
	out := run(t, &stubEngine{}, lines("2", dir, "1", "5", "7"))
	assert.Contains(t, out, "Invalid choice.")
}

func TestCLIController_Watermark(t *testing.T) {
	dir := setup(t, "doc.pdf")
	stamp := filepath.Join(setup(t, "stamp.pdf"), "stamp.pdf")

	out := run(t, &stubEngine{}, lines("3", dir, "1", stamp, "3", dir, "1", filepath.Join(dir, "none.pdf"), "7"))

	assert.Contains(t, out, "Watermarked PDF saved as: "+filepath.Join(dir, "doc_watermarked.pdf"))
	assert.Contains(t, out, "Watermark PDF not found.")
}

func TestCLIController_Compress(t *testing.T) {
	dir := setup(t, "doc.pdf")
	out := run(t, &stubEngine{}, lines("4", dir, "1", "7"))
	assert.Contains(t, out, "Compressed PDF saved as: "+filepath.Join(dir, "doc_compressed.pdf"))
}

func TestCLIController_Rename(t *testing.T) {
	dir := setup(t, "a.pdf", "b.pdf")
	out := run(t, &stubEngine{}, lines("5", dir, "1", "b.pdf", "5", dir, "1", "c.pdf", "7"))

	assert.Contains(t, out, "Error: rename: file already exists")
	assert.Contains(t, out, "renamed to '"+filepath.Join(dir, "c.pdf")+"'.")
	assert.FileExists(t, filepath.Join(dir, "c.pdf"))
	assert.NoFileExists(t, filepath.Join(dir, "a.pdf"))
}

func TestCLIController_DefaultDirectory(t *testing.T) {
	dir := setup(t, "x.pdf")
	fileRepo := repositories.NewFileSystemRepository()
	logger := logging.NewWriterLogger(io.Discard, "info")
	toolkit := usecases.NewToolkit(&stubEngine{}, fileRepo, logger)

	var out bytes.Buffer
	controller := controllers.NewCLIController(toolkit, fileRepo, logger, strings.NewReader(lines("6", "", "7")), &out, dir)
	require.NoError(t, controller.Run())
	assert.Contains(t, out.String(), "1. x.pdf")
}
