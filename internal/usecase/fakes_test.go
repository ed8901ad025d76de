package usecases_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"pdfutils/internal/domain/entities"
	"pdfutils/internal/infrastructure/logging"
	"pdfutils/internal/infrastructure/repositories"
	usecases "pdfutils/internal/usecase"
)

var errDiskFull = errors.New("disk full")

// fakeEngine записывает вызовы и создает выходные файлы фиксированного размера
type fakeEngine struct {
	pages      map[string]int
	pageErr    error
	extractErr error
	failAfter  int
	outputSize int

	merged    [][]string
	extracted []entities.PageRange
	stamped   []string
	optimized []string
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{pages: map[string]int{}, failAfter: -1, outputSize: 10}
}

func (f *fakeEngine) Name() string { return "fake" }

func (f *fakeEngine) PageCount(path string) (int, error) {
	if f.pageErr != nil {
		return 0, f.pageErr
	}
	if n, ok := f.pages[filepath.Base(path)]; ok {
		return n, nil
	}
	return 3, nil
}

func (f *fakeEngine) Merge(inputs []string, output string) error {
	f.merged = append(f.merged, inputs)
	return f.write(output)
}

func (f *fakeEngine) ExtractPages(input, output string, pages entities.PageRange) error {
	if f.failAfter >= 0 && len(f.extracted) >= f.failAfter {
		return f.extractErr
	}
	f.extracted = append(f.extracted, pages)
	return f.write(output)
}

func (f *fakeEngine) StampPDF(input, stamp, output string) error {
	f.stamped = append(f.stamped, "pdf:"+filepath.Base(stamp))
	return f.write(output)
}

func (f *fakeEngine) StampImage(input, image, output string) error {
	f.stamped = append(f.stamped, "image:"+filepath.Base(image))
	return f.write(output)
}

func (f *fakeEngine) Optimize(input, output string) error {
	f.optimized = append(f.optimized, input)
	return f.write(output)
}

func (f *fakeEngine) write(path string) error {
	return os.WriteFile(path, []byte(strings.Repeat("x", f.outputSize)), 0o644)
}

// workspace создает директорию с файлами заданного размера
func workspace(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(strings.Repeat("p", 100)), 0o644))
	}
	return dir
}

func newToolkit(engine *fakeEngine) *usecases.Toolkit {
	return usecases.NewToolkit(engine, repositories.NewFileSystemRepository(), logging.NewWriterLogger(io.Discard, "debug"))
}
