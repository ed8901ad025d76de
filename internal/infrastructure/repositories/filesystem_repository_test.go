package repositories_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdfutils/internal/domain/entities"
	"pdfutils/internal/infrastructure/repositories"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4\n"), 0o644))
}

func TestListPDFFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.pdf"))
	touch(t, filepath.Join(dir, "a.pdf"))
	touch(t, filepath.Join(dir, "upper.PDF"))
	touch(t, filepath.Join(dir, "notes.txt"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.pdf"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
	touch(t, filepath.Join(dir, "nested", "deep.pdf"))

	repo := repositories.NewFileSystemRepository()
	files, err := repo.ListPDFFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.pdf", "b.pdf"}, files)
}

func TestListPDFFiles_EmptyAndMissing(t *testing.T) {
	repo := repositories.NewFileSystemRepository()

	files, err := repo.ListPDFFiles(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)

	_, err = repo.ListPDFFiles(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestRename(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.pdf")
	other := filepath.Join(dir, "b.pdf")
	touch(t, src)
	touch(t, other)

	repo := repositories.NewFileSystemRepository()

	err := repo.Rename(src, other)
	assert.ErrorIs(t, err, entities.ErrFileExists)
	assert.True(t, repo.FileExists(src))

	dst := filepath.Join(dir, "c.pdf")
	require.NoError(t, repo.Rename(src, dst))
	assert.False(t, repo.FileExists(src))
	assert.True(t, repo.FileExists(dst))
}

func TestGetFileInfoAndIsDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.pdf")
	touch(t, path)

	repo := repositories.NewFileSystemRepository()
	doc, err := repo.GetFileInfo(path)
	require.NoError(t, err)
	assert.Equal(t, "a.pdf", doc.Name)
	assert.Equal(t, int64(len("%PDF-1.4\n")), doc.Size)

	assert.True(t, repo.IsDirectory(dir))
	assert.False(t, repo.IsDirectory(path))
	assert.False(t, repo.IsDirectory(filepath.Join(dir, "missing")))
}
