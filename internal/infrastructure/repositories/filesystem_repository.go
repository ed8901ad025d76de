package repositories

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"pdfutils/internal/domain/entities"
)

// FileSystemRepository реализация репозитория для работы с файловой системой
type FileSystemRepository struct{}

// NewFileSystemRepository создает новый репозиторий файловой системы
func NewFileSystemRepository() *FileSystemRepository {
	return &FileSystemRepository{}
}

// GetFileInfo получает информацию о PDF файле
func (r *FileSystemRepository) GetFileInfo(path string) (*entities.PDFDocument, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	return &entities.PDFDocument{
		Path:         path,
		Name:         info.Name(),
		Size:         info.Size(),
		ModifiedTime: info.ModTime(),
	}, nil
}

// FileExists проверяет существование файла
func (r *FileSystemRepository) FileExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// IsDirectory проверяет, что путь указывает на существующую директорию
func (r *FileSystemRepository) IsDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ListPDFFiles возвращает имена PDF файлов только верхнего уровня директории.
// Поддиректории с именем *.pdf пропускаются, суффикс сравнивается с учетом регистра.
func (r *FileSystemRepository) ListPDFFiles(directory string) ([]string, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", directory, err)
	}

	pdfFiles := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entities.HasPDFExtension(entry.Name()) {
			continue
		}
		info, err := os.Stat(filepath.Join(directory, entry.Name()))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		pdfFiles = append(pdfFiles, entry.Name())
	}

	sort.Strings(pdfFiles)
	return pdfFiles, nil
}

// Rename переименовывает файл; существующий файл назначения не перезаписывается
func (r *FileSystemRepository) Rename(oldPath, newPath string) error {
	if r.FileExists(newPath) {
		return fmt.Errorf("%w: %s", entities.ErrFileExists, newPath)
	}
	return os.Rename(oldPath, newPath)
}
