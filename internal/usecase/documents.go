package usecases

import (
	"path/filepath"

	"pdfutils/internal/domain/entities"
	"pdfutils/internal/domain/repositories"
)

// resolveDirectory пустая строка означает текущую директорию
func resolveDirectory(directory string) string {
	if directory == "" {
		return "."
	}
	return directory
}

// listDocuments возвращает список PDF и требует хотя бы один файл
func listDocuments(fileRepo repositories.FileRepository, op, directory string) ([]string, error) {
	directory = resolveDirectory(directory)
	if !fileRepo.IsDirectory(directory) {
		return nil, entities.NewNotFoundError(op, entities.ErrDirectoryNotFound, "directory not found: "+directory)
	}

	files, err := fileRepo.ListPDFFiles(directory)
	if err != nil {
		return nil, entities.NewIOError(op, err, "")
	}
	if len(files) == 0 {
		return nil, entities.NewNotFoundError(op, entities.ErrNoFilesFound, "no PDF files found in "+directory)
	}
	return files, nil
}

// selectDocument разбирает одиночный выбор и возвращает путь к файлу
func selectDocument(fileRepo repositories.FileRepository, op, directory, selection string) (string, error) {
	files, err := listDocuments(fileRepo, op, directory)
	if err != nil {
		return "", err
	}

	idx, err := entities.ParseSelection(selection, len(files))
	if err != nil {
		return "", entities.NewValidationError(op, err, "")
	}
	return filepath.Join(resolveDirectory(directory), files[idx]), nil
}
