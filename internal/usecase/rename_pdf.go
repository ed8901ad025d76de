package usecases

import (
	"errors"
	"path/filepath"

	"pdfutils/internal/domain/entities"
	"pdfutils/internal/domain/repositories"
)

// RenamePDFUseCase сценарий переименования PDF файла
type RenamePDFUseCase struct {
	fileRepo repositories.FileRepository
	logger   repositories.Logger
}

// NewRenamePDFUseCase создает новый сценарий переименования
func NewRenamePDFUseCase(fileRepo repositories.FileRepository, logger repositories.Logger) *RenamePDFUseCase {
	return &RenamePDFUseCase{
		fileRepo: fileRepo,
		logger:   logger,
	}
}

// Execute переименовывает выбранный файл внутри его директории и возвращает новый путь
func (uc *RenamePDFUseCase) Execute(directory, selection, newName string) (string, error) {
	source, err := selectDocument(uc.fileRepo, "rename", directory, selection)
	if err != nil {
		return "", err
	}
	return uc.RenameFile(source, newName)
}

// RenameFile переименовывает файл по пути
func (uc *RenamePDFUseCase) RenameFile(source, newName string) (string, error) {
	if err := entities.ValidateOutputName(newName); err != nil {
		return "", entities.NewValidationError("rename", err, "")
	}

	target := filepath.Join(filepath.Dir(source), newName)
	if err := uc.fileRepo.Rename(source, target); err != nil {
		if errors.Is(err, entities.ErrFileExists) {
			return "", entities.NewIOError("rename", err, "")
		}
		return "", entities.NewIOError("rename", err, "cannot rename "+filepath.Base(source))
	}

	uc.logger.Success("Renamed %s to %s", source, target)
	return target, nil
}
