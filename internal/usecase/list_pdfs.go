package usecases

import (
	"pdfutils/internal/domain/entities"
	"pdfutils/internal/domain/repositories"
)

// ListPDFsUseCase сценарий просмотра PDF файлов директории
type ListPDFsUseCase struct {
	fileRepo repositories.FileRepository
	logger   repositories.Logger
}

// NewListPDFsUseCase создает новый сценарий просмотра
func NewListPDFsUseCase(fileRepo repositories.FileRepository, logger repositories.Logger) *ListPDFsUseCase {
	return &ListPDFsUseCase{
		fileRepo: fileRepo,
		logger:   logger,
	}
}

// Execute возвращает имена PDF файлов. Пустая директория не ошибка.
func (uc *ListPDFsUseCase) Execute(directory string) ([]string, error) {
	directory = resolveDirectory(directory)
	if !uc.fileRepo.IsDirectory(directory) {
		return nil, entities.NewNotFoundError("list", entities.ErrDirectoryNotFound, "directory not found: "+directory)
	}

	files, err := uc.fileRepo.ListPDFFiles(directory)
	if err != nil {
		return nil, entities.NewIOError("list", err, "")
	}

	uc.logger.Debug("Found %d PDF file(s) in %s", len(files), directory)
	return files, nil
}
