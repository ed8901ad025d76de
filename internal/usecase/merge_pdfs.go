package usecases

import (
	"fmt"
	"path/filepath"

	"pdfutils/internal/domain/entities"
	"pdfutils/internal/domain/repositories"
)

// MergePDFsUseCase сценарий объединения PDF файлов
type MergePDFsUseCase struct {
	engine   repositories.PDFEngine
	fileRepo repositories.FileRepository
	logger   repositories.Logger
}

// NewMergePDFsUseCase создает новый сценарий объединения
func NewMergePDFsUseCase(
	engine repositories.PDFEngine,
	fileRepo repositories.FileRepository,
	logger repositories.Logger,
) *MergePDFsUseCase {
	return &MergePDFsUseCase{
		engine:   engine,
		fileRepo: fileRepo,
		logger:   logger,
	}
}

// Execute объединяет выбранные файлы в порядке, указанном пользователем.
// Некорректные номера в selection отбрасываются.
func (uc *MergePDFsUseCase) Execute(directory, selection, outputName string) (*entities.OperationResult, error) {
	files, err := listDocuments(uc.fileRepo, "merge", directory)
	if err != nil {
		return nil, err
	}
	if len(files) < 2 {
		return nil, entities.NewValidationError("merge", entities.ErrNotEnoughFiles, "")
	}

	indices := entities.ParseMultiSelection(selection, len(files))
	if len(indices) < 2 {
		return nil, entities.NewValidationError("merge", entities.ErrNotEnoughSelections,
			fmt.Sprintf("%d valid selection(s) given, at least two are required", len(indices)))
	}

	if err := entities.ValidateOutputName(outputName); err != nil {
		return nil, entities.NewValidationError("merge", err, "")
	}

	dir := resolveDirectory(directory)
	inputs := make([]string, 0, len(indices))
	for _, idx := range indices {
		inputs = append(inputs, filepath.Join(dir, files[idx]))
	}
	output := filepath.Join(dir, outputName)

	// Движок создает выходной файл до чтения входных и удаляет его при ошибке
	for _, input := range inputs {
		if filepath.Clean(input) == filepath.Clean(output) {
			return nil, entities.NewValidationError("merge", entities.ErrOutputIsSource,
				fmt.Sprintf("%s is one of the selected PDFs", outputName))
		}
	}

	uc.logger.Debug("Merging %d file(s) with %s into %s", len(inputs), uc.engine.Name(), output)
	if err := uc.engine.Merge(inputs, output); err != nil {
		return nil, entities.NewIOError("merge", err, "")
	}

	uc.logger.Success("Created %s", output)
	return &entities.OperationResult{
		Operation: "merge",
		Sources:   inputs,
		Outputs:   []string{output},
	}, nil
}
