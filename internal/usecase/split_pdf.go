package usecases

import (
	"fmt"
	"path/filepath"

	"pdfutils/internal/domain/entities"
	"pdfutils/internal/domain/repositories"
)

// SplitPDFUseCase сценарий разбиения PDF файла
type SplitPDFUseCase struct {
	engine   repositories.PDFEngine
	fileRepo repositories.FileRepository
	logger   repositories.Logger
}

// NewSplitPDFUseCase создает новый сценарий разбиения
func NewSplitPDFUseCase(
	engine repositories.PDFEngine,
	fileRepo repositories.FileRepository,
	logger repositories.Logger,
) *SplitPDFUseCase {
	return &SplitPDFUseCase{
		engine:   engine,
		fileRepo: fileRepo,
		logger:   logger,
	}
}

// Execute разбивает выбранный файл. ranges используется только в режиме SplitByRange.
// Все диапазоны проверяются до записи первого файла; при ошибке записи уже
// созданные файлы остаются и возвращаются в результате вместе с ошибкой.
func (uc *SplitPDFUseCase) Execute(directory, selection string, mode entities.SplitMode, ranges string) (*entities.OperationResult, error) {
	source, err := selectDocument(uc.fileRepo, "split", directory, selection)
	if err != nil {
		return nil, err
	}

	pageCount, err := uc.engine.PageCount(source)
	if err != nil {
		return nil, entities.NewIOError("split", err, "cannot read "+filepath.Base(source))
	}

	var plan []entities.PageRange
	switch mode {
	case entities.SplitByPage:
		for page := 1; page <= pageCount; page++ {
			plan = append(plan, entities.PageRange{Start: page, End: page})
		}
	case entities.SplitByRange:
		parsed, err := entities.ParsePageRanges(ranges)
		if err != nil {
			return nil, entities.NewValidationError("split", err, "")
		}
		for _, r := range parsed {
			if err := r.Validate(pageCount); err != nil {
				return nil, entities.NewValidationError("split", err, "")
			}
		}
		plan = parsed
	default:
		return nil, entities.NewValidationError("split", fmt.Errorf("%w: %q", entities.ErrInvalidSplitMode, mode), "")
	}

	result := &entities.OperationResult{
		Operation: "split",
		Sources:   []string{source},
	}

	dir := filepath.Dir(source)
	for _, r := range plan {
		name := entities.RangeFileName(source, r)
		if mode == entities.SplitByPage {
			name = entities.PageFileName(source, r.Start)
		}
		output := filepath.Join(dir, name)

		uc.logger.Debug("Extracting pages %s of %s into %s", r, source, output)
		if err := uc.engine.ExtractPages(source, output, r); err != nil {
			return result, entities.NewIOError("split", err,
				fmt.Sprintf("wrote %d of %d files before failing", len(result.Outputs), len(plan)))
		}
		result.Outputs = append(result.Outputs, output)
		uc.logger.Success("Created %s", output)
	}

	return result, nil
}
