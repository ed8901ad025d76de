package usecases

import (
	"path/filepath"

	"pdfutils/internal/domain/entities"
	"pdfutils/internal/domain/repositories"
)

// WatermarkPDFUseCase сценарий наложения водяного знака
type WatermarkPDFUseCase struct {
	engine   repositories.PDFEngine
	fileRepo repositories.FileRepository
	logger   repositories.Logger
}

// NewWatermarkPDFUseCase создает новый сценарий наложения водяного знака
func NewWatermarkPDFUseCase(
	engine repositories.PDFEngine,
	fileRepo repositories.FileRepository,
	logger repositories.Logger,
) *WatermarkPDFUseCase {
	return &WatermarkPDFUseCase{
		engine:   engine,
		fileRepo: fileRepo,
		logger:   logger,
	}
}

// Execute накладывает водяной знак на каждую страницу выбранного файла.
// Источник знака: PDF (используется первая страница) или изображение PNG/JPEG.
func (uc *WatermarkPDFUseCase) Execute(directory, selection, watermarkPath string) (*entities.OperationResult, error) {
	source, err := selectDocument(uc.fileRepo, "watermark", directory, selection)
	if err != nil {
		return nil, err
	}

	if watermarkPath == "" || !uc.fileRepo.FileExists(watermarkPath) {
		return nil, entities.NewIOError("watermark", entities.ErrFileNotFound, "watermark not found: "+watermarkPath)
	}

	output := filepath.Join(filepath.Dir(source), entities.WatermarkedFileName(source))

	if entities.IsImageFile(watermarkPath) {
		uc.logger.Debug("Stamping image %s onto %s", watermarkPath, source)
		if err := uc.engine.StampImage(source, watermarkPath, output); err != nil {
			return nil, entities.NewIOError("watermark", err, "")
		}
	} else {
		pages, err := uc.engine.PageCount(watermarkPath)
		if err != nil {
			return nil, entities.NewValidationError("watermark", err, "watermark PDF cannot be read")
		}
		if pages == 0 {
			return nil, entities.NewValidationError("watermark", entities.ErrEmptyWatermark, "")
		}

		uc.logger.Debug("Stamping first page of %s onto %s", watermarkPath, source)
		if err := uc.engine.StampPDF(source, watermarkPath, output); err != nil {
			return nil, entities.NewIOError("watermark", err, "")
		}
	}

	uc.logger.Success("Created %s", output)
	return &entities.OperationResult{
		Operation: "watermark",
		Sources:   []string{source, watermarkPath},
		Outputs:   []string{output},
	}, nil
}
