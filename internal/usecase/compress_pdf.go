package usecases

import (
	"fmt"
	"path/filepath"

	"pdfutils/internal/domain/entities"
	"pdfutils/internal/domain/repositories"
)

// CompressPDFUseCase сценарий сжатия одного PDF файла
type CompressPDFUseCase struct {
	engine   repositories.PDFEngine
	fileRepo repositories.FileRepository
	logger   repositories.Logger
}

// NewCompressPDFUseCase создает новый сценарий сжатия PDF
func NewCompressPDFUseCase(
	engine repositories.PDFEngine,
	fileRepo repositories.FileRepository,
	logger repositories.Logger,
) *CompressPDFUseCase {
	return &CompressPDFUseCase{
		engine:   engine,
		fileRepo: fileRepo,
		logger:   logger,
	}
}

// Execute сжимает выбранный файл в {stem}_compressed.pdf рядом с исходным
func (uc *CompressPDFUseCase) Execute(directory, selection string) (*entities.CompressionResult, error) {
	source, err := selectDocument(uc.fileRepo, "compress", directory, selection)
	if err != nil {
		return nil, err
	}
	return uc.CompressFile(source)
}

// CompressFile сжимает файл по пути. Уменьшение размера не гарантируется.
func (uc *CompressPDFUseCase) CompressFile(inputPath string) (*entities.CompressionResult, error) {
	// Получаем информацию о файле
	fileInfo, err := uc.fileRepo.GetFileInfo(inputPath)
	if err != nil {
		return nil, entities.NewNotFoundError("compress", entities.ErrFileNotFound, inputPath)
	}

	outputPath := filepath.Join(filepath.Dir(inputPath), entities.CompressedFileName(inputPath))

	uc.logger.Debug("Compressing %s with %s", inputPath, uc.engine.Name())
	if err := uc.engine.Optimize(inputPath, outputPath); err != nil {
		return nil, entities.NewIOError("compress", err, "")
	}

	compressedInfo, err := uc.fileRepo.GetFileInfo(outputPath)
	if err != nil {
		return nil, entities.NewIOError("compress", err, "compressed file is missing")
	}

	result := &entities.CompressionResult{
		CurrentFile:    inputPath,
		OutputFile:     outputPath,
		OriginalSize:   fileInfo.Size,
		CompressedSize: compressedInfo.Size,
		Success:        true,
	}
	result.CalculateCompressionRatio()

	if result.IsEffective() {
		uc.logger.Success("Compressed %s: %d -> %d bytes (%.1f%%)", outputPath, result.OriginalSize, result.CompressedSize, result.CompressionRatio)
	} else {
		uc.logger.Warning("Compression did not shrink %s: %d -> %d bytes", outputPath, result.OriginalSize, result.CompressedSize)
	}

	return result, nil
}

// Summary строка для пользователя
func Summary(result *entities.CompressionResult) string {
	return fmt.Sprintf("%d -> %d bytes (%.1f%% saved)", result.OriginalSize, result.CompressedSize, result.CompressionRatio)
}
