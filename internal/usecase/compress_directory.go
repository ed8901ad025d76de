package usecases

import (
	"fmt"
	"path/filepath"
	"strings"

	"pdfutils/internal/domain/entities"
	"pdfutils/internal/domain/repositories"
)

// CompressDirectoryUseCase сценарий сжатия всех PDF файлов в директории
type CompressDirectoryUseCase struct {
	compress *CompressPDFUseCase
	fileRepo repositories.FileRepository
	logger   repositories.Logger
}

// NewCompressDirectoryUseCase создает новый сценарий сжатия директории
func NewCompressDirectoryUseCase(
	compress *CompressPDFUseCase,
	fileRepo repositories.FileRepository,
	logger repositories.Logger,
) *CompressDirectoryUseCase {
	return &CompressDirectoryUseCase{
		compress: compress,
		fileRepo: fileRepo,
		logger:   logger,
	}
}

// DirectoryCompressionResult результат сжатия директории
type DirectoryCompressionResult struct {
	TotalFiles   int
	SuccessCount int
	FailedCount  int
	Results      []*entities.CompressionResult
	Errors       []error
}

// Execute сжимает каждый PDF директории по очереди. Результаты предыдущих
// запусков (*_compressed.pdf) пропускаются, ошибка одного файла не прерывает обработку.
func (uc *CompressDirectoryUseCase) Execute(directory string) (*DirectoryCompressionResult, error) {
	files, err := listDocuments(uc.fileRepo, "compress", directory)
	if err != nil {
		return nil, err
	}

	dir := resolveDirectory(directory)
	result := &DirectoryCompressionResult{
		Results: make([]*entities.CompressionResult, 0, len(files)),
	}

	for _, name := range files {
		if strings.HasSuffix(name, "_compressed"+entities.PDFExtension) {
			continue
		}
		result.TotalFiles++

		compressionResult, err := uc.compress.CompressFile(filepath.Join(dir, name))
		if err != nil {
			uc.logger.Error("Failed to compress %s: %v", name, err)
			result.Errors = append(result.Errors, fmt.Errorf("%s: %w", name, err))
			result.FailedCount++
			continue
		}

		result.Results = append(result.Results, compressionResult)
		result.SuccessCount++
	}

	uc.logger.Info("Compressed %d of %d file(s)", result.SuccessCount, result.TotalFiles)
	return result, nil
}
