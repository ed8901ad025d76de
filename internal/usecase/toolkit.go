package usecases

import (
	"pdfutils/internal/domain/repositories"
)

// Toolkit набор сценариев, общий для меню, TUI и подкоманд
type Toolkit struct {
	List              *ListPDFsUseCase
	Rename            *RenamePDFUseCase
	Merge             *MergePDFsUseCase
	Split             *SplitPDFUseCase
	Watermark         *WatermarkPDFUseCase
	Compress          *CompressPDFUseCase
	CompressDirectory *CompressDirectoryUseCase
}

// NewToolkit связывает сценарии с движком, файловой системой и логгером
func NewToolkit(
	engine repositories.PDFEngine,
	fileRepo repositories.FileRepository,
	logger repositories.Logger,
) *Toolkit {
	compress := NewCompressPDFUseCase(engine, fileRepo, logger)

	return &Toolkit{
		List:              NewListPDFsUseCase(fileRepo, logger),
		Rename:            NewRenamePDFUseCase(fileRepo, logger),
		Merge:             NewMergePDFsUseCase(engine, fileRepo, logger),
		Split:             NewSplitPDFUseCase(engine, fileRepo, logger),
		Watermark:         NewWatermarkPDFUseCase(engine, fileRepo, logger),
		Compress:          compress,
		CompressDirectory: NewCompressDirectoryUseCase(compress, fileRepo, logger),
	}
}
