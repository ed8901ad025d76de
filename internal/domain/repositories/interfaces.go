package repositories

import (
	"pdfutils/internal/domain/entities"
)

// PDFEngine граница с PDF библиотекой. Все пути абсолютные или относительные
// к рабочей директории; выходной файл перезаписывается.
type PDFEngine interface {
	// Name имя реализации для логов
	Name() string
	PageCount(path string) (int, error)
	// Merge склеивает страницы входных файлов в указанном порядке
	Merge(inputs []string, output string) error
	// ExtractPages копирует страницы диапазона в новый файл
	ExtractPages(input, output string, pages entities.PageRange) error
	// StampPDF накладывает первую страницу stamp поверх каждой страницы input
	StampPDF(input, stamp, output string) error
	// StampImage накладывает изображение PNG/JPEG поверх каждой страницы input
	StampImage(input, image, output string) error
	// Optimize пересохраняет документ через оптимизирующую запись
	Optimize(input, output string) error
}

// FileRepository интерфейс для работы с файловой системой
type FileRepository interface {
	GetFileInfo(path string) (*entities.PDFDocument, error)
	FileExists(path string) bool
	IsDirectory(path string) bool
	// ListPDFFiles возвращает имена (не пути) PDF файлов верхнего уровня в отсортированном порядке
	ListPDFFiles(directory string) ([]string, error)
	Rename(oldPath, newPath string) error
}

// AppConfigRepository загрузка и сохранение конфигурации; путь указывает на YAML файл
type AppConfigRepository interface {
	Load(configPath string) (*entities.Config, error)
	Save(configPath string, config *entities.Config) error
}

// Logger журнал операций. Success отмечает завершенную операцию с выходным файлом.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Error(format string, args ...interface{})
	Success(format string, args ...interface{})
	Close() error
}
