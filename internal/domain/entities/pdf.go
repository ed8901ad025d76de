package entities

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// PDFExtension расширение, по которому отбираются файлы. Сравнение регистрозависимое.
const PDFExtension = ".pdf"

// PDFDocument представляет PDF документ
type PDFDocument struct {
	Path         string
	Name         string
	Size         int64
	ModifiedTime time.Time
	Pages        int
}

// Stem возвращает имя файла без расширения .pdf
func (d *PDFDocument) Stem() string {
	return Stem(d.Name)
}

// PageRange диапазон страниц [Start, End], нумерация с 1
type PageRange struct {
	Start int
	End   int
}

// Validate проверяет диапазон относительно количества страниц документа
func (r PageRange) Validate(pageCount int) error {
	if r.Start < 1 || r.Start > r.End {
		return fmt.Errorf("%w: %s", ErrInvalidPageRange, r)
	}
	if r.End > pageCount {
		return fmt.Errorf("%w: %s exceeds page count %d", ErrInvalidPageRange, r, pageCount)
	}
	return nil
}

// Len количество страниц в диапазоне
func (r PageRange) Len() int {
	return r.End - r.Start + 1
}

func (r PageRange) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// SplitMode режим разбиения документа
type SplitMode string

const (
	SplitByPage  SplitMode = "page"
	SplitByRange SplitMode = "range"
)

// ParseSplitMode принимает как названия режимов, так и пункты меню "1"/"2"
func ParseSplitMode(raw string) (SplitMode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "page", "pages":
		return SplitByPage, nil
	case "2", "range", "ranges":
		return SplitByRange, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSplitMode, raw)
	}
}

// OperationResult результат операции над файлами
type OperationResult struct {
	Operation string
	Sources   []string
	Outputs   []string
}

// CompressionResult представляет результат сжатия
type CompressionResult struct {
	CurrentFile      string
	OutputFile       string
	OriginalSize     int64
	CompressedSize   int64
	CompressionRatio float64
	SavedSpace       int64
	Pages            int
	Success          bool
	Error            error
}

// CalculateCompressionRatio вычисляет коэффициент сжатия
func (cr *CompressionResult) CalculateCompressionRatio() {
	if cr.OriginalSize > 0 {
		cr.CompressionRatio = ((float64(cr.OriginalSize) - float64(cr.CompressedSize)) / float64(cr.OriginalSize)) * 100
		cr.SavedSpace = cr.OriginalSize - cr.CompressedSize
	}
}

// IsEffective проверяет, было ли сжатие эффективным
func (cr *CompressionResult) IsEffective() bool {
	return cr.Success && cr.CompressionRatio > 0
}

// HasPDFExtension проверяет литеральное расширение .pdf
func HasPDFExtension(name string) bool {
	return strings.HasSuffix(name, PDFExtension)
}

// IsImageFile проверяет, является ли файл изображением поддерживаемого формата
func IsImageFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".jpg" || ext == ".jpeg" || ext == ".png"
}

// ValidateOutputName проверяет имя выходного файла: расширение .pdf и отсутствие путей
func ValidateOutputName(name string) error {
	if !HasPDFExtension(name) {
		return ErrInvalidExtension
	}
	if strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return ErrInvalidFileName
	}
	if name == PDFExtension {
		return ErrInvalidFileName
	}
	return nil
}

// Stem имя файла без завершающего .pdf
func Stem(name string) string {
	return strings.TrimSuffix(filepath.Base(name), PDFExtension)
}

// PageFileName имя файла для одной страницы: {stem}_page_{N}.pdf
func PageFileName(source string, page int) string {
	return fmt.Sprintf("%s_page_%d.pdf", Stem(source), page)
}

// RangeFileName имя файла для диапазона: {stem}_pages_{start}_to_{end}.pdf
func RangeFileName(source string, r PageRange) string {
	return fmt.Sprintf("%s_pages_%d_to_%d.pdf", Stem(source), r.Start, r.End)
}

// WatermarkedFileName имя файла с водяным знаком
func WatermarkedFileName(source string) string {
	return Stem(source) + "_watermarked.pdf"
}

// CompressedFileName имя сжатого файла
func CompressedFileName(source string) string {
	return Stem(source) + "_compressed.pdf"
}
