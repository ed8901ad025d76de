package engines

import (
	"errors"
	"fmt"

	"pdfutils/internal/domain/entities"
	"pdfutils/internal/domain/repositories"
)

// ErrLicenseMissing unipdf не работает без лицензионного ключа
var ErrLicenseMissing = errors.New("unipdf requires a license key: set engine.unipdf_license_key or UNIDOC_LICENSE_API_KEY, or use the pdfcpu backend")

// New создает движок по имени из конфигурации
func New(cfg *entities.Config) (repositories.PDFEngine, error) {
	switch cfg.Engine.Backend {
	case entities.BackendUniPDF:
		return NewUniPDFEngine(cfg.Engine, cfg.Watermark)
	case entities.BackendPDFCPU, "":
		return NewPDFCPUEngine(cfg.Engine, cfg.Watermark), nil
	default:
		return nil, fmt.Errorf("%w: %q", entities.ErrInvalidBackend, cfg.Engine.Backend)
	}
}
