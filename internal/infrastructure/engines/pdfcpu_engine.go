package engines

import (
	"fmt"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"pdfutils/internal/domain/entities"
)

// PDFCPUEngine реализация движка с использованием PDFCPU
type PDFCPUEngine struct {
	relaxed    bool
	opacity    float64
	imageMaxPx int
}

// NewPDFCPUEngine создает новый PDFCPU движок
func NewPDFCPUEngine(cfg entities.EngineConfig, wm entities.WatermarkConfig) *PDFCPUEngine {
	// pdfcpu не должен создавать свой каталог настроек в домашней директории
	api.DisableConfigDir()

	return &PDFCPUEngine{
		relaxed:    cfg.RelaxedValidation,
		opacity:    wm.Opacity,
		imageMaxPx: wm.ImageMaxPx,
	}
}

// Name имя движка
func (p *PDFCPUEngine) Name() string {
	return entities.BackendPDFCPU
}

// configuration новая конфигурация на каждый вызов: api функции ее изменяют
func (p *PDFCPUEngine) configuration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	if p.relaxed {
		conf.ValidationMode = model.ValidationRelaxed
	} else {
		conf.ValidationMode = model.ValidationStrict
	}
	return conf
}

// PageCount количество страниц документа
func (p *PDFCPUEngine) PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("pdfcpu: read %s: %w", path, err)
	}
	return n, nil
}

// Merge склеивает документы в заданном порядке
func (p *PDFCPUEngine) Merge(inputs []string, output string) error {
	if err := api.MergeCreateFile(inputs, output, false, p.configuration()); err != nil {
		return fmt.Errorf("pdfcpu: merge into %s: %w", output, err)
	}
	return nil
}

// ExtractPages сохраняет диапазон страниц в отдельный файл
func (p *PDFCPUEngine) ExtractPages(input, output string, pages entities.PageRange) error {
	selection := pages.String()
	if pages.Start == pages.End {
		selection = strconv.Itoa(pages.Start)
	}

	if err := api.TrimFile(input, output, []string{selection}, p.configuration()); err != nil {
		return fmt.Errorf("pdfcpu: extract pages %s from %s: %w", selection, input, err)
	}
	return nil
}

// StampPDF накладывает первую страницу stamp поверх всех страниц:
// масштаб 1 в абсолютных единицах, левый нижний угол, без поворота
func (p *PDFCPUEngine) StampPDF(input, stamp, output string) error {
	wm, err := api.PDFWatermark(stamp+":1", p.description(), true, false, types.POINTS)
	if err != nil {
		return fmt.Errorf("pdfcpu: prepare stamp %s: %w", stamp, err)
	}

	if err := api.AddWatermarksFile(input, output, nil, wm, p.configuration()); err != nil {
		return fmt.Errorf("pdfcpu: stamp %s: %w", input, err)
	}
	return nil
}

// StampImage накладывает изображение поверх всех страниц
func (p *PDFCPUEngine) StampImage(input, image, output string) error {
	prepared, cleanup, err := PrepareImage(image, p.imageMaxPx)
	if err != nil {
		return err
	}
	defer cleanup()

	wm, err := api.ImageWatermark(prepared, p.description(), true, false, types.POINTS)
	if err != nil {
		return fmt.Errorf("pdfcpu: prepare image stamp %s: %w", image, err)
	}

	if err := api.AddWatermarksFile(input, output, nil, wm, p.configuration()); err != nil {
		return fmt.Errorf("pdfcpu: stamp %s: %w", input, err)
	}
	return nil
}

// Optimize пересохраняет документ через оптимизацию pdfcpu
func (p *PDFCPUEngine) Optimize(input, output string) error {
	if err := api.OptimizeFile(input, output, p.configuration()); err != nil {
		return fmt.Errorf("pdfcpu: optimize %s: %w", input, err)
	}
	return nil
}

func (p *PDFCPUEngine) description() string {
	opacity := p.opacity
	if opacity <= 0 || opacity > 1 {
		opacity = 1
	}
	return fmt.Sprintf("scalefactor:1 abs, rotation:0, position:bl, offset:0 0, opacity:%.2f", opacity)
}
