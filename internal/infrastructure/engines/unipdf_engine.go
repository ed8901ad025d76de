package engines

import (
	"fmt"
	"os"

	"github.com/unidoc/unipdf/v3/common"
	"github.com/unidoc/unipdf/v3/common/license"
	"github.com/unidoc/unipdf/v3/creator"
	"github.com/unidoc/unipdf/v3/model"
	"github.com/unidoc/unipdf/v3/model/optimize"

	"pdfutils/internal/domain/entities"
)

// UniPDFEngine реализация движка с использованием UniPDF
type UniPDFEngine struct {
	opacity    float64
	imageMaxPx int
}

// NewUniPDFEngine создает новый UniPDF движок.
// Ключ берется из конфигурации или переменной UNIDOC_LICENSE_API_KEY.
func NewUniPDFEngine(cfg entities.EngineConfig, wm entities.WatermarkConfig) (*UniPDFEngine, error) {
	licenseKey := cfg.UniPDFLicenseKey
	if licenseKey == "" {
		licenseKey = os.Getenv("UNIDOC_LICENSE_API_KEY")
	}
	if licenseKey == "" {
		return nil, ErrLicenseMissing
	}

	if err := license.SetMeteredKey(licenseKey); err != nil {
		return nil, fmt.Errorf("unipdf: license: %w", err)
	}

	common.SetLogger(common.NewConsoleLogger(common.LogLevelError))

	return &UniPDFEngine{
		opacity:    wm.Opacity,
		imageMaxPx: wm.ImageMaxPx,
	}, nil
}

// Name имя движка
func (u *UniPDFEngine) Name() string {
	return entities.BackendUniPDF
}

// PageCount количество страниц документа
func (u *UniPDFEngine) PageCount(path string) (int, error) {
	reader, file, err := model.NewPdfReaderFromFile(path, nil)
	if err != nil {
		return 0, fmt.Errorf("unipdf: open %s: %w", path, err)
	}
	defer file.Close()

	n, err := reader.GetNumPages()
	if err != nil {
		return 0, fmt.Errorf("unipdf: count pages of %s: %w", path, err)
	}
	return n, nil
}

// Merge склеивает документы в заданном порядке
func (u *UniPDFEngine) Merge(inputs []string, output string) error {
	writer := model.NewPdfWriter()

	// Файлы держим открытыми до записи: страницы читаются лениво
	var files []*os.File
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()

	for _, input := range inputs {
		reader, file, err := model.NewPdfReaderFromFile(input, nil)
		if err != nil {
			return fmt.Errorf("unipdf: open %s: %w", input, err)
		}
		files = append(files, file)

		if err := copyPages(&writer, reader, 1, 0); err != nil {
			return fmt.Errorf("unipdf: %s: %w", input, err)
		}
	}

	if err := writer.WriteToFile(output); err != nil {
		return fmt.Errorf("unipdf: write %s: %w", output, err)
	}
	return nil
}

// ExtractPages сохраняет диапазон страниц в отдельный файл
func (u *UniPDFEngine) ExtractPages(input, output string, pages entities.PageRange) error {
	reader, file, err := model.NewPdfReaderFromFile(input, nil)
	if err != nil {
		return fmt.Errorf("unipdf: open %s: %w", input, err)
	}
	defer file.Close()

	writer := model.NewPdfWriter()
	if err := copyPages(&writer, reader, pages.Start, pages.End); err != nil {
		return fmt.Errorf("unipdf: %s: %w", input, err)
	}

	if err := writer.WriteToFile(output); err != nil {
		return fmt.Errorf("unipdf: write %s: %w", output, err)
	}
	return nil
}

// StampPDF накладывает первую страницу stamp поверх всех страниц, левый нижний угол
func (u *UniPDFEngine) StampPDF(input, stamp, output string) error {
	stampReader, stampFile, err := model.NewPdfReaderFromFile(stamp, nil)
	if err != nil {
		return fmt.Errorf("unipdf: open stamp %s: %w", stamp, err)
	}
	defer stampFile.Close()

	stampPage, err := stampReader.GetPage(1)
	if err != nil {
		return fmt.Errorf("unipdf: stamp %s: %w", stamp, err)
	}

	return u.overlay(input, output, func(c *creator.Creator) error {
		block, err := creator.NewBlockFromPage(stampPage)
		if err != nil {
			return err
		}
		block.SetPos(0, c.Height()-block.Height())
		return c.Draw(block)
	})
}

// StampImage накладывает изображение поверх всех страниц, левый нижний угол
func (u *UniPDFEngine) StampImage(input, image, output string) error {
	prepared, cleanup, err := PrepareImage(image, u.imageMaxPx)
	if err != nil {
		return err
	}
	defer cleanup()

	return u.overlay(input, output, func(c *creator.Creator) error {
		img, err := c.NewImageFromFile(prepared)
		if err != nil {
			return err
		}
		if u.opacity > 0 && u.opacity < 1 {
			img.SetOpacity(u.opacity)
		}
		img.SetPos(0, c.Height()-img.Height())
		return c.Draw(img)
	})
}

// Optimize пересохраняет документ через оптимизатор unipdf
func (u *UniPDFEngine) Optimize(input, output string) error {
	reader, file, err := model.NewPdfReaderFromFile(input, nil)
	if err != nil {
		return fmt.Errorf("unipdf: open %s: %w", input, err)
	}
	defer file.Close()

	writer := model.NewPdfWriter()
	writer.SetOptimizer(optimize.New(optimize.Options{
		CombineDuplicateDirectObjects:   true,
		CombineIdenticalIndirectObjects: true,
		CombineDuplicateStreams:         true,
		CompressStreams:                 true,
		UseObjectStreams:                true,
	}))

	if err := copyPages(&writer, reader, 1, 0); err != nil {
		return fmt.Errorf("unipdf: %s: %w", input, err)
	}

	if err := writer.WriteToFile(output); err != nil {
		return fmt.Errorf("unipdf: write %s: %w", output, err)
	}
	return nil
}

// overlay копирует каждую страницу input в creator и рисует поверх нее draw
func (u *UniPDFEngine) overlay(input, output string, draw func(c *creator.Creator) error) error {
	reader, file, err := model.NewPdfReaderFromFile(input, nil)
	if err != nil {
		return fmt.Errorf("unipdf: open %s: %w", input, err)
	}
	defer file.Close()

	numPages, err := reader.GetNumPages()
	if err != nil {
		return fmt.Errorf("unipdf: count pages of %s: %w", input, err)
	}

	c := creator.New()
	for i := 1; i <= numPages; i++ {
		page, err := reader.GetPage(i)
		if err != nil {
			return fmt.Errorf("unipdf: page %d of %s: %w", i, input, err)
		}
		if err := c.AddPage(page); err != nil {
			return fmt.Errorf("unipdf: add page %d: %w", i, err)
		}
		if err := draw(c); err != nil {
			return fmt.Errorf("unipdf: stamp page %d: %w", i, err)
		}
	}

	if err := c.WriteToFile(output); err != nil {
		return fmt.Errorf("unipdf: write %s: %w", output, err)
	}
	return nil
}

// copyPages добавляет страницы [from, to] в writer; to == 0 означает до конца документа
func copyPages(writer *model.PdfWriter, reader *model.PdfReader, from, to int) error {
	numPages, err := reader.GetNumPages()
	if err != nil {
		return fmt.Errorf("count pages: %w", err)
	}
	if to == 0 || to > numPages {
		to = numPages
	}

	for i := from; i <= to; i++ {
		page, err := reader.GetPage(i)
		if err != nil {
			return fmt.Errorf("page %d: %w", i, err)
		}
		if err := writer.AddPage(page); err != nil {
			return fmt.Errorf("add page %d: %w", i, err)
		}
	}
	return nil
}
