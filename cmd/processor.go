package main

import (
	"fmt"
	"io"

	"pdfutils/internal/domain/entities"
	"pdfutils/internal/domain/repositories"
	"pdfutils/internal/infrastructure/engines"
	"pdfutils/internal/infrastructure/logging"
	infraRepos "pdfutils/internal/infrastructure/repositories"
	"pdfutils/internal/interface/controllers"
	"pdfutils/internal/presentation/tui"
	usecases "pdfutils/internal/usecase"
)

// ApplicationProcessor связывает конфигурацию, движок, логгер и сценарии
type ApplicationProcessor struct {
	config     *entities.Config
	configRepo repositories.AppConfigRepository
	configPath string

	fileRepo   repositories.FileRepository
	fileLogger *logging.FileLogger
	logger     repositories.Logger
	engine     repositories.PDFEngine
	toolkit    *usecases.Toolkit
	tuiManager *tui.Manager
	closed     bool
}

// NewApplicationProcessor создает процессор. withTUI включает зеркалирование логов в TUI.
func NewApplicationProcessor(
	config *entities.Config,
	configRepo repositories.AppConfigRepository,
	configPath string,
	withTUI bool,
) (*ApplicationProcessor, error) {
	fileLogger, err := logging.NewFileLogger(logging.Options{
		Level:     config.Output.LogLevel,
		LogToFile: config.Output.LogToFile,
		FileName:  config.Output.LogFileName,
		// stderr перекрыл бы полноэкранный интерфейс
		Verbose: config.Output.Verbose && !withTUI,
	})
	if err != nil {
		return nil, err
	}

	engine, err := engines.New(config)
	if err != nil {
		fileLogger.Close()
		return nil, err
	}

	p := &ApplicationProcessor{
		config:     config,
		configRepo: configRepo,
		configPath: configPath,
		fileRepo:   infraRepos.NewFileSystemRepository(),
		fileLogger: fileLogger,
		logger:     fileLogger,
		engine:     engine,
	}

	if withTUI {
		p.tuiManager = tui.NewManager()
		p.logger = tui.NewUILogger(fileLogger, p.tuiManager)
	}

	p.toolkit = usecases.NewToolkit(engine, p.fileRepo, p.logger)
	p.logger.Debug("Engine %s, config %s", engine.Name(), configPath)
	return p, nil
}

// Toolkit сценарии для подкоманд
func (p *ApplicationProcessor) Toolkit() *usecases.Toolkit {
	return p.toolkit
}

// RunInteractive запускает меню в режиме из конфигурации
func (p *ApplicationProcessor) RunInteractive(in io.Reader, out io.Writer) error {
	if p.tuiManager != nil {
		p.tuiManager.Initialize(p.toolkit, p.config, p.configRepo, p.configPath)
		if err := p.tuiManager.Run(); err != nil {
			return fmt.Errorf("tui: %w", err)
		}
		return nil
	}

	controller := controllers.NewCLIController(p.toolkit, p.fileRepo, p.logger, in, out, p.config.Scanner.Directory)
	return controller.Run()
}

// Shutdown освобождает ресурсы процессора
func (p *ApplicationProcessor) Shutdown() {
	if p.closed {
		return
	}
	p.closed = true

	if p.tuiManager != nil {
		p.tuiManager.Cleanup()
	}
	if p.fileLogger != nil {
		p.fileLogger.Close()
	}
}
