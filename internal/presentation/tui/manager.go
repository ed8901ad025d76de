package tui

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"pdfutils/internal/domain/entities"
	"pdfutils/internal/domain/repositories"
	usecases "pdfutils/internal/usecase"
)

// UI Configuration constants
const (
	MaxLogBufferSize = 1000
	LogFlushInterval = 50 * time.Millisecond
	LogViewHeight    = 10
	FieldWidth       = 50
)

// screen текущий экран
type screen int

const (
	screenMenu screen = iota
	screenAction
	screenConfig
)

// Ключи значений формы операции
const (
	fieldDirectory = "directory"
	fieldSelection = "selection"
	fieldOutput    = "output"
	fieldMode      = "mode"
	fieldRanges    = "ranges"
	fieldWatermark = "watermark"
	fieldNewName   = "new_name"
)

// formValues значения полей формы операции
type formValues map[string]string

// Manager управляет TUI интерфейсом
type Manager struct {
	app           *tview.Application
	pages         *tview.Pages
	currentScreen screen

	// UI компоненты
	mainMenu    *tview.List
	configForm  *tview.Form
	listingView *tview.TextView
	logView     *tview.TextView

	// Зависимости
	toolkit    *usecases.Toolkit
	config     *entities.Config
	configRepo repositories.AppConfigRepository
	configPath string

	// Состояние
	logBuffer   []string
	statusMutex sync.RWMutex

	// Батчинг логов через канал
	logChan  chan string
	logDone  chan struct{}
	logMutex sync.Mutex
}

// NewManager создает новый менеджер TUI
func NewManager() *Manager {
	m := &Manager{
		app:       tview.NewApplication(),
		pages:     tview.NewPages(),
		logBuffer: make([]string, 0, MaxLogBufferSize),
		logChan:   make(chan string, 100),
		logDone:   make(chan struct{}),
	}
	go m.logProcessor()
	return m
}

// Initialize связывает менеджер со сценариями и строит интерфейс
func (m *Manager) Initialize(
	toolkit *usecases.Toolkit,
	config *entities.Config,
	configRepo repositories.AppConfigRepository,
	configPath string,
) {
	m.toolkit = toolkit
	m.config = config
	m.configRepo = configRepo
	m.configPath = configPath

	m.createUI()
	m.setupKeyBindings()
}

// Run запускает TUI
func (m *Manager) Run() error {
	defer m.Cleanup()
	return m.app.SetRoot(m.pages, true).EnableMouse(true).Run()
}

// createUI создает пользовательский интерфейс
func (m *Manager) createUI() {
	m.logView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetMaxLines(MaxLogBufferSize)
	m.logView.SetBorder(true).
		SetTitle("Log").
		SetTitleAlign(tview.AlignLeft)

	m.listingView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	m.listingView.SetBorder(true).
		SetTitle("Available PDFs").
		SetTitleAlign(tview.AlignLeft)

	m.createMainMenu()
	m.createConfigScreen()

	menuLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(m.mainMenu, 0, 1, true).
		AddItem(m.logView, LogViewHeight, 0, false)

	m.pages.AddPage("menu", menuLayout, true, true)
	m.pages.AddPage("config", m.configForm, true, false)
	m.currentScreen = screenMenu
}

// createMainMenu создает главное меню с теми же пунктами, что и текстовое меню
func (m *Manager) createMainMenu() {
	m.mainMenu = tview.NewList()

	for i, action := range entities.MenuActions {
		action := action
		shortcut := rune('1' + i)
		m.mainMenu.AddItem(action.String(), action.Description(), shortcut, func() {
			if action == entities.ActionExit {
				m.stop()
				return
			}
			m.showAction(action)
		})
	}

	m.mainMenu.SetBorder(true).
		SetTitle("PDF Processor Menu (F2 settings, q quit)").
		SetTitleAlign(tview.AlignCenter)

	m.mainMenu.SetSelectedBackgroundColor(tcell.ColorDarkBlue).
		SetSelectedTextColor(tcell.ColorWhite).
		SetMainTextColor(tcell.ColorWhite).
		SetSecondaryTextColor(tcell.ColorGray)
}

// showAction строит форму операции и список PDF выбранной директории
func (m *Manager) showAction(action entities.Action) {
	values := formValues{
		fieldDirectory: m.config.Scanner.Directory,
		fieldMode:      string(entities.SplitByPage),
	}

	form := tview.NewForm()
	addInput := func(label, key string) {
		form.AddInputField(label, values[key], FieldWidth, nil, func(text string) {
			values[key] = text
		})
	}

	form.AddInputField("Directory", values[fieldDirectory], FieldWidth, nil, func(text string) {
		values[fieldDirectory] = text
		m.refreshListing(text)
	})

	switch action {
	case entities.ActionMerge:
		addInput("PDFs to merge (e.g. 1,2,3)", fieldSelection)
		addInput("Merged file name (.pdf)", fieldOutput)
	case entities.ActionSplit:
		addInput("PDF to split (index)", fieldSelection)
		form.AddDropDown("Mode", []string{"Individual pages", "Page ranges"}, 0, func(_ string, index int) {
			if index == 1 {
				values[fieldMode] = string(entities.SplitByRange)
			} else {
				values[fieldMode] = string(entities.SplitByPage)
			}
		})
		addInput("Page ranges (e.g. 1-3,4-6)", fieldRanges)
	case entities.ActionWatermark:
		addInput("PDF to watermark (index)", fieldSelection)
		addInput("Watermark PDF or image path", fieldWatermark)
	case entities.ActionCompress:
		addInput("PDF to compress (index)", fieldSelection)
	case entities.ActionRename:
		addInput("PDF to rename (index)", fieldSelection)
		addInput("New name (.pdf)", fieldNewName)
	}

	form.AddButton("Run", func() {
		message, err := m.execute(action, values)
		if err != nil {
			m.AddLog("ERROR", err.Error())
		} else if message != "" {
			m.AddLog("INFO", message)
		}
		m.refreshListing(values[fieldDirectory])
	})
	form.AddButton("Back", func() {
		m.switchToScreen(screenMenu)
	})
	form.SetCancelFunc(func() {
		m.switchToScreen(screenMenu)
	})

	form.SetBorder(true).
		SetTitle(action.String() + " (Esc - back)").
		SetTitleAlign(tview.AlignCenter)

	body := tview.NewFlex().
		AddItem(form, 0, 2, true).
		AddItem(m.listingView, 0, 1, false)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(body, 0, 1, true).
		AddItem(m.logView, LogViewHeight, 0, false)

	m.pages.RemovePage("action")
	m.pages.AddPage("action", layout, true, false)
	m.refreshListing(values[fieldDirectory])
	m.switchToScreen(screenAction)
}

// execute выполняет операцию синхронно и возвращает сообщение для журнала
func (m *Manager) execute(action entities.Action, v formValues) (string, error) {
	dir := v[fieldDirectory]

	switch action {
	case entities.ActionList:
		files, err := m.toolkit.List.Execute(dir)
		if err != nil {
			return "", err
		}
		if len(files) == 0 {
			return "No PDF files found in the directory.", nil
		}
		return fmt.Sprintf("%d PDF file(s) in %s", len(files), displayDir(dir)), nil

	case entities.ActionMerge:
		result, err := m.toolkit.Merge.Execute(dir, v[fieldSelection], v[fieldOutput])
		if err != nil {
			return "", err
		}
		return "Merged PDF created at: " + result.Outputs[0], nil

	case entities.ActionSplit:
		mode, err := entities.ParseSplitMode(v[fieldMode])
		if err != nil {
			return "", err
		}
		result, err := m.toolkit.Split.Execute(dir, v[fieldSelection], mode, v[fieldRanges])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("PDF split into %d file(s) in %s", len(result.Outputs), displayDir(dir)), nil

	case entities.ActionWatermark:
		result, err := m.toolkit.Watermark.Execute(dir, v[fieldSelection], v[fieldWatermark])
		if err != nil {
			return "", err
		}
		return "Watermarked PDF saved as: " + result.Outputs[0], nil

	case entities.ActionCompress:
		result, err := m.toolkit.Compress.Execute(dir, v[fieldSelection])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Compressed PDF saved as: %s, %s", result.OutputFile, usecases.Summary(result)), nil

	case entities.ActionRename:
		target, err := m.toolkit.Rename.Execute(dir, v[fieldSelection], v[fieldNewName])
		if err != nil {
			return "", err
		}
		return "Renamed to " + target, nil

	default:
		return "", entities.ErrInvalidChoice
	}
}

// refreshListing показывает нумерованный список PDF директории
func (m *Manager) refreshListing(dir string) {
	if m.listingView == nil {
		return
	}
	m.listingView.SetText(m.listingText(dir))
}

func (m *Manager) listingText(dir string) string {
	files, err := m.toolkit.List.Execute(dir)
	if err != nil {
		return "[red]" + tview.Escape(err.Error()) + "[white]"
	}
	if len(files) == 0 {
		return "No PDF files found in the directory."
	}

	var b strings.Builder
	for i, name := range files {
		fmt.Fprintf(&b, "[yellow]%d.[white] %s\n", i+1, tview.Escape(name))
	}
	return b.String()
}

// createConfigScreen создает экран настроек
func (m *Manager) createConfigScreen() {
	draft := *m.config
	backends := []string{entities.BackendPDFCPU, entities.BackendUniPDF}
	modes := []string{entities.UIModePlain, entities.UIModeTUI}
	levels := []string{"debug", "info", "warning", "error"}

	m.configForm = tview.NewForm().
		AddInputField("Default directory", draft.Scanner.Directory, FieldWidth, nil, func(text string) {
			draft.Scanner.Directory = text
		}).
		AddDropDown("Engine", backends, indexOf(backends, draft.Engine.Backend), func(option string, _ int) {
			draft.Engine.Backend = option
		}).
		AddCheckbox("Relaxed validation", draft.Engine.RelaxedValidation, func(checked bool) {
			draft.Engine.RelaxedValidation = checked
		}).
		AddInputField("Watermark image max size (px)", strconv.Itoa(draft.Watermark.ImageMaxPx), 10, tview.InputFieldInteger, func(text string) {
			if n, err := strconv.Atoi(text); err == nil {
				draft.Watermark.ImageMaxPx = n
			}
		}).
		AddInputField("Watermark opacity (0-1]", strconv.FormatFloat(draft.Watermark.Opacity, 'f', -1, 64), 10, tview.InputFieldFloat, func(text string) {
			if f, err := strconv.ParseFloat(text, 64); err == nil {
				draft.Watermark.Opacity = f
			}
		}).
		AddDropDown("Log level", levels, indexOf(levels, draft.Output.LogLevel), func(option string, _ int) {
			draft.Output.LogLevel = option
		}).
		AddDropDown("Start in", modes, indexOf(modes, draft.UI.Mode), func(option string, _ int) {
			draft.UI.Mode = option
		}).
		AddButton("Save", func() {
			if err := m.saveConfig(&draft); err != nil {
				m.AddLog("ERROR", err.Error())
				return
			}
			m.AddLog("INFO", "Settings saved to "+m.configPath+"; engine, watermark and log settings apply on next start")
			m.switchToScreen(screenMenu)
		})

	m.configForm.SetBorder(true).
		SetTitle("Settings (Esc - discard)").
		SetTitleAlign(tview.AlignCenter)

	m.configForm.SetCancelFunc(func() {
		m.pages.RemovePage("config")
		m.createConfigScreen()
		m.pages.AddPage("config", m.configForm, true, false)
		m.switchToScreen(screenMenu)
	})
}

// saveConfig проверяет и сохраняет настройки
func (m *Manager) saveConfig(draft *entities.Config) error {
	if err := draft.Validate(); err != nil {
		return err
	}
	if m.configRepo != nil && m.configPath != "" {
		// Ключ лицензии остается в окружении и в файл не пишется
		saved := *draft
		saved.Engine.UniPDFLicenseKey = ""
		if err := m.configRepo.Save(m.configPath, &saved); err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
	}
	// Сразу применяется только директория по умолчанию для новых форм;
	// движок, водяной знак и журнал созданы при запуске
	m.config.Scanner = draft.Scanner
	return nil
}

// setupKeyBindings настраивает горячие клавиши
func (m *Manager) setupKeyBindings() {
	m.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyF1:
			m.switchToScreen(screenMenu)
			return nil
		case tcell.KeyF2:
			m.switchToScreen(screenConfig)
			return nil
		}

		if m.currentScreen == screenMenu {
			switch event.Rune() {
			case 'q', 'Q':
				m.stop()
				return nil
			}
		}

		return event
	})
}

// switchToScreen переключает на указанный экран
func (m *Manager) switchToScreen(s screen) {
	m.statusMutex.Lock()
	defer m.statusMutex.Unlock()

	m.currentScreen = s

	switch s {
	case screenMenu:
		m.pages.SwitchToPage("menu")
		m.app.SetFocus(m.mainMenu)
	case screenAction:
		m.pages.SwitchToPage("action")
	case screenConfig:
		m.pages.SwitchToPage("config")
	}
}

func (m *Manager) stop() {
	m.Cleanup()
	m.app.Stop()
}

// AddLog добавляет запись в лог через канал (неблокирующе)
func (m *Manager) AddLog(level, message string) {
	var color string
	switch strings.ToLower(level) {
	case "error":
		color = "red"
	case "warning":
		color = "yellow"
	case "success":
		color = "green"
	default:
		color = "white"
	}

	logLine := fmt.Sprintf("[%s]%s:[white] %s", color, strings.ToUpper(level), tview.Escape(message))

	// Если канал переполнен, запись пропускается
	select {
	case m.logChan <- logLine:
	default:
	}
}

// logProcessor обрабатывает логи в отдельной горутине с батчингом
func (m *Manager) logProcessor() {
	ticker := time.NewTicker(LogFlushInterval)
	defer ticker.Stop()

	batch := make([]string, 0, 50)

	for {
		select {
		case logLine := <-m.logChan:
			batch = append(batch, logLine)
			if len(batch) >= 20 {
				m.flushLogBatch(batch)
				batch = make([]string, 0, 50)
			}

		case <-ticker.C:
			if len(batch) > 0 {
				m.flushLogBatch(batch)
				batch = make([]string, 0, 50)
			}

		case <-m.logDone:
			if len(batch) > 0 {
				m.flushLogBatch(batch)
			}
			return
		}
	}
}

// flushLogBatch сбрасывает батч логов в UI
func (m *Manager) flushLogBatch(batch []string) {
	m.statusMutex.Lock()
	m.logBuffer = append(m.logBuffer, batch...)
	if len(m.logBuffer) > MaxLogBufferSize {
		m.logBuffer = m.logBuffer[len(m.logBuffer)-MaxLogBufferSize:]
	}
	logText := strings.Join(m.logBuffer, "\n")
	logView := m.logView
	m.statusMutex.Unlock()

	if logView != nil {
		m.app.QueueUpdateDraw(func() {
			logView.SetText(logText)
			logView.ScrollToEnd()
		})
	}
}

// logLines копия буфера журнала
func (m *Manager) logLines() []string {
	m.statusMutex.RLock()
	defer m.statusMutex.RUnlock()
	return append([]string(nil), m.logBuffer...)
}

// Cleanup освобождает ресурсы менеджера (идемпотентный)
func (m *Manager) Cleanup() {
	m.logMutex.Lock()
	defer m.logMutex.Unlock()

	select {
	case <-m.logDone:
		return
	default:
		close(m.logDone)
	}
}

func indexOf(options []string, value string) int {
	for i, option := range options {
		if strings.EqualFold(option, value) {
			return i
		}
	}
	return 0
}

func displayDir(dir string) string {
	if dir == "" {
		return "the current directory"
	}
	return filepath.Clean(dir)
}
