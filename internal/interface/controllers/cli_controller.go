package controllers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"pdfutils/internal/domain/entities"
	"pdfutils/internal/domain/repositories"
	usecases "pdfutils/internal/usecase"
)

// errInputClosed ввод закончился, цикл меню завершается
var errInputClosed = errors.New("input closed")

// CLIController контроллер текстового меню
type CLIController struct {
	toolkit    *usecases.Toolkit
	fileRepo   repositories.FileRepository
	logger     repositories.Logger
	reader     *bufio.Reader
	out        io.Writer
	defaultDir string
}

// NewCLIController создает новый CLI контроллер.
// defaultDir подставляется при пустом вводе директории; пустая строка означает текущую.
func NewCLIController(
	toolkit *usecases.Toolkit,
	fileRepo repositories.FileRepository,
	logger repositories.Logger,
	in io.Reader,
	out io.Writer,
	defaultDir string,
) *CLIController {
	return &CLIController{
		toolkit:    toolkit,
		fileRepo:   fileRepo,
		logger:     logger,
		reader:     bufio.NewReader(in),
		out:        out,
		defaultDir: defaultDir,
	}
}

// Run крутит меню до выбора Exit или конца ввода. Ошибки операций печатаются
// и не прерывают цикл.
func (c *CLIController) Run() error {
	for {
		c.showMenu()

		input, err := c.ask("Enter your choice: ")
		if err != nil {
			return c.closed(err)
		}

		action, err := entities.ParseAction(input)
		if err != nil {
			c.println("Invalid choice. Please try again.")
			continue
		}

		if action == entities.ActionExit {
			c.println("Exiting PDF Processor. Goodbye!")
			return nil
		}

		if err := c.dispatch(action); err != nil {
			if errors.Is(err, errInputClosed) {
				return nil
			}
			c.logger.Error("%s: %v", action, err)
			c.printf("Error: %v\n", err)
		}
	}
}

func (c *CLIController) dispatch(action entities.Action) error {
	directory, err := c.askDirectory()
	if err != nil {
		return err
	}

	switch action {
	case entities.ActionMerge:
		return c.handleMerge(directory)
	case entities.ActionSplit:
		return c.handleSplit(directory)
	case entities.ActionWatermark:
		return c.handleWatermark(directory)
	case entities.ActionCompress:
		return c.handleCompress(directory)
	case entities.ActionRename:
		return c.handleRename(directory)
	case entities.ActionList:
		_, err := c.showListing(directory)
		return err
	default:
		return entities.ErrInvalidChoice
	}
}

func (c *CLIController) handleMerge(directory string) error {
	files, err := c.showListing(directory)
	if err != nil || len(files) == 0 {
		return err
	}
	if len(files) < 2 {
		c.println("Not enough PDFs to merge.")
		return nil
	}

	selection, err := c.ask("Select PDFs to merge (comma-separated indices, e.g., 1,2,3): ")
	if err != nil {
		return err
	}
	output, err := c.ask("Enter the name for the merged PDF (with .pdf extension): ")
	if err != nil {
		return err
	}

	result, err := c.toolkit.Merge.Execute(directory, selection, output)
	if err != nil {
		return err
	}
	c.printf("Merged PDF created at: %s\n", result.Outputs[0])
	return nil
}

func (c *CLIController) handleSplit(directory string) error {
	files, err := c.showListing(directory)
	if err != nil || len(files) == 0 {
		return err
	}

	selection, err := c.ask("Select a PDF to split (enter index): ")
	if err != nil {
		return err
	}

	c.println("\nSplit Menu:")
	c.println("1. Split into individual pages")
	c.println("2. Split by page ranges")
	choice, err := c.ask("Enter your choice: ")
	if err != nil {
		return err
	}

	mode, err := entities.ParseSplitMode(choice)
	if err != nil {
		c.println("Invalid choice.")
		return nil
	}

	var ranges string
	if mode == entities.SplitByRange {
		if ranges, err = c.ask("Enter page ranges to split (e.g., 1-3,4-6): "); err != nil {
			return err
		}
	}

	result, err := c.toolkit.Split.Execute(directory, selection, mode, ranges)
	if err != nil {
		return err
	}

	if mode == entities.SplitByPage {
		c.printf("PDF split into individual pages in directory: %s\n", directory)
	} else {
		c.printf("PDF split by ranges and saved in directory: %s\n", directory)
	}
	for _, output := range result.Outputs {
		c.printf("  %s\n", filepath.Base(output))
	}
	return nil
}

func (c *CLIController) handleWatermark(directory string) error {
	files, err := c.showListing(directory)
	if err != nil || len(files) == 0 {
		return err
	}

	selection, err := c.ask("Select a PDF to watermark (enter index): ")
	if err != nil {
		return err
	}
	watermark, err := c.ask("Enter the path to the watermark PDF: ")
	if err != nil {
		return err
	}

	result, err := c.toolkit.Watermark.Execute(directory, selection, watermark)
	if err != nil {
		if errors.Is(err, entities.ErrFileNotFound) {
			c.println("Watermark PDF not found.")
			return nil
		}
		return err
	}
	c.printf("Watermarked PDF saved as: %s\n", result.Outputs[0])
	return nil
}

func (c *CLIController) handleCompress(directory string) error {
	files, err := c.showListing(directory)
	if err != nil || len(files) == 0 {
		return err
	}

	selection, err := c.ask("Select a PDF to compress (enter index): ")
	if err != nil {
		return err
	}

	result, err := c.toolkit.Compress.Execute(directory, selection)
	if err != nil {
		return err
	}

	c.printf("Compressed PDF saved as: %s\n", result.OutputFile)
	c.printf("Size: %s\n", usecases.Summary(result))
	if !result.IsEffective() {
		c.println("The file did not get smaller (it may already be optimized).")
	}
	return nil
}

func (c *CLIController) handleRename(directory string) error {
	files, err := c.showListing(directory)
	if err != nil || len(files) == 0 {
		return err
	}

	selection, err := c.ask("Select a PDF to rename (enter index): ")
	if err != nil {
		return err
	}
	idx, err := entities.ParseSelection(selection, len(files))
	if err != nil {
		return entities.NewValidationError("rename", err, "")
	}
	source := filepath.Join(directory, files[idx])

	newName, err := c.ask(fmt.Sprintf("Enter the new name for '%s' (with .pdf extension): ", source))
	if err != nil {
		return err
	}

	target, err := c.toolkit.Rename.RenameFile(source, newName)
	if err != nil {
		return err
	}
	c.printf("'%s' renamed to '%s'.\n", source, target)
	return nil
}

// showListing печатает нумерованный список PDF директории
func (c *CLIController) showListing(directory string) ([]string, error) {
	files, err := c.toolkit.List.Execute(directory)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		c.println("No PDF files found in the directory.")
		return files, nil
	}

	c.println("Available PDFs:")
	for i, name := range files {
		c.printf("%d. %s\n", i+1, name)
	}
	return files, nil
}

// askDirectory запрашивает директорию, пока не будет введена существующая
func (c *CLIController) askDirectory() (string, error) {
	for {
		input, err := c.ask("Enter the directory path (or press Enter for the current directory): ")
		if err != nil {
			return "", err
		}

		if input == "" {
			if c.defaultDir != "" {
				return c.defaultDir, nil
			}
			return ".", nil
		}
		if c.fileRepo.IsDirectory(input) {
			return input, nil
		}
		c.println("Invalid directory. Please try again.")
	}
}

func (c *CLIController) showMenu() {
	c.println("\nPDF Processor Menu")
	for i, action := range entities.MenuActions {
		c.printf("%d. %s\n", i+1, action)
	}
}

// ask печатает приглашение и читает строку без пробелов по краям
func (c *CLIController) ask(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)

	line, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", errInputClosed
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *CLIController) closed(err error) error {
	if errors.Is(err, errInputClosed) {
		c.println("")
		return nil
	}
	return err
}

func (c *CLIController) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *CLIController) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}
