package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"pdfutils/internal/domain/entities"
	"pdfutils/internal/infrastructure/config"
)

// version is set at build time via ldflags.
var version = "dev"

// app состояние одного запуска командной строки
type app struct {
	in         io.Reader
	out        io.Writer
	configPath string
	configRepo *config.Repository
	config     *entities.Config
	processor  *ApplicationProcessor
}

func newApp(in io.Reader, out io.Writer) *app {
	return &app{in: in, out: out, configRepo: config.NewRepository()}
}

// run выполняет команду и освобождает ресурсы процессора в том числе после ошибки:
// cobra не вызывает PostRun хуки, если RunE вернул ошибку
func (a *app) run(errOut io.Writer, args []string) error {
	defer a.shutdown()

	root := newRootCmd(a, errOut)
	root.SetArgs(args)
	return root.Execute()
}

func (a *app) shutdown() {
	if a.processor != nil {
		a.processor.Shutdown()
	}
}

// newRootCmd собирает дерево команд; ввод и вывод передаются явно для тестов
func newRootCmd(a *app, errOut io.Writer) *cobra.Command {

	root := &cobra.Command{
		Use:   "pdfutils",
		Short: "Interactive PDF toolkit: list, merge, split, watermark, compress and rename",
		Long: `pdfutils works on the PDF files of one directory at a time.

Without a subcommand it starts the interactive menu (plain text by default,
or a full-screen terminal UI with --ui tui). Every menu action is also
available as a non-interactive subcommand.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, cmd == cmd.Root())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.processor.RunInteractive(a.in, a.out)
		},
	}

	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", config.DefaultPath, "config file")
	flags.String("ui", "", "interactive surface: plain or tui")
	flags.String("engine", "", "PDF engine: pdfcpu or unipdf")
	flags.String("log-level", "", "log level: debug, info, warning or error")
	flags.BoolP("verbose", "v", false, "also write log records to stderr")

	root.AddCommand(
		newListCmd(a),
		newMergeCmd(a),
		newSplitCmd(a),
		newWatermarkCmd(a),
		newCompressCmd(a),
		newRenameCmd(a),
		newConfigCmd(a),
	)

	return root
}

// setup загружает конфигурацию с учетом флагов и создает процессор
func (a *app) setup(cmd *cobra.Command, interactive bool) error {
	if err := a.loadConfig(cmd); err != nil {
		return err
	}

	withTUI := interactive && a.config.UI.Mode == entities.UIModeTUI
	processor, err := NewApplicationProcessor(a.config, a.configRepo, a.configPath, withTUI)
	if err != nil {
		return err
	}
	a.processor = processor
	return nil
}

func (a *app) loadConfig(cmd *cobra.Command) error {
	v := a.configRepo.Viper()
	flags := cmd.Root().PersistentFlags()
	for key, flag := range map[string]string{
		"ui.mode":          "ui",
		"engine.backend":   "engine",
		"output.log_level": "log-level",
		"output.verbose":   "verbose",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return err
		}
	}

	cfg, err := a.configRepo.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.config = cfg
	return nil
}

// directory каталог из аргумента или из конфигурации
func (a *app) directory(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return a.config.Scanner.Directory
}

func main() {
	if err := newApp(os.Stdin, os.Stdout).run(os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
