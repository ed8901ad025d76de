package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"pdfutils/internal/domain/entities"
	usecases "pdfutils/internal/usecase"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [directory]",
		Short: "Print the numbered PDF listing of a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := a.processor.Toolkit().List.Execute(a.directory(args))
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Fprintln(a.out, "No PDF files found in the directory.")
				return nil
			}
			for i, name := range files {
				fmt.Fprintf(a.out, "%d. %s\n", i+1, name)
			}
			return nil
		},
	}
}

func newMergeCmd(a *app) *cobra.Command {
	var selection, output string

	cmd := &cobra.Command{
		Use:   "merge [directory]",
		Short: "Merge the selected PDFs in the given order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.processor.Toolkit().Merge.Execute(a.directory(args), selection, output)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Merged PDF created at: %s\n", result.Outputs[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&selection, "select", "s", "", "comma-separated 1-based indices, e.g. 1,3,2")
	cmd.Flags().StringVarP(&output, "output", "o", "", "name of the merged PDF (with .pdf extension)")
	_ = cmd.MarkFlagRequired("select")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func newSplitCmd(a *app) *cobra.Command {
	var selection, mode, ranges string

	cmd := &cobra.Command{
		Use:   "split [directory]",
		Short: "Split a PDF into single pages or page ranges",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			splitMode, err := entities.ParseSplitMode(mode)
			if err != nil {
				return err
			}
			if splitMode == entities.SplitByRange && ranges == "" {
				return errors.New("--ranges is required with --mode range")
			}

			result, err := a.processor.Toolkit().Split.Execute(a.directory(args), selection, splitMode, ranges)
			if result != nil {
				for _, output := range result.Outputs {
					fmt.Fprintln(a.out, filepath.Base(output))
				}
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&selection, "select", "s", "", "1-based index of the PDF to split")
	cmd.Flags().StringVarP(&mode, "mode", "m", "page", "split mode: page or range")
	cmd.Flags().StringVarP(&ranges, "ranges", "r", "", "page ranges for range mode, e.g. 1-3,4-6")
	_ = cmd.MarkFlagRequired("select")
	return cmd
}

func newWatermarkCmd(a *app) *cobra.Command {
	var selection, watermark string

	cmd := &cobra.Command{
		Use:   "watermark [directory]",
		Short: "Stamp a watermark PDF or image on every page of a PDF",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.processor.Toolkit().Watermark.Execute(a.directory(args), selection, watermark)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Watermarked PDF saved as: %s\n", result.Outputs[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&selection, "select", "s", "", "1-based index of the PDF to watermark")
	cmd.Flags().StringVarP(&watermark, "watermark", "w", "", "path to the watermark PDF (or a PNG/JPEG image)")
	_ = cmd.MarkFlagRequired("select")
	_ = cmd.MarkFlagRequired("watermark")
	return cmd
}

func newCompressCmd(a *app) *cobra.Command {
	var (
		selection string
		all       bool
	)

	cmd := &cobra.Command{
		Use:   "compress [directory]",
		Short: "Re-save a PDF (or every PDF with --all) through the optimizing writer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toolkit := a.processor.Toolkit()
			if all {
				return compressAll(a, toolkit, a.directory(args))
			}
			if selection == "" {
				return errors.New("either --select or --all is required")
			}

			result, err := toolkit.Compress.Execute(a.directory(args), selection)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Compressed PDF saved as: %s\n", result.OutputFile)
			fmt.Fprintf(a.out, "Size: %s\n", usecases.Summary(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&selection, "select", "s", "", "1-based index of the PDF to compress")
	cmd.Flags().BoolVar(&all, "all", false, "compress every PDF of the directory")
	cmd.MarkFlagsMutuallyExclusive("select", "all")
	return cmd
}

func compressAll(a *app, toolkit *usecases.Toolkit, directory string) error {
	result, err := toolkit.CompressDirectory.Execute(directory)
	if err != nil {
		return err
	}

	for _, r := range result.Results {
		fmt.Fprintf(a.out, "%s: %s\n", filepath.Base(r.OutputFile), usecases.Summary(r))
	}
	for _, e := range result.Errors {
		fmt.Fprintf(a.out, "failed: %v\n", e)
	}
	fmt.Fprintf(a.out, "Compressed %d of %d file(s)\n", result.SuccessCount, result.TotalFiles)

	if result.FailedCount > 0 {
		return fmt.Errorf("%d file(s) failed to compress", result.FailedCount)
	}
	return nil
}

func newRenameCmd(a *app) *cobra.Command {
	var selection, to string

	cmd := &cobra.Command{
		Use:   "rename [directory]",
		Short: "Rename a PDF inside its directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := a.processor.Toolkit().Rename.Execute(a.directory(args), selection, to)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Renamed to '%s'.\n", filepath.Base(target))
			return nil
		},
	}

	cmd.Flags().StringVarP(&selection, "select", "s", "", "1-based index of the PDF to rename")
	cmd.Flags().StringVarP(&to, "to", "t", "", "new file name (with .pdf extension)")
	_ = cmd.MarkFlagRequired("select")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
		// Движок и логгер для работы с конфигурацией не нужны
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(cmd)
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(a.configPath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", a.configPath)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			// Ключ лицензии остается в окружении и в файл не пишется
			cfg := *a.config
			cfg.Engine.UniPDFLicenseKey = ""
			if err := a.configRepo.Save(a.configPath, &cfg); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Configuration written to %s\n", a.configPath)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.config
			fmt.Fprintf(a.out, "scanner.directory: %s\n", c.Scanner.Directory)
			fmt.Fprintf(a.out, "engine.backend: %s\n", c.Engine.Backend)
			fmt.Fprintf(a.out, "engine.relaxed_validation: %t\n", c.Engine.RelaxedValidation)
			fmt.Fprintf(a.out, "watermark.image_max_px: %d\n", c.Watermark.ImageMaxPx)
			fmt.Fprintf(a.out, "watermark.opacity: %.2f\n", c.Watermark.Opacity)
			fmt.Fprintf(a.out, "output.log_level: %s\n", c.Output.LogLevel)
			fmt.Fprintf(a.out, "output.log_to_file: %t\n", c.Output.LogToFile)
			fmt.Fprintf(a.out, "output.log_file_name: %s\n", c.Output.LogFileName)
			fmt.Fprintf(a.out, "output.verbose: %t\n", c.Output.Verbose)
			fmt.Fprintf(a.out, "ui.mode: %s\n", c.UI.Mode)
			return nil
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
