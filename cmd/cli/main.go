package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"cleanser/adapters/excel"
	"cleanser/internal/config"
	"cleanser/internal/dataset"
	"cleanser/internal/errors"
	"cleanser/internal/normalize"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(reportError(os.Stderr, err))
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cleanser",
		Short:         "Normalize job titles and company names in lead spreadsheets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newProcessCmd(),
		newTitleCmd(),
		newCompanyCmd(),
	)
	return rootCmd
}

func newProcessCmd() *cobra.Command {
	var outDir string
	var sheet string
	var jobs int

	cmd := &cobra.Command{
		Use:   "process [files...]",
		Short: "Normalize spreadsheets and write email_<name>.xlsx and LK_<name>.csv",
		Long: `Normalize the "Job Title" and "Company Name" columns of each input file.

For every input two files are written to the output directory:
  email_<name>.xlsx  all columns, normalized
  LK_<name>.csv      Linkedin Url, First Name, Job Title, Company Name (UTF-8 with BOM)

With no arguments the file named by EXCEL_FILE is processed.
Defaults for the flags come from OUTPUT_DIR, SHEET_NAME and MAX_WORKERS.

Example: cleanser process Apollo_Data.xlsx --out-dir ./out`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("out-dir") {
				cfg.Paths.OutputDir = outDir
			}
			if cmd.Flags().Changed("sheet") {
				cfg.Processing.SheetName = sheet
			}
			if cmd.Flags().Changed("jobs") {
				cfg.Processing.MaxWorkers = jobs
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			inputs := args
			if len(inputs) == 0 {
				inputs = []string{cfg.Paths.ExcelFile}
			}

			processor := dataset.NewProcessorWithConfig(excel.NewStore(cfg.Processing.SheetName).WithLogger(cfg.Logger()), cfg)
			results, err := processor.ProcessAll(cmd.Context(), inputs)
			for _, res := range results {
				if res == nil {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n  normalized: %s\n  filtered:   %s\n", res.Input, res.FullOutput, res.ReducedOutput)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&outDir, "out-dir", ".", "Directory for output files")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet to read (default: first sheet)")
	cmd.Flags().IntVar(&jobs, "jobs", 1, "Number of files processed concurrently")

	return cmd
}

func newTitleCmd() *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "title [text...]",
		Short: "Print the normalized form of each job title",
		Long: `Print the normalized form of each job title argument, one per line.

Example: cleanser title "vp of sales" "Director, Chief Information Security Officer" --explain`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !explain {
				return printEach(cmd.OutOrStdout(), args, normalize.JobTitle)
			}
			return printEach(cmd.OutOrStdout(), args, func(title string) string {
				return fmt.Sprintf("%s\t[%s]", normalize.JobTitle(title), normalize.TitleRule(title))
			})
		},
	}

	cmd.Flags().BoolVar(&explain, "explain", false, "Also print which rule rewrote each title")
	return cmd
}

func newCompanyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "company [text...]",
		Short: "Print the normalized form of each company name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printEach(cmd.OutOrStdout(), args, normalize.CompanyName)
		},
	}
}

func printEach(out io.Writer, args []string, fn func(string) string) error {
	lines := make([]string, len(args))
	for i, arg := range args {
		lines[i] = fn(arg)
	}
	_, err := fmt.Fprintln(out, strings.Join(lines, "\n"))
	return err
}

// reportError prints err with its error code and returns the exit code.
func reportError(w io.Writer, err error) int {
	fmt.Fprintf(w, "Error [%s]: %v\n", errors.GetCode(err), err)
	return exitCode(err)
}

// exitCode maps error classes to process exit codes.
func exitCode(err error) int {
	switch {
	case errors.IsMissingColumn(err):
		return 3
	case errors.HasCode(err, errors.CodeInvalidInput), errors.HasCode(err, errors.CodeConfigInvalid):
		return 2
	case errors.IsIO(err):
		return 4
	default:
		return 1
	}
}
