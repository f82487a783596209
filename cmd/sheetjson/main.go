// Package main provides the CLI entry point for sheetjson.
package main

import (
	"errors"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/geoyee/HuBeiMap/pkg/sheetjson"
)

// version is set at build time via ldflags.
var version = "dev"

// errReported is returned once a failure has already been shown to the user.
var errReported = errors.New("conversion failed")

// app holds the state shared by the commands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "sheetjson [input_path] [output_path] [sheet_name]",
		Short: "Convert spreadsheet workbooks to JSON",
		Long: `sheetjson converts an Excel workbook into a JSON document.

The first row of every sheet is a title and is skipped, the second row holds
the column headers. Region columns are filled down across merged cells, known
Chinese headers are renamed to English field names and empty cells become null.

The output defaults to the input path with a .json extension. Without a sheet
name every sheet of the workbook is converted.`,
		Args:          cobra.MaximumNArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
		RunE: a.runConvert,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./sheetjson.yaml or ~/.config/sheetjson/sheetjson.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.Flags().StringP("encoding", "e", "utf-8", "output file encoding (utf-8, gbk, gb18030, ...)")
	rootCmd.Flags().Bool("full-desc", false, "list every known field in desc, not only the ones present")
	rootCmd.Flags().String("password", "", "password of an encrypted workbook")

	a.bindFlag("log_level", rootCmd.PersistentFlags(), "log-level")
	a.bindFlag("encoding", rootCmd.Flags(), "encoding")
	a.bindFlag("full_desc", rootCmd.Flags(), "full-desc")
	a.bindFlag("password", rootCmd.Flags(), "password")

	rootCmd.AddCommand(a.newStatsCmd(), newVersionCmd())
	return rootCmd
}

func (a *app) runConvert(cmd *cobra.Command, args []string) error {
	inputPath := a.v.GetString("input")
	var outputPath, sheetName string
	if len(args) > 0 {
		inputPath = args[0]
	}
	if len(args) > 1 {
		outputPath = args[1]
	}
	if len(args) > 2 {
		sheetName = args[2]
	}
	if inputPath == "" {
		return errors.New("no input file: pass input_path or set input in the config file")
	}

	logger, err := newLogger(cmd.ErrOrStderr(), a.v.GetString("log_level"))
	if err != nil {
		return err
	}
	defer logger.Sync()

	out := cmd.OutOrStdout()
	printBanner(out, inputPath, outputPath, sheetName)

	opts := sheetjson.Options{
		SheetName:  sheetName,
		OutputPath: outputPath,
		Encoding:   a.v.GetString("encoding"),
		FullDesc:   a.v.GetBool("full_desc"),
		Password:   a.v.GetString("password"),
		Logger:     logger,
	}

	result, err := sheetjson.ConvertToFile(inputPath, opts)
	if err != nil {
		logger.Error("conversion failed", zap.Error(err))
		printFailure(out)
		return errReported
	}

	printPreview(out, result)
	return nil
}
