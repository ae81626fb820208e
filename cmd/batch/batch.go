// Package batch handles batch processing of export folders.
package batch

import (
	"os"
	"path/filepath"

	cmdcommon "salesconv/cmd/common"
	"salesconv/cmd/root"
	"salesconv/internal/config"
	"salesconv/internal/fileutils"
	"salesconv/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process all CSV files from a folder",
	Long: `Batch process every *.csv file in the input folder and write converted
files to the output folder. Each file is converted independently: a file that
fails is logged and skipped, and the batch continues. Successfully converted
inputs are moved into the output folder alongside their converted output.

Example:
  salesconv batch -i to_be_processed/ -o processed/`,
	Run: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) {
	log := root.GetLogger()
	cfg := config.Get()

	inputDir := root.SharedFlags.Input
	if inputDir == "" {
		inputDir = cfg.Folders.Input
	}
	outputDir := root.SharedFlags.Output
	if outputDir == "" {
		outputDir = cfg.Folders.Output
	}

	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		log.Fatalf("Failed to create output folder: %v", err)
	}

	files := fileutils.ListCSVFiles(inputDir)
	if len(files) == 0 {
		log.Warn("No *.csv files found in input folder",
			logging.Field{Key: "folder", Value: inputDir})
		return
	}

	engine := cmdcommon.BuildEngine(log)

	processed := 0
	failed := 0
	for _, in := range files {
		out := cmdcommon.OutputPath(in, outputDir)

		// One bad file must not abort the batch.
		if err := cmdcommon.ProcessFile(engine, in, out, root.SharedFlags.Legacy, log); err != nil {
			log.WithError(err).Error("Failed to process file",
				logging.Field{Key: "file", Value: in})
			failed++
			continue
		}

		moved := filepath.Join(outputDir, filepath.Base(in))
		if err := os.Rename(in, moved); err != nil {
			log.WithError(err).Warn("Could not move processed input",
				logging.Field{Key: "file", Value: in})
		}
		processed++
	}

	log.Info("Batch processing completed",
		logging.Field{Key: "processed", Value: processed},
		logging.Field{Key: "failed", Value: failed})
}
