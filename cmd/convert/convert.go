// Package convert handles single-file and folder conversion commands.
package convert

import (
	"os"

	cmdcommon "salesconv/cmd/common"
	"salesconv/cmd/root"
	"salesconv/internal/config"
	"salesconv/internal/fileutils"

	"github.com/spf13/cobra"
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a sales-order CSV export to the template format",
	Long: `Convert a sales-order CSV export to the template format.

When -i names a file, that file is converted. When it names a folder, every
*.csv file inside it is converted. Output files are written to the output
folder as <name>_converted.csv.`,
	Run: convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) {
	log := root.GetLogger()

	input := root.SharedFlags.Input
	if input == "" {
		log.Fatalf("An input file or folder must be specified with -i")
	}

	outputDir := root.SharedFlags.Output
	if outputDir == "" {
		outputDir = config.Get().Folders.Output
	}

	engine := cmdcommon.BuildEngine(log)

	info, err := os.Stat(input)
	if err != nil {
		log.Fatalf("Cannot read input %s: %v", input, err)
	}

	if !info.IsDir() {
		out := cmdcommon.OutputPath(input, outputDir)
		if err := cmdcommon.ProcessFile(engine, input, out, root.SharedFlags.Legacy, log); err != nil {
			log.Fatalf("Error converting file: %v", err)
		}
		return
	}

	converted := 0
	for _, in := range fileutils.ListCSVFiles(input) {
		out := cmdcommon.OutputPath(in, outputDir)
		if err := cmdcommon.ProcessFile(engine, in, out, root.SharedFlags.Legacy, log); err != nil {
			log.Fatalf("Error converting file: %v", err)
		}
		converted++
	}

	if converted == 0 {
		log.Warn("No *.csv files found in input folder")
	}
}
