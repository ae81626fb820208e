// Package common contains shared functionality for command handlers.
package common

import (
	"fmt"
	"path/filepath"
	"strings"

	"salesconv/internal/alias"
	"salesconv/internal/common"
	"salesconv/internal/config"
	"salesconv/internal/converter"
	"salesconv/internal/directory"
	"salesconv/internal/logging"
	"salesconv/internal/models"
)

// BuildEngine constructs the conversion engine from configuration: the
// shared salesperson directory and the alias table, optionally extended from
// an alias override file.
func BuildEngine(log logging.Logger) *converter.Engine {
	cfg := config.Get()

	dir := directory.Shared(cfg.Salesperson.File, log)
	engine := converter.New(dir, log)

	table, err := alias.LoadTable(cfg.Alias.File)
	if err != nil {
		log.WithError(err).Warn("Failed to load alias overrides, using built-in table")
	} else {
		engine.SetAliasTable(table)
	}

	return engine
}

// OutputPath returns the conventional output path for an input file:
// <outputDir>/<base>_converted.csv.
func OutputPath(inputFile, outputDir string) string {
	base := strings.TrimSuffix(filepath.Base(inputFile), filepath.Ext(inputFile))
	return filepath.Join(outputDir, base+"_converted.csv")
}

// ProcessFile converts one input file and writes the template CSV, using the
// legacy narrow schema when requested.
func ProcessFile(engine *converter.Engine, inputFile, outputFile string, legacy bool, log logging.Logger) error {
	if log == nil {
		log = logging.GetLogger()
	}

	rows, err := engine.ConvertFile(inputFile)
	if err != nil {
		return fmt.Errorf("error converting %s: %w", inputFile, err)
	}

	if legacy {
		err = common.WriteLegacyTemplateCSV(models.ToLegacy(rows), outputFile)
	} else {
		err = common.WriteTemplateCSV(rows, outputFile)
	}
	if err != nil {
		return fmt.Errorf("error writing %s: %w", outputFile, err)
	}

	log.Info("Converted file",
		logging.Field{Key: "input", Value: inputFile},
		logging.Field{Key: "output", Value: outputFile},
		logging.Field{Key: "lines", Value: len(rows)})
	return nil
}
