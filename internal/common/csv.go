// Package common provides the shared CSV reading and writing used by the
// conversion engine and the command shells.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"salesconv/internal/logging"
	"salesconv/internal/models"
	"salesconv/internal/parsererror"
	"salesconv/internal/sniff"

	"github.com/gocarina/gocsv"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger for the package.
func SetLogger(logger logging.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// ReadRawRows parses the file at path into ordered raw rows keyed by the
// header row, using the detected encoding and delimiter. Rows shorter than
// the header leave their trailing fields absent; extra fields beyond the
// header count are dropped. Malformed rows are passed through rather than
// rejected; the conversion engine coerces values defensively. Only a file
// that cannot be opened or iterated at all fails.
func ReadRawRows(path string) ([]string, []models.RawRow, error) {
	cfg, err := sniff.Detect(path)
	if err != nil {
		return nil, nil, &parsererror.ParseError{File: path, Err: err}
	}

	log.Debug("Reading input file",
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "encoding", Value: cfg.Encoding.String()},
		logging.Field{Key: "delimiter", Value: string(cfg.Delimiter)})

	file, err := os.Open(path) // #nosec G304 -- converter operates on user-provided paths
	if err != nil {
		return nil, nil, &parsererror.ParseError{File: path, Err: err}
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	reader := csv.NewReader(cfg.NewReader(file))
	reader.Comma = cfg.Delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil, nil
		}
		return nil, nil, &parsererror.ParseError{File: path, Err: err}
	}

	var rows []models.RawRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, &parsererror.ParseError{File: path, Err: err}
		}

		row := make(models.RawRow, len(headers))
		for i, name := range headers {
			if i >= len(record) {
				break
			}
			row[name] = record[i]
		}
		rows = append(rows, row)
	}

	log.Info("Read raw rows from input file",
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "count", Value: len(rows)})
	return headers, rows, nil
}

// WriteTemplateCSV serializes template rows to the fixed-schema output CSV at
// path, header row first. All commands use this function so output stays
// byte-consistent across the CLI, batch and HTTP surfaces.
func WriteTemplateCSV(rows []models.TemplateRow, path string) error {
	data, err := MarshalTemplateCSV(rows)
	if err != nil {
		return err
	}
	return writeFile(path, data, len(rows))
}

// WriteLegacyTemplateCSV serializes rows using the narrow legacy schema.
func WriteLegacyTemplateCSV(rows []models.LegacyTemplateRow, path string) error {
	data, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return fmt.Errorf("error marshaling template rows: %w", err)
	}
	return writeFile(path, data, len(rows))
}

// MarshalTemplateCSV renders template rows as CSV bytes with the header row
// first. Used by the HTTP shell to stream results without a temp file.
func MarshalTemplateCSV(rows []models.TemplateRow) ([]byte, error) {
	data, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, fmt.Errorf("error marshaling template rows: %w", err)
	}
	return data, nil
}

func writeFile(path string, data []byte, count int) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		log.WithError(err).Error("Failed to write output CSV")
		return fmt.Errorf("error writing CSV file: %w", err)
	}

	log.Info("Wrote template CSV",
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "count", Value: count})
	return nil
}
