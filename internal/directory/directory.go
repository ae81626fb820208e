// Package directory provides the salesperson code-to-name lookup table.
// The backing file is an optional two-column CSV; a missing file yields an
// empty directory and every lookup simply misses.
package directory

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"salesconv/internal/logging"
	"salesconv/internal/sniff"

	"github.com/gocarina/gocsv"
)

// DefaultFile is the conventional location of the salesperson list.
const DefaultFile = "Sales Person List.csv"

// directoryRow maps one line of the salesperson CSV.
type directoryRow struct {
	Code string `csv:"Code"`
	Name string `csv:"Name"`
}

// Directory maps uppercased, trimmed salesperson codes to display names.
// It is immutable after construction and safe to share across concurrent
// conversions.
type Directory struct {
	byCode map[string]string
}

// New builds a Directory from an in-memory mapping. Codes are uppercased and
// trimmed; entries with an empty code or name are dropped. Intended for tests
// and for callers that source the mapping elsewhere.
func New(entries map[string]string) *Directory {
	d := &Directory{byCode: make(map[string]string, len(entries))}
	for code, name := range entries {
		code = strings.ToUpper(strings.TrimSpace(code))
		name = strings.TrimSpace(name)
		if code != "" && name != "" {
			d.byCode[code] = name
		}
	}
	return d
}

// Load reads the salesperson CSV at path. The file is comma-delimited UTF-8
// with a Latin-1 fallback. A missing file is not an error: the directory
// loads empty and all lookups miss.
func Load(path string, logger logging.Logger) (*Directory, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from configuration
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("Salesperson file not found, using empty directory",
				logging.Field{Key: "file", Value: path})
			return New(nil), nil
		}
		return nil, fmt.Errorf("error reading salesperson file: %w", err)
	}

	var rows []directoryRow
	if err := gocsv.UnmarshalBytes(sniff.DecodeBytes(data), &rows); err != nil {
		return nil, fmt.Errorf("error parsing salesperson file %s: %w", path, err)
	}

	entries := make(map[string]string, len(rows))
	for _, row := range rows {
		entries[row.Code] = row.Name
	}

	d := New(entries)
	logger.Info("Loaded salesperson directory",
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "count", Value: d.Len()})
	return d, nil
}

// Lookup returns the display name for a salesperson code. The code is
// trimmed and uppercased before the lookup; an empty code always misses.
func (d *Directory) Lookup(code string) (string, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "", false
	}
	name, ok := d.byCode[code]
	return name, ok
}

// Len returns the number of entries in the directory.
func (d *Directory) Len() int {
	return len(d.byCode)
}

var (
	sharedOnce sync.Once
	sharedDir  *Directory
)

// Shared returns the process-wide directory, loading it from path at most
// once. Concurrent conversions all observe the same immutable mapping; edits
// to the backing file require a process restart to be picked up. Prefer Load
// plus explicit injection where testability matters.
func Shared(path string, logger logging.Logger) *Directory {
	sharedOnce.Do(func() {
		d, err := Load(path, logger)
		if err != nil {
			if logger == nil {
				logger = logging.GetLogger()
			}
			logger.WithError(err).Warn("Failed to load salesperson directory, lookups will miss")
			d = New(nil)
		}
		sharedDir = d
	})
	return sharedDir
}
