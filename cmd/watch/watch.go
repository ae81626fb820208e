// Package watch implements the folder-polling watcher. It is an I/O shell:
// when new CSV files appear in the watch folder it shells out to
// `salesconv batch` as a subprocess, so a crash in a conversion run never
// takes the watcher down.
package watch

import (
	"context"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"salesconv/cmd/root"
	"salesconv/internal/config"
	"salesconv/internal/fileutils"
	"salesconv/internal/logging"

	"github.com/spf13/cobra"
)

var once bool

// Cmd represents the watch command
var Cmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a folder and convert new CSV files automatically",
	Long: `Watch the input folder and convert CSV files as they appear.

The watcher polls the folder on an interval and runs the converter as a
subprocess with a timeout whenever new files show up. Use --once to run a
single scan-and-convert pass and exit.`,
	Run: watchFunc,
}

func init() {
	Cmd.Flags().BoolVar(&once, "once", false, "Scan and convert once, then exit")
}

func watchFunc(cmd *cobra.Command, args []string) {
	log := root.GetLogger()
	cfg := config.Get()

	watchDir := root.SharedFlags.Input
	if watchDir == "" {
		watchDir = cfg.Folders.Input
	}
	outputDir := root.SharedFlags.Output
	if outputDir == "" {
		outputDir = cfg.Folders.Output
	}

	if err := fileutils.EnsureDirectoryExists(watchDir); err != nil {
		log.Fatalf("Failed to create watch folder %s: %v", watchDir, err)
	}

	log.Info("Watching folder for CSV files",
		logging.Field{Key: "folder", Value: watchDir},
		logging.Field{Key: "interval", Value: cfg.WatchInterval().String()})

	if existing := fileutils.ListCSVFiles(watchDir); len(existing) > 0 {
		log.Info("Found existing CSV files",
			logging.Field{Key: "count", Value: len(existing)},
			logging.Field{Key: "files", Value: baseNames(existing)})
		runConverter(watchDir, outputDir, cfg.WatchTimeout(), log)
	}

	if once {
		return
	}

	processed := toSet(fileutils.ListCSVFiles(watchDir))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(cfg.WatchInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Watcher stopped")
			return
		case <-ticker.C:
			current := fileutils.ListCSVFiles(watchDir)
			var fresh []string
			for _, f := range current {
				if !processed[f] {
					fresh = append(fresh, f)
				}
			}
			if len(fresh) == 0 {
				continue
			}

			log.Info("Detected new CSV files",
				logging.Field{Key: "count", Value: len(fresh)},
				logging.Field{Key: "files", Value: baseNames(fresh)})
			runConverter(watchDir, outputDir, cfg.WatchTimeout(), log)
			processed = toSet(fileutils.ListCSVFiles(watchDir))
		}
	}
}

// runConverter invokes this binary's batch command as a subprocess with a
// timeout, so one stuck or crashing conversion run cannot hang the watcher.
func runConverter(inputDir, outputDir string, timeout time.Duration, log logging.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	self, err := os.Executable()
	if err != nil {
		log.WithError(err).Error("Cannot locate own executable")
		return
	}

	converterCmd := exec.CommandContext(ctx, self, "batch", "-i", inputDir, "-o", outputDir)
	output, err := converterCmd.CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		log.Error("Converter run timed out",
			logging.Field{Key: "timeout", Value: timeout.String()})
		return
	}
	if err != nil {
		log.WithError(err).Error("Converter run failed",
			logging.Field{Key: "output", Value: strings.TrimSpace(string(output))})
		return
	}
	log.Info("Converter run completed")
}

func baseNames(paths []string) []string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	return names
}

func toSet(paths []string) map[string]bool {
	set := make(map[string]bool, len(paths))
	for _, p := range paths {
		set[p] = true
	}
	return set
}
