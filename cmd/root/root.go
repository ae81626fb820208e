// Package root contains the root command for the application
package root

import (
	"salesconv/internal/common"
	"salesconv/internal/config"
	"salesconv/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are shared by multiple commands
type CommonFlags struct {
	Input  string
	Output string
	Legacy bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "salesconv",
		Short: "Convert ERP sales-order CSV exports to the order-import template",
		Long: `salesconv converts loosely-structured sales-order CSV exports into the
fixed-schema template consumed by the order-management import. Delimiter and
encoding are detected automatically, columns are matched by a header alias
table, and line items are grouped into orders by document number.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to salesconv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			common.SetLogger(logging.NewLogrusAdapterFromLogger(Log))
		},
	}

	// SharedFlags holds the common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// GetLogger returns the shared logger wrapped in the logging abstraction.
func GetLogger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file or folder")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output folder")
	Cmd.PersistentFlags().BoolVar(&SharedFlags.Legacy, "legacy", false, "Write the legacy template schema without Cust #/Salesperson columns")
}
