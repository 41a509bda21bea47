// =============================================================================
// Entry Form Tool - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (entryform)
//   ├── processCmd (entryform process)
//   ├── editCmd    (entryform edit)
//   └── versionCmd (entryform version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the tool configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "entryform",

	Short: "进校申请数据处理工具 - normalize, validate and export campus entry applications",

	Long: `Entry Form Tool (进校申请数据处理工具) edits and validates campus entry
application records loaded from spreadsheet or CSV sources and re-exports a
normalized file in the fixed schema the campus ingestion system requires.

Key Features:
  - Header reconciliation: column order, extra columns and label variants
    in the source are irrelevant
  - Field normalization (vehicle plates, export markers, datetimes)
  - Fixed per-record validation with the operator-facing rule messages
  - Batch fill of field values across a record range
  - CSV (GB18030, descriptive banner), XLSX and JSON export targets

Example Usage:
  entryform process 申请表.xlsx -o 导出.csv   # One-shot normalize and export
  entryform edit 申请表.csv                   # Interactive record editing
  entryform process in.csv -o out.json --fill 审批人姓名=张三`,

	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print the help message.
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	// --config flag: Allows the user to specify a custom configuration file.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"entryform.yaml",
		"Path to the tool configuration file",
	)

	// --verbose flag: Enables verbose/debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
