// =============================================================================
// Entry Form Tool - Main Entry Point
// =============================================================================
//
// This is the main entry point for the campus entry application data tool
// (进校申请数据处理工具). It initializes the Cobra CLI framework and delegates
// command execution to the cmd package.
//
// USAGE:
//   entryform process      - Import a source file, normalize, validate, export
//   entryform edit         - Open an interactive record editing session
//   entryform version      - Display the application version
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/           : Contains all CLI command definitions (Cobra)
//   - internal/      : Contains core business logic (not for external import)
//   - pkg/           : Contains shared utilities
//
// =============================================================================

package main

import (
	"github.com/hualiu-nbu/entryform/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
