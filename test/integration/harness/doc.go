// Package harness provides utilities for integration testing the workbench CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - WORKBENCH_HOME: Isolated per test (temp directory)
//   - WORKBENCH_DEBUG: Disabled to reduce noise
//   - WORKBENCH_EDITOR: Set to a no-op command
package harness
