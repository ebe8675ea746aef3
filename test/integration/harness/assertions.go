package harness

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func outputs(result CommandResult) string {
	return "\nStdout: " + result.Stdout + "\nStderr: " + result.Stderr
}

// AssertSuccess verifies the command exited with 0.
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Equal(tb, 0, result.ExitCode, "Expected success, got exit %d.%s", result.ExitCode, outputs(result))
}

// AssertFailure verifies the command exited with any non-zero code.
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotEqual(tb, 0, result.ExitCode, "Expected failure, got success.%s", outputs(result))
}

// AssertExitCode verifies the command exited with a specific code.
// Errors returned by a command exit with 1.
func AssertExitCode(tb testing.TB, result CommandResult, expected int) {
	tb.Helper()
	assert.Equal(tb, expected, result.ExitCode, "Unexpected exit code.%s", outputs(result))
}

// AssertStdoutContains verifies stdout contains the expected string.
func AssertStdoutContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, expected, "Stdout is missing %q.%s", expected, outputs(result))
}

// AssertStdoutNotContains verifies stdout does not contain the string.
func AssertStdoutNotContains(tb testing.TB, result CommandResult, unexpected string) {
	tb.Helper()
	assert.NotContains(tb, result.Stdout, unexpected, "Stdout unexpectedly has %q.%s", unexpected, outputs(result))
}

// AssertStderrContains verifies stderr contains the expected string.
func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected, "Stderr is missing %q.%s", expected, outputs(result))
}

// AssertStdoutEmpty verifies nothing but whitespace went to stdout.
func AssertStdoutEmpty(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Empty(tb, strings.TrimSpace(result.Stdout), "Expected empty stdout.%s", outputs(result))
}

// AssertStderrEmpty verifies nothing but whitespace went to stderr.
func AssertStderrEmpty(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Empty(tb, strings.TrimSpace(result.Stderr), "Expected empty stderr.%s", outputs(result))
}

// AssertValidJSON unmarshals stdout into target.
func AssertValidJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	require.NoError(tb, json.Unmarshal([]byte(result.Stdout), target), "Expected valid JSON.%s", outputs(result))
}

// AssertJSONContains verifies stdout is a JSON object whose key holds expected.
func AssertJSONContains(tb testing.TB, result CommandResult, key string, expected any) {
	tb.Helper()
	var data map[string]any
	AssertValidJSON(tb, result, &data)
	assert.Equal(tb, expected, data[key], "JSON key %q mismatch", key)
}
