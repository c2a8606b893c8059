package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/despertar/internal/config"
)

// commandResult holds the outcome of one CLI invocation
type commandResult struct {
	Err    error
	Stdout string
}

// testEnvironment is an isolated DESPERTAR_HOME
type testEnvironment struct {
	home string
	tb   testing.TB
}

// newTestEnvironment creates an isolated DESPERTAR_HOME for the test
func newTestEnvironment(tb testing.TB) *testEnvironment {
	tb.Helper()
	env := &testEnvironment{home: tb.TempDir(), tb: tb}
	env.activate()
	return env
}

// activate points DESPERTAR_HOME at this environment
func (e *testEnvironment) activate() {
	e.tb.Setenv("DESPERTAR_HOME", e.home)
	e.tb.Setenv("DESPERTAR_USER_ID", "")
	e.tb.Setenv("DESPERTAR_DEBUG", "")
	e.tb.Setenv("DESPERTAR_DEBUG_FILE", "")
}

// writeSettings saves settings.json into the environment
func (e *testEnvironment) writeSettings(settings *config.Settings) {
	e.tb.Helper()
	data, err := json.Marshal(settings)
	require.NoError(e.tb, err)
	require.NoError(e.tb, os.WriteFile(filepath.Join(e.home, "settings.json"), data, 0644))
}

// path returns a file path inside the environment
func (e *testEnvironment) path(name string) string {
	return filepath.Join(e.home, name)
}

// runCommand runs the CLI in-process the way main does and captures stdout
func (e *testEnvironment) runCommand(args ...string) commandResult {
	e.tb.Helper()
	return e.runCommandWithInput("", args...)
}

// runCommandWithInput is runCommand with stdin fed from input
func (e *testEnvironment) runCommandWithInput(input string, args ...string) commandResult {
	e.tb.Helper()
	e.activate()

	settings, err := config.LoadSettings()
	require.NoError(e.tb, err)

	var cli CLI
	cli.SetSettings(settings)
	parser, err := kong.New(&cli,
		kong.Name("despertar"),
		kong.Vars{"version": "test"},
		kong.Bind(&cli),
		kong.Exit(func(int) { e.tb.Fatalf("command tried to exit: %v", args) }),
	)
	require.NoError(e.tb, err)

	restoreStdin := redirectStdin(e.tb, input)
	defer restoreStdin()
	stdout := captureStdout(e.tb)

	ctx, err := parser.Parse(args)
	if err == nil {
		err = ctx.Run()
	}
	if closeErr := cli.Close(); closeErr != nil {
		e.tb.Logf("closing CLI: %v", closeErr)
	}

	return commandResult{Err: err, Stdout: stdout()}
}

// captureStdout redirects os.Stdout until the returned function is called,
// which restores it and returns what was written
func captureStdout(tb testing.TB) func() string {
	tb.Helper()

	r, w, err := os.Pipe()
	require.NoError(tb, err)

	original := os.Stdout
	os.Stdout = w

	var buf bytes.Buffer
	done := make(chan struct{})
	go func() {
		io.Copy(&buf, r)
		close(done)
	}()

	return func() string {
		w.Close()
		<-done
		r.Close()
		os.Stdout = original
		return buf.String()
	}
}

func redirectStdin(tb testing.TB, input string) func() {
	tb.Helper()

	r, w, err := os.Pipe()
	require.NoError(tb, err)
	_, err = w.WriteString(input)
	require.NoError(tb, err)
	w.Close()

	original := os.Stdin
	os.Stdin = r
	return func() {
		os.Stdin = original
		r.Close()
	}
}

func assertSuccess(tb testing.TB, result commandResult) {
	tb.Helper()
	require.NoError(tb, result.Err, "stdout: %s", result.Stdout)
}

func assertStdoutContains(tb testing.TB, result commandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, expected, "stdout: %s", result.Stdout)
}

// listAlarms runs 'alarms list --format json'
func (e *testEnvironment) listAlarms() []alarmOutput {
	e.tb.Helper()
	result := e.runCommand("alarms", "list", "--format", "json")
	assertSuccess(e.tb, result)

	var alarms []alarmOutput
	require.NoError(e.tb, json.Unmarshal([]byte(result.Stdout), &alarms), "stdout: %s", result.Stdout)
	return alarms
}
