package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	logger, _ := test.NewNullLogger()
	var out, errOut bytes.Buffer
	app := newApp(config{LogLevel: "info"}, &out, &errOut, logger)
	err := app.Run(append([]string{"salesdemo"}, args...))
	return out.String(), errOut.String(), err
}

func TestDefaultRun(t *testing.T) {
	out, errOut, err := runApp(t)
	require.NoError(t, err)

	assert.Contains(t, out, "Updating sales data...\n")
	assert.Contains(t, out, "Query results:\n")
	assert.Contains(t, out, "Total sales from 2025-08-01 to 2025-08-05: 25\n")
	assert.Contains(t, out, "Total sales from 2025-08-06 to 2025-08-10: 13\n")
	assert.Contains(t, out, "Attempting invalid query:\n")
	assert.NotContains(t, out, "Invalid date(s)")
	assert.Equal(t, "Invalid date(s) for query: 2025-08-01 to 2025-08-15\n", errOut)
}

func TestScenarioFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	doc := "start: \"2024-03-01\"\ndays: 3\nsales:\n  - date: \"2024-03-02\"\n    quantity: 9\nqueries:\n  - from: \"2024-03-01\"\n    to: \"2024-03-03\"\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, _, err := runApp(t, "--scenario", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Total sales from 2024-03-01 to 2024-03-03: 9\n")
}

func TestMissingScenarioFile(t *testing.T) {
	_, _, err := runApp(t, "--scenario", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSimulateRejectsBadLambda(t *testing.T) {
	_, _, err := runApp(t, "--simulate", "--lambda", "0")
	assert.Error(t, err)
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(config{LogLevel: "warn"}, &buf)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "app=salesdemo")
}
