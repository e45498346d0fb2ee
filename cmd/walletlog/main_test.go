package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv isolates config loading from the developer's machine.
func setupEnv(t *testing.T, env map[string]string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{
		"WALLETLOG_ENVIRONMENT",
		"WALLETLOG_LOGGING_FORMAT",
		"WALLETLOG_LOGGING_OUTPUT",
		"WALLETLOG_METRICS_ENABLED",
		"WALLETLOG_METRICS_NAMESPACE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	for k, v := range env {
		t.Setenv(k, v)
	}
}

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func jsonLines(t *testing.T, s string) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		if !strings.HasPrefix(line, "{") {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m), "line: %s", line)
		out = append(out, m)
	}
	return out
}

func TestVersionCmd(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "walletlog 1.0.0\n", out)
}

func TestSanitizeCmd(t *testing.T) {
	t.Run("json from stdin", func(t *testing.T) {
		out, _, err := execute(t, `{"user":"bob","nested":{"apiKey":"xyz"},"n":1}`, "sanitize", "-")
		require.NoError(t, err)
		assert.JSONEq(t, `{"user":"bob","nested":{"apiKey":"[REDACTED]"},"n":1}`, out)
	})

	t.Run("json from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "payload.json")
		require.NoError(t, os.WriteFile(path, []byte(`["token=abc", {"password": 5}]`), 0o600))

		out, _, err := execute(t, "", "sanitize", path)
		require.NoError(t, err)
		assert.JSONEq(t, `["token: \"[REDACTED]\"", {"password": "[REDACTED]"}]`, out)
	})

	t.Run("plain text", func(t *testing.T) {
		out, _, err := execute(t, "password=hunter2 user=bob", "sanitize")
		require.NoError(t, err)
		assert.Equal(t, `password: "[REDACTED]" user=bob`, out)
	})

	t.Run("empty input", func(t *testing.T) {
		_, _, err := execute(t, "", "sanitize")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no content")
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := execute(t, "", "sanitize", filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read file")
	})
}

func TestEmitCmd_Development(t *testing.T) {
	setupEnv(t, map[string]string{
		"WALLETLOG_ENVIRONMENT":    "development",
		"WALLETLOG_LOGGING_FORMAT": "json",
	})

	out, errOut, err := execute(t, "", "emit",
		"--level", "info", "--module", "Auth", "--message", "login ok",
		"--data", `{"user":"bob","password":"x"}`)
	require.NoError(t, err)

	console := jsonLines(t, out)
	require.Len(t, console, 1)
	assert.Regexp(t, `^\[\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z\] \[INFO\] \[Auth\] login ok$`, console[0]["msg"])
	assert.Equal(t, map[string]any{"user": "bob", "password": "[REDACTED]"}, console[0]["data"])

	reports := jsonLines(t, errOut)
	require.Len(t, reports, 1)
	assert.Equal(t, "breadcrumb", reports[0]["kind"])
	assert.Equal(t, "info", reports[0]["report_level"])
	assert.Equal(t, "login ok", reports[0]["message"])
	assert.Equal(t, "Auth", reports[0]["module"])
	assert.Equal(t, map[string]any{"user": "bob", "password": "[REDACTED]"}, reports[0]["data"])
}

func TestEmitCmd_ProductionSilentConsole(t *testing.T) {
	setupEnv(t, map[string]string{"WALLETLOG_ENVIRONMENT": "production"})

	out, errOut, err := execute(t, "", "emit",
		"--level", "error", "--module", "Net", "--message", "timeout", "--error", "dial failed")
	require.NoError(t, err)

	assert.Empty(t, out)
	reports := jsonLines(t, errOut)
	require.Len(t, reports, 1)
	assert.Equal(t, "error", reports[0]["kind"])
	assert.Equal(t, "dial failed", reports[0]["error"])
	assert.Equal(t, "timeout", reports[0]["message"])
}

func TestEmitCmd_BenchmarkDisplay(t *testing.T) {
	setupEnv(t, map[string]string{"WALLETLOG_ENVIRONMENT": "development"})

	out, errOut, err := execute(t, "", "emit",
		"--level", "warn", "--module", "Sync", "--message", "slow", "--benchmark-display")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Empty(t, errOut)

	out, _, err = execute(t, "", "emit",
		"--level", "error", "--module", "Sync", "--message", "failed", "--benchmark-display")
	require.NoError(t, err)
	assert.Contains(t, out, "[ERROR] [Sync] failed")
}

func TestEmitCmd_Benchmark(t *testing.T) {
	setupEnv(t, map[string]string{"WALLETLOG_ENVIRONMENT": "development"})

	out, errOut, err := execute(t, "", "emit",
		"--level", "benchmark", "--module", "Sync", "--message", "batch", "--duration", "12.345")
	require.NoError(t, err)
	assert.Contains(t, out, "[BENCHMARK] [Sync] batch (12.35ms)")

	reports := jsonLines(t, errOut)
	require.Len(t, reports, 1)
	assert.Equal(t, "BENCHMARK: batch", reports[0]["message"])
	assert.Equal(t, 12.345, reports[0]["duration"])
}

func TestEmitCmd_Metrics(t *testing.T) {
	setupEnv(t, map[string]string{
		"WALLETLOG_ENVIRONMENT":       "development",
		"WALLETLOG_METRICS_ENABLED":   "true",
		"WALLETLOG_METRICS_NAMESPACE": "wl",
	})

	_, errOut, err := execute(t, "", "emit", "--level", "debug", "--module", "m", "--message", "d")
	require.NoError(t, err)
	assert.Contains(t, errOut, `wl_entries_total{level="debug"} 1`)
}

func TestEmitCmd_Errors(t *testing.T) {
	setupEnv(t, nil)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"bad level", []string{"--level", "trace", "--module", "m", "--message", "x"}, "invalid --level"},
		{"none level", []string{"--level", "none", "--module", "m", "--message", "x"}, "invalid --level"},
		{"bad data", []string{"--module", "m", "--message", "x", "--data", "{"}, "invalid --data"},
		{"missing module", []string{"--message", "x"}, "module"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "", append([]string{"emit"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEmitCmd_InvalidConfig(t *testing.T) {
	setupEnv(t, map[string]string{"WALLETLOG_LOGGING_FORMAT": "xml"})

	_, _, err := execute(t, "", "emit", "--module", "m", "--message", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}
