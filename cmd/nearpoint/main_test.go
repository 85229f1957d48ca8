package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hupe1980/nearpoint/bench"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("NEARPOINT_ENV_FILE", filepath.Join(t.TempDir(), "none.env"))

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func resultLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "Min indx: ") {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestRunSmall(t *testing.T) {
	code, out, _ := runCLI(t, "-num_points", "1000", "-nrepeat", "3")
	require.Equal(t, exitOK, code)

	lines := resultLines(out)
	require.Len(t, lines, 3)
	assert.Equal(t, lines[0], lines[1])
	assert.Equal(t, lines[0], lines[2])
	assert.Contains(t, out, bench.TableHeader)
	assert.Contains(t, out, "\n1000 ")
}

func TestRunShorthandPoints(t *testing.T) {
	code, long, _ := runCLI(t, "-num_points", "2000", "-nrepeat", "1")
	require.Equal(t, exitOK, code)
	code, short, _ := runCLI(t, "-p", "2000", "-nrepeat", "1")
	require.Equal(t, exitOK, code)

	assert.Equal(t, resultLines(long), resultLines(short))
}

func TestRunHelpContinues(t *testing.T) {
	for _, flagName := range []string{"-h", "-help"} {
		t.Run(flagName, func(t *testing.T) {
			code, out, _ := runCLI(t, flagName, "-p", "100", "-nrepeat", "1")
			require.Equal(t, exitOK, code)
			assert.True(t, strings.HasPrefix(out, "Nearest Point Options:\n"))
			assert.Contains(t, out, "-num_points (-p)  <int>: number of points (default: 100000)")
			assert.Len(t, resultLines(out), 1)
		})
	}
}

func TestRunEmptySet(t *testing.T) {
	code, out, _ := runCLI(t, "-p", "0", "-nrepeat", "2")
	require.Equal(t, exitOK, code)
	assert.Equal(t, []string{
		"Min indx: -1 with dist2 +Inf",
		"Min indx: -1 with dist2 +Inf",
	}, resultLines(out))
}

func TestRunZeroRepeat(t *testing.T) {
	code, out, _ := runCLI(t, "-p", "100", "-nrepeat", "0")
	require.Equal(t, exitOK, code)
	assert.Empty(t, resultLines(out))
	assert.Contains(t, out, "\n100 ")
}

func TestRunUsageErrors(t *testing.T) {
	tests := [][]string{
		{"-num_points", "lots"},
		{"-nrepeat"},
		{"-unknown"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			code, out, _ := runCLI(t, args...)
			assert.Equal(t, exitUsage, code)
			assert.Empty(t, resultLines(out))
		})
	}
}

func TestRunRejectsPositionalArguments(t *testing.T) {
	for _, args := range [][]string{
		{"extra", "-p", "5"},
		{"-p", "5", "extra"},
		{"-p", "5", "--", "-nrepeat", "1"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			code, out, errOut := runCLI(t, args...)
			assert.Equal(t, exitUsage, code)
			assert.Contains(t, errOut, "Error: unexpected argument")
			assert.Empty(t, resultLines(out))
		})
	}
}

func TestRunInvalidValues(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"-p", "-5"}, "Error: "},
		{[]string{"-nrepeat", "-1"}, "Error: "},
		{[]string{"-kernel", "gpu"}, "Error: "},
		{[]string{"-log_format", "xml"}, "Error: "},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			code, out, errOut := runCLI(t, tt.args...)
			assert.Equal(t, exitError, code)
			assert.Contains(t, errOut, tt.want)
			assert.Empty(t, resultLines(out))
		})
	}
}

func TestRunMemoryLimit(t *testing.T) {
	code, out, errOut := runCLI(t, "-p", "1000", "-nrepeat", "1", "-memory_limit", "100")
	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut, "Error: ")
	assert.Contains(t, errOut, "memory limit")
	assert.Empty(t, resultLines(out))
}

func TestRunFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("NEARPOINT_NREPEAT", "4")
	t.Setenv("NEARPOINT_NUM_POINTS", "300")

	code, out, _ := runCLI(t)
	require.Equal(t, exitOK, code)
	assert.Len(t, resultLines(out), 4)
	assert.Contains(t, out, "\n300 ")

	code, out, _ = runCLI(t, "-nrepeat", "2")
	require.Equal(t, exitOK, code)
	assert.Len(t, resultLines(out), 2)
	assert.Contains(t, out, "\n300 ")
}

func TestRunEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.env")
	require.NoError(t, os.WriteFile(path, []byte("NEARPOINT_NUM_POINTS=50\nNEARPOINT_NREPEAT=2\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("NEARPOINT_NUM_POINTS")
		os.Unsetenv("NEARPOINT_NREPEAT")
	})
	t.Setenv("NEARPOINT_ENV_FILE", path)

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), nil, &stdout, &stderr)
	require.Equal(t, exitOK, code)
	assert.Len(t, resultLines(stdout.String()), 2)
	assert.Contains(t, stdout.String(), "\n50 ")
}

func TestRunMetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nearpoint.prom")

	code, _, _ := runCLI(t, "-p", "500", "-nrepeat", "2", "-metrics_file", path)
	require.Equal(t, exitOK, code)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "nearpoint_search_latency_seconds")
	assert.Contains(t, string(data), "nearpoint_benchmark_runs_total 1")
}

func TestRunJSONLogs(t *testing.T) {
	code, _, errOut := runCLI(t, "-p", "100", "-nrepeat", "1", "-log_format", "json")
	require.Equal(t, exitOK, code)
	assert.Contains(t, errOut, `"msg":"benchmark starting"`)
}

func TestRunCanceled(t *testing.T) {
	t.Setenv("NEARPOINT_ENV_FILE", filepath.Join(t.TempDir(), "none.env"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	code := run(ctx, []string{"-p", "100", "-nrepeat", "3"}, &stdout, &stderr)
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr.String(), "context canceled")
}
