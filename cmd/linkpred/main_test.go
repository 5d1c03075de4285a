package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkpred/similarity"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestMetricsCmd(t *testing.T) {
	out, _, err := execute(t, "metrics")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(similarity.AllMetrics())+1)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.True(t, strings.HasPrefix(lines[4], "RA_CNI"))
	assert.Contains(t, lines[5], "edges")
}

func TestRunCmd(t *testing.T) {
	dir := t.TempDir()
	edges := filepath.Join(dir, "g.edges")
	require.NoError(t, os.WriteFile(edges, []byte("0 1\n0 2\n1 2\n2 3\n"), 0o644))
	out := filepath.Join(dir, "out")

	_, logs, err := execute(t, "run",
		"--edges", edges,
		"--out", out,
		"--metrics", "CN,HPI",
		"--workers", "2",
		"--log-format", "json",
	)
	require.NoError(t, err)
	assert.Contains(t, logs, `"message":"run finished"`)

	hpi, err := os.ReadFile(filepath.Join(out, "HPI.csv"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(hpi), "source target similarity\n"))
	_, err = os.Stat(filepath.Join(out, "manifest.yaml"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(out, "AA.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunCmd_ConfigFileAndFlagPriority(t *testing.T) {
	dir := t.TempDir()
	edges := filepath.Join(dir, "g.edges")
	require.NoError(t, os.WriteFile(edges, []byte("0 1\n1 2\n"), 0o644))
	cfgPath := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"input:\n  edges: "+edges+"\noutput:\n  dir: "+filepath.Join(dir, "from-file")+"\n  metrics: [CN]\n"), 0o644))

	_, _, err := execute(t, "run", "--config", cfgPath, "--prefix", "flag", "--log-level", "error")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "from-file", "flag_CN.csv"))
	assert.NoError(t, err)
}

func TestRunCmd_Errors(t *testing.T) {
	_, logs, err := execute(t, "run", "--log-format", "json")
	require.Error(t, err)
	assert.Contains(t, logs, `"usage":true`)

	_, _, err = execute(t, "run", "--config", filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)

	_, _, err = execute(t, "metrics", "extra")
	assert.Error(t, err)
}
