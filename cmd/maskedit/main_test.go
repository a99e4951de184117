package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// execute runs the root command with a config path that does not exist so
// the user's configuration never leaks into tests.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cfg := filepath.Join(t.TempDir(), "missing.toml")
	cmd.SetArgs(append(args, "--config", cfg, "--logfile", filepath.Join(t.TempDir(), "test.log")))
	err := cmd.Execute()
	return out.String(), err
}

func TestApplyJSON(t *testing.T) {
	out, err := execute(t, "apply", "--preset", "phone", "--data", "79161234567", "-o", "json")
	require.NoError(t, err)

	assert.Equal(t, "+7(916)123-45-67", gjson.Get(out, "value").String())
	assert.True(t, gjson.Get(out, "valueChanged").Bool())
	assert.Equal(t, "insertText", gjson.Get(out, "inputType").String())
}

func TestApplyFlagsOverridePreset(t *testing.T) {
	out, err := execute(t, "apply", "--preset", "numeric", "--maxlength", "3", "--value", "123", "--data", "4", "-o", "json")
	require.NoError(t, err)

	assert.Equal(t, "123", gjson.Get(out, "value").String())
	assert.True(t, gjson.Get(out, "maxLengthBlocked").Bool())
}

func TestApplyUnknownPreset(t *testing.T) {
	_, err := execute(t, "apply", "--preset", "nope")
	assert.ErrorContains(t, err, "unknown field preset")
}

func TestApplyBadOutputFormat(t *testing.T) {
	_, err := execute(t, "apply", "-o", "yaml")
	assert.Error(t, err)
}

func TestReplayJSONLines(t *testing.T) {
	script := filepath.Join(t.TempDir(), "steps.jsonl")
	require.NoError(t, os.WriteFile(script, []byte(strings.Join([]string{
		`{"input": "insertText", "data": "1"}`,
		`{"input": "insertText", "data": "2"}`,
		`{"input": "insertText", "data": "3"}`,
		`{"key": "Ctrl+Z"}`,
	}, "\n")), 0o644))

	out, err := execute(t, "replay", script, "--preset", "time", "--platform", "other", "-o", "json")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "12:3", gjson.Get(lines[2], "value").String())
	// Consecutive typing is one undo step.
	assert.Equal(t, "", gjson.Get(lines[3], "value").String())
	assert.True(t, gjson.Get(lines[3], "canRedo").Bool())
}

func TestReplayMissingFile(t *testing.T) {
	_, err := execute(t, "replay", filepath.Join(t.TempDir(), "none.jsonl"))
	assert.ErrorContains(t, err, "open script")
}

func TestPresetsList(t *testing.T) {
	out, err := execute(t, "presets", "-o", "cli")
	require.NoError(t, err)
	assert.Contains(t, out, "phone")
	assert.Contains(t, out, `format="**.**.****"`)
}
