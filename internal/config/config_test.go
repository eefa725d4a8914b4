package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renesugar/gircheck/pkg/gircheck"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestLoad_AllFields(t *testing.T) {
	path := writeConfig(t, `output: build/gir
filelist: gir-files.txt
exclude:
  registered: lists/registered.txt
  gtypes: lists/gtypes.txt
  headers: lists/headers.txt
workers: 4
report: build/report.yaml
log_json: true
verbose: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "build/gir", cfg.Output)
	assert.Equal(t, "gir-files.txt", cfg.FileList)
	assert.Equal(t, "lists/registered.txt", cfg.Exclude.Registered)
	assert.Equal(t, "lists/gtypes.txt", cfg.Exclude.GTypes)
	assert.Equal(t, "lists/headers.txt", cfg.Exclude.Headers)
	assert.Equal(t, 4, cfg.WorkerCount())
	assert.Equal(t, "build/report.yaml", cfg.Report)
	assert.True(t, cfg.LogJSONEnabled())
	require.NotNil(t, cfg.Verbose)
	assert.False(t, *cfg.Verbose)
}

func TestLoad_MinimalYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "output: out\n"))
	require.NoError(t, err)

	assert.Equal(t, "out", cfg.Output)
	assert.Nil(t, cfg.Workers)
	assert.Equal(t, 0, cfg.WorkerCount())
	assert.False(t, cfg.VerboseEnabled())
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), ConfigFileName))
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{{invalid"))
	assert.ErrorIs(t, err, gircheck.ErrInvalidConfig)
	assert.Nil(t, cfg)
}

func TestLoad_NegativeWorkers(t *testing.T) {
	_, err := Load(writeConfig(t, "workers: -2\n"))
	assert.ErrorIs(t, err, gircheck.ErrInvalidConfig)
}

func TestFromEnv(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"GIRCHECK_OUTPUT":         "/env/out",
		"GIRCHECK_EXCLUDE_GTYPES": "/env/gtypes.txt",
		"GIRCHECK_WORKERS":        "3",
		"GIRCHECK_VERBOSE":        "1",
		"UNRELATED":               "x",
	}))
	require.NoError(t, err)

	assert.Equal(t, "/env/out", cfg.Output)
	assert.Equal(t, "/env/gtypes.txt", cfg.Exclude.GTypes)
	assert.Equal(t, 3, cfg.WorkerCount())
	assert.True(t, cfg.VerboseEnabled())
	assert.Nil(t, cfg.LogJSON)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"workers not a number", map[string]string{"GIRCHECK_WORKERS": "many"}},
		{"negative workers", map[string]string{"GIRCHECK_WORKERS": "-1"}},
		{"bad boolean", map[string]string{"GIRCHECK_LOG_JSON": "sometimes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnv(envMap(tt.env))
			assert.ErrorIs(t, err, gircheck.ErrInvalidConfig)
		})
	}
}

func TestOverlay(t *testing.T) {
	two, five := 2, 5
	yes, no := true, false

	env := &ProjectConfig{Output: "/env", FileList: "/env/files.txt", Workers: &five, LogJSON: &yes}
	file := &ProjectConfig{Output: "/file", Workers: &two, LogJSON: &no, Exclude: ExcludeConfig{Headers: "/file/h.txt"}}

	got := Overlay(file, env)
	assert.Equal(t, "/file", got.Output)
	assert.Equal(t, "/env/files.txt", got.FileList)
	assert.Equal(t, "/file/h.txt", got.Exclude.Headers)
	assert.Equal(t, 2, got.WorkerCount())
	assert.False(t, got.LogJSONEnabled())

	assert.Equal(t, env, Overlay(nil, env))
	assert.Equal(t, &ProjectConfig{}, Overlay(nil, nil))
}
