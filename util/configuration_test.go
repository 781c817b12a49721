// =================================================================================
//
//			wwise-ids - https://www.foxhollow.cc/projects/wwise-ids/
//
//		 wwise-ids is a simple CLI utility for turning the sound bank header
//	  generated by Wwise into Go constants and keeping them honest
//
//		 Copyright (c) 2024 Steve Cross <flip@foxhollow.cc>
//
//			Licensed under the Apache License, Version 2.0 (the "License");
//			you may not use this file except in compliance with the License.
//			You may obtain a copy of the License at
//
//			     http://www.apache.org/licenses/LICENSE-2.0
//
//			Unless required by applicable law or agreed to in writing, software
//			distributed under the License is distributed on an "AS IS" BASIS,
//			WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//			See the License for the specific language governing permissions and
//			limitations under the License.
//
// =================================================================================
package util

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"wwise-ids/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `header: ~/sounds/Wwise_IDs.h
output: gen/ids.go
package: sounds
sqlite_path: out/ids.db
log_level: debug
output_type: json
fail_on_cross_category: true
watch:
  debounce_ms: 250
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "wwise-ids.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestReadConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	config, err := ReadConfig(&model.CommandLineArgs{})
	require.NoError(t, err)

	assert.Equal(t, DefaultHeader, config.Header)
	assert.Equal(t, DefaultOutput, config.Output)
	assert.Equal(t, DefaultPackage, config.Package)
	assert.Equal(t, model.LogLevel(slog.LevelInfo), config.LogLevel)
	assert.Equal(t, model.OutputText, config.OutputType)
	assert.Equal(t, DefaultDebounceMs, config.WatchOptions.DebounceMilliseconds)
	assert.True(t, config.WatchOptions.RunOnStart)
}

func TestReadConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	config, err := ReadConfig(&model.CommandLineArgs{ConfigFile: writeConfig(t, testConfig)})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "sounds", "Wwise_IDs.h"), config.Header)
	assert.Equal(t, "gen/ids.go", config.Output)
	assert.Equal(t, "sounds", config.Package)
	assert.Equal(t, "out/ids.db", config.SqlitePath)
	assert.Equal(t, model.LogLevel(slog.LevelDebug), config.LogLevel)
	assert.Equal(t, model.OutputJSON, config.OutputType)
	assert.True(t, config.FailOnCrossCategory)
	assert.Equal(t, 250, config.WatchOptions.DebounceMilliseconds)
}

func TestReadConfigFlagsOverrideFile(t *testing.T) {
	config, err := ReadConfig(&model.CommandLineArgs{
		ConfigFile: writeConfig(t, testConfig),
		LogLevel:   "warn",
		OutputType: "yaml",
		Header:     "other/Wwise_IDs.h",
		Output:     "ak/ids.go",
		Package:    "ak",
	})
	require.NoError(t, err)

	assert.Equal(t, "other/Wwise_IDs.h", config.Header)
	assert.Equal(t, "ak/ids.go", config.Output)
	assert.Equal(t, "ak", config.Package)
	assert.Equal(t, model.LogLevel(slog.LevelWarn), config.LogLevel)
	assert.Equal(t, model.OutputYAML, config.OutputType)
}

func TestReadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args *model.CommandLineArgs
	}{
		{"bad output type", &model.CommandLineArgs{OutputType: "xml"}},
		{"bad log level", &model.CommandLineArgs{LogLevel: "loud"}},
		{"missing explicit file", &model.CommandLineArgs{ConfigFile: "/does/not/exist/wwise-ids.yml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())

			_, err := ReadConfig(tt.args)
			assert.Error(t, err)
		})
	}
}

func TestReadConfigMalformedFile(t *testing.T) {
	tests := map[string]string{
		"broken yaml":     "watch: [1, 2\n",
		"bad output type": "output_type: xml\n",
		"bad log level":   "log_level: loud\n",
		"list log level":  "log_level: [4]\n",
	}

	for name, contents := range tests {
		t.Run(name, func(t *testing.T) {
			config, err := ReadConfig(&model.CommandLineArgs{ConfigFile: writeConfig(t, contents)})
			assert.Error(t, err)
			assert.Nil(t, config)
		})
	}
}

func TestReadConfigNamedValues(t *testing.T) {
	config, err := ReadConfig(&model.CommandLineArgs{ConfigFile: writeConfig(t, "output_type: YAML\nlog_level: WARN+2\n")})
	require.NoError(t, err)

	assert.Equal(t, model.OutputYAML, config.OutputType)
	assert.Equal(t, model.LogLevel(slog.LevelWarn+2), config.LogLevel)
}

func TestResolveHomeDirPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	resolved, err := ResolveHomeDirPath("~/Wwise_IDs.h")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Wwise_IDs.h"), resolved)

	resolved, err = ResolveHomeDirPath("relative/Wwise_IDs.h")
	require.NoError(t, err)
	assert.Equal(t, "relative/Wwise_IDs.h", resolved)
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "x.h")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(dir))
	assert.False(t, FileExists(filepath.Join(dir, "missing.h")))
}
