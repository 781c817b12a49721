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
package shared

import (
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureOutput(t *testing.T) {
	ui := &fakeUI{}

	previous := slog.Default()
	slog.SetDefault(slog.New(NewUiLogHandler(ui, slog.LevelDebug, nil)))
	defer slog.SetDefault(previous)

	stdout := os.Stdout

	restore, err := CaptureOutput()
	require.NoError(t, err)

	fmt.Println("hello from stdout")
	fmt.Fprintln(os.Stderr, "hello from stderr")

	restore()
	restore()

	assert.Same(t, stdout, os.Stdout)
	assert.ElementsMatch(t, []record{
		{slog.LevelInfo, "hello from stdout"},
		{slog.LevelError, "hello from stderr"},
	}, ui.records)
}
