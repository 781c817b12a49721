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
	"bufio"
	"context"
	"log/slog"
	"os"
	"sync"
)

// CaptureOutput redirects stdout and stderr into slog until restore is
// called, so stray prints from libraries land in the log pane instead of
// over the terminal UI. Stdout lines are logged at info, stderr lines at
// error.
func CaptureOutput() (restore func(), err error) {
	stockStdout := os.Stdout
	stockStderr := os.Stderr

	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	stderrR, stderrW, err := os.Pipe()
	if err != nil {
		stdoutR.Close()
		stdoutW.Close()
		return nil, err
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go logProcessor(&wg, stdoutR, slog.LevelInfo)
	go logProcessor(&wg, stderrR, slog.LevelError)

	os.Stdout = stdoutW
	os.Stderr = stderrW

	var once sync.Once
	restore = func() {
		once.Do(func() {
			os.Stdout = stockStdout
			os.Stderr = stockStderr

			stdoutW.Close()
			stderrW.Close()
			wg.Wait()
		})
	}

	return restore, nil
}

//
// private functions
//

func logProcessor(wg *sync.WaitGroup, pipe *os.File, level slog.Level) {
	defer wg.Done()
	defer pipe.Close()

	scanner := bufio.NewScanner(pipe)

	for scanner.Scan() {
		slog.Log(context.Background(), level, scanner.Text())
	}
}
