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
	"errors"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"
)

var ErrNoYamlFile = errors.New("no yaml file found")

func FileExists(path string) bool {
	// if an error occurred or its a directory, we throw up
	if stat, err := os.Stat(path); err != nil || stat.IsDir() {
		return false
	}

	return true
}

func ResolveHomeDirPath(testPath string) (string, error) {
	if strings.HasPrefix(testPath, "~/") {
		homeDir, err := os.UserHomeDir()

		if err != nil {
			return "", errors.New("could not find user home dir: " + err.Error())
		}

		return path.Join(homeDir, testPath[2:]), nil
	}

	return testPath, nil
}

// FindYamlFile resolves a config file name the same way for every command:
// absolute path, home relative path, next to the executable, the working
// directory and finally ~/.config/wwise-ids.
func FindYamlFile(fileName string) (string, error) {
	if path.IsAbs(fileName) {
		if FileExists(fileName) {
			return fileName, nil
		}
		return "", errors.New("the specified yaml file does not exist: " + fileName)
	}

	if strings.HasPrefix(fileName, "~/") {
		testFilePath, err := ResolveHomeDirPath(fileName)
		if err != nil {
			return "", err
		}

		if FileExists(testFilePath) {
			return testFilePath, nil
		}

		return "", ErrNoYamlFile
	}

	// check path where executable lives
	binPath, _ := os.Executable()
	sidecarPath := path.Join(filepath.Dir(binPath), fileName)
	if FileExists(sidecarPath) {
		return sidecarPath, nil
	}

	// check working directory
	cwd, _ := os.Getwd()
	cwdSidecarPath := path.Join(cwd, fileName)
	if FileExists(cwdSidecarPath) {
		return cwdSidecarPath, nil
	}

	// check user config directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.New("could not find user home dir: " + err.Error())
	}

	homeDotConfigPath := path.Join(homeDir, ".config", "wwise-ids", fileName)
	if FileExists(homeDotConfigPath) {
		return homeDotConfigPath, nil
	}

	return "", ErrNoYamlFile
}

func ReadYamlFile(cfg interface{}, fileName string) error {
	filePath, err := FindYamlFile(fileName)
	if err != nil {
		return err
	}

	slog.Info("Reading yaml from " + filePath)

	f, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(cfg)
	if err != nil {
		return errors.New("failed to decode " + filePath + ": " + err.Error())
	}

	return nil
}
