// Copyright 2023 The golocales Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// A config presets flag values from a YAML file. Flags given on the
// command line win over the file.
type config struct {
	Output  string   `yaml:"output"`
	Package string   `yaml:"package"`
	Module  string   `yaml:"module"`
	Exclude []string `yaml:"exclude"`
	Only    []string `yaml:"only"`
}

func loadConfig(path string) (config, error) {
	var c config
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("%s: %v", path, err)
	}
	return c, nil
}
