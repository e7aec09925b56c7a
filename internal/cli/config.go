// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML file. Command line flags override it.
type Config struct {
	LogLevel string `yaml:"log_level"`
	Convert  struct {
		SampleRate int  `yaml:"sample_rate"`
		Mono       bool `yaml:"mono"`
		Bits       int  `yaml:"bits"`
		BufferSize int  `yaml:"buffer_size"`
	} `yaml:"convert"`
}

func LoadConfig(path string) (*Config, error) {
	config := &Config{}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(file, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}
