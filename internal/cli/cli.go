// SPDX-License-Identifier: EPL-2.0

// Package cli holds the alwav command tree.
package cli

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// App is the root of the command tree parsed by kong.
type App struct {
	Config   string  `type:"path" env:"ALWAV_CONFIG" help:"YAML config file"`
	LogLevel *string `env:"ALWAV_LOG_LEVEL" enum:"debug,info,warn,error" help:"Log level [${enum}]"`

	Info    InfoCMD    `cmd:"" help:"Decode WAV files with the lenient loader and print what it finds"`
	Convert ConvertCMD `cmd:"" help:"Convert any supported file to a standard PCM WAV"`
}

// Env is bound into every command's Run.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *zap.Logger
	Config *Config
}

// Setup loads the config file and builds the logger. The log level flag
// wins over the file; the default is info.
func (a *App) Setup(env *Env) error {
	cfg := &Config{}
	if a.Config != "" {
		var err error
		if cfg, err = LoadConfig(a.Config); err != nil {
			return err
		}
	}

	level := "info"
	if cfg.LogLevel != "" {
		level = cfg.LogLevel
	}
	if a.LogLevel != nil {
		level = *a.LogLevel
	}

	logger, err := NewLogger(level, env.Stderr)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}

	env.Config = cfg
	env.Logger = logger
	return nil
}
