// SPDX-License-Identifier: EPL-2.0

// Command alwav inspects WAV files with the lenient ALUT-style loader and
// converts audio files into PCM WAV.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ik5/alwav/internal/cli"
)

func main() {
	var app cli.App
	ctx := kong.Parse(&app,
		kong.Name("alwav"),
		kong.Description("Load WAV files the way ALUT does and convert audio to PCM WAV."),
		kong.UsageOnError(),
	)

	env := &cli.Env{Stdout: os.Stdout, Stderr: os.Stderr}
	if err := app.Setup(env); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	err := ctx.Run(env)
	_ = env.Logger.Sync()
	ctx.FatalIfErrorf(err)
}
