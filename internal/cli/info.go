// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ik5/alwav"
	"github.com/ik5/alwav/formats/wav"
)

type InfoCMD struct {
	Files  []string `arg:"" help:"WAV files to inspect"`
	Strict bool     `help:"Also parse each file with the strict go-audio decoder"`
}

func (c *InfoCMD) Run(env *Env) error {
	failed := 0
	for _, path := range c.Files {
		if err := c.describe(env, path); err != nil {
			env.Logger.Error("info failed", zap.String("file", path), zap.Error(err))
			fmt.Fprintf(env.Stdout, "%s: %v\n", path, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(c.Files))
	}
	return nil
}

func (c *InfoCMD) describe(env *Env, path string) error {
	a, err := alwav.LoadWAVFile(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(env.Stdout, "%s: %v %d Hz, %d bytes, %d frames, %v\n",
		path, a.Format, a.SampleRate, a.Size, a.Frames(), a.Duration())

	if !c.Strict {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := wav.Probe(f)
	if err != nil {
		fmt.Fprintf(env.Stdout, "  strict: %v\n", err)
		return nil
	}
	fmt.Fprintf(env.Stdout, "  strict: %v %d Hz, %d bytes\n", info.BufferFormat(), info.SampleRate, info.DataSize)
	if info.DataSize != a.Size {
		env.Logger.Debug("lenient and strict sizes differ",
			zap.String("file", path),
			zap.Int("lenient", a.Size),
			zap.Int("strict", info.DataSize),
		)
	}
	return nil
}
