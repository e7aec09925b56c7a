// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ik5/alwav"
	"github.com/ik5/alwav/al"
	"github.com/ik5/alwav/audio"
	"github.com/ik5/alwav/formats/wav"
)

type ConvertCMD struct {
	Input  string `arg:"" type:"existingfile" help:"Source file (wav, mp3, ogg, aiff)"`
	Output string `arg:"" type:"path" help:"WAV file to write"`

	Rate  int  `short:"r" help:"Resample to this rate in Hz"`
	Mono  bool `short:"m" help:"Mix down to one channel"`
	Bits  int  `short:"b" help:"Output bits per sample (8 or 16)"`
	Check bool `help:"Submit the buffer to an in-memory AL context before writing"`
}

func (c *ConvertCMD) options(cfg *Config) alwav.Options {
	opts := alwav.Options{
		SampleRate: cfg.Convert.SampleRate,
		Mono:       cfg.Convert.Mono || c.Mono,
		Bits:       cfg.Convert.Bits,
		BufferSize: cfg.Convert.BufferSize,
	}
	if c.Rate > 0 {
		opts.SampleRate = c.Rate
	}
	if c.Bits > 0 {
		opts.Bits = c.Bits
	}
	return opts
}

func (c *ConvertCMD) Run(env *Env) error {
	opts := c.options(env.Config)
	env.Logger.Debug("converting",
		zap.String("input", c.Input),
		zap.String("output", c.Output),
		zap.Int("rate", opts.SampleRate),
		zap.Bool("mono", opts.Mono),
		zap.Int("bits", opts.Bits),
	)

	a, err := alwav.LoadFile(c.Input, opts)
	if err != nil {
		return fmt.Errorf("loading %s: %w", c.Input, err)
	}

	if c.Check {
		if err := check(env, a); err != nil {
			return err
		}
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", c.Output, err)
	}
	if err := wav.Encode(f, a); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", c.Output, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", c.Output, err)
	}

	env.Logger.Info("converted",
		zap.String("output", c.Output),
		zap.Stringer("format", a.Format),
		zap.Int("rate", a.SampleRate),
		zap.Int("bytes", a.Size),
	)
	fmt.Fprintf(env.Stdout, "%s: %v %d Hz, %d frames\n", c.Output, a.Format, a.SampleRate, a.Frames())
	return nil
}

func check(env *Env, a *audio.DecodedAudio) error {
	ctx, err := al.Open(al.NewMemoryBackend(), al.WithLogger(env.Logger))
	if err != nil {
		return err
	}
	if _, err := ctx.Submit(a); err != nil {
		ctx.Close()
		return fmt.Errorf("buffer rejected: %w", err)
	}
	return ctx.Close()
}
