// SPDX-License-Identifier: EPL-2.0

// Command silences lists the silent intervals of audio files and can split
// them into their non-silent segments.
package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/ik5/pcmsilence"
	"github.com/ik5/pcmsilence/audio"
	"github.com/ik5/pcmsilence/formats/wav"
	"github.com/ik5/pcmsilence/internal/cli"
	"github.com/ik5/pcmsilence/internal/config"
)

var (
	version = "0.1.0"
)

// CLI defines the command-line interface
type CLI struct {
	Version    bool          `short:"v" help:"Show version information"`
	Config     string        `short:"c" type:"existingfile" help:"Path to YAML config file (optional)"`
	MinSilence time.Duration `short:"m" name:"min-silence" help:"Shortest run reported as silence (e.g. 500ms)"`
	Threshold  *int          `short:"t" help:"Loudness threshold in dB, zero or negative"`
	Format     string        `short:"f" help:"Container format, overrides the file extension"`
	SplitDir   string        `short:"s" name:"split-dir" type:"path" help:"Write each non-silent segment as a WAV file here"`
	LogLevel   string        `name:"log-level" help:"Log level (debug, info, warn, error)"`
	Files      []string      `arg:"" name:"files" help:"Audio files to scan" type:"existingfile" optional:""`
}

func main() {
	cliArgs := &CLI{}
	ctx := kong.Parse(cliArgs,
		kong.Name("silences"),
		kong.Description("Find silent intervals in audio files"),
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter("Find silent intervals in audio files")),
	)

	// Handle version flag
	if cliArgs.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	// Validate input
	if len(cliArgs.Files) == 0 {
		cli.PrintError("No input files specified")
		ctx.PrintUsage(false)
		os.Exit(1)
	}

	cfg, err := loadConfig(cliArgs)
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel.Slog()}))

	failed := false
	for _, path := range cliArgs.Files {
		if err := run(log, cfg, path); err != nil {
			cli.PrintError(fmt.Sprintf("%s: %v", path, err))
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}

// loadConfig reads the config file, if any, and applies flag overrides.
func loadConfig(args *CLI) (*config.Config, error) {
	cfg := config.Default()
	if args.Config != "" {
		var err error
		if cfg, err = config.Load(args.Config); err != nil {
			return nil, err
		}
	}

	if args.MinSilence != 0 {
		cfg.MinSilence = args.MinSilence
	}
	if args.Threshold != nil {
		cfg.ThresholdDB = *args.Threshold
	}
	if args.Format != "" {
		cfg.Format = args.Format
	}
	if args.SplitDir != "" {
		cfg.SplitDir = args.SplitDir
	}
	if args.LogLevel != "" {
		cfg.LogLevel = config.LogLevel(args.LogLevel)
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(log *slog.Logger, cfg *config.Config, path string) error {
	format := cfg.Format
	if format == "" {
		format = pcmsilence.FormatOf(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	res, err := pcmsilence.Detect(f, strings.ToLower(format), cfg.Policy())
	if err != nil {
		return err
	}

	log.Debug("decoded", "file", path, "format", res.PCM.Format.String(), "duration", res.PCM.Duration())
	log.Info("scanned", "file", path, "silences", len(res.Silences))

	fmt.Print(cli.FormatReport(filepath.Base(path), res.PCM.Format, res.Silences))

	if cfg.SplitDir == "" {
		return nil
	}

	return split(log, cfg.SplitDir, path, res)
}

// split writes every sound segment of res to dir as <base>_NNN.wav.
func split(log *slog.Logger, dir, path string, res *pcmsilence.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating split dir: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	for i, seg := range res.Sounds() {
		buf := new(bytes.Buffer)
		pcm := &audio.PCM{Format: res.PCM.Format, Data: seg.Bytes(res.PCM.Data)}
		if err := wav.WritePCM(buf, pcm); err != nil {
			return fmt.Errorf("encoding segment %d: %w", i+1, err)
		}

		out := filepath.Join(dir, fmt.Sprintf("%s_%03d.wav", base, i+1))
		if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("writing segment %d: %w", i+1, err)
		}

		log.Debug("wrote segment", "file", out, "bytes", seg.Len(), "duration", pcm.Duration())
	}

	return nil
}
