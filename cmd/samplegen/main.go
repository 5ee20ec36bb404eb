// Package main provides the CLI entry point for samplegen.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/samplegen/pkg/adapters/ffmpegencoder"
	"github.com/user/samplegen/pkg/adapters/filesink"
	"github.com/user/samplegen/pkg/adapters/ggrenderer"
	"github.com/user/samplegen/pkg/adapters/logger"
	"github.com/user/samplegen/pkg/adapters/mp4probe"
	"github.com/user/samplegen/pkg/adapters/nullsink"
	"github.com/user/samplegen/pkg/adapters/osfilesystem"
	"github.com/user/samplegen/pkg/config"
	"github.com/user/samplegen/pkg/orchestrator"
	"github.com/user/samplegen/pkg/ports"
	"github.com/user/samplegen/pkg/stages/encode"
	"github.com/user/samplegen/pkg/stages/frames"
	"github.com/user/samplegen/pkg/stages/still"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "samplegen",
		Usage:   l10n.T("Generate deterministic sample media for compression testing"),
		Version: version,
		Commands: []*cli.Command{
			generateCommand(),
			versionCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: l10n.T("Generate the fixed set of sample images and video"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Value:   "samples",
				Usage:   l10n.T("Output directory for the generated artifacts"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   l10n.T("Path to a YAML config file"),
			},
			&cli.BoolFlag{
				Name:  "skip-video",
				Usage: l10n.T("Skip the video artifact"),
			},
			&cli.StringFlag{
				Name:  "font",
				Usage: l10n.T("Path to a TTF font for labels (default: probe system fonts)"),
			},
			&cli.StringFlag{
				Name:  "ffmpeg",
				Usage: l10n.T("Path to the ffmpeg executable"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   l10n.T("Save intermediate canvases to the debug directory"),
			},
			&cli.StringFlag{
				Name:  "debug-dir",
				Value: "./debug",
				Usage: l10n.T("Directory for debug output"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   l10n.T("Log level (debug, info, warn, error)"),
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"Q"},
				Usage:   l10n.T("Suppress all log output"),
			},
		},
		Action: runGenerate,
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: l10n.T("Show version information"),
		Action: func(c *cli.Context) error {
			fmt.Println(l10n.F("samplegen version %s", version))
			return nil
		},
	}
}

func runGenerate(c *cli.Context) error {
	cfg, err := buildConfig(c)
	if err != nil {
		return err
	}

	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cfg.LogLevel))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	fs := osfilesystem.New()
	renderer := ggrenderer.New()

	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	// Font probe: best-effort, labels degrade to the built-in bitmap face.
	fontPath := cfg.FontPath
	if fontPath == "" {
		if p, ok := ggrenderer.FindDefaultFont(); ok {
			fontPath = p
		} else {
			log.Warn(l10n.T("No system font found, labels will use the built-in bitmap face"))
		}
	}

	// Video encoder probe: performed once, the orchestrator branches on it.
	support := ffmpegencoder.Detect(cfg.FFmpegPath)

	stillStage := still.NewStage(renderer, sink, log)
	framesStage := frames.NewStage(renderer, sink, log)
	encodeStage := encode.NewStage(ffmpegencoder.New(cfg.FFmpegPath), log)

	orch := orchestrator.New(
		stillStage,
		framesStage,
		encodeStage,
		renderer,
		mp4probe.New(),
		fs,
		log,
	)

	orchConfig := orchestrator.DefaultConfig()
	orchConfig.OutDir = cfg.OutDir
	orchConfig.FontPath = fontPath
	orchConfig.SkipVideo = cfg.SkipVideo
	orchConfig.VideoSupport = support
	orchConfig.VideoQuality = cfg.VideoQuality

	if _, err := orch.Run(ctx, orchConfig); err != nil {
		return err
	}
	return nil
}

// buildConfig merges defaults, the optional YAML file and CLI flags.
// Flags win over the file.
func buildConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()

	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if c.IsSet("out") || cfg.OutDir == "" {
		cfg.OutDir = c.String("out")
	}
	if c.IsSet("font") {
		cfg.FontPath = c.String("font")
	}
	if c.IsSet("ffmpeg") {
		cfg.FFmpegPath = c.String("ffmpeg")
	}
	if c.IsSet("skip-video") {
		cfg.SkipVideo = c.Bool("skip-video")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if c.IsSet("debug-dir") {
		cfg.DebugDir = c.String("debug-dir")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	return cfg, nil
}
