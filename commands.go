package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli"

	"github.com/soocke/voronoi-bench/app"
	"github.com/soocke/voronoi-bench/app/headless"
	"github.com/soocke/voronoi-bench/config"
	"github.com/soocke/voronoi-bench/debug"
	"github.com/soocke/voronoi-bench/domain/bench"
	"github.com/soocke/voronoi-bench/domain/sampling"
	"github.com/soocke/voronoi-bench/metrics"
	"github.com/soocke/voronoi-bench/render/globe"
)

var errSweepFailed = errors.New("one or more point counts failed")

// loadConfig reads the config file and applies global flag overrides.
func loadConfig(ctx *cli.Context) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(ctx.GlobalString("config"))
	if err != nil {
		return nil, nil, err
	}
	if ctx.GlobalBool("debug") {
		cfg.Debug = true
	}
	if ctx.GlobalIsSet("points") {
		cfg.PointCount = ctx.GlobalInt("points")
	}
	if ctx.GlobalIsSet("metrics-addr") {
		cfg.MetricsAddr = ctx.GlobalString("metrics-addr")
	}
	if ctx.GlobalIsSet("policy") {
		cfg.CyclePolicy = ctx.GlobalString("policy")
	}
	if ctx.GlobalIsSet("seed") {
		cfg.Seed = ctx.GlobalInt64("seed")
	}
	cfg.Validate()

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	return cfg, NewLogger(level), nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func runGUI(ctx *cli.Context) error {
	cfg, logger, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	sigCtx, cancel := signalContext()
	defer cancel()

	w := cfg.CanvasWidth/2 + 60
	h := cfg.CanvasHeight/2 + 320
	return app.NewApp(sigCtx, "Voronoi Bench", w, h, cfg, logger).Start()
}

func runHeadless(ctx *cli.Context) error {
	cfg, logger, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	if ctx.IsSet("cycles") {
		cfg.HeadlessCycles = ctx.Int("cycles")
	}
	if ctx.IsSet("sweep") {
		cfg.Sweep = ctx.String("sweep")
	}
	cfg.Validate()
	policy, err := sampling.ParsePolicy(cfg.CyclePolicy)
	if err != nil {
		return err
	}
	interval := time.Duration(0)
	if ctx.IsSet("interval") {
		interval = ctx.Duration("interval")
	}

	sigCtx, cancel := signalContext()
	defer cancel()
	if cfg.Debug {
		debug.Start(sigCtx, logger)
	}

	results, runErr := headless.Run(sigCtx, headless.Options{
		Logger: logger,
		Factory: globe.Factory(globe.Options{
			Width:       cfg.CanvasWidth,
			Height:      cfg.CanvasHeight,
			MsPerDegree: cfg.RotationMsPerDegree,
			Seed:        cfg.Seed,
		}),
		Points:        cfg.SweepPoints(),
		Cycles:        cfg.HeadlessCycles,
		Interval:      interval,
		Policy:        policy,
		MaxPointCount: cfg.MaxPointCount,
		OnSetup: func(b *bench.Bench) error {
			_, _, err := metrics.Expose(sigCtx, b, cfg.MetricsAddr, logger)
			return err
		},
	})
	if len(results) > 0 {
		if err := headless.WriteSummary(os.Stdout, results); err != nil {
			return err
		}
	}
	if runErr != nil {
		return runErr
	}
	if headless.Failed(results) {
		return errSweepFailed
	}
	return nil
}

func initConfig(ctx *cli.Context) error {
	cfg, logger, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	path := ctx.GlobalString("config")
	if err := cfg.Save(path); err != nil {
		return err
	}
	logger.Info("config saved", "path", path)
	return nil
}
