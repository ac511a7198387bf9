package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "voronoi-bench"
	app.Usage = "measure render latency of a rotating globe over a rolling sample window"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "voronoi-bench.json",
			Usage: "JSON configuration file; missing files fall back to defaults",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug logging and runtime memory loggers",
		},
		cli.IntFlag{
			Name:  "points, p",
			Usage: "initial point count (overrides the config file)",
		},
		cli.StringFlag{
			Name:  "metrics-addr",
			Usage: "serve Prometheus metrics on this address, e.g. :9100",
		},
		cli.StringFlag{
			Name:  "policy",
			Usage: "window cycle policy: full or legacy",
		},
		cli.Int64Flag{
			Name:  "seed",
			Usage: "seed for site generation; 0 seeds from the clock",
		},
	}
	app.Action = runGUI
	app.Commands = []cli.Command{
		{
			Name:   "gui",
			Usage:  "open the benchmark window (default)",
			Action: runGUI,
		},
		{
			Name:  "headless",
			Usage: "run the benchmark without a window and print a summary table",
			Description: `
Render off-screen on a cooperative scheduler. Each point count in the sweep is
measured for the requested number of completed sample windows, then the next
one is applied through the same parameter change path the window uses.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "cycles",
					Usage: "completed windows per point count (overrides the config file)",
				},
				cli.StringFlag{
					Name:  "sweep",
					Usage: "comma separated point counts, e.g. 500,1000,2000",
				},
				cli.DurationFlag{
					Name:  "interval",
					Usage: "delay between render turns",
				},
			},
			Action: runHeadless,
		},
		{
			Name:   "init-config",
			Usage:  "write the effective configuration to the config file",
			Action: initConfig,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
