package clicommand

import (
	"fmt"

	"drjosh.dev/zzglob"
	"github.com/Piclo/gadk"
	"github.com/Piclo/gadk/logger"
	"github.com/urfave/cli"
)

const DefaultOutputDir = ".github/workflows"

var OutputDirFlag = cli.StringFlag{
	Name:   "output-dir, o",
	Value:  DefaultOutputDir,
	Usage:  "Directory the workflow files are written to",
	EnvVar: "GADK_OUTPUT_DIR",
}

var FilterFlag = cli.StringFlag{
	Name:   "filter",
	Usage:  "Only include workflows whose filename matches this glob",
	EnvVar: "GADK_FILTER",
}

var NoColorFlag = cli.BoolFlag{
	Name:   "no-color",
	Usage:  "Don't show colors in logging",
	EnvVar: "GADK_NO_COLOR",
}

var DebugFlag = cli.BoolFlag{
	Name:   "debug",
	Usage:  "Enable debug mode",
	EnvVar: "GADK_DEBUG",
}

var globalFlags = []cli.Flag{
	OutputDirFlag,
	FilterFlag,
	NoColorFlag,
	DebugFlag,
}

type GlobalConfig struct {
	OutputDir string
	Filter    string
	NoColor   bool
	Debug     bool
}

func globalConfigFromContext(c *cli.Context) GlobalConfig {
	return GlobalConfig{
		OutputDir: c.String("output-dir"),
		Filter:    c.String("filter"),
		NoColor:   c.Bool("no-color"),
		Debug:     c.Bool("debug"),
	}
}

func newLogger(cfg GlobalConfig) logger.Logger {
	l := logger.NewTextLogger()
	if cfg.NoColor {
		l.Colors = false
	}
	if cfg.Debug {
		l.Level = logger.DEBUG
	}
	return l
}

// selectWorkflows builds every registered workflow and keeps the ones
// whose filename matches the filter glob. An empty filter keeps them
// all.
func selectWorkflows(reg *gadk.Registry, filter string) ([]*gadk.Workflow, error) {
	wfs, err := reg.Workflows()
	if err != nil {
		return nil, err
	}
	if filter == "" {
		return wfs, nil
	}

	pattern, err := zzglob.Parse(filter)
	if err != nil {
		return nil, fmt.Errorf("invalid filter pattern %q: %w", filter, err)
	}

	selected := make([]*gadk.Workflow, 0, len(wfs))
	for _, wf := range wfs {
		if pattern.Match(wf.Filename()) {
			selected = append(selected, wf)
		}
	}
	return selected, nil
}
