package clicommand

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/Piclo/gadk"
	"github.com/Piclo/gadk/logger"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli"
)

const syncDescription = `Usage:

    gadk sync [options...]

Description:

Renders every registered workflow and writes the YAML files into the
output directory. Rendering is deterministic, so repeated runs produce
byte identical files. Running gadk with no command at all behaves the
same as running gadk sync.

Example:

    $ gadk sync

    # Write somewhere other than .github/workflows
    $ gadk sync --output-dir build/workflows

    # Only render workflows whose filename matches a glob
    $ gadk sync --filter 'ci*'

    # Print the YAML to stdout instead of writing files
    $ gadk sync --print`

type SyncConfig struct {
	GlobalConfig

	Print bool
}

var SyncCommand = cli.Command{
	Name:        "sync",
	Usage:       "Render all registered workflows and write them to disk",
	Description: syncDescription,
	Flags: slices.Concat(globalFlags, []cli.Flag{
		cli.BoolFlag{
			Name:  "print",
			Usage: "Print the rendered YAML to stdout instead of writing files",
		},
	}),
	Action: func(c *cli.Context) error {
		cfg := SyncConfig{
			GlobalConfig: globalConfigFromContext(c),
			Print:        c.Bool("print"),
		}
		l := newLogger(cfg.GlobalConfig)
		return sync(cfg, l, c.App.Writer, registryFromContext(c))
	},
}

func sync(cfg SyncConfig, l logger.Logger, w io.Writer, reg *gadk.Registry) error {
	wfs, err := selectWorkflows(reg, cfg.Filter)
	if err != nil {
		return err
	}
	if len(wfs) == 0 {
		l.Warn("No workflows to render")
		return nil
	}

	if cfg.Print {
		for i, wf := range wfs {
			out, err := wf.Render()
			if err != nil {
				return err
			}
			if i > 0 {
				fmt.Fprintln(w, "---")
			}
			fmt.Fprint(w, out)
		}
		return nil
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", cfg.OutputDir, err)
	}

	for _, wf := range wfs {
		out, err := wf.Render()
		if err != nil {
			return err
		}
		path := filepath.Join(cfg.OutputDir, wf.OutputFile())
		if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		l.Info("Wrote %s (%s)", path, humanize.Bytes(uint64(len(out))))
	}
	return nil
}
