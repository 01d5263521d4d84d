package clicommand

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/Piclo/gadk"
	"github.com/Piclo/gadk/logger"
	"github.com/kylelemons/godebug/diff"
	"github.com/urfave/cli"
)

const checkDescription = `Usage:

    gadk check [options...]

Description:

Renders every registered workflow and compares the result against the
files in the output directory, without writing anything. Missing and
out of date files are reported, and the command exits with status 1 if
any file needs a sync. This is intended for CI, to catch workflow
definitions that were changed without regenerating the YAML.

Example:

    $ gadk check

    # Show what changed for files that are out of date
    $ gadk check --diff`

type CheckConfig struct {
	GlobalConfig

	Diff bool
}

var CheckCommand = cli.Command{
	Name:        "check",
	Usage:       "Verify the workflow files on disk are up to date",
	Description: checkDescription,
	Flags: slices.Concat(globalFlags, []cli.Flag{
		cli.BoolFlag{
			Name:  "diff",
			Usage: "Show a line diff for files that are out of date",
		},
	}),
	Action: func(c *cli.Context) error {
		cfg := CheckConfig{
			GlobalConfig: globalConfigFromContext(c),
			Diff:         c.Bool("diff"),
		}
		l := newLogger(cfg.GlobalConfig)
		return check(cfg, l, c.App.Writer, registryFromContext(c))
	},
}

func check(cfg CheckConfig, l logger.Logger, w io.Writer, reg *gadk.Registry) error {
	wfs, err := selectWorkflows(reg, cfg.Filter)
	if err != nil {
		return err
	}

	stale := 0
	for _, wf := range wfs {
		want, err := wf.Render()
		if err != nil {
			return err
		}

		path := filepath.Join(cfg.OutputDir, wf.OutputFile())
		got, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			l.Error("%s is missing (run gadk sync)", path)
			stale++
			continue
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		if string(got) == want {
			l.Debug("%s is up to date", path)
			continue
		}

		l.Error("%s is out of date (run gadk sync)", path)
		stale++
		if cfg.Diff {
			fmt.Fprintln(w, diff.Diff(string(got), want))
		}
	}

	if stale > 0 {
		return NewSilentExitError(1)
	}
	l.Info("All workflow files up to date")
	return nil
}
