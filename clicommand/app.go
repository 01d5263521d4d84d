package clicommand

import (
	"github.com/Piclo/gadk"
	"github.com/Piclo/gadk/version"
	"github.com/urfave/cli"
)

const registryMetadataKey = "gadk.registry"

// App builds the gadk command line app around the given registry.
// Passing nil uses the process wide default registry.
func App(reg *gadk.Registry) *cli.App {
	app := cli.NewApp()
	app.Name = "gadk"
	app.Usage = "GitHub Actions workflows from code"
	app.Version = version.Version()
	app.Commands = Commands

	// Running with no command is the same as running sync.
	app.Flags = SyncCommand.Flags
	app.Action = SyncCommand.Action

	app.Metadata = map[string]any{registryMetadataKey: reg}
	return app
}

// Run executes the app against the given arguments and returns the process
// exit code.
func Run(reg *gadk.Registry, args []string) int {
	if err := App(reg).Run(args); err != nil {
		return PrintMessageAndReturnExitCode(err)
	}
	return 0
}

func registryFromContext(c *cli.Context) *gadk.Registry {
	if reg, ok := c.App.Metadata[registryMetadataKey].(*gadk.Registry); ok && reg != nil {
		return reg
	}
	return gadk.DefaultRegistry()
}
