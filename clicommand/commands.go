package clicommand

import "github.com/urfave/cli"

var Commands = []cli.Command{
	SyncCommand,
	CheckCommand,
}
