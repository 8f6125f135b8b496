package cmd

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/rhel2centos/rhel2centos/action"
)

var statusCommand = &cli.Command{
	Name:  "status",
	Usage: "Show the migration progress of the configured hosts",
	Flags: []cli.Flag{
		configFlag,
		debugFlag,
		traceFlag,
		analyticsFlag,
	},
	Before: actions(initLogging, initConfig, initAnalytics),
	After:  actions(closeAnalytics),
	Action: func(ctx *cli.Context) error {
		migration, err := readConfig(ctx)
		if err != nil {
			return err
		}

		statusAction := action.Status{
			Migration: migration,
			Writer:    os.Stdout,
		}

		return statusAction.Run()
	},
}
