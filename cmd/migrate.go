package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/rhel2centos/rhel2centos/action"
)

var migrateCommand = &cli.Command{
	Name:  "migrate",
	Usage: "Convert the configured hosts to CentOS",
	Flags: []cli.Flag{
		configFlag,
		&cli.BoolFlag{
			Name:  "force",
			Usage: "Don't ask for confirmation before starting the conversion",
		},
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

		migrateAction := action.Migrate{
			Migration:   migration,
			Force:       ctx.Bool("force"),
			Interactive: isatty.IsTerminal(os.Stdout.Fd()),
		}

		return migrateAction.Run()
	},
}
