// Package cmd provides the command line interface
package cmd

import (
	"github.com/urfave/cli/v2"
)

// App is the main urfave/cli.App for rhel2centos
var App = &cli.App{
	Name:  "rhel2centos",
	Usage: "Convert Red Hat Enterprise Linux 7 hosts to CentOS 7",
	Flags: []cli.Flag{
		debugFlag,
		traceFlag,
	},
	Commands: []*cli.Command{
		versionCommand,
		migrateCommand,
		statusCommand,
		initCommand,
	},
}
