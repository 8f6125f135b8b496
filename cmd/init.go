package cmd

import (
	"os"

	"github.com/creasty/defaults"
	"github.com/k0sproject/rig"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v2"

	"github.com/rhel2centos/rhel2centos/config"
	"github.com/rhel2centos/rhel2centos/config/migration"
)

var initCommand = &cli.Command{
	Name:  "init",
	Usage: "Create a configuration template",
	Action: func(ctx *cli.Context) error {
		cfg := config.Migration{
			APIVersion: config.APIVersion,
			Kind:       "Migration",
			Metadata:   &config.MigrationMetadata{Name: "rhel7-to-centos7"},
			Spec: &migration.Spec{
				Hosts: migration.Hosts{
					&migration.Host{
						Connection: rig.Connection{
							SSH: &rig.SSH{
								Address: "10.0.0.1",
							},
						},
					},
				},
				CentOS: &migration.CentOS{},
			},
		}

		if err := defaults.Set(&cfg); err != nil {
			return err
		}
		cfg.Spec.SetDefaults()

		encoder := yaml.NewEncoder(os.Stdout)
		return encoder.Encode(&cfg)
	},
}
