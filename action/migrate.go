// Package action implements the top level operations the commands perform
package action

import (
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/logrusorgru/aurora"
	log "github.com/sirupsen/logrus"

	"github.com/rhel2centos/rhel2centos/analytics"
	"github.com/rhel2centos/rhel2centos/config"
	"github.com/rhel2centos/rhel2centos/phase"
)

// Migrate runs the migration phases against the configured hosts
type Migrate struct {
	// Migration is the migration configuration
	Migration *config.Migration
	// Force skips the interactive confirmation
	Force bool
	// Interactive is true when the output is a terminal
	Interactive bool
}

// Run the migrate action
func (m Migrate) Run() error {
	if !m.Force {
		if !m.Interactive {
			return fmt.Errorf("refusing to continue without confirmation, use --force when running non-interactively")
		}
		confirmed := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Convert %d host(s) to CentOS? The conversion can not be undone.", len(m.Migration.Spec.Hosts)),
		}
		if err := survey.AskOne(prompt, &confirmed); err != nil {
			return err
		}
		if !confirmed {
			return fmt.Errorf("migration aborted")
		}
	}

	start := time.Now()

	lockPhase := &phase.Lock{}

	manager := phase.Manager{Config: m.Migration}
	manager.AddPhase(
		&phase.Connect{},
		&phase.DetectOS{},
		lockPhase,
		&phase.GatherFacts{},
		&phase.ValidateHosts{},
		&phase.RunHooks{Stage: "before", Action: "migrate"},
		&phase.BackupRepoFiles{},
		&phase.RemoveVendorPackages{},
		&phase.RemoveVendorDirs{},
		&phase.RemoveAgentPackages{},
		&phase.InstallReleasePackages{},
		&phase.WriteRepoOverrides{},
		&phase.UpdateSystem{},
		&phase.DistroSync{},
		&phase.RegenerateGrubConfig{},
		&phase.ReinstallBootPackages{},
		&phase.AddEFIBootEntry{},
		&phase.SetDefaultBootEntry{},
		&phase.RunHooks{Stage: "after", Action: "migrate"},
		&phase.Finalize{},
		lockPhase.UnlockPhase(),
		&phase.Disconnect{},
	)

	analytics.Client.Publish("migrate-start", map[string]interface{}{"hosts": len(m.Migration.Spec.Hosts)})

	if err := manager.Run(); err != nil {
		analytics.Client.Publish("migrate-failure", map[string]interface{}{"hosts": len(m.Migration.Spec.Hosts)})
		return err
	}

	analytics.Client.Publish("migrate-success", map[string]interface{}{"duration": time.Since(start), "hosts": len(m.Migration.Spec.Hosts)})

	duration := time.Since(start).Truncate(time.Second)
	text := fmt.Sprintf("==> Finished in %s", duration)
	log.Info(aurora.Green(text).String())

	return nil
}
