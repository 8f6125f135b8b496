package phase

import (
	log "github.com/sirupsen/logrus"

	"github.com/rhel2centos/rhel2centos/analytics"
	"github.com/rhel2centos/rhel2centos/config"
	"github.com/rhel2centos/rhel2centos/config/migration"
)

// GenericPhase is a basic phase which gets a config via prepare, sets it into p.Config
type GenericPhase struct {
	analytics.Phase

	Config *config.Migration
}

// GetConfig is an accessor to phase Config
func (p *GenericPhase) GetConfig() *config.Migration {
	return p.Config
}

// Prepare the phase
func (p *GenericPhase) Prepare(c *config.Migration) error {
	p.Config = c
	return nil
}

func (p *GenericPhase) parallelDo(hosts migration.Hosts, funcs ...func(h *migration.Host) error) error {
	return hosts.ParallelEach(funcs...)
}

// eachUnfinished runs a function on the hosts where the named stage has not
// yet succeeded, and records the stage into the host's ledger when the
// function finishes without an error. Hosts that have already completed the
// whole migration are skipped.
func (p *GenericPhase) eachUnfinished(stage string, hosts migration.Hosts, fn func(h *migration.Host) error) error {
	return hosts.ParallelEach(func(h *migration.Host) error {
		if h.Migrated() {
			log.Debugf("%s: already migrated, skipping", h)
			return nil
		}
		if h.StageDone(stage) {
			log.Infof("%s: already done in a previous run, skipping", h)
			p.IncProp("skipped")
			return nil
		}
		if err := fn(h); err != nil {
			return err
		}
		return h.MarkStageDone(stage)
	})
}
