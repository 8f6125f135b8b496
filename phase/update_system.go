package phase

import (
	log "github.com/sirupsen/logrus"

	"github.com/rhel2centos/rhel2centos/config/migration"
)

// UpdateSystem runs a full package update against the new repositories
type UpdateSystem struct {
	GenericPhase
}

// Title for the phase
func (p *UpdateSystem) Title() string {
	return "Update system"
}

// Run the phase
func (p *UpdateSystem) Run() error {
	return p.eachUnfinished("update_the_system", p.Config.Spec.Hosts, func(h *migration.Host) error {
		log.Infof("%s: updating the system, this can take a long time", h)
		return h.Configurer.UpdateSystem(h)
	})
}
