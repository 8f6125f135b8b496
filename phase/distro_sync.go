package phase

import (
	log "github.com/sirupsen/logrus"

	"github.com/rhel2centos/rhel2centos/config/migration"
)

// DistroSync re-points every installed package to the build available from
// the CentOS repositories
type DistroSync struct {
	GenericPhase
}

// Title for the phase
func (p *DistroSync) Title() string {
	return "Synchronize distribution"
}

// Run the phase
func (p *DistroSync) Run() error {
	return p.eachUnfinished("synchronization_of_distribution", p.Config.Spec.Hosts, func(h *migration.Host) error {
		log.Infof("%s: synchronizing the distribution, this can take a long time", h)
		return h.Configurer.DistroSync(h)
	})
}
