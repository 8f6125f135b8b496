package phase

import (
	"github.com/rhel2centos/rhel2centos/config/migration"
)

// Disconnect disconnects from the hosts
type Disconnect struct {
	GenericPhase
}

// Title for the phase
func (p *Disconnect) Title() string {
	return "Disconnect from hosts"
}

// Run the phase
func (p *Disconnect) Run() error {
	return p.parallelDo(p.Config.Spec.Hosts, func(h *migration.Host) error {
		h.Disconnect()
		return nil
	})
}
