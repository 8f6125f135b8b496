package phase

import (
	"github.com/rhel2centos/rhel2centos/config"
	"github.com/rhel2centos/rhel2centos/config/migration"
)

// agentPackages break the distribution synchronization when a
// katello/satellite agent is installed
var agentPackages = []string{
	"python-qpid-proton",
	"katello-agent",
}

// RemoveAgentPackages erases the katello/satellite agent packages on the
// hosts where the agent facts were detected
type RemoveAgentPackages struct {
	GenericPhase
	hosts migration.Hosts
}

// Title for the phase
func (p *RemoveAgentPackages) Title() string {
	return "Remove katello/satellite agent packages"
}

// Prepare collects the hosts that have the agent installed
func (p *RemoveAgentPackages) Prepare(c *config.Migration) error {
	p.Config = c
	p.hosts = c.Spec.Hosts.Filter(func(h *migration.Host) bool {
		return h.Metadata.AgentInstalled
	})
	return nil
}

// ShouldRun is true when an agent was detected on at least one host
func (p *RemoveAgentPackages) ShouldRun() bool {
	return len(p.hosts) > 0
}

// Run the phase
func (p *RemoveAgentPackages) Run() error {
	return p.eachUnfinished("remove_katello_satellite_packages", p.hosts, func(h *migration.Host) error {
		return removePackages(h, agentPackages)
	})
}
