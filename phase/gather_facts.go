package phase

import (
	log "github.com/sirupsen/logrus"

	"github.com/rhel2centos/rhel2centos/config/migration"
	"github.com/rhel2centos/rhel2centos/pkg/state"
)

// Note: Passwordless sudo has not yet been confirmed when this runs

// GatherFacts gathers information about the hosts, such as how far a
// previous migration got
type GatherFacts struct {
	GenericPhase
}

// Title for the phase
func (p *GatherFacts) Title() string {
	return "Gather host facts"
}

// Run the phase
func (p *GatherFacts) Run() error {
	return p.parallelDo(p.Config.Spec.Hosts, p.investigateHost)
}

// agent packages that conflict with the distribution synchronization when a
// katello/satellite agent is present
var agentMarkerPackages = []string{"python-qpid-proton", "python2-qpid-proton"}

func (p *GatherFacts) investigateHost(h *migration.Host) error {
	log.Infof("%s: investigating host", h)

	output, err := h.Configurer.Arch(h)
	if err != nil {
		return err
	}
	h.Metadata.Arch = output
	p.IncProp(h.Metadata.Arch)
	log.Infof("%s: cpu architecture is %s", h, h.Metadata.Arch)

	h.Metadata.Hostname = h.Configurer.Hostname(h)

	h.Metadata.EFI = h.Configurer.IsEFIBooted(h)
	if h.Metadata.EFI {
		log.Infof("%s: host is booted through EFI firmware", h)
	}

	h.Metadata.AgentInstalled = true
	for _, pkg := range agentMarkerPackages {
		if !h.Configurer.PackageInstalled(h, pkg) {
			h.Metadata.AgentInstalled = false
			break
		}
	}
	if h.Metadata.AgentInstalled {
		log.Infof("%s: a katello/satellite agent is installed", h)
		p.IncProp("agent")
	}

	release, err := h.Configurer.ReleaseInfo(h)
	if err != nil {
		return err
	}
	h.Metadata.Release = release
	log.Infof("%s: release is %s", h, release)

	if h.Configurer.FileExist(h, h.Configurer.StatusFilePath()) {
		content, err := h.Configurer.ReadFile(h, h.Configurer.StatusFilePath())
		if err != nil {
			return err
		}
		ledger, err := state.Parse([]byte(content))
		if err != nil {
			return err
		}
		h.Metadata.Stages = ledger
		log.Infof("%s: found a stage ledger from a previous run", h)
	} else {
		h.Metadata.Stages = state.NewLedger()
	}

	return nil
}
