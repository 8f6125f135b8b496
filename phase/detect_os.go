package phase

import (
	"github.com/k0sproject/rig"
	log "github.com/sirupsen/logrus"

	"github.com/rhel2centos/rhel2centos/config/migration"

	// anonymous import is needed to load the os configurers
	_ "github.com/rhel2centos/rhel2centos/configurer"
	// anonymous import is needed to load the os configurers
	_ "github.com/rhel2centos/rhel2centos/configurer/linux"
	// anonymous import is needed to load the os configurers
	_ "github.com/rhel2centos/rhel2centos/configurer/linux/enterpriselinux"
)

// DetectOS performs remote OS detection
type DetectOS struct {
	GenericPhase
}

// Title for the phase
func (p *DetectOS) Title() string {
	return "Detect host operating systems"
}

// Run the phase
func (p *DetectOS) Run() error {
	return p.parallelDo(p.Config.Spec.Hosts, func(h *migration.Host) error {
		if h.OSIDOverride != "" {
			log.Infof("%s: OS ID has been manually set to %s", h, h.OSIDOverride)
			if h.OSVersion == nil {
				h.OSVersion = &rig.OSVersion{ID: h.OSIDOverride}
			} else {
				h.OSVersion.ID = h.OSIDOverride
			}
		}
		if err := h.ResolveConfigurer(); err != nil {
			if h.OSVersion != nil {
				p.SetProp("missing-support", h.OSVersion.String())
			}
			return err
		}
		os := h.OSVersion.String()
		p.IncProp(os)
		log.Infof("%s: is running %s", h, os)

		return nil
	})
}
