package phase

import (
	log "github.com/sirupsen/logrus"

	"github.com/rhel2centos/rhel2centos/config/migration"
)

// SetDefaultBootEntry makes sure the bootloader has a valid default boot
// record and points it to the default kernel when it doesn't
type SetDefaultBootEntry struct {
	GenericPhase
}

// Title for the phase
func (p *SetDefaultBootEntry) Title() string {
	return "Set default boot entry"
}

// Run the phase
func (p *SetDefaultBootEntry) Run() error {
	return p.eachUnfinished("check_and_set_default_grub_record", p.Config.Spec.Hosts, func(h *migration.Host) error {
		if h.Configurer.DefaultBootEntryOK(h) {
			log.Infof("%s: default boot entry is valid", h)
			return nil
		}
		log.Infof("%s: default boot entry is empty, pointing it to the default kernel", h)
		return h.Configurer.SetDefaultBootEntry(h)
	})
}
