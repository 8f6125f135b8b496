package phase

import (
	log "github.com/sirupsen/logrus"

	"github.com/rhel2centos/rhel2centos/config"
	"github.com/rhel2centos/rhel2centos/config/migration"
)

const (
	efiBootLabel  = "CentOS Linux"
	efiBootLoader = "/EFI/centos/shimx64.efi"
)

// AddEFIBootEntry registers an EFI boot record for the CentOS bootloader on
// EFI booted hosts
type AddEFIBootEntry struct {
	GenericPhase
	hosts migration.Hosts
}

// Title for the phase
func (p *AddEFIBootEntry) Title() string {
	return "Add EFI boot entry"
}

// Prepare collects the EFI booted hosts
func (p *AddEFIBootEntry) Prepare(c *config.Migration) error {
	p.Config = c
	p.hosts = c.Spec.Hosts.Filter(func(h *migration.Host) bool {
		return h.Metadata.EFI
	})
	return nil
}

// ShouldRun is true when there are EFI booted hosts
func (p *AddEFIBootEntry) ShouldRun() bool {
	return len(p.hosts) > 0
}

// Run the phase
func (p *AddEFIBootEntry) Run() error {
	return p.eachUnfinished("add_boot_record_by_efibootmgr", p.hosts, func(h *migration.Host) error {
		if err := h.Configurer.AddEFIBootEntry(h, efiBootLabel, efiBootLoader); err != nil {
			return err
		}
		log.Infof("%s: added an EFI boot record for bootloader %s", h, efiBootLoader)
		return nil
	})
}
