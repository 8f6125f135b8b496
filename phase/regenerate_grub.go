package phase

import (
	log "github.com/sirupsen/logrus"

	"github.com/rhel2centos/rhel2centos/config/migration"
)

// RegenerateGrubConfig recreates the grub configuration for the CentOS
// kernels, under the EFI tree on EFI booted hosts
type RegenerateGrubConfig struct {
	GenericPhase
}

// Title for the phase
func (p *RegenerateGrubConfig) Title() string {
	return "Regenerate bootloader configuration"
}

// Run the phase
func (p *RegenerateGrubConfig) Run() error {
	return p.eachUnfinished("recreate_grub_config", p.Config.Spec.Hosts, func(h *migration.Host) error {
		path := h.Configurer.GrubConfigPath(h.Metadata.EFI)
		log.Infof("%s: regenerating grub configuration %s", h, path)
		return h.Configurer.RegenerateGrubConfig(h, path)
	})
}
