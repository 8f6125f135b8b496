package phase

import (
	"fmt"

	goversion "github.com/hashicorp/go-version"
	log "github.com/sirupsen/logrus"

	"github.com/rhel2centos/rhel2centos/config/migration"
)

const supportedMajorVersion = 7

// ValidateHosts checks the hosts are valid migration targets
type ValidateHosts struct {
	GenericPhase
}

// Title for the phase
func (p *ValidateHosts) Title() string {
	return "Validate hosts"
}

// Run the phase
func (p *ValidateHosts) Run() error {
	return p.parallelDo(
		p.Config.Spec.Hosts,
		p.reportMigrated,
		p.validateSupportedOS,
		p.validateSudo,
	)
}

func (p *ValidateHosts) reportMigrated(h *migration.Host) error {
	if h.Migrated() {
		log.Infof("%s: the system is already migrated to CentOS %d", h, supportedMajorVersion)
		p.IncProp("already-migrated")
	}
	return nil
}

func (p *ValidateHosts) validateSupportedOS(h *migration.Host) error {
	if h.Migrated() {
		return nil
	}

	v, err := goversion.NewVersion(h.OSVersion.Version)
	if err != nil {
		return fmt.Errorf("failed to parse os version %q: %w", h.OSVersion.Version, err)
	}
	if v.Segments()[0] != supportedMajorVersion {
		return fmt.Errorf("major version %d is not supported, only major version %d can be migrated", v.Segments()[0], supportedMajorVersion)
	}

	return nil
}

func (p *ValidateHosts) validateSudo(h *migration.Host) error {
	if err := h.Configurer.CheckPrivilege(h); err != nil {
		return err
	}

	return nil
}
