package phase

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/rhel2centos/rhel2centos/config/migration"
	"github.com/rhel2centos/rhel2centos/pkg/state"
)

// Finalize verifies the hosts now identify as CentOS and marks their
// ledgers completed
type Finalize struct {
	GenericPhase
}

// Title for the phase
func (p *Finalize) Title() string {
	return "Finalize migration"
}

// Run the phase
func (p *Finalize) Run() error {
	return p.parallelDo(p.Config.Spec.Hosts, func(h *migration.Host) error {
		if h.Migrated() {
			return nil
		}

		release, err := h.Configurer.ReleaseInfo(h)
		if err != nil {
			return err
		}
		if !strings.Contains(release, "CentOS") {
			return fmt.Errorf("the host still identifies as %q after migration", release)
		}
		h.Metadata.Release = release

		if err := h.MarkStageDone(state.StageCompleted); err != nil {
			return err
		}
		log.Infof("%s: the system is migrated to CentOS %d", h, supportedMajorVersion)

		return nil
	})
}
