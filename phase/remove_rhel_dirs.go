package phase

import (
	log "github.com/sirupsen/logrus"

	"github.com/rhel2centos/rhel2centos/config/migration"
)

// vendorDirs prevent installing the centos-release package
var vendorDirs = []string{
	"/usr/share/redhat-release",
	"/usr/share/doc/redhat-release",
}

// RemoveVendorDirs removes the Red Hat release directories that conflict
// with the centos-release package
type RemoveVendorDirs struct {
	GenericPhase
}

// Title for the phase
func (p *RemoveVendorDirs) Title() string {
	return "Remove Red Hat directories"
}

// Run the phase
func (p *RemoveVendorDirs) Run() error {
	return p.eachUnfinished("remove_not_needed_dirs", p.Config.Spec.Hosts, p.removeDirs)
}

func (p *RemoveVendorDirs) removeDirs(h *migration.Host) error {
	for _, dir := range vendorDirs {
		// symlinked directories are left alone
		if !h.Configurer.DirExist(h, dir) {
			log.Infof("%s: directory %s is absent in system", h, dir)
			continue
		}
		if err := h.Configurer.DeleteDir(h, dir); err != nil {
			return err
		}
		log.Infof("%s: removed directory %s", h, dir)
	}
	return nil
}
