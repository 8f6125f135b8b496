package phase

import (
	log "github.com/sirupsen/logrus"

	"github.com/rhel2centos/rhel2centos/config/migration"
)

// vendorPackages own the files that identify the installation as RHEL and
// conflict with the centos-release package
var vendorPackages = []string{
	"redhat-release-eula",
	"redhat-release-server",
	"redhat-logos",
}

// RemoveVendorPackages erases the Red Hat branding packages
type RemoveVendorPackages struct {
	GenericPhase
}

// Title for the phase
func (p *RemoveVendorPackages) Title() string {
	return "Remove Red Hat packages"
}

// Run the phase
func (p *RemoveVendorPackages) Run() error {
	return p.eachUnfinished("remove_redhat_packages", p.Config.Spec.Hosts, func(h *migration.Host) error {
		return removePackages(h, vendorPackages)
	})
}

// removePackages erases the given packages without touching their
// dependents. Packages that are not installed are logged and skipped.
func removePackages(h *migration.Host, pkgs []string) error {
	for _, pkg := range pkgs {
		if !h.Configurer.PackageInstalled(h, pkg) {
			log.Warnf("%s: package %s is absent in system", h, pkg)
			continue
		}
		if err := h.Configurer.RemovePackageNoDeps(h, pkg); err != nil {
			return err
		}
		log.Infof("%s: package %s is removed from system", h, pkg)
	}
	return nil
}
