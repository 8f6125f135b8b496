package phase

import (
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/rhel2centos/rhel2centos/config/migration"
)

// InstallReleasePackages installs the CentOS release and branding packages
// from the configured package URLs
type InstallReleasePackages struct {
	GenericPhase
}

// Title for the phase
func (p *InstallReleasePackages) Title() string {
	return "Install CentOS release packages"
}

// Run the phase
func (p *InstallReleasePackages) Run() error {
	return p.eachUnfinished("install_centos_packages", p.Config.Spec.Hosts, p.installPackages)
}

func (p *InstallReleasePackages) installPackages(h *migration.Host) error {
	packages := p.Config.Spec.CentOS.ReleasePackages

	names := make([]string, 0, len(packages))
	for name := range packages {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		log.Infof("%s: installing CentOS package %s", h, name)
		if err := h.Configurer.LocalInstallPackage(h, packages[name]); err != nil {
			return err
		}
		log.Infof("%s: CentOS package %s is installed", h, name)
		p.IncProp(name)
	}

	return nil
}
