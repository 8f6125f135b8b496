package phase

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gammazero/workerpool"
	log "github.com/sirupsen/logrus"

	"github.com/rhel2centos/rhel2centos/config"
	"github.com/rhel2centos/rhel2centos/config/migration"
)

// bootPackagePrefixes match the secure boot related packages that need to be
// reinstalled from the CentOS repositories to get CentOS signed builds
var bootPackagePrefixes = []string{"shim", "fwupd", "grub2", "kernel-"}

const reinstallWorkers = 4

// ReinstallBootPackages reinstalls the secure boot related packages whose
// rpm vendor is not CentOS, on EFI booted hosts
type ReinstallBootPackages struct {
	GenericPhase
	hosts migration.Hosts
}

// Title for the phase
func (p *ReinstallBootPackages) Title() string {
	return "Reinstall secure boot packages"
}

// Prepare collects the EFI booted hosts
func (p *ReinstallBootPackages) Prepare(c *config.Migration) error {
	p.Config = c
	p.hosts = c.Spec.Hosts.Filter(func(h *migration.Host) bool {
		return h.Metadata.EFI
	})
	return nil
}

// ShouldRun is true when there are EFI booted hosts
func (p *ReinstallBootPackages) ShouldRun() bool {
	return len(p.hosts) > 0
}

// Run the phase
func (p *ReinstallBootPackages) Run() error {
	return p.eachUnfinished("reinstall_secure_boot_related_packages", p.hosts, p.reinstallPackages)
}

func (p *ReinstallBootPackages) reinstallPackages(h *migration.Host) error {
	pkgs, err := h.Configurer.BootPackages(h, bootPackagePrefixes...)
	if err != nil {
		return err
	}

	nvra, vendor, err := h.Configurer.DefaultKernelPackage(h)
	if err != nil {
		return err
	}
	pkgs[nvra] = vendor

	var targets []string
	for pkg, vendor := range pkgs {
		if vendor == "centos" {
			continue
		}
		targets = append(targets, pkg)
	}
	sort.Strings(targets)

	if len(targets) == 0 {
		log.Infof("%s: all secure boot packages are already CentOS builds", h)
		return nil
	}

	pool := workerpool.New(reinstallWorkers)
	var mu sync.Mutex
	var errs []error
	for _, pkg := range targets {
		pkg := pkg
		pool.Submit(func() {
			log.Infof("%s: package %s is not released by CentOS, reinstalling", h, pkg)
			if err := h.Configurer.ReinstallPackage(h, pkg); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		})
	}
	pool.StopWait()

	if len(errs) > 0 {
		return fmt.Errorf("failed to reinstall %d of %d packages: %v", len(errs), len(targets), errs)
	}
	p.SetProp("reinstalled", len(targets))

	return nil
}
