// Package linux contains configurers for linux distributions that can be
// migrated or act as a migration source.
package linux

import (
	"fmt"
	"strings"

	escape "github.com/alessio/shellescape"
	"github.com/k0sproject/rig/exec"
	"github.com/k0sproject/rig/os"

	"github.com/rhel2centos/rhel2centos/configurer"
)

// EnterpriseLinux is a base package for the RHEL-like enterprise linux
// distributions. It carries the rpm, yum and bootloader operations the
// migration runs on a host.
type EnterpriseLinux struct {
	configurer.Linux
}

// PackageInstalled returns true when the named rpm package is installed
func (c EnterpriseLinux) PackageInstalled(h os.Host, name string) bool {
	return h.Exec(fmt.Sprintf("rpm -q %s", escape.Quote(name)), exec.HideOutput()) == nil
}

// RemovePackageNoDeps erases an rpm package without removing its dependents
func (c EnterpriseLinux) RemovePackageNoDeps(h os.Host, name string) error {
	output, err := h.ExecOutput(fmt.Sprintf("sudo rpm -e --nodeps %s 2>&1", escape.Quote(name)))
	if err != nil {
		return fmt.Errorf("failed to erase rpm package %s: %w (output: %s)", name, err, output)
	}
	return nil
}

// LocalInstallPackage installs an rpm package from a file path or URL via yum
func (c EnterpriseLinux) LocalInstallPackage(h os.Host, location string) error {
	output, err := h.ExecOutput(fmt.Sprintf("sudo yum localinstall -y %s 2>&1", escape.Quote(location)))
	if err != nil {
		return fmt.Errorf("failed to localinstall %s: %w (output: %s)", location, err, output)
	}
	return nil
}

// ReinstallPackage reinstalls an installed rpm package via yum
func (c EnterpriseLinux) ReinstallPackage(h os.Host, nvra string) error {
	output, err := h.ExecOutput(fmt.Sprintf("sudo yum reinstall -y %s 2>&1", escape.Quote(nvra)))
	if err != nil {
		return fmt.Errorf("failed to reinstall %s: %w (output: %s)", nvra, err, output)
	}
	return nil
}

// UpdateSystem runs a full yum update
func (c EnterpriseLinux) UpdateSystem(h os.Host) error {
	return h.Exec("sudo yum update -y")
}

// DistroSync re-synchronizes the installed packages to the versions available
// from the enabled repositories
func (c EnterpriseLinux) DistroSync(h os.Host) error {
	return h.Exec("sudo yum distro-sync -y")
}

const packageQueryFormat = `%{name}\t%{name}-%{version}-%{release}.%{arch}\t%{vendor}\n`

// BootPackages returns the installed packages whose name starts with one of
// the given prefixes, as a map of package nvra to lowercased vendor
func (c EnterpriseLinux) BootPackages(h os.Host, prefixes ...string) (map[string]string, error) {
	output, err := h.ExecOutput(fmt.Sprintf(`rpm -qa --queryformat "%s"`, packageQueryFormat), exec.HideOutput())
	if err != nil {
		return nil, fmt.Errorf("failed to query installed packages: %w", err)
	}
	return parsePackageQuery(output, prefixes)
}

// parsePackageQuery picks the name/nvra/vendor rows matching the prefixes
func parsePackageQuery(output string, prefixes []string) (map[string]string, error) {
	result := make(map[string]string)
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return nil, fmt.Errorf("unexpected package query row: %q", line)
		}
		name, nvra, vendor := fields[0], fields[1], fields[2]
		for _, prefix := range prefixes {
			if strings.HasPrefix(name, prefix) {
				result[nvra] = strings.ToLower(vendor)
				break
			}
		}
	}
	return result, nil
}

// DefaultKernelPackage returns the nvra and lowercased vendor of the rpm
// package that owns the default boot kernel
func (c EnterpriseLinux) DefaultKernelPackage(h os.Host) (string, string, error) {
	kernelPath, err := h.ExecOutput("sudo grubby --default-kernel")
	if err != nil {
		return "", "", fmt.Errorf("failed to resolve the default boot kernel: %w", err)
	}
	kernelPath = strings.TrimSpace(kernelPath)

	output, err := h.ExecOutput(fmt.Sprintf(`rpm -qf %s --queryformat "%%{name}-%%{version}-%%{release}.%%{arch}\t%%{vendor}\n"`, escape.Quote(kernelPath)))
	if err != nil {
		return "", "", fmt.Errorf("failed to resolve the package owning %s: %w", kernelPath, err)
	}
	fields := strings.Split(strings.TrimSpace(output), "\t")
	if len(fields) != 2 {
		return "", "", fmt.Errorf("unexpected query output for %s: %q", kernelPath, output)
	}
	return fields[0], strings.ToLower(fields[1]), nil
}

// RegenerateGrubConfig recreates the grub configuration file. Should be
// called after installing a new kernel.
func (c EnterpriseLinux) RegenerateGrubConfig(h os.Host, path string) error {
	output, err := h.ExecOutput(fmt.Sprintf("sudo grub2-mkconfig -o %s 2>&1", escape.Quote(path)))
	if err != nil {
		return fmt.Errorf("failed to regenerate grub config %s: %w (output: %s)", path, err, output)
	}
	return nil
}

// GrubConfigPath returns the grub configuration file location
func (c EnterpriseLinux) GrubConfigPath(efi bool) string {
	if efi {
		return "/boot/efi/EFI/centos/grub.cfg"
	}
	return "/boot/grub2/grub.cfg"
}

// DefaultBootEntryOK returns true when the bootloader reports a valid
// default boot entry
func (c EnterpriseLinux) DefaultBootEntryOK(h os.Host) bool {
	return h.Exec("sudo grubby --info=DEFAULT", exec.HideOutput()) == nil
}

// SetDefaultBootEntry points the bootloader default entry to the default
// kernel
func (c EnterpriseLinux) SetDefaultBootEntry(h os.Host) error {
	output, err := h.ExecOutput(`sudo grubby --set-default "$(grubby --default-kernel)" 2>&1`)
	if err != nil {
		return fmt.Errorf("failed to set the default boot entry: %w (output: %s)", err, output)
	}
	return nil
}

// AddEFIBootEntry registers a new EFI boot entry for the given loader
func (c EnterpriseLinux) AddEFIBootEntry(h os.Host, label, loader string) error {
	output, err := h.ExecOutput(fmt.Sprintf("sudo efibootmgr -c -L %s -l %s 2>&1", escape.Quote(label), escape.Quote(loader)))
	if err != nil {
		return fmt.Errorf("failed to add EFI boot entry %s: %w (output: %s)", label, err, output)
	}
	return nil
}

// IsEFIBooted returns true when the host was booted through EFI firmware
func (c EnterpriseLinux) IsEFIBooted(h os.Host) bool {
	return c.FileExist(h, "/sys/firmware/efi")
}

// ReleaseInfo returns the contents of the release identifier file
func (c EnterpriseLinux) ReleaseInfo(h os.Host) (string, error) {
	release, err := c.ReadFile(h, "/etc/redhat-release")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(release), nil
}

// RepoDir returns the directory holding yum repository definition files
func (c EnterpriseLinux) RepoDir() string {
	return "/etc/yum.repos.d"
}

// StatusFilePath returns the location of the migration stage ledger
func (c EnterpriseLinux) StatusFilePath() string {
	return "/var/run/rhel2centos.status.json"
}

// LockFilePath returns the location of the migration lock file
func (c EnterpriseLinux) LockFilePath() string {
	return "/var/run/rhel2centos.lock"
}
