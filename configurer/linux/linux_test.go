package linux

import (
	"fmt"
	"testing"

	"github.com/k0sproject/rig/exec"
	"github.com/stretchr/testify/require"
)

type mockHost struct {
	commands []string
	output   string
	execErr  error
}

func (m *mockHost) Upload(source, destination string, opts ...exec.Option) error {
	return nil
}

func (m *mockHost) Exec(cmd string, opts ...exec.Option) error {
	m.commands = append(m.commands, cmd)
	return m.execErr
}

func (m *mockHost) ExecOutput(cmd string, opts ...exec.Option) (string, error) {
	m.commands = append(m.commands, cmd)
	return m.output, m.execErr
}

func (m *mockHost) Execf(cmd string, args ...interface{}) error {
	m.commands = append(m.commands, fmt.Sprintf(cmd, args...))
	return m.execErr
}

func (m *mockHost) ExecOutputf(cmd string, args ...interface{}) (string, error) {
	m.commands = append(m.commands, fmt.Sprintf(cmd, args...))
	return m.output, m.execErr
}

func (m *mockHost) String() string {
	return "[test] 127.0.0.1"
}

func (m *mockHost) Sudo(cmd string) (string, error) {
	return "sudo " + cmd, nil
}

func (m *mockHost) last() string {
	if len(m.commands) == 0 {
		return ""
	}
	return m.commands[len(m.commands)-1]
}

func TestRemovePackageNoDeps(t *testing.T) {
	h := &mockHost{}
	c := EnterpriseLinux{}

	require.NoError(t, c.RemovePackageNoDeps(h, "redhat-logos"))
	require.Equal(t, "sudo rpm -e --nodeps redhat-logos 2>&1", h.last())
}

func TestRemovePackageNoDepsError(t *testing.T) {
	h := &mockHost{execErr: fmt.Errorf("exit status 1"), output: "package redhat-logos is not installed"}
	c := EnterpriseLinux{}

	err := c.RemovePackageNoDeps(h, "redhat-logos")
	require.Error(t, err)
	require.Contains(t, err.Error(), "package redhat-logos is not installed")
}

func TestLocalInstallPackage(t *testing.T) {
	h := &mockHost{}
	c := EnterpriseLinux{}

	require.NoError(t, c.LocalInstallPackage(h, "http://mirror.centos.org/centos/7/os/x86_64/Packages/centos-release-7-9.2009.0.el7.centos.x86_64.rpm"))
	require.Contains(t, h.last(), "sudo yum localinstall -y ")
	require.Contains(t, h.last(), "centos-release-7-9.2009.0.el7.centos.x86_64.rpm")
}

func TestDistroSync(t *testing.T) {
	h := &mockHost{}
	c := EnterpriseLinux{}

	require.NoError(t, c.DistroSync(h))
	require.Equal(t, "sudo yum distro-sync -y", h.last())
}

func TestSetDefaultBootEntry(t *testing.T) {
	h := &mockHost{}
	c := EnterpriseLinux{}

	require.NoError(t, c.SetDefaultBootEntry(h))
	require.Equal(t, `sudo grubby --set-default "$(grubby --default-kernel)" 2>&1`, h.last())
}

func TestGrubConfigPath(t *testing.T) {
	c := EnterpriseLinux{}
	require.Equal(t, "/boot/efi/EFI/centos/grub.cfg", c.GrubConfigPath(true))
	require.Equal(t, "/boot/grub2/grub.cfg", c.GrubConfigPath(false))
}

func TestParsePackageQuery(t *testing.T) {
	output := "kernel\tkernel-3.10.0-1160.el7.x86_64\tRed Hat, Inc.\n" +
		"shim-x64\tshim-x64-15-8.el7.x86_64\tRed Hat, Inc.\n" +
		"grub2\tgrub2-2.02-0.87.el7.centos.x86_64\tCentOS\n" +
		"bash\tbash-4.2.46-34.el7.x86_64\tRed Hat, Inc.\n"

	pkgs, err := parsePackageQuery(output, []string{"shim", "fwupd", "grub2", "kernel-"})
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"shim-x64-15-8.el7.x86_64":          "red hat, inc.",
		"grub2-2.02-0.87.el7.centos.x86_64": "centos",
	}, pkgs)

	// "kernel" does not match the "kernel-" prefix, "bash" matches nothing
	require.NotContains(t, pkgs, "kernel-3.10.0-1160.el7.x86_64")
}

func TestParsePackageQueryMalformed(t *testing.T) {
	_, err := parsePackageQuery("kernel only-two-fields\n", []string{"kernel"})
	require.Error(t, err)
}

func TestParsePackageQueryEmpty(t *testing.T) {
	pkgs, err := parsePackageQuery("", []string{"kernel-"})
	require.NoError(t, err)
	require.Empty(t, pkgs)
}

func TestDefaultKernelPackage(t *testing.T) {
	h := &mockHost{output: "kernel-3.10.0-1160.el7.x86_64\tCentOS"}
	c := EnterpriseLinux{}

	nvra, vendor, err := c.DefaultKernelPackage(h)
	require.NoError(t, err)
	require.Equal(t, "kernel-3.10.0-1160.el7.x86_64", nvra)
	require.Equal(t, "centos", vendor)
}

func TestReleaseInfo(t *testing.T) {
	h := &mockHost{output: "CentOS Linux release 7.9.2009 (Core)\n"}
	c := EnterpriseLinux{}

	release, err := c.ReleaseInfo(h)
	require.NoError(t, err)
	require.Equal(t, "CentOS Linux release 7.9.2009 (Core)", release)
}
