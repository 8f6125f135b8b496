package migration

import (
	"testing"

	"github.com/k0sproject/rig"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/rhel2centos/rhel2centos/pkg/state"

	// anonymous import is needed to load the os configurers
	_ "github.com/rhel2centos/rhel2centos/configurer/linux/enterpriselinux"
)

func TestHostDefaultsToLocalhost(t *testing.T) {
	h := Host{}
	require.NoError(t, yaml.Unmarshal([]byte("hooks:\n  migrate:\n    before:\n      - date\n"), &h))
	require.NotNil(t, h.Localhost)
	require.Equal(t, "local", h.Protocol())
	require.Equal(t, "127.0.0.1", h.Address())
}

func TestHostSSHProtocol(t *testing.T) {
	h := Host{}
	require.NoError(t, yaml.Unmarshal([]byte("ssh:\n  address: 10.0.0.1\n"), &h))
	require.Equal(t, "ssh", h.Protocol())
	require.Equal(t, "10.0.0.1", h.Address())
}

func TestHostValidation(t *testing.T) {
	h := Host{Connection: rig.Connection{SSH: &rig.SSH{Address: "10.0.0.1"}}}
	require.NoError(t, h.Validate())

	h = Host{Connection: rig.Connection{WinRM: &rig.WinRM{Address: "10.0.0.1"}}}
	require.Error(t, h.Validate())

	h = Host{}
	require.Error(t, h.Validate())
}

func TestResolveConfigurer(t *testing.T) {
	h := Host{}
	require.Error(t, h.ResolveConfigurer())
	require.Nil(t, h.Configurer)

	h.OSVersion = &rig.OSVersion{ID: "rhel", Version: "7.9"}
	require.NoError(t, h.ResolveConfigurer())
	require.NotNil(t, h.Configurer)
	require.Equal(t, "linux", h.Configurer.Kind())

	h = Host{Connection: rig.Connection{OSVersion: &rig.OSVersion{ID: "sles", Version: "15"}}}
	require.Error(t, h.ResolveConfigurer())
}

func TestHostStageTracking(t *testing.T) {
	h := Host{}
	require.False(t, h.Migrated())
	require.False(t, h.StageDone("update_the_system"))

	h.Metadata.Stages = state.NewLedger()
	h.Metadata.Stages.SetDone("update_the_system")
	require.True(t, h.StageDone("update_the_system"))
	require.False(t, h.Migrated())

	h.Metadata.Stages.SetDone(state.StageCompleted)
	require.True(t, h.Migrated())
}

func TestHostsValidation(t *testing.T) {
	hosts := Hosts{}
	require.Error(t, hosts.Validate())

	hosts = Hosts{
		&Host{Connection: rig.Connection{SSH: &rig.SSH{Address: "10.0.0.1"}}},
		&Host{Connection: rig.Connection{SSH: &rig.SSH{Address: "10.0.0.1"}}},
	}
	require.Error(t, hosts.Validate())

	hosts[1].SSH.Address = "10.0.0.2"
	require.NoError(t, hosts.Validate())
}

func TestHooksForActionAndStage(t *testing.T) {
	h := Host{}
	require.NoError(t, yaml.Unmarshal([]byte("hooks:\n  migrate:\n    before:\n      - date\n      - uptime\n"), &h))
	require.Equal(t, []string{"date", "uptime"}, h.Hooks.ForActionAndStage("migrate", "before"))
	require.Nil(t, h.Hooks.ForActionAndStage("migrate", "after"))
	require.Nil(t, h.Hooks.ForActionAndStage("reset", "before"))
}
