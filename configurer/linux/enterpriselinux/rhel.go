package enterpriselinux

import (
	"github.com/k0sproject/rig"
	"github.com/k0sproject/rig/os/registry"

	r2clinux "github.com/rhel2centos/rhel2centos/configurer/linux"
)

// RHEL provides OS support for RedHat Enterprise Linux, the migration source
type RHEL struct {
	r2clinux.EnterpriseLinux
}

func init() {
	registry.RegisterOSModule(
		func(os rig.OSVersion) bool {
			return os.ID == "rhel"
		},
		func() interface{} {
			return &RHEL{}
		},
	)
}
