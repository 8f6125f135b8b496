package enterpriselinux

import (
	"github.com/k0sproject/rig"
	"github.com/k0sproject/rig/os/registry"

	r2clinux "github.com/rhel2centos/rhel2centos/configurer/linux"
)

// CentOS provides OS support for CentOS. A host that already reports CentOS
// is accepted so a partially migrated system can resume.
type CentOS struct {
	r2clinux.EnterpriseLinux
}

func init() {
	registry.RegisterOSModule(
		func(os rig.OSVersion) bool {
			return os.ID == "centos"
		},
		func() interface{} {
			return &CentOS{}
		},
	)
}
