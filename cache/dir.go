package cache

import (
	"path"
	"runtime"

	"github.com/adrg/xdg"
)

// Dir returns the directory where rhel2centos temporary files should be stored
func Dir() string {
	if runtime.GOOS == "linux" {
		return "/var/cache/rhel2centos"
	}
	return path.Join(xdg.CacheHome, "rhel2centos")
}
