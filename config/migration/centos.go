package migration

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/k0sproject/dig"

	"github.com/rhel2centos/rhel2centos/pkg/repofile"
)

// DefaultMirror is the CentOS mirror the release packages are fetched from
const DefaultMirror = "http://mirror.centos.org/centos"

// DefaultReleasePackagePaths are the mirror-relative paths of the packages
// that rebrand the installation. The versions pin the final CentOS 7 point
// release.
var DefaultReleasePackagePaths = map[string]string{
	"centos-release": "7/os/x86_64/Packages/centos-release-7-9.2009.0.el7.centos.x86_64.rpm",
	"centos-logos":   "7/os/x86_64/Packages/centos-logos-70.0.6-3.el7.centos.noarch.rpm",
}

// Repository describes an extra yum repository definition file to write on
// the hosts after the release packages are installed
type Repository struct {
	Name    string      `yaml:"name"`
	BaseURL string      `yaml:"baseURL"`
	GPGKey  string      `yaml:"gpgKey,omitempty"`
	Options dig.Mapping `yaml:"options,omitempty"`
}

// Definition converts the repository config into a renderable definition
func (r Repository) Definition() repofile.Definition {
	return repofile.Definition{
		Name:    r.Name,
		BaseURL: r.BaseURL,
		GPGKey:  r.GPGKey,
		Options: r.Options,
	}
}

// Validate checks the repository configuration
func (r Repository) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.BaseURL, validation.Required),
	)
}

// CentOS defines the migration target settings
type CentOS struct {
	Mirror          string            `yaml:"mirror,omitempty" default:"http://mirror.centos.org/centos"`
	ReleasePackages map[string]string `yaml:"releasePackages,omitempty"`
	Repositories    []Repository      `yaml:"repositories,omitempty"`
}

// UnmarshalYAML sets in some sane defaults when unmarshaling the data from yaml
func (c *CentOS) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type centos CentOS
	yc := (*centos)(c)

	if err := unmarshal(yc); err != nil {
		return err
	}

	c.SetDefaults()

	return nil
}

// SetDefaults fills in the release package defaults
func (c *CentOS) SetDefaults() {
	if c.Mirror == "" {
		c.Mirror = DefaultMirror
	}
	if len(c.ReleasePackages) == 0 {
		base := strings.TrimSuffix(c.Mirror, "/")
		c.ReleasePackages = make(map[string]string, len(DefaultReleasePackagePaths))
		for name, p := range DefaultReleasePackagePaths {
			c.ReleasePackages[name] = base + "/" + p
		}
	}
}

// Validate checks the target configuration
func (c *CentOS) Validate() error {
	if c == nil {
		return nil
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Mirror, is.URL),
		validation.Field(&c.ReleasePackages, validation.Each(is.URL)),
		validation.Field(&c.Repositories),
	)
}
