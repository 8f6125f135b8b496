package migration

import (
	"strings"
	"testing"

	"github.com/k0sproject/dig"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestCentOSDefaults(t *testing.T) {
	c := CentOS{}
	c.SetDefaults()
	require.Equal(t, DefaultMirror, c.Mirror)
	require.Contains(t, c.ReleasePackages, "centos-release")
	require.Contains(t, c.ReleasePackages, "centos-logos")
}

func TestCentOSMirrorOverride(t *testing.T) {
	c := CentOS{}
	data := `
mirror: http://mirror.example.com/centos/
`
	require.NoError(t, yaml.Unmarshal([]byte(data), &c))
	require.Equal(t, "http://mirror.example.com/centos/", c.Mirror)
	for name, url := range c.ReleasePackages {
		require.Truef(t, strings.HasPrefix(url, "http://mirror.example.com/centos/7/os/"), "%s url %s does not point to the configured mirror", name, url)
	}
	require.Contains(t, c.ReleasePackages, "centos-release")
	require.Contains(t, c.ReleasePackages, "centos-logos")
}

func TestCentOSUnmarshalKeepsOverrides(t *testing.T) {
	c := CentOS{}
	data := `
mirror: http://mirror.example.com/centos
releasePackages:
  centos-release: http://mirror.example.com/centos-release.rpm
`
	require.NoError(t, yaml.Unmarshal([]byte(data), &c))
	require.Equal(t, "http://mirror.example.com/centos", c.Mirror)
	require.Len(t, c.ReleasePackages, 1)
	require.Equal(t, "http://mirror.example.com/centos-release.rpm", c.ReleasePackages["centos-release"])
}

func TestCentOSValidation(t *testing.T) {
	c := CentOS{}
	c.SetDefaults()
	require.NoError(t, c.Validate())

	c.Mirror = "not a url"
	require.Error(t, c.Validate())
}

func TestRepositoryValidation(t *testing.T) {
	r := Repository{}
	require.Error(t, r.Validate())

	r = Repository{Name: "extras", BaseURL: "http://mirror.centos.org/centos/7/extras/x86_64/"}
	require.NoError(t, r.Validate())
}

func TestRepositoryDefinition(t *testing.T) {
	r := Repository{
		Name:    "extras",
		BaseURL: "http://mirror.centos.org/centos/7/extras/x86_64/",
		Options: dig.Mapping{"priority": "10"},
	}
	def := r.Definition()
	require.Equal(t, "extras.repo", def.FileName())
	content, err := def.Render()
	require.NoError(t, err)
	require.Contains(t, content, "[extras]")
	require.Contains(t, content, "priority=10")
}
