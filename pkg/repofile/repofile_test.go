package repofile

import (
	"testing"

	"github.com/k0sproject/dig"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	d := Definition{
		Name:    "centos-base",
		BaseURL: "http://mirror.example.com/centos/$releasever/os/$basearch",
	}
	out, err := d.Render()
	require.NoError(t, err)
	require.Equal(t, "[centos-base]\nname=centos-base\nbaseurl=http://mirror.example.com/centos/$releasever/os/$basearch\nenabled=1\n", out)
}

func TestRenderWithGPGKey(t *testing.T) {
	d := Definition{
		Name:    "centos-base",
		BaseURL: "http://mirror.example.com/centos",
		GPGKey:  "file:///etc/pki/rpm-gpg/RPM-GPG-KEY-CentOS-7",
	}
	out, err := d.Render()
	require.NoError(t, err)
	require.Contains(t, out, "gpgcheck=1\n")
	require.Contains(t, out, "gpgkey=file:///etc/pki/rpm-gpg/RPM-GPG-KEY-CentOS-7\n")
}

func TestRenderOptions(t *testing.T) {
	d := Definition{
		Name:    "centos-updates",
		BaseURL: "http://mirror.example.com/centos",
		Options: dig.Mapping{
			"priority": 10,
			"enabled":  0,
		},
	}
	out, err := d.Render()
	require.NoError(t, err)
	require.Contains(t, out, "priority=10\n")
	require.Contains(t, out, "enabled=0\n")
	// the configured value wins over the default
	require.NotContains(t, out, "enabled=1")
}

func TestRenderValidation(t *testing.T) {
	_, err := Definition{BaseURL: "http://example.com"}.Render()
	require.Error(t, err)

	_, err = Definition{Name: "x"}.Render()
	require.Error(t, err)
}

func TestFileName(t *testing.T) {
	require.Equal(t, "centos-base.repo", Definition{Name: "centos-base"}.FileName())
}
