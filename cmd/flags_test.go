package cmd

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func configContext(t *testing.T, content string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("test", 0)
	set.String("config", "", "test flag")
	app := cli.NewApp()
	ctx := cli.NewContext(app, set, nil)
	require.NoError(t, set.Set("config", content))
	return ctx
}

func TestReadConfig(t *testing.T) {
	ctx := configContext(t, `apiVersion: rhel2centos.io/v1beta1
kind: Migration
spec:
  hosts:
    - ssh:
        address: 10.0.0.1
        user: root
`)
	cfg, err := readConfig(ctx)
	require.NoError(t, err)
	require.Equal(t, "rhel7-to-centos7", cfg.Metadata.Name)
	require.Len(t, cfg.Spec.Hosts, 1)
	require.Equal(t, "10.0.0.1", cfg.Spec.Hosts.First().Address())
	require.NotNil(t, cfg.Spec.CentOS)
	require.Contains(t, cfg.Spec.CentOS.ReleasePackages, "centos-release")
}

func TestReadConfigDefaultsToLocalhost(t *testing.T) {
	ctx := configContext(t, `apiVersion: rhel2centos.io/v1beta1
kind: Migration
`)
	cfg, err := readConfig(ctx)
	require.NoError(t, err)
	require.Len(t, cfg.Spec.Hosts, 1)
	require.Equal(t, "local", cfg.Spec.Hosts.First().Protocol())
}

func TestReadConfigInvalidAPIVersion(t *testing.T) {
	ctx := configContext(t, `apiVersion: nope.example.com/v1
kind: Migration
`)
	_, err := readConfig(ctx)
	require.Error(t, err)
}

func TestReadConfigUnknownField(t *testing.T) {
	ctx := configContext(t, `apiVersion: rhel2centos.io/v1beta1
kind: Migration
spec:
  hossts: []
`)
	_, err := readConfig(ctx)
	require.Error(t, err)
}
