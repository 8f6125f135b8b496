package phase

import (
	"testing"

	"github.com/k0sproject/rig/os"
	"github.com/stretchr/testify/require"

	"github.com/rhel2centos/rhel2centos/config/migration"
	"github.com/rhel2centos/rhel2centos/configurer/linux"
)

// repoBackupConfigurer overrides the filesystem operations used by the
// backup phase and records what gets created and copied
type repoBackupConfigurer struct {
	linux.EnterpriseLinux

	files   []string
	mkdirs  []string
	sources []string
	targets []string
}

func (c *repoBackupConfigurer) ListFiles(_ os.Host, _ string) ([]string, error) {
	return c.files, nil
}

func (c *repoBackupConfigurer) MkDir(_ os.Host, dir string) error {
	c.mkdirs = append(c.mkdirs, dir)
	return nil
}

func (c *repoBackupConfigurer) CopyFile(_ os.Host, src, dst string) error {
	c.sources = append(c.sources, src)
	c.targets = append(c.targets, dst)
	return nil
}

func TestBackupRepoFiles(t *testing.T) {
	cfg := &repoBackupConfigurer{
		files: []string{"redhat.repo", "redhat-extra.repo", "centos.repo", "epel.repo", "README"},
	}
	h := &migration.Host{}
	h.Configurer = cfg

	p := &BackupRepoFiles{}
	require.NoError(t, p.Before(p.Title()))
	require.NoError(t, p.backupRepoFiles(h))

	require.Len(t, cfg.mkdirs, 1)
	require.Contains(t, cfg.mkdirs[0], "/etc/yum.repos.d/backup-")
	require.Equal(t, []string{"/etc/yum.repos.d/redhat.repo", "/etc/yum.repos.d/redhat-extra.repo"}, cfg.sources)
	for _, dst := range cfg.targets {
		require.Contains(t, dst, cfg.mkdirs[0])
	}
}

func TestBackupRepoFilesNoMatches(t *testing.T) {
	cfg := &repoBackupConfigurer{
		files: []string{"centos.repo", "epel.repo"},
	}
	h := &migration.Host{}
	h.Configurer = cfg

	p := &BackupRepoFiles{}
	require.NoError(t, p.Before(p.Title()))
	require.NoError(t, p.backupRepoFiles(h))

	require.Empty(t, cfg.mkdirs)
	require.Empty(t, cfg.sources)
}
