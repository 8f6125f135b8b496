package phase

import (
	"path"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	log "github.com/sirupsen/logrus"

	"github.com/rhel2centos/rhel2centos/config/migration"
)

// vendor repo definition files get removed with the release packages, a
// copy is kept so local modifications are not lost
const repoBackupPattern = "redhat*.repo"

// BackupRepoFiles copies the vendor yum repository definitions into a
// timestamped backup directory before the owning packages are removed
type BackupRepoFiles struct {
	GenericPhase
}

// Title for the phase
func (p *BackupRepoFiles) Title() string {
	return "Back up repository definitions"
}

// Run the phase
func (p *BackupRepoFiles) Run() error {
	return p.eachUnfinished("backup_repo_files", p.Config.Spec.Hosts, p.backupRepoFiles)
}

func (p *BackupRepoFiles) backupRepoFiles(h *migration.Host) error {
	repoDir := h.Configurer.RepoDir()
	files, err := h.Configurer.ListFiles(h, repoDir)
	if err != nil {
		return err
	}

	var matches []string
	for _, f := range files {
		if ok, err := doublestar.Match(repoBackupPattern, f); err == nil && ok {
			matches = append(matches, f)
		}
	}

	if len(matches) == 0 {
		log.Infof("%s: no %s files found in %s", h, repoBackupPattern, repoDir)
		return nil
	}

	backupDir := path.Join(repoDir, "backup-"+time.Now().Format("20060102T150405"))
	if err := h.Configurer.MkDir(h, backupDir); err != nil {
		return err
	}

	for _, f := range matches {
		if err := h.Configurer.CopyFile(h, path.Join(repoDir, f), path.Join(backupDir, f)); err != nil {
			return err
		}
		log.Infof("%s: backed up %s to %s", h, f, backupDir)
	}
	p.SetProp("files", len(matches))

	return nil
}
