package phase

import (
	"path"

	log "github.com/sirupsen/logrus"

	"github.com/rhel2centos/rhel2centos/config"
	"github.com/rhel2centos/rhel2centos/config/migration"
	"github.com/rhel2centos/rhel2centos/pkg/repofile"
)

// WriteRepoOverrides renders the configured extra yum repository definition
// files into the repository directory on the hosts
type WriteRepoOverrides struct {
	GenericPhase
	definitions []repofile.Definition
}

// Title for the phase
func (p *WriteRepoOverrides) Title() string {
	return "Write repository overrides"
}

// Prepare renders the configured repository definitions
func (p *WriteRepoOverrides) Prepare(c *config.Migration) error {
	p.Config = c
	p.definitions = nil
	for _, repo := range c.Spec.CentOS.Repositories {
		p.definitions = append(p.definitions, repo.Definition())
	}
	return nil
}

// ShouldRun is true when extra repositories have been configured
func (p *WriteRepoOverrides) ShouldRun() bool {
	return len(p.definitions) > 0
}

// Run the phase
func (p *WriteRepoOverrides) Run() error {
	return p.eachUnfinished("write_repo_overrides", p.Config.Spec.Hosts, p.writeDefinitions)
}

func (p *WriteRepoOverrides) writeDefinitions(h *migration.Host) error {
	for _, def := range p.definitions {
		content, err := def.Render()
		if err != nil {
			return err
		}
		target := path.Join(h.Configurer.RepoDir(), def.FileName())
		if err := h.Configurer.WriteFile(h, target, content, "0644"); err != nil {
			return err
		}
		log.Infof("%s: wrote repository definition %s", h, target)
	}
	return nil
}
