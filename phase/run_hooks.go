package phase

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rhel2centos/rhel2centos/config"
	"github.com/rhel2centos/rhel2centos/config/migration"
)

var _ Phase = &RunHooks{}

// RunHooks phase runs a set of hooks configured for the hosts
type RunHooks struct {
	GenericPhase

	// Action is the lifecycle action, e.g. migrate
	Action string
	// Stage is the timing within the action: before or after
	Stage string

	steps map[*migration.Host][]string
}

// Title for the phase
func (p *RunHooks) Title() string {
	titler := cases.Title(language.AmericanEnglish)
	return fmt.Sprintf("Run %s %s Hooks", titler.String(p.Stage), titler.String(p.Action))
}

// Prepare digs out the hosts with steps from the config
func (p *RunHooks) Prepare(c *config.Migration) error {
	p.Config = c
	p.steps = make(map[*migration.Host][]string)
	for _, h := range c.Spec.Hosts {
		if h.Migrated() {
			continue
		}
		if steps := h.Hooks.ForActionAndStage(p.Action, p.Stage); len(steps) > 0 {
			p.steps[h] = steps
		}
	}

	return nil
}

// ShouldRun is true when there are hosts with hooks to run
func (p *RunHooks) ShouldRun() bool {
	return len(p.steps) > 0
}

// Run executes the hooks on the hosts
func (p *RunHooks) Run() error {
	hosts := make(migration.Hosts, 0, len(p.steps))
	for h := range p.steps {
		hosts = append(hosts, h)
	}
	return hosts.ParallelEach(func(h *migration.Host) error {
		return h.ExecAll(p.steps[h])
	})
}
