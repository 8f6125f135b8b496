// Package phase implements the migration phases and a manager to run them
package phase

import (
	"github.com/logrusorgru/aurora"
	log "github.com/sirupsen/logrus"

	"github.com/rhel2centos/rhel2centos/config"
)

// Phase is anything that can be used as a migration phase
type Phase interface {
	Run() error
	Title() string
}

type withconfig interface {
	Title() string
	Prepare(*config.Migration) error
}

type conditional interface {
	ShouldRun() bool
}

// beforehook receives the phase title before the phase is run
type beforehook interface {
	Before(string) error
}

// afterhook receives the phase result error after the phase has run
type afterhook interface {
	After(error) error
}

type cleanupable interface {
	CleanUp()
}

// Manager executes the added phases in order to perform the migration
type Manager struct {
	phases []Phase
	Config *config.Migration
}

// AddPhase adds a Phase to Manager
func (m *Manager) AddPhase(p ...Phase) {
	m.phases = append(m.phases, p...)
}

// Run executes all the added Phases in order
func (m *Manager) Run() error {
	var ran []Phase
	var result error

	defer func() {
		if result != nil {
			for _, p := range ran {
				if c, ok := p.(cleanupable); ok {
					log.Infof("* Running clean-up for phase: %s", p.Title())
					c.CleanUp()
				}
			}
		}
	}()

	for _, p := range m.phases {
		title := p.Title()

		if p, ok := p.(withconfig); ok {
			log.Debugf("preparing phase '%s'", title)
			if err := p.Prepare(m.Config); err != nil {
				return err
			}
		}

		if p, ok := p.(conditional); ok {
			if !p.ShouldRun() {
				log.Debugf("skipping phase '%s'", title)
				continue
			}
		}

		if p, ok := p.(beforehook); ok {
			if err := p.Before(title); err != nil {
				log.Debugf("before hook failed '%s'", err.Error())
				return err
			}
		}

		text := aurora.Green("==> Running phase: %s").String()
		log.Infof(text, title)
		ran = append(ran, p)
		result = p.Run()

		if p, ok := p.(afterhook); ok {
			if err := p.After(result); err != nil {
				log.Debugf("after hook failed: '%s' (phase result: %v)", err.Error(), result)
				return err
			}
		}

		if result != nil {
			return result
		}
	}

	return nil
}
