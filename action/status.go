package action

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/rhel2centos/rhel2centos/config"
	"github.com/rhel2centos/rhel2centos/phase"
)

// Status connects to the hosts and reports how far their migration has got
type Status struct {
	// Migration is the migration configuration
	Migration *config.Migration
	// Writer is where the report is printed to
	Writer io.Writer
}

// Run the status action
func (s Status) Run() error {
	manager := phase.Manager{Config: s.Migration}
	manager.AddPhase(
		&phase.Connect{},
		&phase.DetectOS{},
		&phase.GatherFacts{},
		&phase.Disconnect{},
	)

	if err := manager.Run(); err != nil {
		return err
	}

	w := tabwriter.NewWriter(s.Writer, 2, 4, 3, ' ', 0)
	fmt.Fprintln(w, "HOST\tRELEASE\tSTAGE\tDONE")
	for _, h := range s.Migration.Spec.Hosts {
		stages := h.Metadata.Stages.Stages()
		if len(stages) == 0 {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", h, h.Metadata.Release, "-", "not started")
			continue
		}
		names := make([]string, 0, len(stages))
		for name := range stages {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", h, h.Metadata.Release, name, stages[name])
		}
	}

	return w.Flush()
}
