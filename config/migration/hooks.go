package migration

// Hooks define a list of hook commands per action and stage, for example
//
//	hooks:
//	  migrate:
//	    before:
//	      - date > /root/migration-started
type Hooks map[string]map[string][]string

// ForActionAndStage returns the hook commands for a given action and stage
func (h Hooks) ForActionAndStage(action, stage string) []string {
	if len(h[action]) > 0 {
		return h[action][stage]
	}
	return nil
}
