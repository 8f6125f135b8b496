package migration

import (
	"fmt"
	"strings"
	"sync"
)

// Hosts are migration target hosts
type Hosts []*Host

// First returns the first host
func (hosts Hosts) First() *Host {
	if len(hosts) == 0 {
		return nil
	}
	return hosts[0]
}

// Find returns the first matching Host. The finder function should return true for a Host matching the criteria.
func (hosts Hosts) Find(filter func(h *Host) bool) *Host {
	for _, h := range hosts {
		if filter(h) {
			return h
		}
	}
	return nil
}

// Filter returns a filtered list of Hosts. The filter function should return true for hosts matching the criteria.
func (hosts Hosts) Filter(filter func(h *Host) bool) Hosts {
	result := make(Hosts, 0, len(hosts))

	for _, h := range hosts {
		if filter(h) {
			result = append(result, h)
		}
	}

	return result
}

// Unmigrated returns the hosts whose stage ledger does not report a finished migration
func (hosts Hosts) Unmigrated() Hosts {
	return hosts.Filter(func(h *Host) bool { return !h.Migrated() })
}

// Each runs a function (or multiple functions chained) on every Host.
func (hosts Hosts) Each(filters ...func(h *Host) error) error {
	for _, filter := range filters {
		for _, h := range hosts {
			if err := filter(h); err != nil {
				return err
			}
		}
	}

	return nil
}

// ParallelEach runs a function (or multiple functions chained) on every Host parallelly.
// Any errors will be concatenated and returned.
func (hosts Hosts) ParallelEach(filters ...func(h *Host) error) error {
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errors []string

	for _, filter := range filters {
		for _, h := range hosts {
			wg.Add(1)
			go func(h *Host) {
				defer wg.Done()
				if err := filter(h); err != nil {
					mu.Lock()
					errors = append(errors, fmt.Sprintf("%s: %s", h.String(), err.Error()))
					mu.Unlock()
				}
			}(h)
		}
		wg.Wait()
	}

	if len(errors) > 0 {
		return fmt.Errorf("failed on %d hosts:\n - %s", len(errors), strings.Join(errors, "\n - "))
	}

	return nil
}

// Validate performs a sanity check on the host list
func (hosts Hosts) Validate() error {
	if len(hosts) == 0 {
		return fmt.Errorf("at least one host required")
	}

	hostmap := make(map[string]struct{}, len(hosts))
	for idx, h := range hosts {
		if err := h.Validate(); err != nil {
			return fmt.Errorf("host #%d: %w", idx+1, err)
		}
		key := h.Protocol() + "/" + h.Address()
		if _, ok := hostmap[key]; ok {
			return fmt.Errorf("host #%d: is not unique", idx+1)
		}
		hostmap[key] = struct{}{}
	}

	return nil
}
