package analytics

import "github.com/denisbrodbeck/machineid"

// MachineID returns an anonymized protected machine id of the host
func MachineID() (string, error) {
	return machineid.ProtectedID("rhel2centos")
}
