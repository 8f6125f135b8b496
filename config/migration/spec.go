package migration

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/k0sproject/rig"
)

// Spec defines the migration config spec section
type Spec struct {
	Hosts  Hosts   `yaml:"hosts,omitempty"`
	CentOS *CentOS `yaml:"centos,omitempty"`
}

// UnmarshalYAML sets in some sane defaults when unmarshaling the data from yaml
func (s *Spec) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type spec Spec
	ys := (*spec)(s)

	if err := unmarshal(ys); err != nil {
		return err
	}

	s.SetDefaults()

	return nil
}

// SetDefaults fills in a localhost target and the centos defaults when omitted
func (s *Spec) SetDefaults() {
	if len(s.Hosts) == 0 {
		s.Hosts = Hosts{
			&Host{Connection: rig.Connection{Localhost: &rig.Localhost{Enabled: true}}},
		}
	}
	if s.CentOS == nil {
		s.CentOS = &CentOS{}
	}
	s.CentOS.SetDefaults()
}

// Validate performs a configuration sanity check
func (s *Spec) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Hosts, validation.By(func(interface{}) error { return s.Hosts.Validate() })),
		validation.Field(&s.CentOS),
	)
}
