package config

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/rhel2centos/rhel2centos/config/migration"
)

// APIVersion is the current api version
const APIVersion = "rhel2centos.io/v1beta1"

// MigrationMetadata defines migration metadata
type MigrationMetadata struct {
	Name string `yaml:"name"`
}

// Migration describes the rhel2centos.yaml configuration
type Migration struct {
	APIVersion string             `yaml:"apiVersion"`
	Kind       string             `yaml:"kind"`
	Metadata   *MigrationMetadata `yaml:"metadata"`
	Spec       *migration.Spec    `yaml:"spec"`
}

// UnmarshalYAML sets in some sane defaults when unmarshaling the data from yaml
func (m *Migration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	m.Metadata = &MigrationMetadata{
		Name: "rhel7-to-centos7",
	}
	m.Spec = &migration.Spec{}

	type migrationConfig Migration
	ym := (*migrationConfig)(m)

	if err := unmarshal(ym); err != nil {
		return err
	}

	if m.Spec == nil {
		m.Spec = &migration.Spec{}
	}
	m.Spec.SetDefaults()

	return nil
}

// Validate performs a configuration sanity check
func (m *Migration) Validate() error {
	if m.Spec == nil {
		return fmt.Errorf("spec is missing")
	}
	return validation.ValidateStruct(m,
		validation.Field(&m.APIVersion, validation.Required, validation.In(APIVersion).Error("must equal "+APIVersion)),
		validation.Field(&m.Kind, validation.Required, validation.In("migration", "Migration").Error("must equal Migration")),
		validation.Field(&m.Spec),
	)
}
