package migration

import (
	"fmt"
	"strings"
	"time"

	"github.com/creasty/defaults"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/k0sproject/rig"
	"github.com/k0sproject/rig/os"
	"github.com/k0sproject/rig/os/registry"
	log "github.com/sirupsen/logrus"

	"github.com/rhel2centos/rhel2centos/pkg/state"
)

// Host contains all the needed details to work with a migration target host
type Host struct {
	rig.Connection `yaml:",inline"`

	Hooks        Hooks  `yaml:"hooks,omitempty"`
	OSIDOverride string `yaml:"os,omitempty"`

	Metadata   HostMetadata `yaml:"-"`
	Configurer configurer   `yaml:"-"`
}

// configurer lists the per-host operations the migration phases need.
type configurer interface {
	Kind() string
	CheckPrivilege(os.Host) error
	Arch(os.Host) (string, error)
	Hostname(os.Host) string
	ReleaseInfo(os.Host) (string, error)
	IsEFIBooted(os.Host) bool
	PackageInstalled(os.Host, string) bool
	RemovePackageNoDeps(os.Host, string) error
	LocalInstallPackage(os.Host, string) error
	ReinstallPackage(os.Host, string) error
	UpdateSystem(os.Host) error
	DistroSync(os.Host) error
	BootPackages(os.Host, ...string) (map[string]string, error)
	DefaultKernelPackage(os.Host) (string, string, error)
	RegenerateGrubConfig(os.Host, string) error
	GrubConfigPath(bool) string
	DefaultBootEntryOK(os.Host) bool
	SetDefaultBootEntry(os.Host) error
	AddEFIBootEntry(os.Host, string, string) error
	ReadFile(os.Host, string) (string, error)
	WriteFile(os.Host, string, string, string) error
	UpsertFile(os.Host, string, string) error
	DeleteFile(os.Host, string) error
	FileExist(os.Host, string) bool
	DirExist(os.Host, string) bool
	DeleteDir(os.Host, string) error
	MkDir(os.Host, string) error
	CopyFile(os.Host, string, string) error
	ListFiles(os.Host, string) ([]string, error)
	ModTime(os.Host, string) (time.Time, error)
	Touch(os.Host, string) error
	RepoDir() string
	StatusFilePath() string
	LockFilePath() string
}

// HostMetadata is the fact data resolved from a host during the run
type HostMetadata struct {
	Arch           string
	Hostname       string
	Release        string
	EFI            bool
	AgentInstalled bool
	Stages         *state.Ledger
}

// UnmarshalYAML sets in some sane defaults when unmarshaling the data from yaml
func (h *Host) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type host Host
	yh := (*host)(h)

	if err := unmarshal(yh); err != nil {
		return err
	}

	if h.SSH == nil && h.WinRM == nil && h.Localhost == nil {
		h.Localhost = &rig.Localhost{Enabled: true}
	}

	return defaults.Set(h)
}

// Address returns an address for the host
func (h *Host) Address() string {
	if h.SSH != nil {
		return h.SSH.Address
	}

	return "127.0.0.1"
}

// Protocol returns host communication protocol
func (h *Host) Protocol() string {
	if h.SSH != nil {
		return "ssh"
	}

	if h.Localhost != nil {
		return "local"
	}

	return "nil"
}

// Validate performs a configuration sanity check
func (h *Host) Validate() error {
	return validation.ValidateStruct(h,
		validation.Field(&h.Connection, validation.By(func(interface{}) error {
			if h.SSH == nil && h.Localhost == nil {
				return fmt.Errorf("no ssh or localhost connection defined")
			}
			if h.WinRM != nil {
				return fmt.Errorf("winrm hosts can't be migrated")
			}
			return nil
		})),
	)
}

// ResolveConfigurer assigns a rig-style configurer to the Host (see configurer/)
func (h *Host) ResolveConfigurer() error {
	if h.OSVersion == nil {
		return fmt.Errorf("os version not known, the host needs to be connected first")
	}

	bf, err := registry.GetOSModuleBuilder(*h.OSVersion)
	if err != nil {
		return err
	}

	if c, ok := bf().(configurer); ok {
		h.Configurer = c

		return nil
	}

	return fmt.Errorf("unsupported OS")
}

// ExecAll executes a slice of commands on the host
func (h *Host) ExecAll(cmds []string) error {
	for _, cmd := range cmds {
		log.Infof("%s: Executing: %s", h, cmd)
		output, err := h.ExecOutput(cmd)
		if err != nil {
			log.Errorf("%s: %s", h, strings.ReplaceAll(output, "\n", fmt.Sprintf("\n%s: ", h)))
			return err
		}
		if strings.TrimSpace(output) != "" {
			log.Infof("%s: %s", h, strings.ReplaceAll(output, "\n", fmt.Sprintf("\n%s: ", h)))
		}
	}

	return nil
}

// Migrated returns true when the host's stage ledger reports a finished migration
func (h *Host) Migrated() bool {
	return h.Metadata.Stages.Completed()
}

// StageDone returns true when the named stage has already succeeded on the host
func (h *Host) StageDone(stage string) bool {
	return h.Metadata.Stages.Done(stage)
}

// MarkStageDone records a successful stage in the host's ledger and persists
// the ledger on the host
func (h *Host) MarkStageDone(stage string) error {
	if h.Metadata.Stages == nil {
		h.Metadata.Stages = state.NewLedger()
	}
	h.Metadata.Stages.SetDone(stage)

	data, err := h.Metadata.Stages.Marshal()
	if err != nil {
		return fmt.Errorf("%s: failed to encode stage status: %w", h, err)
	}

	if err := h.Configurer.WriteFile(h, h.Configurer.StatusFilePath(), string(data), "0644"); err != nil {
		return fmt.Errorf("%s: failed to write stage status: %w", h, err)
	}

	return nil
}
