// Package repofile renders yum repository definition files.
package repofile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/k0sproject/dig"
)

// Definition describes a single yum repository.
type Definition struct {
	Name    string
	BaseURL string
	GPGKey  string
	Options dig.Mapping
}

// FileName returns the file name the definition should be written as.
func (d Definition) FileName() string {
	return d.Name + ".repo"
}

// Render produces the repository definition file contents.
func (d Definition) Render() (string, error) {
	if d.Name == "" {
		return "", fmt.Errorf("repository definition has no name")
	}
	if d.BaseURL == "" {
		return "", fmt.Errorf("repository definition %s has no baseurl", d.Name)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s]\n", d.Name)
	fmt.Fprintf(&sb, "name=%s\n", d.Name)
	fmt.Fprintf(&sb, "baseurl=%s\n", d.BaseURL)
	if d.GPGKey != "" {
		sb.WriteString("gpgcheck=1\n")
		fmt.Fprintf(&sb, "gpgkey=%s\n", d.GPGKey)
	}

	// free-form extra options, rendered in a stable order
	keys := make([]string, 0, len(d.Options))
	for k := range d.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s=%v\n", k, d.Options[k])
	}

	if _, ok := d.Options["enabled"]; !ok {
		sb.WriteString("enabled=1\n")
	}

	return sb.String(), nil
}
