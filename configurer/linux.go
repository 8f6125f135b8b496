// Package configurer provides a linux base for the per-distribution
// host command adapters.
package configurer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	escape "github.com/alessio/shellescape"
	"github.com/k0sproject/rig/exec"
	"github.com/k0sproject/rig/os"
)

// Linux is a base module for the linux OS support packages
type Linux struct {
	os.Linux
}

// Arch returns the machine hardware name (x86_64, aarch64, ...)
func (l Linux) Arch(h os.Host) (string, error) {
	arch, err := h.ExecOutput("uname -m")
	if err != nil {
		return "", err
	}
	return arch, nil
}

// DirExist returns true when the path is a directory and not a symlink
func (l Linux) DirExist(h os.Host, path string) bool {
	return h.Execf(`sudo test -d %[1]s -a ! -L %[1]s`, escape.Quote(path)) == nil
}

// DeleteDir removes a directory and its contents from the host
func (l Linux) DeleteDir(h os.Host, path string) error {
	return h.Execf(`sudo rm -rf -- %s`, escape.Quote(path))
}

// MkDir creates a directory (including intermediate directories)
func (l Linux) MkDir(h os.Host, path string) error {
	return h.Execf("sudo mkdir -p %s", escape.Quote(path))
}

// CopyFile copies a file on the host, preserving attributes
func (l Linux) CopyFile(h os.Host, src, dst string) error {
	return h.Execf("sudo cp -a %s %s", escape.Quote(src), escape.Quote(dst))
}

// ListFiles returns the names of regular files directly under a directory
func (l Linux) ListFiles(h os.Host, dir string) ([]string, error) {
	output, err := h.ExecOutput(fmt.Sprintf(`sudo find %s -maxdepth 1 -type f -printf '%%f\n'`, escape.Quote(dir)))
	if err != nil {
		return nil, fmt.Errorf("failed to list files in %s: %w", dir, err)
	}
	output = strings.TrimSpace(output)
	if output == "" {
		return nil, nil
	}
	return strings.Split(output, "\n"), nil
}

// ModTime returns the modification time of a file on the host
func (l Linux) ModTime(h os.Host, path string) (time.Time, error) {
	output, err := h.ExecOutput(fmt.Sprintf("sudo stat -c %%Y %s", escape.Quote(path)))
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	secs, err := strconv.ParseInt(strings.TrimSpace(output), 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("unexpected stat output for %s: %w", path, err)
	}
	return time.Unix(secs, 0), nil
}

// Touch updates the modification time of a file, creating it when missing
func (l Linux) Touch(h os.Host, path string) error {
	return h.Execf("sudo touch -- %s", escape.Quote(path))
}

// UpsertFile creates a file with the given contents unless it already exists
func (l Linux) UpsertFile(h os.Host, path, content string) error {
	script := fmt.Sprintf("set -C; cat > %s", path)
	return h.Exec(fmt.Sprintf("sudo /bin/sh -c %s", escape.Quote(script)), exec.Stdin(content))
}
