package build

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/shlex"
)

// Descriptor names one unit of native code built into one loadable artifact.
// It is immutable once constructed.
type Descriptor struct {
	name      string
	sourceDir string
	extraArgs []string
}

// NewDescriptor returns a Descriptor with sourceDir resolved to an absolute
// path.
func NewDescriptor(name, sourceDir string) (Descriptor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Descriptor{}, fmt.Errorf("extension name is required")
	}
	for _, part := range strings.Split(name, ".") {
		if part == "" {
			return Descriptor{}, fmt.Errorf("invalid extension name %q", name)
		}
	}

	abs, err := filepath.Abs(sourceDir)
	if err != nil {
		return Descriptor{}, fmt.Errorf("resolving source directory %s: %w", sourceDir, err)
	}
	return Descriptor{name: name, sourceDir: abs}, nil
}

// WithCMakeArgs returns a copy of d whose extra configure arguments are
// parsed from a shell-style string such as `-DFOO=1 -DBAR="a b"`.
func (d Descriptor) WithCMakeArgs(args string) (Descriptor, error) {
	parsed, err := shlex.Split(args)
	if err != nil {
		return Descriptor{}, fmt.Errorf("parsing cmake_args for %s: %w", d.name, err)
	}
	d.extraArgs = parsed
	return d, nil
}

// Name returns the dotted extension name.
func (d Descriptor) Name() string { return d.name }

// SourceDir returns the absolute directory holding CMakeLists.txt.
func (d Descriptor) SourceDir() string { return d.sourceDir }

// ExtraArgs returns a copy of the user-supplied configure arguments.
func (d Descriptor) ExtraArgs() []string {
	return append([]string(nil), d.extraArgs...)
}

// OutputDir returns the directory the artifact for d lands in: buildLib
// joined with the package path of the dotted name.
func (d Descriptor) OutputDir(buildLib string) (string, error) {
	parts := strings.Split(d.name, ".")
	dir := filepath.Join(append([]string{buildLib}, parts[:len(parts)-1]...)...)
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving output directory for %s: %w", d.name, err)
	}
	return abs, nil
}

// Names returns the names of descs in order.
func Names(descs []Descriptor) []string {
	names := make([]string, len(descs))
	for i, d := range descs {
		names[i] = d.name
	}
	return names
}
