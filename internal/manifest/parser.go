package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pynocchio/extbuild/internal/build"
	"go.yaml.in/yaml/v3"
)

// Parse reads a manifest file without schema validation.
func Parse(path string) (*Project, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parseBytes(data, path)
}

// Load validates the manifest at path against the schema and decodes it.
// Schema violations are returned as a *InvalidError.
func Load(path string) (*Project, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating manifest %s: %w", path, err)
	}
	if !result.Valid {
		return nil, &InvalidError{Path: path, Issues: result.Issues}
	}
	return parseBytes(data, path)
}

func parseBytes(data []byte, path string) (*Project, error) {
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving manifest path %s: %w", path, err)
	}
	p.Dir = filepath.Dir(abs)
	return &p, nil
}

// Resolve returns path relative to the manifest directory. Absolute paths
// are returned unchanged.
func (p *Project) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.Dir, path)
}

// BuildLibDir returns the resolved artifact root.
func (p *Project) BuildLibDir() string {
	if p.BuildLib == "" {
		return p.Resolve(DefaultBuildLib)
	}
	return p.Resolve(p.BuildLib)
}

// BuildTempDir returns the resolved build-tree root, or "" when the manifest
// leaves it to a scoped temporary directory.
func (p *Project) BuildTempDir() string {
	if p.BuildTemp == "" {
		return ""
	}
	return p.Resolve(p.BuildTemp)
}

// Descriptors converts the declared extensions into build descriptors.
func (p *Project) Descriptors() ([]build.Descriptor, error) {
	if len(p.Extensions) == 0 {
		return nil, fmt.Errorf("manifest declares no extensions")
	}

	descs := make([]build.Descriptor, 0, len(p.Extensions))
	for _, ext := range p.Extensions {
		src := ext.SourceDir
		if src == "" {
			src = "."
		}
		d, err := build.NewDescriptor(ext.Name, p.Resolve(src))
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(ext.CMakeArgs) != "" {
			if d, err = d.WithCMakeArgs(ext.CMakeArgs); err != nil {
				return nil, err
			}
		}
		descs = append(descs, d)
	}
	return descs, nil
}

// Distribution returns the name and version embedded into builds.
func (p *Project) Distribution() build.Distribution {
	return build.Distribution{Name: p.Name, Version: p.Version}
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
