package cli

import (
	"path/filepath"

	"github.com/pynocchio/extbuild/internal/branding"
	"github.com/pynocchio/extbuild/internal/build"
	"github.com/pynocchio/extbuild/internal/cmake"
	"github.com/pynocchio/extbuild/internal/config"
	"github.com/pynocchio/extbuild/internal/manifest"
	"github.com/pynocchio/extbuild/internal/platform"
	"github.com/pynocchio/extbuild/internal/process"
	"github.com/spf13/cobra"
)

// manifestPath returns flagValue, or the default manifest file in the
// current directory.
func manifestPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return branding.ManifestFile()
}

// loadProject loads and validates the manifest and returns its descriptors.
func loadProject(path string) (*manifest.Project, []build.Descriptor, error) {
	p, err := manifest.Load(manifestPath(path))
	if err != nil {
		return nil, nil, err
	}
	descs, err := p.Descriptors()
	if err != nil {
		return nil, nil, err
	}
	return p, descs, nil
}

// newTool binds the configured cmake binary to runner.
func newTool(runner process.Runner) *cmake.Tool {
	return cmake.New(config.Get(config.KeyCMake), runner)
}

// newOrchestrator wires an orchestrator for project on host. Flag overrides
// take precedence over the manifest, which takes precedence over user config.
func newOrchestrator(cmd *cobra.Command, p *manifest.Project, host platform.Host, debug bool, buildLib, buildTemp string) (*build.Orchestrator, error) {
	lib := p.BuildLibDir()
	if p.BuildLib == "" && config.Get(config.KeyBuildLib) != "" {
		lib = p.Resolve(config.Get(config.KeyBuildLib))
	}
	if buildLib != "" {
		lib = buildLib
	}
	lib, err := filepath.Abs(lib)
	if err != nil {
		return nil, err
	}

	temp := p.BuildTempDir()
	if buildTemp != "" {
		if temp, err = filepath.Abs(buildTemp); err != nil {
			return nil, err
		}
	}

	return &build.Orchestrator{
		Host:         host,
		Tool:         newTool(process.Exec{}),
		Distribution: p.Distribution(),
		BuildLib:     lib,
		BuildTemp:    temp,
		Debug:        debug,
		Interpreter:  build.ResolveInterpreter(config.Get(config.KeyPython)),
		Env:          build.CaptureEnvironment(),
		Stdout:       cmd.OutOrStdout(),
		Stderr:       cmd.ErrOrStderr(),
		Logger:       logger,
	}, nil
}
