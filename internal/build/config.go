package build

import (
	"strings"

	"github.com/pynocchio/extbuild/internal/platform"
)

// BuildType is the CMake configuration name.
type BuildType string

const (
	Debug   BuildType = "Debug"
	Release BuildType = "Release"
)

// BuildTypeFor returns Debug when debug is set and Release otherwise.
func BuildTypeFor(debug bool) BuildType {
	if debug {
		return Debug
	}
	return Release
}

// MinWindowsCMake is the oldest cmake accepted on Windows.
const MinWindowsCMake = "3.1.0"

// Configuration is the per-descriptor build plan. It is derived fresh for
// every build and never persisted.
type Configuration struct {
	Platform      platform.Platform
	BuildType     BuildType
	SourceDir     string
	OutputDir     string
	ConfigureArgs []string
	BuildArgs     []string
}

// Relocates reports whether artifacts for c land in a <BuildType>/
// subdirectory that PostProcess must flatten.
func (c Configuration) Relocates() bool {
	return policyFor(c.Platform).relocate
}

// policy is one row of the platform table.
type policy struct {
	// configure returns the platform-specific configure flags appended after
	// the common ones.
	configure func(h platform.Host, bt BuildType, extdir string) []string

	// nativeBuildArgs are passed to the native build tool after "--".
	nativeBuildArgs []string

	// minVersion gates cmake on this platform; empty means no gate.
	minVersion string

	// relocate moves artifacts out of a <BuildType>/ subdirectory.
	relocate bool
}

var policies = map[platform.Platform]policy{
	platform.Windows: {
		configure: func(h platform.Host, bt BuildType, extdir string) []string {
			args := []string{"-DCMAKE_LIBRARY_OUTPUT_DIRECTORY_" + strings.ToUpper(string(bt)) + "=" + extdir}
			if h.Is64Bit() {
				args = append(args, "-A", "x64")
			}
			return args
		},
		nativeBuildArgs: []string{"/m"},
		minVersion:      MinWindowsCMake,
	},
	platform.Darwin: {
		configure: func(_ platform.Host, bt BuildType, _ string) []string {
			return []string{
				"-DCMAKE_BUILD_TYPE=" + string(bt),
				"-DCMAKE_OSX_ARCHITECTURES=arm64;x86_64",
				"-DCMAKE_OSX_DEPLOYMENT_TARGET=12",
				"-G", "Xcode",
			}
		},
		relocate: true,
	},
	platform.Other: {
		configure: func(_ platform.Host, bt BuildType, _ string) []string {
			return []string{"-DCMAKE_BUILD_TYPE=" + string(bt)}
		},
		nativeBuildArgs: []string{"-j2"},
	},
}

func policyFor(p platform.Platform) policy {
	if pol, ok := policies[p]; ok {
		return pol
	}
	return policies[platform.Other]
}

// DeriveOptions carries the per-invocation inputs to Derive.
type DeriveOptions struct {
	Debug       bool
	BuildLib    string
	Interpreter string
}

// Derive computes the Configuration for d on host h.
func Derive(h platform.Host, d Descriptor, opts DeriveOptions) (Configuration, error) {
	extdir, err := d.OutputDir(opts.BuildLib)
	if err != nil {
		return Configuration{}, err
	}

	bt := BuildTypeFor(opts.Debug)
	pol := policyFor(h.Platform)

	configure := []string{"-DCMAKE_LIBRARY_OUTPUT_DIRECTORY=" + extdir}
	if opts.Interpreter != "" {
		configure = append(configure, "-DPYTHON_EXECUTABLE="+opts.Interpreter)
	}
	configure = append(configure, pol.configure(h, bt, extdir)...)
	configure = append(configure, d.ExtraArgs()...)

	buildArgs := []string{"--config", string(bt)}
	if len(pol.nativeBuildArgs) > 0 {
		buildArgs = append(buildArgs, "--")
		buildArgs = append(buildArgs, pol.nativeBuildArgs...)
	}

	return Configuration{
		Platform:      h.Platform,
		BuildType:     bt,
		SourceDir:     d.SourceDir(),
		OutputDir:     extdir,
		ConfigureArgs: configure,
		BuildArgs:     buildArgs,
	}, nil
}

// RequiredVersion returns the minimum cmake version for p, or "" when the
// platform has no gate.
func RequiredVersion(p platform.Platform) string {
	return policyFor(p).minVersion
}
