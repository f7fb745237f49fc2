//go:build integration

package integration_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pynocchio/extbuild/internal/build"
	"github.com/pynocchio/extbuild/internal/cmake"
	"github.com/pynocchio/extbuild/internal/config"
	"github.com/pynocchio/extbuild/internal/manifest"
	"github.com/pynocchio/extbuild/internal/platform"
	"github.com/pynocchio/extbuild/internal/process"
	"github.com/pynocchio/extbuild/internal/scaffold"
)

var linux64 = platform.Host{Platform: platform.Other, PointerBits: 64}

// newOrchestrator loads the project manifest and wires an orchestrator that
// runs the configured cmake for real.
func newOrchestrator(t *testing.T, env *testEnv, host platform.Host) (*build.Orchestrator, []build.Descriptor, *bytes.Buffer) {
	t.Helper()

	config.Load()
	p, err := manifest.Load(filepath.Join(env.ProjectDir, "extbuild.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	descs, err := p.Descriptors()
	if err != nil {
		t.Fatalf("Descriptors: %v", err)
	}

	var out bytes.Buffer
	return &build.Orchestrator{
		Host:         host,
		Tool:         cmake.New(config.Get(config.KeyCMake), process.Exec{}),
		Distribution: p.Distribution(),
		BuildLib:     p.BuildLibDir(),
		BuildTemp:    p.BuildTempDir(),
		Env:          build.CaptureEnvironment(),
		Stdout:       &out,
		Stderr:       &out,
	}, descs, &out
}

func TestBuildFromScaffold(t *testing.T) {
	env := setupTestEnv(t)

	if _, err := scaffold.Generate(scaffold.NewData("pynocchio"), env.ProjectDir, false); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	orch, descs, out := newOrchestrator(t, env, linux64)
	results, err := orch.Run(context.Background(), descs)
	if err != nil {
		t.Fatalf("Run: %v\n%s", err, out.String())
	}

	if len(results) != 1 || results[0].State() != build.StateDone {
		t.Fatalf("results = %+v", results)
	}
	assertFileExists(t, filepath.Join(env.ProjectDir, "build", "lib", "pynocchio.so"))

	// The scoped build tree is gone once the run finishes.
	assertFileNotExists(t, results[0].BuildDir)
	if !strings.Contains(out.String(), results[0].BuildDir) {
		t.Errorf("stdout should name the build directory:\n%s", out.String())
	}

	calls := readLog(t, env)
	if len(calls) != 2 {
		t.Fatalf("cmake calls = %d, want 2: %v", len(calls), calls)
	}
	if !strings.HasSuffix(calls[0], `CXXFLAGS=-O2 -DVERSION_INFO=\"0.1.0\"`) {
		t.Errorf("configure env not annotated: %s", calls[0])
	}
	if !strings.HasPrefix(calls[1], "build --build . --config Release -- -j2") {
		t.Errorf("build call = %s", calls[1])
	}
	if os.Getenv("CXXFLAGS") != "-O2" {
		t.Errorf("process CXXFLAGS mutated to %q", os.Getenv("CXXFLAGS"))
	}
}

func TestBuildDottedExtensionsInOrder(t *testing.T) {
	env := setupTestEnv(t)
	writeFile(t, filepath.Join(env.ProjectDir, "extbuild.yaml"), `name: pynocchio
version: 0.0.4
build_temp: build/temp
extensions:
  - name: pynocchio.native.core
    source_dir: core
  - name: pynocchio.native.extra
    source_dir: extra
    cmake_args: "-DWITH_TESTS=OFF"
`)

	orch, descs, out := newOrchestrator(t, env, linux64)
	if _, err := orch.Run(context.Background(), descs); err != nil {
		t.Fatalf("Run: %v\n%s", err, out.String())
	}

	lib := filepath.Join(env.ProjectDir, "build", "lib", "pynocchio", "native")
	assertFileExists(t, filepath.Join(lib, "pynocchio.native.core.so"))
	assertFileExists(t, filepath.Join(lib, "pynocchio.native.extra.so"))

	// An explicit build_temp is kept.
	assertFileExists(t, filepath.Join(env.ProjectDir, "build", "temp", "pynocchio.native.core"))

	calls := readLog(t, env)
	if len(calls) != 4 {
		t.Fatalf("cmake calls = %d, want 4: %v", len(calls), calls)
	}
	if !strings.Contains(calls[0], filepath.Join(env.ProjectDir, "core")) {
		t.Errorf("first configure should target core: %s", calls[0])
	}
	if !strings.Contains(calls[2], "-DWITH_TESTS=OFF") {
		t.Errorf("extra cmake args missing: %s", calls[2])
	}
}

func TestBuildDarwinRelocatesArtifacts(t *testing.T) {
	env := setupTestEnv(t)
	t.Setenv("FAKE_CMAKE_NEST", "1")
	if _, err := scaffold.Generate(scaffold.NewData("pynocchio"), env.ProjectDir, false); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	orch, descs, out := newOrchestrator(t, env, platform.Host{Platform: platform.Darwin, PointerBits: 64})
	orch.Debug = true

	results, err := orch.Run(context.Background(), descs)
	if err != nil {
		t.Fatalf("Run: %v\n%s", err, out.String())
	}

	lib := filepath.Join(env.ProjectDir, "build", "lib")
	assertFileExists(t, filepath.Join(lib, "pynocchio.so"))
	assertFileNotExists(t, filepath.Join(lib, "Debug"))
	if len(results[0].Relocated) != 1 {
		t.Errorf("relocated = %v", results[0].Relocated)
	}
}

func TestBuildConfigureFailureStops(t *testing.T) {
	env := setupTestEnv(t)
	t.Setenv("FAKE_CMAKE_FAIL", "configure")
	if _, err := scaffold.Generate(scaffold.NewData("pynocchio"), env.ProjectDir, false); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	orch, descs, _ := newOrchestrator(t, env, linux64)
	results, err := orch.Run(context.Background(), descs)

	var sfe *build.SubprocessFailedError
	if !errors.As(err, &sfe) {
		t.Fatalf("err = %v, want SubprocessFailedError", err)
	}
	if sfe.Step != build.StepConfigure || sfe.ExitCode != 3 {
		t.Errorf("got step %s exit %d, want configure exit 3", sfe.Step, sfe.ExitCode)
	}
	if len(readLog(t, env)) != 1 {
		t.Error("build step must not run after a failed configure")
	}
	assertFileNotExists(t, results[0].BuildDir)
}

func TestBuildWindowsGate(t *testing.T) {
	env := setupTestEnv(t)
	t.Setenv("FAKE_CMAKE_VERSION", "2.8.12")
	if _, err := scaffold.Generate(scaffold.NewData("pynocchio"), env.ProjectDir, false); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	orch, descs, _ := newOrchestrator(t, env, platform.Host{Platform: platform.Windows, PointerBits: 64})
	_, err := orch.Run(context.Background(), descs)
	if !errors.Is(err, build.ErrToolingVersionTooLow) {
		t.Fatalf("err = %v, want ErrToolingVersionTooLow", err)
	}
	if len(readLog(t, env)) != 0 {
		t.Error("no configure should run when the gate fails")
	}
}

func TestBuildMissingCMake(t *testing.T) {
	env := setupTestEnv(t)
	t.Setenv("EXTBUILD_CMAKE", filepath.Join(env.HomeDir, "no-such-cmake"))
	if _, err := scaffold.Generate(scaffold.NewData("pynocchio"), env.ProjectDir, false); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	orch, descs, _ := newOrchestrator(t, env, linux64)
	_, err := orch.Run(context.Background(), descs)

	var tue *build.ToolingUnavailableError
	if !errors.As(err, &tue) {
		t.Fatalf("err = %v, want ToolingUnavailableError", err)
	}
	if len(tue.Extensions) != 1 || tue.Extensions[0] != "pynocchio" {
		t.Errorf("Extensions = %v", tue.Extensions)
	}
}
