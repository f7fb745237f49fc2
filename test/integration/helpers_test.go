//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // EXTBUILD_HOME, holds the user config
	ProjectDir string // Project root containing extbuild.yaml
	CMake      string // Path to the fake cmake script
	Log        string // Every fake cmake invocation is appended here
}

// fakeCMake stands in for cmake. Configure records the output directory in
// the build tree; build drops an artifact named after the build directory
// into it, nested under <BuildType>/ when FAKE_CMAKE_NEST is set. Setting
// FAKE_CMAKE_FAIL to configure or build makes that step exit non-zero.
const fakeCMake = `#!/bin/sh
if [ "$1" = "--version" ]; then
  echo "cmake version ${FAKE_CMAKE_VERSION:-3.27.4}"
  exit 0
fi

if [ "$1" = "--build" ]; then
  printf '%s\n' "build $*" >> "$FAKE_CMAKE_LOG"
  if [ "$FAKE_CMAKE_FAIL" = "build" ]; then exit 4; fi
  out=$(cat .fake-out)
  mkdir -p "$out"
  echo artifact > "$out/$(basename "$PWD").so"
  exit 0
fi

printf '%s\n' "configure $* CXXFLAGS=$CXXFLAGS" >> "$FAKE_CMAKE_LOG"
if [ "$FAKE_CMAKE_FAIL" = "configure" ]; then exit 3; fi
out=""
cfg=""
for a in "$@"; do
  case "$a" in
    -DCMAKE_LIBRARY_OUTPUT_DIRECTORY=*) out="${a#*=}" ;;
    -DCMAKE_BUILD_TYPE=*) cfg="${a#*=}" ;;
  esac
done
if [ -n "$FAKE_CMAKE_NEST" ]; then out="$out/$cfg"; fi
echo "$out" > .fake-out
exit 0
`

// setupTestEnv creates isolated directories, installs the fake cmake and
// points the environment at them. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake cmake is a POSIX shell script")
	}

	binDir := t.TempDir()
	env := &testEnv{
		HomeDir:    t.TempDir(),
		ProjectDir: t.TempDir(),
		CMake:      filepath.Join(binDir, "cmake"),
		Log:        filepath.Join(binDir, "cmake.log"),
	}

	if err := os.WriteFile(env.CMake, []byte(fakeCMake), 0755); err != nil {
		t.Fatalf("writing fake cmake: %v", err)
	}

	t.Setenv("EXTBUILD_HOME", env.HomeDir)
	t.Setenv("EXTBUILD_CMAKE", env.CMake)
	t.Setenv("FAKE_CMAKE_LOG", env.Log)
	t.Setenv("FAKE_CMAKE_FAIL", "")
	t.Setenv("FAKE_CMAKE_NEST", "")
	t.Setenv("CXXFLAGS", "-O2")

	return env
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// readLog returns the fake cmake invocations, one per line.
func readLog(t *testing.T, env *testEnv) []string {
	t.Helper()
	data, err := os.ReadFile(env.Log)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading %s: %v", env.Log, err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}
