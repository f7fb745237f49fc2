package cmake

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/pynocchio/extbuild/internal/process"
)

// DefaultBinary is the executable looked up on PATH when none is configured.
const DefaultBinary = "cmake"

// ErrNotFound is returned when the cmake binary cannot be invoked.
var ErrNotFound = errors.New("cmake could not be invoked")

// Tool binds a cmake executable to the runner that starts it.
type Tool struct {
	Path   string
	Runner process.Runner
}

// New returns a Tool for path, falling back to DefaultBinary.
func New(path string, runner process.Runner) *Tool {
	if path == "" {
		path = DefaultBinary
	}
	return &Tool{Path: path, Runner: runner}
}

// Version runs `cmake --version` and parses the result. A binary that cannot
// be started wraps ErrNotFound. One that starts and exits non-zero returns
// the *process.ExitError. A successful run with unparseable output returns
// the raw output alongside the parse error.
func (t *Tool) Version(ctx context.Context, env []string) (*semver.Version, string, error) {
	out, err := t.Runner.Output(ctx, process.Command{
		Name: t.Path,
		Args: []string{"--version"},
		Env:  env,
	})
	if err != nil {
		var exitErr *process.ExitError
		if errors.As(err, &exitErr) {
			return nil, string(out), fmt.Errorf("querying cmake version: %w", err)
		}
		return nil, "", fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	v, err := ParseVersion(string(out))
	return v, string(out), err
}

// Configure returns the configure-step command: `cmake <sourceDir> <args...>`.
func (t *Tool) Configure(sourceDir string, args []string, dir string, env []string) process.Command {
	return process.Command{
		Name: t.Path,
		Args: append([]string{sourceDir}, args...),
		Dir:  dir,
		Env:  env,
	}
}

// Build returns the build-step command: `cmake --build . <args...>`.
func (t *Tool) Build(args []string, dir string, env []string) process.Command {
	return process.Command{
		Name: t.Path,
		Args: append([]string{"--build", "."}, args...),
		Dir:  dir,
		Env:  env,
	}
}
