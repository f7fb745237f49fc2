package build

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrToolingUnavailable       = errors.New("build tool unavailable")
	ErrToolingVersionTooLow     = errors.New("build tool version too low")
	ErrSubprocessFailed         = errors.New("subprocess failed")
	ErrArtifactRelocationFailed = errors.New("artifact relocation failed")
)

// ToolingUnavailableError reports that cmake could not be invoked at all.
type ToolingUnavailableError struct {
	Extensions []string
	Err        error
}

func (e *ToolingUnavailableError) Error() string {
	return fmt.Sprintf("CMake must be installed to build the following extensions: %s", strings.Join(e.Extensions, ", "))
}

func (e *ToolingUnavailableError) Unwrap() error { return e.Err }

func (e *ToolingUnavailableError) Is(target error) bool { return target == ErrToolingUnavailable }

// ToolingVersionTooLowError reports a cmake older than the platform minimum.
// Found is empty when the version could not be determined.
type ToolingVersionTooLowError struct {
	Found    string
	Required string
}

func (e *ToolingVersionTooLowError) Error() string {
	found := e.Found
	if found == "" {
		found = "unknown"
	}
	return fmt.Sprintf("CMake >= %s is required (found %s)", e.Required, found)
}

func (e *ToolingVersionTooLowError) Is(target error) bool { return target == ErrToolingVersionTooLow }

// Step names a subprocess invocation in the pipeline.
type Step string

const (
	StepConfigure Step = "configure"
	StepBuild     Step = "build"
)

// SubprocessFailedError reports a configure or build step that exited
// non-zero. ExitCode is -1 when the process could not be started.
type SubprocessFailedError struct {
	Step     Step
	ExitCode int
	Err      error
}

func (e *SubprocessFailedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s step failed: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("%s step exited with code %d", e.Step, e.ExitCode)
}

func (e *SubprocessFailedError) Unwrap() error { return e.Err }

func (e *SubprocessFailedError) Is(target error) bool { return target == ErrSubprocessFailed }

// ArtifactRelocationFailedError reports a post-processing move or removal
// that failed.
type ArtifactRelocationFailedError struct {
	Path string
	Err  error
}

func (e *ArtifactRelocationFailedError) Error() string {
	return fmt.Sprintf("relocating artifacts from %s: %v", e.Path, e.Err)
}

func (e *ArtifactRelocationFailedError) Unwrap() error { return e.Err }

func (e *ArtifactRelocationFailedError) Is(target error) bool {
	return target == ErrArtifactRelocationFailed
}
