// Package build configures and builds CMake-based native extensions.
//
// An Orchestrator takes one or more Descriptors and, for each, derives a
// platform-specific Configuration, runs the CMake configure step and then
// the build step in a dedicated working directory, and finally normalizes
// where the artifact lands. Platform policy lives in a lookup table keyed by
// platform.Platform; adding a platform is a table entry.
//
// Every failure is fatal and reported as one of the typed errors in
// errors.go. Descriptors are processed sequentially and there are no
// retries.
//
// Example usage:
//
//	o := &build.Orchestrator{
//	    Host:         platform.Detect(),
//	    Tool:         cmake.New("", process.Exec{}),
//	    Distribution: build.Distribution{Name: "pynocchio", Version: "0.0.4"},
//	    BuildLib:     "build/lib",
//	    Env:          build.CaptureEnvironment(),
//	}
//	results, err := o.Run(ctx, descriptors)
package build
