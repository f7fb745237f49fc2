// Package process is the subprocess boundary for extbuild. A Command carries
// its own working directory and environment so callers never rely on the
// ambient process state, and the Runner interface lets the build pipeline be
// exercised without starting real tools.
package process
