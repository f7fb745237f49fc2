// Package config manages user-level settings stored at ~/.extbuild/config.yaml
// with EXTBUILD_* environment overrides. Settings cover the cmake binary,
// the interpreter passed to CMake and the default log level.
package config
