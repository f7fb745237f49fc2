// Package cmake wraps the CMake command-line contract used by extbuild: the
// version query, the configure invocation and the build invocation. CMake
// itself is treated as an opaque external process.
package cmake
