// Package scaffold generates a starter extension project from embedded
// templates. It powers "extbuild init", writing extbuild.yaml, a
// CMakeLists.txt and a placeholder source file, then validates the generated
// manifest.
package scaffold
