// Package manifest reads and validates extbuild.yaml, the project file that
// names the distribution and lists the native extensions to build. Files are
// checked against an embedded JSON Schema before they are decoded, so callers
// get path-level issues instead of a bare YAML error.
package manifest
