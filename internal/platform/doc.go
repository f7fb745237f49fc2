// Package platform models the host a build runs on as a closed set of
// platforms (Windows, Darwin, Other) plus the native pointer width. Build
// policy elsewhere is looked up by Platform rather than branching on GOOS.
package platform
