package manifest

// DefaultBuildLib is the artifact root used when build_lib is omitted.
const DefaultBuildLib = "build/lib"

// Project is the decoded form of extbuild.yaml.
type Project struct {
	Name string `yaml:"name" json:"name"`

	// Version keeps the literal text, so an unquoted `version: 1.0` stays
	// "1.0" rather than becoming a number.
	Version     string      `yaml:"version" json:"version"`
	Description string      `yaml:"description,omitempty" json:"description,omitempty"`
	BuildLib    string      `yaml:"build_lib,omitempty" json:"build_lib,omitempty"`
	BuildTemp   string      `yaml:"build_temp,omitempty" json:"build_temp,omitempty"`
	Extensions  []Extension `yaml:"extensions" json:"extensions"`

	// Dir is the directory holding the manifest. Relative paths in the
	// manifest resolve against it.
	Dir string `yaml:"-" json:"-"`
}

// Extension declares one CMake project built into one artifact.
type Extension struct {
	Name      string `yaml:"name" json:"name"`
	SourceDir string `yaml:"source_dir,omitempty" json:"source_dir,omitempty"`
	CMakeArgs string `yaml:"cmake_args,omitempty" json:"cmake_args,omitempty"`
}
