package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "extbuild" {
		t.Errorf("CLIName() = %q, want %q", got, "extbuild")
	}
	if got := ManifestFile(); got != "extbuild.yaml" {
		t.Errorf("ManifestFile() = %q, want %q", got, "extbuild.yaml")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("cmake"); got != "EXTBUILD_CMAKE" {
		t.Errorf("EnvVar(cmake) = %q, want EXTBUILD_CMAKE", got)
	}
}
