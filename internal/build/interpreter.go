package build

import "os/exec"

// interpreterCandidates are looked up on PATH in order.
var interpreterCandidates = []string{"python3", "python"}

// ResolveInterpreter returns configured when set, otherwise the first
// interpreter found on PATH, otherwise "".
func ResolveInterpreter(configured string) string {
	if configured != "" {
		return configured
	}
	for _, name := range interpreterCandidates {
		if p, err := exec.LookPath(name); err == nil {
			return p
		}
	}
	return ""
}
