package build

import (
	"fmt"
	"os"
	"strings"
)

// CompilerFlagsVar is the environment variable carrying C++ compiler flags.
const CompilerFlagsVar = "CXXFLAGS"

// Environment is an immutable snapshot of KEY=VALUE pairs. Modifiers return
// a new snapshot and never touch the process environment.
type Environment struct {
	entries []string
}

// CaptureEnvironment snapshots the current process environment.
func CaptureEnvironment() Environment {
	return NewEnvironment(os.Environ())
}

// NewEnvironment builds a snapshot from KEY=VALUE entries. Later duplicates
// win.
func NewEnvironment(entries []string) Environment {
	var e Environment
	for _, kv := range entries {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		e = e.With(key, value)
	}
	return e
}

// Get returns the value of key and whether it is set.
func (e Environment) Get(key string) (string, bool) {
	prefix := key + "="
	for _, kv := range e.entries {
		if strings.HasPrefix(kv, prefix) {
			return kv[len(prefix):], true
		}
	}
	return "", false
}

// With returns a snapshot where key is set to value.
func (e Environment) With(key, value string) Environment {
	prefix := key + "="
	out := make([]string, 0, len(e.entries)+1)
	replaced := false
	for _, kv := range e.entries {
		if strings.HasPrefix(kv, prefix) {
			if !replaced {
				out = append(out, prefix+value)
				replaced = true
			}
			continue
		}
		out = append(out, kv)
	}
	if !replaced {
		out = append(out, prefix+value)
	}
	return Environment{entries: out}
}

// Append returns a snapshot where suffix is appended to the current value of
// key, separated by a single space. An unset key is treated as empty, so the
// result keeps the leading space.
func (e Environment) Append(key, suffix string) Environment {
	current, _ := e.Get(key)
	return e.With(key, current+" "+suffix)
}

// Slice returns a copy of the entries suitable for exec.Cmd.Env.
func (e Environment) Slice() []string {
	return append([]string(nil), e.entries...)
}

// Len returns the number of variables in the snapshot.
func (e Environment) Len() int { return len(e.entries) }

// VersionAnnotation returns the compiler flag that embeds version into the
// extension, with the quotes escaped for the shell the build tool spawns.
func VersionAnnotation(version string) string {
	return fmt.Sprintf(`-DVERSION_INFO=\"%s\"`, version)
}
