package platform

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// Platform identifies a family of hosts that share one build policy.
type Platform int

// Supported platforms. Other covers Linux, the BSDs and anything else that
// is neither Windows nor macOS.
const (
	Other Platform = iota
	Windows
	Darwin
)

// All lists every platform in declaration order.
var All = []Platform{Other, Windows, Darwin}

// String returns the lowercase platform name used on the command line.
func (p Platform) String() string {
	switch p {
	case Windows:
		return "windows"
	case Darwin:
		return "darwin"
	default:
		return "other"
	}
}

// Parse converts a platform name into a Platform. It accepts the names
// returned by String as well as GOOS values ("linux" maps to Other).
func Parse(name string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "windows":
		return Windows, nil
	case "darwin", "macos", "osx":
		return Darwin, nil
	case "other", "linux", "freebsd", "openbsd", "netbsd", "dragonfly", "solaris", "illumos", "aix":
		return Other, nil
	default:
		return Other, fmt.Errorf("unknown platform %q: supported platforms are windows, darwin and other", name)
	}
}

// FromGOOS maps a Go GOOS value onto a Platform.
func FromGOOS(goos string) Platform {
	switch goos {
	case "windows":
		return Windows
	case "darwin":
		return Darwin
	default:
		return Other
	}
}

// Host describes the machine a build targets.
type Host struct {
	Platform    Platform
	PointerBits int
}

// Detect returns the Host for the running process.
func Detect() Host {
	return Host{
		Platform:    FromGOOS(runtime.GOOS),
		PointerBits: strconv.IntSize,
	}
}

// Is64Bit reports whether pointers are wider than 32 bits.
func (h Host) Is64Bit() bool {
	return h.PointerBits > 32
}

// String formats the host as "<platform>/<bits>bit".
func (h Host) String() string {
	return fmt.Sprintf("%s/%dbit", h.Platform, h.PointerBits)
}
