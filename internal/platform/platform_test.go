package platform

import (
	"runtime"
	"strconv"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Platform
		wantErr bool
	}{
		{"windows", Windows, false},
		{"Darwin", Darwin, false},
		{"macos", Darwin, false},
		{"linux", Other, false},
		{"other", Other, false},
		{" freebsd ", Other, false},
		{"plan9", Other, true},
		{"", Other, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Parse(%q) expected error, got nil", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, p := range All {
		got, err := Parse(p.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", p.String(), err)
		}
		if got != p {
			t.Errorf("Parse(%q) = %v, want %v", p.String(), got, p)
		}
	}
}

func TestDetect(t *testing.T) {
	h := Detect()
	if h.Platform != FromGOOS(runtime.GOOS) {
		t.Errorf("Detect().Platform = %v, want %v", h.Platform, FromGOOS(runtime.GOOS))
	}
	if h.PointerBits != strconv.IntSize {
		t.Errorf("Detect().PointerBits = %d, want %d", h.PointerBits, strconv.IntSize)
	}
}

func TestIs64Bit(t *testing.T) {
	if (Host{PointerBits: 32}).Is64Bit() {
		t.Error("32-bit host reported as 64-bit")
	}
	if !(Host{PointerBits: 64}).Is64Bit() {
		t.Error("64-bit host not reported as 64-bit")
	}
}

func TestHostString(t *testing.T) {
	h := Host{Platform: Windows, PointerBits: 64}
	if got := h.String(); got != "windows/64bit" {
		t.Errorf("String() = %q, want windows/64bit", got)
	}
}
