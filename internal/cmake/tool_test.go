package cmake

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/pynocchio/extbuild/internal/process"
	"github.com/pynocchio/extbuild/internal/process/processtest"
)

func TestNew_DefaultBinary(t *testing.T) {
	if got := New("", nil).Path; got != DefaultBinary {
		t.Errorf("Path = %q, want %q", got, DefaultBinary)
	}
	if got := New("/opt/cmake/bin/cmake", nil).Path; got != "/opt/cmake/bin/cmake" {
		t.Errorf("Path = %q", got)
	}
}

func TestVersion(t *testing.T) {
	r := &processtest.Runner{Default: processtest.Result{Output: []byte("cmake version 3.27.4\n")}}
	tool := New("", r)

	v, raw, err := tool.Version(context.Background(), []string{"PATH=/usr/bin"})
	if err != nil {
		t.Fatalf("Version: %v", err)
	}
	if v.String() != "3.27.4" {
		t.Errorf("version = %s, want 3.27.4", v)
	}
	if raw == "" {
		t.Error("expected raw output")
	}
	if len(r.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(r.Calls))
	}
	if !reflect.DeepEqual(r.Calls[0].Args, []string{"--version"}) {
		t.Errorf("args = %v", r.Calls[0].Args)
	}
}

func TestVersion_NotFound(t *testing.T) {
	r := &processtest.Runner{Default: processtest.Result{Err: errors.New("exec: \"cmake\": executable file not found in $PATH")}}
	_, _, err := New("", r).Version(context.Background(), nil)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestVersion_NonZeroExit(t *testing.T) {
	r := &processtest.Runner{Default: processtest.Result{
		Err: &process.ExitError{Name: "cmake", ExitCode: 1, Stderr: "CMake Error: could not find CMAKE_ROOT"},
	}}
	_, _, err := New("", r).Version(context.Background(), nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrNotFound) {
		t.Errorf("non-zero exit reported as ErrNotFound: %v", err)
	}
	var exitErr *process.ExitError
	if !errors.As(err, &exitErr) {
		t.Errorf("err = %v, want *process.ExitError", err)
	}
}

func TestVersion_Unparseable(t *testing.T) {
	r := &processtest.Runner{Default: processtest.Result{Output: []byte("something odd")}}
	_, raw, err := New("", r).Version(context.Background(), nil)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("parse failure must not be reported as ErrNotFound")
	}
	if raw != "something odd" {
		t.Errorf("raw = %q", raw)
	}
}

func TestConfigureAndBuildCommands(t *testing.T) {
	tool := New("cmake", nil)
	env := []string{"A=1"}

	cfg := tool.Configure("/src", []string{"-DX=1"}, "/tmp/b", env)
	if !reflect.DeepEqual(cfg.Args, []string{"/src", "-DX=1"}) {
		t.Errorf("configure args = %v", cfg.Args)
	}
	if cfg.Dir != "/tmp/b" {
		t.Errorf("configure dir = %q", cfg.Dir)
	}

	b := tool.Build([]string{"--config", "Release", "--", "-j2"}, "/tmp/b", env)
	want := []string{"--build", ".", "--config", "Release", "--", "-j2"}
	if !reflect.DeepEqual(b.Args, want) {
		t.Errorf("build args = %v, want %v", b.Args, want)
	}
	if b.Dir != "/tmp/b" {
		t.Errorf("build dir = %q", b.Dir)
	}
}
