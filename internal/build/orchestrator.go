package build

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pynocchio/extbuild/internal/cmake"
	"github.com/pynocchio/extbuild/internal/platform"
	"github.com/pynocchio/extbuild/internal/process"
)

// Distribution identifies the package the extensions belong to.
type Distribution struct {
	Name    string
	Version string
}

// Orchestrator configures and builds extensions with cmake.
type Orchestrator struct {
	Host         platform.Host
	Tool         *cmake.Tool
	Distribution Distribution

	// BuildLib is the root output directory for artifacts.
	BuildLib string

	// BuildTemp holds the per-extension cmake build trees. When empty, a
	// temporary directory is created for the run and removed afterwards.
	BuildTemp string

	Debug       bool
	Interpreter string

	// Env is the environment every subprocess starts from. When empty, the
	// process environment is captured at the start of each run.
	Env Environment

	// Stdout receives the per-extension diagnostic lines and the tool's
	// output. Defaults to os.Stdout.
	Stdout io.Writer
	Stderr io.Writer

	Logger *slog.Logger
}

func (o *Orchestrator) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

func (o *Orchestrator) stdout() io.Writer {
	if o.Stdout == nil {
		return os.Stdout
	}
	return o.Stdout
}

func (o *Orchestrator) environment() Environment {
	if o.Env.Len() == 0 {
		return CaptureEnvironment()
	}
	return o.Env
}

func (o *Orchestrator) deriveOptions() DeriveOptions {
	return DeriveOptions{
		Debug:       o.Debug,
		BuildLib:    o.BuildLib,
		Interpreter: o.Interpreter,
	}
}

// Plan derives the Configuration for each descriptor without running
// anything.
func (o *Orchestrator) Plan(descs []Descriptor) ([]Configuration, error) {
	configs := make([]Configuration, 0, len(descs))
	for _, d := range descs {
		c, err := Derive(o.Host, d, o.deriveOptions())
		if err != nil {
			return nil, err
		}
		configs = append(configs, c)
	}
	return configs, nil
}

// VerifyTooling checks that cmake can be invoked and, where the platform
// requires it, that it is recent enough.
func (o *Orchestrator) VerifyTooling(ctx context.Context, descs []Descriptor) error {
	return o.verifyTooling(ctx, descs, o.environment())
}

func (o *Orchestrator) verifyTooling(ctx context.Context, descs []Descriptor, env Environment) error {
	v, raw, err := o.Tool.Version(ctx, env.Slice())
	if errors.Is(err, cmake.ErrNotFound) {
		return &ToolingUnavailableError{Extensions: Names(descs), Err: err}
	}
	var exitErr *process.ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	required := RequiredVersion(o.Host.Platform)
	if required == "" {
		o.logger().Debug("cmake found", "output", firstLine(raw))
		return nil
	}

	if v == nil {
		o.logger().Warn("unrecognized cmake version output", "output", firstLine(raw), "err", err)
		return &ToolingVersionTooLowError{Required: required}
	}
	ok, err := cmake.AtLeast(v, required)
	if err != nil {
		return err
	}
	if !ok {
		return &ToolingVersionTooLowError{Found: v.String(), Required: required}
	}
	o.logger().Debug("cmake version accepted", "version", v.String(), "required", required)
	return nil
}

// Run verifies tooling once, then builds each descriptor in order. It stops
// at the first failure. The returned results cover every descriptor that
// was attempted.
func (o *Orchestrator) Run(ctx context.Context, descs []Descriptor) (results []Result, err error) {
	if len(descs) == 0 {
		return nil, fmt.Errorf("no extensions to build")
	}

	env := o.environment()
	if err := o.verifyTooling(ctx, descs, env); err != nil {
		return nil, err
	}

	buildTemp := o.BuildTemp
	if buildTemp == "" {
		buildTemp, err = os.MkdirTemp("", "extbuild-*")
		if err != nil {
			return nil, fmt.Errorf("creating temporary build directory: %w", err)
		}
		defer func() {
			if rmErr := os.RemoveAll(buildTemp); rmErr != nil {
				o.logger().Warn("removing temporary build directory", "dir", buildTemp, "err", rmErr)
			}
		}()
	}

	for _, d := range descs {
		res := Result{Name: d.Name()}
		res.advance(StateStart)
		res.advance(StateToolingVerified)

		buildErr := o.buildOne(ctx, d, env, filepath.Join(buildTemp, d.Name()), &res)
		results = append(results, res)
		if buildErr != nil {
			return results, buildErr
		}
	}
	return results, nil
}

func (o *Orchestrator) buildOne(ctx context.Context, d Descriptor, env Environment, buildDir string, res *Result) error {
	log := o.logger().With("extension", d.Name())

	cfg, err := Derive(o.Host, d, o.deriveOptions())
	if err != nil {
		return res.fail(err)
	}
	res.Configuration = cfg
	res.BuildDir = buildDir

	if err := os.MkdirAll(buildDir, 0755); err != nil {
		return res.fail(fmt.Errorf("creating build directory %s: %w", buildDir, err))
	}

	configureEnv := env.Append(CompilerFlagsVar, VersionAnnotation(o.Distribution.Version))

	configure := o.Tool.Configure(cfg.SourceDir, cfg.ConfigureArgs, buildDir, configureEnv.Slice())
	configure.Stdout, configure.Stderr = o.Stdout, o.Stderr
	log.Info("configuring", "platform", cfg.Platform, "config", cfg.BuildType, "dir", buildDir)
	log.Debug("exec", "cmd", configure.String())
	if err := o.run(ctx, StepConfigure, configure); err != nil {
		return res.fail(err)
	}
	res.advance(StateConfigured)

	buildCmd := o.Tool.Build(cfg.BuildArgs, buildDir, env.Slice())
	buildCmd.Stdout, buildCmd.Stderr = o.Stdout, o.Stderr
	log.Info("building", "config", cfg.BuildType)
	log.Debug("exec", "cmd", buildCmd.String())
	if err := o.run(ctx, StepBuild, buildCmd); err != nil {
		return res.fail(err)
	}
	res.advance(StateBuilt)

	if cfg.Relocates() {
		moved, err := PostProcess(cfg)
		res.Relocated = moved
		if err != nil {
			return res.fail(err)
		}
		log.Info("relocated artifacts", "count", len(moved), "dir", cfg.OutputDir)
		res.advance(StateRelocated)
	}

	res.advance(StateDone)
	fmt.Fprintln(o.stdout())
	fmt.Fprintln(o.stdout(), buildDir)
	return nil
}

func (o *Orchestrator) run(ctx context.Context, step Step, cmd process.Command) error {
	code, err := o.Tool.Runner.Run(ctx, cmd)
	if err != nil {
		return &SubprocessFailedError{Step: step, ExitCode: -1, Err: err}
	}
	if code != 0 {
		return &SubprocessFailedError{Step: step, ExitCode: code}
	}
	return nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
