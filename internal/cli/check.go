package cli

import (
	"errors"
	"fmt"

	"github.com/pynocchio/extbuild/internal/build"
	"github.com/pynocchio/extbuild/internal/cmake"
	"github.com/pynocchio/extbuild/internal/config"
	"github.com/pynocchio/extbuild/internal/platform"
	"github.com/pynocchio/extbuild/internal/process"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that cmake is usable on this host",
	Long: `Query the configured cmake binary, report its version and whether it
satisfies the minimum version required on this platform. Also reports the
Python interpreter that builds would pass to cmake.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, platform.Detect(), newTool(process.Exec{}))
	},
}

func runCheck(cmd *cobra.Command, host platform.Host, tool *cmake.Tool) error {
	w := cmd.OutOrStdout()
	st := newStyles(w)

	fmt.Fprintf(w, "Host:    %s\n", host)
	fmt.Fprintf(w, "cmake:   %s\n", tool.Path)

	v, raw, err := tool.Version(cmd.Context(), nil)
	if errors.Is(err, cmake.ErrNotFound) {
		fmt.Fprintf(w, "version: %s\n", st.fail.Render("not found"))
		return fmt.Errorf("querying cmake: %w", err)
	}
	var exitErr *process.ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintf(w, "version: %s\n", st.fail.Render("cmake --version failed"))
		return err
	}
	if v == nil {
		logger.Warn("unrecognized cmake version output", "output", raw)
		fmt.Fprintln(w, "version: unknown")
	} else {
		fmt.Fprintf(w, "version: %s\n", v)
	}

	if interp := build.ResolveInterpreter(config.Get(config.KeyPython)); interp != "" {
		fmt.Fprintf(w, "python:  %s\n", interp)
	} else {
		fmt.Fprintf(w, "python:  %s\n", st.muted.Render("not found (PYTHON_EXECUTABLE will not be set)"))
	}

	required := build.RequiredVersion(host.Platform)
	if required == "" {
		fmt.Fprintf(w, "minimum: none on %s\n", host.Platform)
		return nil
	}
	if v == nil {
		fmt.Fprintf(w, "minimum: %s %s\n", required, st.fail.Render("[FAIL]"))
		return &build.ToolingVersionTooLowError{Required: required}
	}
	ok, err := cmake.AtLeast(v, required)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(w, "minimum: %s %s\n", required, st.fail.Render("[FAIL]"))
		return &build.ToolingVersionTooLowError{Found: v.String(), Required: required}
	}
	fmt.Fprintf(w, "minimum: %s %s\n", required, st.ok.Render("[OK]"))
	return nil
}
