package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/pynocchio/extbuild/internal/build"
	"github.com/pynocchio/extbuild/internal/platform"
	"github.com/spf13/cobra"
)

var (
	planManifest    string
	planDebug       bool
	planPlatform    string
	planPointerBits int
)

// scopedTempPlaceholder stands in for the per-run temporary directory.
const scopedTempPlaceholder = "$TMPDIR/extbuild-*"

func init() {
	planCmd.Flags().StringVarP(&planManifest, "manifest", "m", "", "Path to the project manifest (default ./extbuild.yaml)")
	planCmd.Flags().BoolVarP(&planDebug, "debug", "g", false, "Plan a debug build")
	planCmd.Flags().StringVar(&planPlatform, "platform", "", "Target platform: windows, darwin or other (default: host)")
	planCmd.Flags().IntVar(&planPointerBits, "pointer-bits", 0, "Pointer width of the target (default: host)")
	rootCmd.AddCommand(planCmd)
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the cmake commands a build would run",
	Long: `Derive the configure and build command lines for every extension in the
manifest without running them. Use --platform to preview another host.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		host := platform.Detect()
		if planPlatform != "" {
			p, err := platform.Parse(planPlatform)
			if err != nil {
				return err
			}
			host.Platform = p
		}
		if planPointerBits != 0 {
			host.PointerBits = planPointerBits
		}

		p, descs, err := loadProject(planManifest)
		if err != nil {
			return err
		}

		orch, err := newOrchestrator(cmd, p, host, planDebug, "", "")
		if err != nil {
			return fmt.Errorf("resolving build directories: %w", err)
		}

		configs, err := orch.Plan(descs)
		if err != nil {
			return err
		}

		printPlan(cmd.OutOrStdout(), orch, descs, configs)
		return nil
	},
}

func printPlan(w io.Writer, orch *build.Orchestrator, descs []build.Descriptor, configs []build.Configuration) {
	root := orch.BuildTemp
	if root == "" {
		root = scopedTempPlaceholder
	}

	fmt.Fprintf(w, "Host: %s\n", orch.Host)
	fmt.Fprintf(w, "Distribution: %s %s\n", orch.Distribution.Name, orch.Distribution.Version)
	fmt.Fprintf(w, "Compiler flags: %s+=%s\n", build.CompilerFlagsVar, build.VersionAnnotation(orch.Distribution.Version))

	for i, c := range configs {
		dir := filepath.Join(root, descs[i].Name())
		fmt.Fprintf(w, "\n%s (%s)\n", descs[i].Name(), c.BuildType)
		fmt.Fprintf(w, "  output:    %s\n", c.OutputDir)
		fmt.Fprintf(w, "  directory: %s\n", dir)
		fmt.Fprintf(w, "  configure: %s\n", orch.Tool.Configure(c.SourceDir, c.ConfigureArgs, dir, nil).String())
		fmt.Fprintf(w, "  build:     %s\n", orch.Tool.Build(c.BuildArgs, dir, nil).String())
		if c.Relocates() {
			fmt.Fprintf(w, "  relocate:  %s/* -> %s\n", filepath.Join(c.OutputDir, string(c.BuildType)), c.OutputDir)
		}
	}
}
