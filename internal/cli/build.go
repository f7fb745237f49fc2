package cli

import (
	"fmt"

	"github.com/pynocchio/extbuild/internal/platform"
	"github.com/spf13/cobra"
)

var (
	buildManifest string
	buildDebug    bool
	buildLibDir   string
	buildTempDir  string
)

func init() {
	buildCmd.Flags().StringVarP(&buildManifest, "manifest", "m", "", "Path to the project manifest (default ./extbuild.yaml)")
	buildCmd.Flags().BoolVarP(&buildDebug, "debug", "g", false, "Build with debug information")
	buildCmd.Flags().StringVar(&buildLibDir, "build-lib", "", "Directory for built extensions (overrides the manifest)")
	buildCmd.Flags().StringVar(&buildTempDir, "build-temp", "", "Directory for cmake build trees (kept after the build)")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Configure and build every extension in the manifest",
	Long: `Verify cmake, then configure and build each extension declared in the
manifest in order. The first failure stops the build.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, descs, err := loadProject(buildManifest)
		if err != nil {
			return err
		}

		orch, err := newOrchestrator(cmd, p, platform.Detect(), buildDebug, buildLibDir, buildTempDir)
		if err != nil {
			return fmt.Errorf("resolving build directories: %w", err)
		}

		logger.Info("building extensions", "distribution", p.Name, "version", p.Version, "count", len(descs), "host", orch.Host.String())

		results, err := orch.Run(cmd.Context(), descs)
		for _, r := range results {
			logger.Debug("extension finished", "name", r.Name, "state", r.State().String(), "trail", r.Trail)
		}
		if err != nil {
			return err
		}

		logger.Info("build complete", "extensions", len(results), "output", orch.BuildLib)
		return nil
	},
}
