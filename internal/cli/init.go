package cli

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pynocchio/extbuild/internal/branding"
	"github.com/pynocchio/extbuild/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	initName    string
	initVersion string
	initForce   bool
)

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "Extension name (default: directory name)")
	initCmd.Flags().StringVar(&initVersion, "version", "", "Distribution version (default 0.1.0)")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing files")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create a starter extension project",
	Long: `Write ` + branding.ManifestFile() + `, a CMakeLists.txt and a placeholder source file
into dir (default: the current directory).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", dir, err)
		}

		name := initName
		if name == "" {
			name = identifierFrom(filepath.Base(abs))
		}

		data := scaffold.NewData(name)
		if initVersion != "" {
			data.Version = initVersion
		}

		result, err := scaffold.Generate(data, abs, initForce)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Created extension %s in %s\n", name, result.OutputDir)
		for _, f := range result.Files {
			fmt.Fprintf(w, "  %s\n", f)
		}
		for _, warn := range result.Warnings {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", warn)
		}
		fmt.Fprintf(w, "\nNext: %s build\n", branding.CLIName())
		return nil
	},
}

var nonIdentifier = regexp.MustCompile(`[^A-Za-z0-9_]+`)

// identifierFrom turns a directory name into a valid extension name.
func identifierFrom(base string) string {
	id := strings.Trim(nonIdentifier.ReplaceAllString(base, "_"), "_")
	if id == "" {
		return "extension"
	}
	if id[0] >= '0' && id[0] <= '9' {
		id = "_" + id
	}
	return id
}
