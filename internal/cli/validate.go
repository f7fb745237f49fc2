package cli

import (
	"fmt"

	"github.com/pynocchio/extbuild/internal/manifest"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a project manifest against the schema",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		path = manifestPath(path)

		result, err := manifest.ValidateFile(path)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		st := newStyles(w)
		if result.Valid {
			fmt.Fprintf(w, "%s: %s\n", path, st.ok.Render("valid"))
			return nil
		}

		fmt.Fprintf(w, "%s: %s\n", path, st.fail.Render(fmt.Sprintf("%d issue(s)", len(result.Issues))))
		for _, issue := range result.Issues {
			fmt.Fprintf(w, "  - %s\n", issue)
		}
		return &manifest.InvalidError{Path: path, Issues: result.Issues}
	},
}
