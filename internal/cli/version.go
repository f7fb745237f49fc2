package cli

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/pynocchio/extbuild/internal/branding"
	"github.com/pynocchio/extbuild/internal/platform"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

// versionInfo is the --json payload.
type versionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go"`
	Host    string `json:"host"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		if versionShort {
			fmt.Fprintln(w, buildVersion)
			return nil
		}

		info := versionInfo{
			Version: buildVersion,
			Commit:  buildCommit,
			Date:    buildDate,
			Go:      runtime.Version(),
			Host:    platform.Detect().String(),
		}

		if versionJSON {
			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(w, string(out))
			return nil
		}

		fmt.Fprintf(w, "%s version %s (commit: %s, built: %s, %s %s)\n",
			branding.CLIName(), info.Version, info.Commit, info.Date, info.Go, info.Host)
		return nil
	},
}
