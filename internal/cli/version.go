package cli

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/mfe-labs/create-mfe/internal/branding"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print build and environment info as JSON")
	rootCmd.AddCommand(versionCmd)
}

// buildInfo describes the binary and the package manager a scaffold run
// would use.
type buildInfo struct {
	Version        string `json:"version"`
	Commit         string `json:"commit"`
	Date           string `json:"date"`
	GoVersion      string `json:"go"`
	Platform       string `json:"platform"`
	PackageManager string `json:"package_manager"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print the build version together with the Go toolchain, the platform and
the package manager a scaffold run would bootstrap with.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		if versionShort {
			fmt.Fprintln(w, buildVersion)
			return nil
		}

		settings, err := loadSettings()
		if err != nil {
			return err
		}
		info := buildInfo{
			Version:        buildVersion,
			Commit:         buildCommit,
			Date:           buildDate,
			GoVersion:      runtime.Version(),
			Platform:       runtime.GOOS + "/" + runtime.GOARCH,
			PackageManager: settings.PackageManager,
		}

		if versionJSON {
			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(w, string(out))
			return nil
		}

		fmt.Fprintf(w, "%s version %s (commit: %s, built: %s)\n", branding.CLIName(), info.Version, info.Commit, info.Date)
		fmt.Fprintf(w, "  go:              %s %s\n", info.GoVersion, info.Platform)
		fmt.Fprintf(w, "  package manager: %s\n", info.PackageManager)
		return nil
	},
}
