package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/mfe-labs/create-mfe/internal/pkgjson"
	"github.com/mfe-labs/create-mfe/internal/pkgmgr"
	"github.com/spf13/cobra"
)

// minNodeVersion is the oldest Node.js the generated toolchain supports.
const minNodeVersion = "16.0.0"

var (
	checkRuntime  bool
	checkManifest string
)

func init() {
	doctorCmd.Flags().BoolVar(&checkRuntime, "check-runtime", false, "Verify node and the package manager are installed and recent enough")
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a package.json at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the scaffolding prerequisites are in place",
	Long: `Run diagnostic checks on the local toolchain.

Without flags only the runtime check runs. --check-manifest validates an
existing package.json against the schema create-mfe expects.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()

		runAll := !checkRuntime && checkManifest == ""
		var errs []error
		if checkRuntime || runAll {
			errs = append(errs, runRuntimeCheck(cmd.Context(), w, settings.PackageManager))
		}
		if checkManifest != "" {
			errs = append(errs, runManifestCheck(w, checkManifest))
		}
		return errors.Join(errs...)
	},
}

type toolCheck struct {
	name    string
	min     string
	version func(context.Context) (string, error)
}

// runRuntimeCheck reports node and the configured package manager.
func runRuntimeCheck(ctx context.Context, w io.Writer, pmName string) error {
	fmt.Fprintln(w, "Runtime check:")

	pm, ok := pkgmgr.Dispatch(pmName).(*pkgmgr.Binary)
	if !ok {
		fmt.Fprintf(w, "  [FAIL] unsupported package manager %q\n", pmName)
		return fmt.Errorf("unsupported package manager %q", pmName)
	}
	tools := []toolCheck{
		{name: "node", min: minNodeVersion, version: func(ctx context.Context) (string, error) {
			return pkgmgr.ToolVersion(ctx, "node")
		}},
		{name: pm.Bin, min: pm.MinVersion, version: pm.Version},
	}

	problems := 0
	for _, tool := range tools {
		if !checkTool(ctx, w, tool) {
			problems++
		}
	}
	if problems > 0 {
		return fmt.Errorf("runtime check found %d problem(s)", problems)
	}
	return nil
}

// checkTool prints one status line for tool and reports whether it passed.
func checkTool(ctx context.Context, w io.Writer, tool toolCheck) bool {
	name, min := tool.name, tool.min
	version, err := tool.version(ctx)
	if errors.Is(err, pkgmgr.ErrNotFound) {
		fmt.Fprintf(w, "  [MISS] %s not found\n", name)
		return false
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", name, err)
		return false
	}

	ok, err := pkgmgr.MeetsMinimum(version, min)
	if err != nil {
		fmt.Fprintf(w, "  [WARN] %s %s: cannot compare with %s: %v\n", name, version, min, err)
		return true
	}
	if !ok {
		fmt.Fprintf(w, "  [FAIL] %s %s is older than %s\n", name, version, min)
		return false
	}
	fmt.Fprintf(w, "  [ OK ] %s %s (>= %s)\n", name, version, min)
	return true
}

func runManifestCheck(w io.Writer, path string) error {
	fmt.Fprintf(w, "Manifest validation: %s\n", path)

	result, err := pkgjson.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return fmt.Errorf("manifest validation failed: %w", err)
	}

	if result.Valid {
		fmt.Fprintf(w, "  [ OK ] Valid package.json\n")
		return nil
	}

	fmt.Fprintf(w, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		fmt.Fprintf(w, "    - %s\n", issue)
	}
	return fmt.Errorf("manifest %s has %d validation issue(s)", path, len(result.Issues))
}
