package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mfe-labs/create-mfe/internal/branding"
	"github.com/mfe-labs/create-mfe/internal/config"
	"github.com/mfe-labs/create-mfe/internal/pkgmgr"
	"github.com/mfe-labs/create-mfe/internal/prompt"
	"github.com/mfe-labs/create-mfe/internal/scaffold"
	"github.com/mfe-labs/create-mfe/internal/ui"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagName           string
	flagPort           string
	flagPackageManager string
	flagNoColor        bool
)

const (
	fieldName = "name"
	fieldPort = "port"
)

// newManager resolves the package manager used for a run. Tests swap it
// for a fake.
var newManager = func(name string, stdout, stderr io.Writer) pkgmgr.Manager {
	m := pkgmgr.Dispatch(name)
	if b, ok := m.(*pkgmgr.Binary); ok {
		b.Stdout = stdout
		b.Stderr = stderr
	}
	return m
}

func init() {
	rootCmd.Flags().StringVar(&flagName, "name", "", `Project name ("." scaffolds into the current directory)`)
	rootCmd.Flags().StringVar(&flagPort, "port", "", "Dev server port")
	rootCmd.PersistentFlags().StringVar(&flagPackageManager, "package-manager", "", "Package manager to bootstrap with (npm, pnpm, yarn)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds a module-federation micro-frontend: it bootstraps
package.json with your package manager, pins the webpack/swc toolchain and writes
the React entry point, bundler config and compiler configs.

Run without flags to be prompted for the project name and dev server port.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCreate,
}

// reportedError marks an error that was already printed to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	var reported *reportedError
	if err != nil && !errors.As(err, &reported) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// loadSettings reads the config file and applies persistent flag overrides.
func loadSettings() (*config.Settings, error) {
	config.Load()
	s, err := config.Current()
	if err != nil {
		return nil, err
	}
	if flagPackageManager != "" {
		s.PackageManager = flagPackageManager
	}
	if flagNoColor {
		s.NoColor = true
	}
	return s, nil
}

func projectSteps() []prompt.Step {
	return []prompt.Step{
		{
			Field:  fieldName,
			Label:  "Please enter the desired project name",
			Hint:   `(use "." for the current directory)`,
			Empty:  "Project name cannot be empty!",
			Preset: flagName,
		},
		{
			Field:  fieldPort,
			Label:  "Enter the port number",
			Empty:  "Port number cannot be empty!",
			Preset: flagPort,
		},
	}
}

func runCreate(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	palette := ui.New(out, settings.NoColor)

	answers, err := prompt.New(cmd.InOrStdin(), out, palette).Run(projectSteps())
	if errors.Is(err, prompt.ErrMissingInput) {
		// Nothing was touched; the message is the whole outcome.
		fmt.Fprintln(out, palette.Render(ui.Error, err.Error()))
		return nil
	}
	if err != nil {
		return err
	}

	req := scaffold.Request{Name: answers[fieldName], Port: answers[fieldPort]}
	fmt.Fprintln(out, palette.Render(ui.Answer, fmt.Sprintf("Starting project \"%s\" on port %s...", req.Name, req.Port)))

	pm := newManager(settings.PackageManager, out, errOut)
	result, err := scaffold.Scaffold(cmd.Context(), req, scaffold.Options{
		PackageManager: pm,
		Out:            out,
		Palette:        palette,
	})
	if err != nil {
		errPalette := ui.New(errOut, settings.NoColor)
		fmt.Fprintf(errOut, "\n%s\n", errPalette.Render(ui.Error, "❌ Error during project setup: "+err.Error()))
		return &reportedError{err: err}
	}

	scaffold.PrintNextSteps(out, palette, req, result, pm)
	return nil
}
