package scaffold

import (
	"fmt"
	"io"
	"strings"

	"github.com/mfe-labs/create-mfe/internal/pkgmgr"
	"github.com/mfe-labs/create-mfe/internal/ui"
)

// NextSteps returns the commands a user runs after scaffolding: cd into the
// new directory (only if one was created), install, and start the dev server.
func NextSteps(req Request, res *Result, pm pkgmgr.Manager) []string {
	var steps []string
	if res != nil && res.CreatedDir {
		steps = append(steps, "cd "+req.Name)
	}
	return append(steps, pm.InstallCommand(), pm.RunCommand("dev"))
}

// PrintNextSteps writes the completion instructions to w.
func PrintNextSteps(w io.Writer, p ui.Palette, req Request, res *Result, pm pkgmgr.Manager) {
	fmt.Fprintf(w, "\n%s\n", p.Render(ui.Prompt, "Project setup complete! Run the following commands:"))
	fmt.Fprintln(w, p.Render(ui.Answer, strings.Join(NextSteps(req, res, pm), "\n")))
	if res != nil && len(res.Warnings) > 0 {
		fmt.Fprintf(w, "\n%s\n", p.Render(ui.Hint, "Warnings:"))
		for _, warn := range res.Warnings {
			fmt.Fprintf(w, "  - %s\n", warn)
		}
	}
}
