package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mfe-labs/create-mfe/internal/pkgjson"
	"github.com/mfe-labs/create-mfe/internal/pkgmgr"
	"github.com/mfe-labs/create-mfe/internal/ui"
)

// ManifestFile is the package manifest created by the package manager.
const ManifestFile = "package.json"

// Options carries the collaborators of a scaffold run.
type Options struct {
	// BaseDir is the directory a project name is resolved against.
	// Empty means the process working directory.
	BaseDir        string
	PackageManager pkgmgr.Manager
	// Out receives progress lines; nil discards them.
	Out     io.Writer
	Palette ui.Palette
}

// Result holds the outcome of a scaffold run.
type Result struct {
	TargetDir     string
	CanonicalName string
	CreatedDir    bool     // false when scaffolding in place
	Dirs          []string // relative, in creation order
	Files         []string // relative, in write order
	Warnings      []string
}

// Scaffold materializes the project described by req. Steps run strictly in
// order and the first failure aborts the run; anything already written
// stays on disk.
func Scaffold(ctx context.Context, req Request, opts Options) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if opts.PackageManager == nil {
		return nil, errors.New("scaffold: no package manager configured")
	}

	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	p := opts.Palette

	baseDir := opts.BaseDir
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, &FileSystemError{Op: "getwd", Path: ".", Err: err}
		}
		baseDir = wd
	}
	baseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, &FileSystemError{Op: "resolve", Path: baseDir, Err: err}
	}

	result := &Result{CanonicalName: req.CanonicalName(baseDir)}

	// Resolve the target directory.
	if err := interrupted(ctx); err != nil {
		return nil, err
	}
	if req.InPlace() {
		result.TargetDir = baseDir
	} else {
		result.TargetDir = filepath.Join(baseDir, req.Name)
		if err := os.MkdirAll(result.TargetDir, 0755); err != nil {
			return nil, &FileSystemError{Op: "mkdir", Path: result.TargetDir, Err: err}
		}
		result.CreatedDir = true
	}
	target := result.TargetDir

	displayName := req.Name
	if req.InPlace() {
		displayName = baseDir
	}
	fmt.Fprintf(out, "Project name is %s\n", displayName)
	fmt.Fprintf(out, "\n%s\n", p.Render(ui.Prompt, "🚀 Creating project in "+target+"..."))

	// Bootstrap package.json.
	if err := opts.PackageManager.Init(ctx, target); err != nil {
		return nil, &ExternalToolError{Tool: opts.PackageManager.Name(), Err: err}
	}

	// Overwrite the baseline fields.
	manifestPath := filepath.Join(target, ManifestFile)
	if err := pkgjson.PatchFile(manifestPath); err != nil {
		var pe *pkgjson.ParseError
		if errors.As(err, &pe) {
			return nil, &ManifestParseError{Path: manifestPath, Err: err}
		}
		return nil, &FileSystemError{Op: "patch", Path: manifestPath, Err: err}
	}
	if vr, err := pkgjson.ValidateFile(manifestPath); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Could not validate %s: %v", ManifestFile, err))
	} else {
		for _, issue := range vr.Issues {
			result.Warnings = append(result.Warnings, ManifestFile+issue.Path+": "+issue.Message)
		}
	}

	// Directory skeleton.
	if err := interrupted(ctx); err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "\n%s\n", p.Render(ui.Heading, "Creating project structure..."))
	for _, dir := range Skeleton {
		full := filepath.Join(target, filepath.FromSlash(dir))
		if err := os.MkdirAll(full, 0755); err != nil {
			return nil, &FileSystemError{Op: "mkdir", Path: full, Err: err}
		}
		result.Dirs = append(result.Dirs, dir)
	}

	// Templated files.
	data := templateData{
		CanonicalName: result.CanonicalName,
		Author:        pkgjson.DefaultAuthor,
		BundlerConfig: NewBundlerConfig(result.CanonicalName, req.Port),
	}
	for _, file := range generatedFiles() {
		if err := interrupted(ctx); err != nil {
			return nil, err
		}
		fmt.Fprintln(out, p.Render(file.tag, file.message))

		content, err := file.contents(data)
		if err != nil {
			return nil, err
		}
		full := filepath.Join(target, filepath.FromSlash(file.path))
		if err := os.WriteFile(full, content, 0644); err != nil {
			return nil, &FileSystemError{Op: "write", Path: full, Err: err}
		}
		result.Files = append(result.Files, file.path)
	}

	fmt.Fprintf(out, "\n%s\n", p.Render(ui.Success, "✅ Project setup complete!"))
	return result, nil
}

// interrupted returns a wrapped context error once ctx is done. Steps already
// completed stay on disk.
func interrupted(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("scaffold interrupted: %w", err)
	}
	return nil
}
