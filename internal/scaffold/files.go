package scaffold

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/mfe-labs/create-mfe/internal/pkgjson"
	"github.com/mfe-labs/create-mfe/internal/ui"
)

//go:embed templates/*
var templateFS embed.FS

// Skeleton lists the directories created under the target, in order.
var Skeleton = []string{
	"src",
	"public",
	"public/assets",
	"src/components",
}

// fileSpec describes one generated file. Exactly one of template and
// render is set.
type fileSpec struct {
	path     string // slash-separated, relative to the target directory
	template string // name under templates/; a .tmpl suffix means render
	render   func() ([]byte, error)
	message  string
	tag      ui.Tag
}

// templateData is the value passed to every .tmpl template.
type templateData struct {
	CanonicalName string
	Author        pkgjson.Author
	BundlerConfig
}

// generatedFiles returns the files in the order they are written.
func generatedFiles() []fileSpec {
	return []fileSpec{
		{path: "public/index.html", template: "index.html.tmpl", message: "Generating index.html file...", tag: ui.Step},
		{path: "public/assets/favicon.svg", template: "favicon.svg", message: "Creating favicon.svg...", tag: ui.StepAlt},
		{path: "src/index.css", template: "index.css", message: "Setting up index.css file...", tag: ui.Step},
		{path: "src/index.ts", template: "index.ts", message: "Initializing index.ts...", tag: ui.StepAlt},
		{path: "tsconfig.json", render: renderTSConfig, message: "Configuring tsconfig.json...", tag: ui.Step},
		{path: "src/App.tsx", template: "App.tsx.tmpl", message: "Creating App.tsx component...", tag: ui.StepAlt},
		{path: "webpack.config.js", template: "webpack.config.js.tmpl", message: "Setting up webpack.config.js...", tag: ui.Step},
		{path: ".swcrc", render: renderSWCRC, message: "Creating .swcrc setup...", tag: ui.StepAlt},
		{path: "src/declare.d.ts", template: "declare.d.ts", message: "Creating declare.d.ts setup...", tag: ui.Step},
		{path: "src/components/MyComponent.jsx", template: "MyComponent.jsx", message: "Creating MyComponent in Component Directory...", tag: ui.StepAlt},
	}
}

// GeneratedFiles returns the relative paths of all generated files in
// write order. package.json is produced by the package manager and is not
// included.
func GeneratedFiles() []string {
	specs := generatedFiles()
	paths := make([]string, len(specs))
	for i, s := range specs {
		paths[i] = s.path
	}
	return paths
}

// contents produces the bytes for s.
func (s fileSpec) contents(data templateData) ([]byte, error) {
	if s.render != nil {
		return s.render()
	}

	raw, err := templateFS.ReadFile(path.Join("templates", s.template))
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", s.template, err)
	}
	if !strings.HasSuffix(s.template, ".tmpl") {
		return raw, nil
	}

	// JSX uses {{ }} for inline styles, so templates use [[ ]] instead.
	tmpl, err := template.New(s.template).
		Delims("[[", "]]").
		Funcs(sprig.TxtFuncMap()).
		Funcs(template.FuncMap{"jsKey": jsKey}).
		Option("missingkey=error").
		Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", s.template, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", s.template, err)
	}
	return buf.Bytes(), nil
}

type tsCompilerOptions struct {
	Target                           string   `json:"target"`
	OutDir                           string   `json:"outDir"`
	Lib                              []string `json:"lib"`
	AllowJS                          bool     `json:"allowJs"`
	SkipLibCheck                     bool     `json:"skipLibCheck"`
	ESModuleInterop                  bool     `json:"esModuleInterop"`
	AllowSyntheticDefaultImports     bool     `json:"allowSyntheticDefaultImports"`
	Strict                           bool     `json:"strict"`
	ForceConsistentCasingInFileNames bool     `json:"forceConsistentCasingInFileNames"`
	Module                           string   `json:"module"`
	ModuleResolution                 string   `json:"moduleResolution"`
	IsolatedModules                  bool     `json:"isolatedModules"`
	ResolveJSONModule                bool     `json:"resolveJsonModule"`
	NoEmit                           bool     `json:"noEmit"`
	JSX                              string   `json:"jsx"`
	SourceMap                        bool     `json:"sourceMap"`
	Declaration                      bool     `json:"declaration"`
	NoUnusedLocals                   bool     `json:"noUnusedLocals"`
	NoUnusedParameters               bool     `json:"noUnusedParameters"`
	Incremental                      bool     `json:"incremental"`
	NoFallthroughCasesInSwitch       bool     `json:"noFallthroughCasesInSwitch"`
}

type tsConfig struct {
	CompilerOptions tsCompilerOptions `json:"compilerOptions"`
	Include         []string          `json:"include"`
	Exclude         []string          `json:"exclude"`
}

func renderTSConfig() ([]byte, error) {
	cfg := tsConfig{
		CompilerOptions: tsCompilerOptions{
			Target:                           "ES6",
			OutDir:                           "dist",
			Lib:                              []string{"dom", "dom.iterable", "esnext"},
			AllowJS:                          true,
			SkipLibCheck:                     true,
			ESModuleInterop:                  true,
			AllowSyntheticDefaultImports:     true,
			Strict:                           true,
			ForceConsistentCasingInFileNames: true,
			Module:                           "esnext",
			ModuleResolution:                 "node",
			IsolatedModules:                  true,
			ResolveJSONModule:                true,
			NoEmit:                           true,
			JSX:                              "react",
			SourceMap:                        true,
			Declaration:                      true,
			NoUnusedLocals:                   true,
			NoUnusedParameters:               true,
			Incremental:                      true,
			NoFallthroughCasesInSwitch:       true,
		},
		Include: []string{"src/**/*"},
		Exclude: []string{"node_modules", "build", "dist"},
	}
	return json.MarshalIndent(cfg, "", "  ")
}

type swcParser struct {
	Syntax string `json:"syntax"`
	JSX    bool   `json:"jsx"`
}

type swcReact struct {
	Runtime string `json:"runtime"`
}

type swcTransform struct {
	React swcReact `json:"react"`
}

type swcJSC struct {
	Parser    swcParser    `json:"parser"`
	Transform swcTransform `json:"transform"`
}

type swcConfig struct {
	JSC swcJSC `json:"jsc"`
}

func renderSWCRC() ([]byte, error) {
	return json.Marshal(swcConfig{JSC: swcJSC{
		Parser:    swcParser{Syntax: "ecmascript", JSX: true},
		Transform: swcTransform{React: swcReact{Runtime: "automatic"}},
	}})
}
