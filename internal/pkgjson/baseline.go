package pkgjson

// Dep is a package name with its semver range.
type Dep struct {
	Name    string
	Version string
}

// Script is a package.json script entry.
type Script struct {
	Name    string
	Command string
}

// Author is the fixed author block written into every generated manifest.
type Author struct {
	Name     string `json:"name"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Medium   string `json:"medium"`
}

// Dependencies are the runtime dependencies of a generated project.
var Dependencies = []Dep{
	{"react", "^18.2.0"},
	{"react-dom", "^18.2.0"},
}

// DevDependencies are the build-time dependencies of a generated project.
var DevDependencies = []Dep{
	{"@types/react", "^18.2.0"},
	{"@types/react-dom", "^18.2.0"},
	{"webpack", "^5.0.0"},
	{"webpack-cli", "^5.0.0"},
	{"webpack-dev-server", "^4.0.0"},
	{"html-webpack-plugin", "^5.5.0"},
	{"mini-css-extract-plugin", "^2.4.0"},
	{"terser-webpack-plugin", "^5.3.0"},
	{"compression-webpack-plugin", "^10.0.0"},
	{"copy-webpack-plugin", "^11.0.0"},
	{"webpack-bundle-analyzer", "^4.9.0"},
	{"swc-loader", "^0.2.0"},
	{"sass-loader", "^13.3.2"},
	{"css-loader", "^6.8.1"},
	{"style-loader", "^3.3.3"},
	{"postcss-loader", "^7.3.1"},
	{"image-webpack-loader", "^8.1.0"},
	{"@swc/core", "^1.3.90"},
	{"@swc/cli", "^0.1.62"},
	{"@swc/helpers", "^0.5.2"},
}

// Scripts are the package.json scripts of a generated project.
var Scripts = []Script{
	{"dev", "webpack serve --mode development"},
	{"build", "webpack --mode production"},
}

// License is the SPDX license written into every generated manifest.
const License = "MIT"

// DefaultAuthor is the author block written into every generated manifest.
var DefaultAuthor = Author{
	Name:     "Sahil Sharma",
	LinkedIn: "https://www.linkedin.com/in/sahil-sharma-ss9043283",
	GitHub:   "https://github.com/sahil75831",
	Medium:   "https://medium.com/@sahilsharma_SoftwareDeveloper",
}
