package scaffold

import (
	"regexp"
	"strconv"
)

// SharedDep is a module shared between federated containers.
type SharedDep struct {
	Name            string
	Singleton       bool
	RequiredVersion string
}

// Header is a response header set by the dev server.
type Header struct {
	Name  string
	Value string
}

// BundlerConfig parameterizes webpack.config.js. The document branches on
// argv.mode at build time, so one rendering serves development and
// production alike.
type BundlerConfig struct {
	ContainerName string
	RemoteEntry   string
	Port          string
	Shared        []SharedDep
	CORSHeaders   []Header
}

// DefaultShared pins react and react-dom as version-matched singletons.
var DefaultShared = []SharedDep{
	{Name: "react", Singleton: true, RequiredVersion: "^18.0.0"},
	{Name: "react-dom", Singleton: true, RequiredVersion: "^18.0.0"},
}

// DefaultCORSHeaders let any host load the remote entry during development.
var DefaultCORSHeaders = []Header{
	{"Access-Control-Allow-Origin", "*"},
	{"Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS"},
	{"Access-Control-Allow-Headers", "Content-Type, Authorization"},
}

// NewBundlerConfig returns the configuration for a container named
// containerName served on port.
func NewBundlerConfig(containerName, port string) BundlerConfig {
	return BundlerConfig{
		ContainerName: containerName,
		RemoteEntry:   "remoteEntry.js",
		Port:          port,
		Shared:        DefaultShared,
		CORSHeaders:   DefaultCORSHeaders,
	}
}

var jsIdentifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// jsKey renders an object key, quoting it only when it is not a bare
// identifier ("react" stays bare, "react-dom" is quoted).
func jsKey(name string) string {
	if jsIdentifier.MatchString(name) {
		return name
	}
	return strconv.Quote(name)
}
