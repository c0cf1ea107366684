// Package config manages user-level settings stored at ~/.create-mfe/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the package manager used to bootstrap generated projects.
package config
