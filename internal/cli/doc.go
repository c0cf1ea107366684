// Package cli defines the Cobra command tree for create-mfe. The root command
// runs the interactive scaffold; version, config and doctor are registered as
// subcommands from their own files. Commands only handle flags, prompts and
// output formatting and delegate the work to the internal packages.
package cli
