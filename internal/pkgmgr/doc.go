// Package pkgmgr runs the JavaScript package manager that bootstraps a
// generated project. Dispatch selects npm, pnpm, or yarn by name; each runs
// in an explicit working directory with its output streamed to the caller.
package pkgmgr
