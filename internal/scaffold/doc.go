// Package scaffold materializes a module-federation micro-frontend project.
// Scaffold validates the requested name and port, resolves the target
// directory, bootstraps and patches package.json, and writes a fixed set of
// boilerplate files rendered from embedded templates.
package scaffold
