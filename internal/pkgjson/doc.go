// Package pkgjson patches and validates the package.json of a generated
// project. Patching replaces the baseline fields in place and leaves every
// other field, and the order of all fields, exactly as the package manager
// wrote them. Validation checks the result against an embedded JSON Schema.
package pkgjson
