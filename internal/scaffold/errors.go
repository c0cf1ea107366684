package scaffold

import (
	"errors"
	"fmt"
)

// Sentinels matched with errors.Is.
var (
	ErrMissingInput  = errors.New("missing input")
	ErrExternalTool  = errors.New("external tool failure")
	ErrFileSystem    = errors.New("file system error")
	ErrManifestParse = errors.New("manifest parse error")
)

// MissingInputError reports a blank project name or port.
type MissingInputError struct {
	Field string
}

func (e *MissingInputError) Error() string {
	switch e.Field {
	case "name":
		return "project name cannot be empty"
	case "port":
		return "port number cannot be empty"
	}
	return e.Field + " cannot be empty"
}

func (e *MissingInputError) Unwrap() error { return ErrMissingInput }

// ExternalToolError reports a failed package manager invocation.
type ExternalToolError struct {
	Tool string
	Err  error
}

func (e *ExternalToolError) Error() string {
	return fmt.Sprintf("%s init failed: %v", e.Tool, e.Err)
}

func (e *ExternalToolError) Unwrap() []error { return []error{ErrExternalTool, e.Err} }

// FileSystemError reports a failed directory creation, read, or write.
type FileSystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileSystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileSystemError) Unwrap() []error { return []error{ErrFileSystem, e.Err} }

// ManifestParseError reports a package.json that could not be parsed.
type ManifestParseError struct {
	Path string
	Err  error
}

func (e *ManifestParseError) Error() string {
	return "invalid package manifest: " + e.Err.Error()
}

func (e *ManifestParseError) Unwrap() []error { return []error{ErrManifestParse, e.Err} }
