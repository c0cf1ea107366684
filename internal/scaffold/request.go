package scaffold

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CurrentDir is the project name that scaffolds into the base directory
// itself instead of a new subdirectory.
const CurrentDir = "."

// Request is one scaffold invocation built from user input.
type Request struct {
	Name string // raw project name, or CurrentDir
	Port string // embedded verbatim in the dev-server config
}

// InPlace reports whether the request targets the base directory.
func (r Request) InPlace() bool {
	return r.Name == CurrentDir
}

// Validate returns a *MissingInputError when the name or port is blank.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &MissingInputError{Field: "name"}
	}
	if strings.TrimSpace(r.Port) == "" {
		return &MissingInputError{Field: "port"}
	}
	return nil
}

// CanonicalName is the display title and federation container name. For an
// in-place request it is derived from the base name of baseDir.
func (r Request) CanonicalName(baseDir string) string {
	source := r.Name
	if r.InPlace() {
		source = filepath.Base(baseDir)
	}
	return Canonicalize(source)
}

var upper = cases.Upper(language.Und)

// Canonicalize removes all whitespace from s and upper-cases its first
// character: "my app" → "Myapp", "demo-proj" → "Demo-proj".
func Canonicalize(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return upper.String(string(first)) + s[size:]
}
