package pkgjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// ParseError reports a manifest that is not a JSON object.
type ParseError struct {
	Path   string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return "parsing package.json: " + e.Reason
	}
	return fmt.Sprintf("parsing %s: %s", e.Path, e.Reason)
}

// Patch overwrites dependencies, devDependencies, scripts, author and license
// with the baseline. Existing keys are replaced where they stand; missing
// keys are appended. The result is indented with two spaces.
func Patch(data []byte) ([]byte, error) {
	if !gjson.ValidBytes(data) {
		return nil, &ParseError{Reason: "invalid JSON"}
	}
	if !gjson.ParseBytes(data).IsObject() {
		return nil, &ParseError{Reason: "top-level value is not an object"}
	}

	author, err := json.Marshal(DefaultAuthor)
	if err != nil {
		return nil, fmt.Errorf("encoding author: %w", err)
	}

	raw := []struct {
		path  string
		value []byte
	}{
		{"dependencies", depsObject(Dependencies)},
		{"devDependencies", depsObject(DevDependencies)},
		{"scripts", scriptsObject(Scripts)},
		{"author", author},
	}

	out := data
	for _, r := range raw {
		out, err = sjson.SetRawBytes(out, r.path, r.value)
		if err != nil {
			return nil, fmt.Errorf("setting %s: %w", r.path, err)
		}
	}
	out, err = sjson.SetBytes(out, "license", License)
	if err != nil {
		return nil, fmt.Errorf("setting license: %w", err)
	}

	return pretty.Pretty(out), nil
}

// PatchFile applies Patch to the manifest at path and rewrites it.
// Read and write failures are returned unwrapped as *fs.PathError.
func PatchFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	out, err := Patch(data)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Path = path
		}
		return err
	}
	return os.WriteFile(path, out, 0644)
}

// depsObject encodes deps as a JSON object in slice order.
func depsObject(deps []Dep) []byte {
	pairs := make([][2]string, len(deps))
	for i, d := range deps {
		pairs[i] = [2]string{d.Name, d.Version}
	}
	return orderedObject(pairs)
}

func scriptsObject(scripts []Script) []byte {
	pairs := make([][2]string, len(scripts))
	for i, s := range scripts {
		pairs[i] = [2]string{s.Name, s.Command}
	}
	return orderedObject(pairs)
}

// orderedObject encodes string pairs as a JSON object. encoding/json sorts
// map keys, so the object is assembled by hand.
func orderedObject(pairs [][2]string) []byte {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range pairs {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, _ := json.Marshal(p[0])
		v, _ := json.Marshal(p[1])
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes()
}
