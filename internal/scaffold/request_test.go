package scaffold

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"my app", "Myapp"},
		{"demo-proj", "Demo-proj"},
		{"  spaced\tout\nname ", "Spacedoutname"},
		{"Already", "Already"},
		{"ñandú", "Ñandú"},
		{"ßtraße", "SStraße"},
		{"3001-app", "3001-app"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := Canonicalize(tt.in); got != tt.want {
			t.Errorf("Canonicalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRequestCanonicalName(t *testing.T) {
	base := filepath.Join(t.TempDir(), "demo-proj")

	t.Run("named", func(t *testing.T) {
		r := Request{Name: "my app", Port: "3001"}
		if got := r.CanonicalName(base); got != "Myapp" {
			t.Errorf("CanonicalName() = %q, want %q", got, "Myapp")
		}
	})

	t.Run("in place uses base dir name", func(t *testing.T) {
		r := Request{Name: ".", Port: "3001"}
		if got := r.CanonicalName(base); got != "Demo-proj" {
			t.Errorf("CanonicalName() = %q, want %q", got, "Demo-proj")
		}
	})

	t.Run("in place strips whitespace from dir name", func(t *testing.T) {
		r := Request{Name: ".", Port: "3001"}
		if got := r.CanonicalName(filepath.Join(t.TempDir(), "my shop")); got != "Myshop" {
			t.Errorf("CanonicalName() = %q, want %q", got, "Myshop")
		}
	})
}

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name      string
		req       Request
		wantField string
	}{
		{"valid", Request{Name: "app", Port: "3001"}, ""},
		{"in place", Request{Name: ".", Port: "3001"}, ""},
		{"non-numeric port is accepted", Request{Name: "app", Port: "not-a-port"}, ""},
		{"empty name", Request{Name: "", Port: "3001"}, "name"},
		{"blank name", Request{Name: " \t", Port: "3001"}, "name"},
		{"empty port", Request{Name: "app", Port: ""}, "port"},
		{"blank port", Request{Name: "app", Port: "  "}, "port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrMissingInput) {
				t.Fatalf("Validate() = %v, want ErrMissingInput", err)
			}
			var mie *MissingInputError
			if !errors.As(err, &mie) || mie.Field != tt.wantField {
				t.Errorf("Validate() field = %v, want %q", err, tt.wantField)
			}
		})
	}
}

func TestJSKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"react", "react"},
		{"react-dom", `"react-dom"`},
		{"@scope/pkg", `"@scope/pkg"`},
		{"_private", "_private"},
	}
	for _, tt := range tests {
		if got := jsKey(tt.in); got != tt.want {
			t.Errorf("jsKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
