package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "create-mfe" {
		t.Errorf("CLIName() = %q, want %q", got, "create-mfe")
	}
	if got := HomeDir(); got != ".create-mfe" {
		t.Errorf("HomeDir() = %q, want %q", got, ".create-mfe")
	}
	if got := EnvPrefix(); got != "CREATE_MFE" {
		t.Errorf("EnvPrefix() = %q, want %q", got, "CREATE_MFE")
	}
}

func TestEnvVar(t *testing.T) {
	tests := []struct {
		suffix string
		want   string
	}{
		{"package_manager", "CREATE_MFE_PACKAGE_MANAGER"},
		{"no_color", "CREATE_MFE_NO_COLOR"},
		{"HOME", "CREATE_MFE_HOME"},
	}
	for _, tt := range tests {
		if got := EnvVar(tt.suffix); got != tt.want {
			t.Errorf("EnvVar(%q) = %q, want %q", tt.suffix, got, tt.want)
		}
	}
}
