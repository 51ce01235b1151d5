package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/marui-portal/internal/access"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		missing    bool
		wantError  bool
		wantRole   access.Role
		wantFormat string
		wantWindow int
	}{
		{
			name:       "Missing file uses defaults",
			missing:    true,
			wantRole:   access.Admin,
			wantFormat: "pretty",
			wantWindow: 3,
		},
		{
			name: "Full file",
			content: `logging:
  level: debug
  format: console
output:
  format: csv
session:
  defaultRole: Top Management
dashboard:
  burnRateWindow: 6
  riskThreshold: 80
`,
			wantRole:   access.TopManagement,
			wantFormat: "csv",
			wantWindow: 6,
		},
		{
			name:       "Partial file keeps defaults",
			content:    "session:\n  defaultRole: finance\n",
			wantRole:   access.Finance,
			wantFormat: "pretty",
			wantWindow: 3,
		},
		{
			name:      "Invalid YAML",
			content:   "logging: [unterminated\n",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "absent.yaml")
			if !tt.missing {
				path = writeFile(t, "config.yaml", tt.content)
			}
			conf, err := LoadConfiguration(path)
			if tt.wantError {
				if err == nil {
					t.Errorf("LoadConfiguration() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfiguration() error = %v", err)
			}
			if got := conf.DefaultRole(); got != tt.wantRole {
				t.Errorf("DefaultRole() = %v, expected %v", got, tt.wantRole)
			}
			if conf.Output.Format != tt.wantFormat {
				t.Errorf("Output.Format = %q, expected %q", conf.Output.Format, tt.wantFormat)
			}
			if conf.Dashboard.BurnRateWindow != tt.wantWindow {
				t.Errorf("BurnRateWindow = %d, expected %d", conf.Dashboard.BurnRateWindow, tt.wantWindow)
			}
		})
	}
}

func TestLoadConfigurationEnvOverride(t *testing.T) {
	path := writeFile(t, "config.yaml", "output:\n  format: pretty\n")
	t.Setenv("MARUI_OUTPUT_FORMAT", "csv")

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("Output.Format = %q, expected env override csv", conf.Output.Format)
	}
}

func TestLoadEnvFile(t *testing.T) {
	if err := LoadEnvFile(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("missing env file should be ignored, got %v", err)
	}
	if err := LoadEnvFile(""); err != nil {
		t.Errorf("empty path should be ignored, got %v", err)
	}

	path := writeFile(t, ".env", "MARUI_SESSION_DEFAULTROLE=Finance\n")
	t.Setenv("MARUI_SESSION_DEFAULTROLE", "")
	os.Unsetenv("MARUI_SESSION_DEFAULTROLE")
	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile() error = %v", err)
	}
	if got := os.Getenv("MARUI_SESSION_DEFAULTROLE"); got != "Finance" {
		t.Errorf("env = %q, expected Finance", got)
	}
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Configuration)
		warnings int
	}{
		{"defaults", func(*Configuration) {}, 0},
		{"unknown role", func(c *Configuration) { c.Session.DefaultRole = "Auditor" }, 1},
		{"bad output", func(c *Configuration) { c.Output.Format = "xml" }, 1},
		{"window too large", func(c *Configuration) { c.Dashboard.BurnRateWindow = 24 }, 1},
		{"threshold too large", func(c *Configuration) { c.Dashboard.RiskThreshold = 150 }, 1},
		{"negative tops", func(c *Configuration) {
			c.Dashboard.TopActivities = -1
			c.Dashboard.TopPerformers = -1
		}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := Default()
			tt.mutate(conf)
			if got := conf.ValidateConfiguration(); len(got) != tt.warnings {
				t.Errorf("ValidateConfiguration() = %v, expected %d warnings", got, tt.warnings)
			}
		})
	}
}

func TestDefaultRoleFallback(t *testing.T) {
	conf := Default()
	conf.Session.DefaultRole = "nobody"
	if conf.DefaultRole() != access.Admin {
		t.Errorf("DefaultRole() = %v, expected Admin", conf.DefaultRole())
	}
}
