// Package config defines the portal configuration and the functions for
// loading and checking it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/iwvelando/marui-portal/internal/access"
	"github.com/iwvelando/marui-portal/pkg/constants"
	"github.com/iwvelando/marui-portal/pkg/validation"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables that override config keys,
// e.g. MARUI_SESSION_DEFAULTROLE.
const EnvPrefix = "MARUI"

// Configuration holds all configuration for the portal.
type Configuration struct {
	Logging   LoggingConfig   `yaml:"logging,omitempty"`
	Output    OutputConfig    `yaml:"output,omitempty"`
	Session   SessionConfig   `yaml:"session,omitempty"`
	Dashboard DashboardConfig `yaml:"dashboard,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// SessionConfig holds the role a new session starts with.
type SessionConfig struct {
	DefaultRole string `yaml:"defaultRole,omitempty"`
}

// DashboardConfig tunes the budget and sales dashboards.
type DashboardConfig struct {
	BurnRateWindow int     `yaml:"burnRateWindow,omitempty"` // months averaged for the burn rate
	RiskThreshold  float64 `yaml:"riskThreshold,omitempty"`  // utilization % that raises an alert
	TopActivities  int     `yaml:"topActivities,omitempty"`
	TopPerformers  int     `yaml:"topPerformers,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Configuration {
	return &Configuration{
		Logging: LoggingConfig{Level: "info", Format: "json"},
		Output:  OutputConfig{Format: constants.OutputFormatPretty},
		Session: SessionConfig{DefaultRole: access.Admin.String()},
		Dashboard: DashboardConfig{
			BurnRateWindow: constants.DefaultBurnRateWindow,
			RiskThreshold:  constants.DefaultRiskThreshold,
			TopActivities:  constants.DefaultTopActivities,
			TopPerformers:  constants.DefaultTopPerformers,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("session.defaultRole", d.Session.DefaultRole)
	v.SetDefault("dashboard.burnRateWindow", d.Dashboard.BurnRateWindow)
	v.SetDefault("dashboard.riskThreshold", d.Dashboard.RiskThreshold)
	v.SetDefault("dashboard.topActivities", d.Dashboard.TopActivities)
	v.SetDefault("dashboard.topPerformers", d.Dashboard.TopPerformers)
}

// LoadEnvFile loads environment variables from a dotenv file. A missing
// file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading env file %s: %w", path, err)
	}
	return nil
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Environment variables prefixed with EnvPrefix
// override file values. A missing file yields the defaults.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			v.SetConfigType("yml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file, %w", err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file, %w", err)
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &configuration, nil
}

// DefaultRole returns the configured starting role, or Admin when the
// configured name is not a portal role.
func (c *Configuration) DefaultRole() access.Role {
	role, err := access.ParseRole(c.Session.DefaultRole)
	if err != nil {
		return access.Admin
	}
	return role
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Session.DefaultRole != "" {
		if _, err := access.ParseRole(c.Session.DefaultRole); err != nil {
			warnings = append(warnings, fmt.Sprintf("session.defaultRole %q is not a portal role, using %s", c.Session.DefaultRole, access.Admin))
		}
	}
	if c.Output.Format != "" {
		if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
			warnings = append(warnings, fmt.Sprintf("output.format: %v", err))
		}
	}

	d := c.Dashboard
	if d.BurnRateWindow < 0 || d.BurnRateWindow > constants.MonthsPerYear {
		warnings = append(warnings, fmt.Sprintf("dashboard.burnRateWindow %d is outside 1-%d, using %d", d.BurnRateWindow, constants.MonthsPerYear, constants.DefaultBurnRateWindow))
	}
	if d.RiskThreshold < 0 || d.RiskThreshold > constants.AchievedThreshold {
		warnings = append(warnings, fmt.Sprintf("dashboard.riskThreshold %.1f is outside 0-100", d.RiskThreshold))
	}
	if d.TopActivities < 0 {
		warnings = append(warnings, fmt.Sprintf("dashboard.topActivities %d is negative, using %d", d.TopActivities, constants.DefaultTopActivities))
	}
	if d.TopPerformers < 0 {
		warnings = append(warnings, fmt.Sprintf("dashboard.topPerformers %d is negative, using %d", d.TopPerformers, constants.DefaultTopPerformers))
	}

	return warnings
}
