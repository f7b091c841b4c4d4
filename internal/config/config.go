// Package config loads the handful of knobs vmcfdiff's Checker needs when a
// caller wants file/env-driven configuration instead of assembling a
// Checker purely from functional options. Grounded on
// CloudPasture-kubevirt-shepherd/internal/config's viper + mapstructure +
// env-override pattern, trimmed to a comparison library's actual surface
// (no server, database or k8s sections — those belong to a service).
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// CheckConfig configures the criteria preset and tuning knobs a Checker
// uses when not overridden by an explicit functional option.
type CheckConfig struct {
	// Criteria selects the canonical comparison policy: "public",
	// "public_protected" or "simple".
	Criteria string `mapstructure:"criteria"`
	// IncludePrivate only applies when Criteria is "simple".
	IncludePrivate bool `mapstructure:"include_private"`
	// VersionSeparator is the delimiter ParseVersion looks for before a
	// pre-release tag, e.g. "-" in "1.2.3-rc1".
	VersionSeparator string `mapstructure:"version_separator"`
	// ExtendedViewCacheSize bounds diff.Differ's inherited-member cache.
	ExtendedViewCacheSize int `mapstructure:"extended_view_cache_size"`
	// Exclusions lists filepath.Match glob patterns excluded from
	// comparison, split by entity kind.
	Exclusions ExclusionsConfig `mapstructure:"exclusions"`
}

// ExclusionsConfig mirrors criteria.Exclusions in a (de)serializable shape.
type ExclusionsConfig struct {
	ClassPatterns  []string `mapstructure:"class_patterns"`
	MethodPatterns []string `mapstructure:"method_patterns"`
	FieldPatterns  []string `mapstructure:"field_patterns"`
}

const envPrefix = "VMCFDIFF"

// Load reads configuration from an optional YAML file plus
// VMCFDIFF_-prefixed environment variables (e.g. VMCFDIFF_CRITERIA,
// VMCFDIFF_INCLUDE_PRIVATE), falling back to defaults when neither is
// present. configPath may be "" to search only the working directory.
func Load(configPath string) (*CheckConfig, error) {
	v := viper.New()

	v.SetConfigName("vmcfdiff")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg CheckConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Validate checks for configuration values the Checker cannot recover from.
func (c *CheckConfig) Validate() error {
	switch c.Criteria {
	case "public", "public_protected", "simple":
	default:
		return fmt.Errorf("criteria: unknown preset %q", c.Criteria)
	}
	if c.VersionSeparator == "" {
		return fmt.Errorf("version_separator must not be empty")
	}
	if c.ExtendedViewCacheSize <= 0 {
		return fmt.Errorf("extended_view_cache_size must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("criteria", "public")
	v.SetDefault("include_private", false)
	v.SetDefault("version_separator", "-")
	v.SetDefault("extended_view_cache_size", 256)
}
