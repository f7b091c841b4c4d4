package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "public", cfg.Criteria)
	assert.False(t, cfg.IncludePrivate)
	assert.Equal(t, "-", cfg.VersionSeparator)
	assert.Equal(t, 256, cfg.ExtendedViewCacheSize)
}

func TestLoad_CriteriaFromEnv(t *testing.T) {
	t.Setenv("VMCFDIFF_CRITERIA", "simple")
	t.Setenv("VMCFDIFF_INCLUDE_PRIVATE", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "simple", cfg.Criteria)
	assert.True(t, cfg.IncludePrivate)
}

func TestValidate_RejectsUnknownCriteria(t *testing.T) {
	cfg := &CheckConfig{Criteria: "bogus", VersionSeparator: "-", ExtendedViewCacheSize: 1}
	assert.Error(t, cfg.Validate(), "want error for unknown criteria preset")
}

func TestValidate_RejectsEmptySeparator(t *testing.T) {
	cfg := &CheckConfig{Criteria: "public", VersionSeparator: "", ExtendedViewCacheSize: 1}
	assert.Error(t, cfg.Validate(), "want error for empty version separator")
}

func TestValidate_RejectsNonPositiveCacheSize(t *testing.T) {
	cfg := &CheckConfig{Criteria: "public", VersionSeparator: "-", ExtendedViewCacheSize: 0}
	assert.Error(t, cfg.Validate(), "want error for non-positive cache size")
}
