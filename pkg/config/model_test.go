package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/cascade/pkg/filtering"
)

// TestResolveDimension tests key and label lookup.
//
// It verifies:
//   - Keys and numeric forms resolve
//   - Labels resolve case-insensitively
//   - Unknown names return ErrInvalidDimension
func TestResolveDimension(t *testing.T) {
	cfg := &Config{Dimensions: DimensionsCfg{
		Dim1: DimensionCfg{Label: "Region"},
		Dim3: DimensionCfg{Label: "Tag"},
	}}

	for name, want := range map[string]filtering.Dimension{
		"dim1": filtering.Dim1, "2": filtering.Dim2, "region": filtering.Dim1, " TAG ": filtering.Dim3,
	} {
		d, err := cfg.ResolveDimension(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, d, name)
	}

	_, err := cfg.ResolveDimension("colour")
	assert.ErrorIs(t, err, filtering.ErrInvalidDimension)
}

// TestLabel tests label fallback to the dimension key.
func TestLabel(t *testing.T) {
	cfg := &Config{Dimensions: DimensionsCfg{Dim2: DimensionCfg{Label: "Type"}}}
	assert.Equal(t, "dim1", cfg.Label(filtering.Dim1))
	assert.Equal(t, "Type", cfg.Label(filtering.Dim2))
	assert.Equal(t, DimensionCfg{}, cfg.Dimension(filtering.Dimension(9)))
}

// TestRules tests conversion to engine rules.
func TestRules(t *testing.T) {
	cfg := &Config{Cascade: CascadeCfg{NonCascading: []string{"dim3"}}}
	rules, err := cfg.Rules()
	require.NoError(t, err)
	assert.Equal(t, []filtering.Dimension{filtering.Dim3}, rules.NonCascading)

	cfg.Cascade.NonCascading = []string{"nope"}
	_, err = cfg.Rules()
	assert.ErrorIs(t, err, filtering.ErrInvalidDimension)
}

// TestRules_Defaults tests that the shipped defaults cascade every dimension
// and document the non-cascading alternative.
func TestRules_Defaults(t *testing.T) {
	rules, err := loadDefaultConfig().Rules()
	require.NoError(t, err)
	assert.Empty(t, rules.NonCascading)
	assert.Contains(t, GetDefaultConfig(), "[dim3] reproduces the")
}

// TestGetters tests defaults for optional settings.
func TestGetters(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, DefaultMaxCatalogFileSize, cfg.GetMaxCatalogFileSize())
	assert.Equal(t, "und", cfg.GetLocale())
	assert.Equal(t, ":8080", cfg.GetServerAddr())

	assert.Equal(t, DefaultSessionTTL, cfg.GetSessionTTL())

	cfg.Server.SessionTTL = "0"
	assert.Equal(t, time.Duration(0), cfg.GetSessionTTL())
	cfg.Server.SessionTTL = "bogus"
	assert.Equal(t, DefaultSessionTTL, cfg.GetSessionTTL())
	cfg.Server.SessionTTL = "90s"
	assert.Equal(t, 90*time.Second, cfg.GetSessionTTL())

	cfg.Security = &SecurityCfg{MaxCatalogFileSize: 42}
	cfg.Display.Locale = "sv"
	cfg.Server.Addr = ":1"
	assert.Equal(t, int64(42), cfg.GetMaxCatalogFileSize())
	assert.Equal(t, "sv", cfg.GetLocale())
	assert.Equal(t, ":1", cfg.GetServerAddr())
}

// TestEmbeddedTemplates tests the embedded YAML documents.
func TestEmbeddedTemplates(t *testing.T) {
	assert.Contains(t, GetDefaultConfig(), "dimensions:")
	assert.Contains(t, GetTemplateConfig(), "Region")
	assert.False(t, ValidateConfigFile([]byte(GetTemplateConfig())).HasErrors())
	assert.False(t, ValidateConfigFile([]byte(GetDefaultConfig())).HasErrors())
}
