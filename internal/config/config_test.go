package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, DefaultCVDir, cfg.CVDir)
	assert.Equal(t, DefaultRenderer, cfg.Renderer)
	assert.Equal(t, []string{DefaultLocalRenderer}, cfg.LocalRenderers)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_ExplicitFile(t *testing.T) {
	content := `cv_dir: resumes
renderer: /opt/rendercv/bin/rendercv
local_renderers:
  - .venv/bin/rendercv
log_level: debug
`
	tmpFile := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := Load(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, "resumes", cfg.CVDir)
	assert.Equal(t, "/opt/rendercv/bin/rendercv", cfg.Renderer)
	assert.Equal(t, []string{".venv/bin/rendercv"}, cfg.LocalRenderers)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat, "unset keys keep their default")
}

func TestLoad_DiscoveredFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cv-bank.yaml"), []byte("cv_dir: cvs\n"), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "cvs", cfg.CVDir)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cv-bank.yaml"), []byte("cv_dir: cvs\n"), 0644))
	t.Setenv("CV_BANK_CV_DIR", "from-env")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.CVDir)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidFile(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("cv_dir: [unclosed\n"), 0644))

	cfg, err := Load(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{CVDir: "cv-bank", Renderer: "rendercv", LogLevel: "warn", LogFormat: "text"}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "empty cv dir", mutate: func(c *Config) { c.CVDir = " " }, wantErr: "cv_dir"},
		{name: "empty renderer", mutate: func(c *Config) { c.Renderer = "" }, wantErr: "renderer"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "log_level"},
		{name: "bad log format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantErr: "log_format"},
		{name: "upper case level", mutate: func(c *Config) { c.LogLevel = "DEBUG" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_ApplyOverrides(t *testing.T) {
	base := Config{
		CVDir:          "cv-bank",
		Renderer:       "rendercv",
		LocalRenderers: []string{DefaultLocalRenderer},
	}

	t.Run("empty overrides keep values", func(t *testing.T) {
		got := base.ApplyOverrides(Overrides{})
		assert.Equal(t, base, got)
	})

	t.Run("dir override", func(t *testing.T) {
		got := base.ApplyOverrides(Overrides{CVDir: "other"})
		assert.Equal(t, "other", got.CVDir)
		assert.Equal(t, []string{DefaultLocalRenderer}, got.LocalRenderers)
	})

	t.Run("renderer override skips local lookup", func(t *testing.T) {
		got := base.ApplyOverrides(Overrides{Renderer: "/usr/local/bin/rendercv"})
		assert.Equal(t, "/usr/local/bin/rendercv", got.Renderer)
		assert.Nil(t, got.LocalRenderers)
		assert.Equal(t, "cv-bank", base.CVDir, "original is not modified")
	})
}
