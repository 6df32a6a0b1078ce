package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", `
url: https://example.com/news/
minTextLength: 40
retryLength: 500
positiveKeywords: [story, body]
negativeKeywords:
  - promo
fragment: false
format: markdown
verbose: true
timeout: 15s
`)

	cf, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/news/", cf.URL)
	assert.Equal(t, 40, cf.MinTextLength)
	assert.Equal(t, 500, cf.RetryLength)
	assert.Equal(t, []string{"story", "body"}, cf.PositiveKeywords)
	assert.Equal(t, []string{"promo"}, cf.NegativeKeywords)
	require.NotNil(t, cf.Fragment)
	assert.False(t, *cf.Fragment)
	assert.Equal(t, "markdown", cf.Format)
	assert.True(t, cf.Verbose)
	assert.Equal(t, 15*time.Second, cf.Timeout)
}

func TestLoadConfigFileMissing(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoadConfigFileInvalid(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yaml", "minTextLength: [not, a, number]\n")
	_, err := LoadConfigFile(path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConfigNotFound)
}

func TestLoadConfigFileUnsetFragment(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", "format: json\n")
	cf, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Nil(t, cf.Fragment)
	assert.Zero(t, cf.MinTextLength)
}

func TestFindConfigFile(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "custom.yaml", "format: text\n")
		assert.Equal(t, path, FindConfigFile(path))
	})

	t.Run("explicit path missing", func(t *testing.T) {
		assert.Empty(t, FindConfigFile(filepath.Join(t.TempDir(), "missing.yaml")))
	})

	t.Run("working directory", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, DefaultConfigFile, "format: text\n")
		t.Chdir(dir)
		found := FindConfigFile("")
		require.NotEmpty(t, found)
		assert.Equal(t, DefaultConfigFile, filepath.Base(found))
	})
}

func TestConfigDir(t *testing.T) {
	assert.Equal(t, AppName, filepath.Base(ConfigDir()))
}
