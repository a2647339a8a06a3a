package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  address: ":9090"
mysql:
  host: "db.internal"
  username: "resume"
  database: "resumes"
llm:
  enabled: true
  model: "gpt-4o-mini"
upload:
  max_size_mb: 8
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, "db.internal", cfg.MySQL.Host)
	assert.Equal(t, 8, cfg.Upload.MaxSizeMB)
	assert.True(t, cfg.LLM.Enabled)
	// 文件未覆盖的字段保持默认值
	assert.Equal(t, 3306, cfg.MySQL.Port)
	assert.Equal(t, 30, cfg.Redis.MD5RecordExpireDays)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm:\n  api_key: \"from-file\"\n"), 0o644))

	t.Setenv("LLM_API_KEY", "from-env")
	t.Setenv("MYSQL_PASSWORD", "secret")

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.LLM.APIKey)
	assert.Equal(t, "secret", cfg.MySQL.Password)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig("/no/such/config.yaml")

	assert.Error(t, err)
}

func TestLoadConfigDefaultsInTestEnvironment(t *testing.T) {
	// 测试进程参数中带有test，找不到配置文件时返回默认配置
	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 16, cfg.Upload.MaxSizeMB)
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 5*time.Second, GetDuration("5s", time.Minute))
	assert.Equal(t, time.Minute, GetDuration("", time.Minute))
	assert.Equal(t, time.Minute, GetDuration("bogus", time.Minute))
}
