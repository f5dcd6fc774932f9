// internal/config/config_test.go
//
// 驗證設定來源的優先序：預設值、YAML 檔、環境變數，以及不合法值的拒絕。
// 使用 t.TempDir() 與 t.Setenv()，不汙染本機環境。
package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig 在暫存目錄寫入 records.yaml 並回傳該目錄。
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName+".yaml"), []byte(body), 0o644))
	return dir
}

// TestLoadDefaults 驗證沒有設定檔與環境變數時採用內建預設值。
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.False(t, cfg.Debug)
	assert.Equal(t, 1000, cfg.RaiseAmount)
	assert.Equal(t, 1000, cfg.DemeritAmount)
}

// TestLoadFile 驗證 YAML 檔覆寫預設值，未列出的鍵保留預設。
func TestLoadFile(t *testing.T) {
	dir := writeConfig(t, "debug: true\nraise_amount: 250\n")
	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 250, cfg.RaiseAmount)
	assert.Equal(t, 1000, cfg.DemeritAmount)
}

// TestLoadEnvOverridesFile 驗證環境變數優先於設定檔。
func TestLoadEnvOverridesFile(t *testing.T) {
	dir := writeConfig(t, "raise_amount: 250\n")
	t.Setenv("RECORDS_RAISE_AMOUNT", "400")
	t.Setenv("RECORDS_DEMERIT_AMOUNT", "5")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 400, cfg.RaiseAmount)
	assert.Equal(t, 5, cfg.DemeritAmount)
}

// TestLoadZeroAmountIsValid 驗證 0 為合法的預設調整額並原樣保留。
func TestLoadZeroAmountIsValid(t *testing.T) {
	t.Setenv("RECORDS_RAISE_AMOUNT", "0")
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.RaiseAmount)
	assert.Equal(t, 1000, cfg.DemeritAmount)
}

// TestLoadRejectsNegative 驗證負的調整額回傳 ErrInvalid。
func TestLoadRejectsNegative(t *testing.T) {
	dir := writeConfig(t, "demerit_amount: -1\n")
	_, err := Load(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))
}

// TestLoadMalformedFile 驗證格式錯誤的設定檔回傳讀取錯誤，而非當作不存在。
func TestLoadMalformedFile(t *testing.T) {
	dir := writeConfig(t, "debug: [unterminated\n")
	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}
