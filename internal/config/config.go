// internal/config/config.go

// Package config 載入各示範程式共用的設定。
// 來源優先序（高到低）：環境變數 RECORDS_* → records.yaml → 內建預設值。
// 找不到設定檔不視為錯誤；程式本身不解析任何命令列參數。
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

const (
	// FileName 為設定檔名稱（不含副檔名）。
	FileName = "records"
	// EnvPrefix 為環境變數前綴，例如 RECORDS_DEBUG=true。
	EnvPrefix = "RECORDS"
)

// ErrInvalid 代表設定值不合法（例如負的預設調整額）。
var ErrInvalid = errors.New("invalid config")

// Config 為示範程式的執行設定。
type Config struct {
	Debug         bool `mapstructure:"debug"`          // 啟用 debug 等級日誌
	RaiseAmount   int  `mapstructure:"raise_amount"`   // Promote() 預設加薪額
	DemeritAmount int  `mapstructure:"demerit_amount"` // Demote() 預設減薪額
}

// Load 依序在 paths（預設為目前目錄）尋找 records.yaml 並合併環境變數。
func Load(paths ...string) (Config, error) {
	var cfg Config

	v := viper.New()
	v.SetDefault("debug", false)
	v.SetDefault("raise_amount", 1000)
	v.SetDefault("demerit_amount", 1000)

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.RaiseAmount < 0 {
		return fmt.Errorf("%w: raise_amount=%d must be >= 0", ErrInvalid, c.RaiseAmount)
	}
	if c.DemeritAmount < 0 {
		return fmt.Errorf("%w: demerit_amount=%d must be >= 0", ErrInvalid, c.DemeritAmount)
	}
	return nil
}
