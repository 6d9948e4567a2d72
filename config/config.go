package config

import (
	"errors"
	"fmt"
	"strings"

	"go-bank-account/common"

	"github.com/spf13/viper"
)

type Config struct {
	Limits struct {
		MaxDeposits          int     `mapstructure:"max_deposits" validate:"gte=1"`
		DailyWithdrawalLimit float64 `mapstructure:"daily_withdrawal_limit" validate:"gt=0"`
	} `mapstructure:"limits"`
	Log struct {
		Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
		Format string `mapstructure:"format" validate:"oneof=text json"`
	} `mapstructure:"log"`
}

var AppConfig = Default()

// Default returns the configuration used when no file or environment
// override is present.
func Default() Config {
	var cfg Config
	cfg.Limits.MaxDeposits = 3
	cfg.Limits.DailyWithdrawalLimit = 1000
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	return cfg
}

// LoadConfig reads config.yml from path, applies ACCOUNT_* environment
// overrides and stores the validated result in AppConfig. A missing file is
// not an error.
func LoadConfig(path string) error {
	v := viper.New()
	setDefaults(v, Default())

	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.SetEnvPrefix("ACCOUNT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := common.Validate(cfg); err != nil {
		return err
	}

	AppConfig = cfg
	return nil
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("limits.max_deposits", cfg.Limits.MaxDeposits)
	v.SetDefault("limits.daily_withdrawal_limit", cfg.Limits.DailyWithdrawalLimit)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
}
