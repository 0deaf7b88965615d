package config

import (
	"errors"

	"github.com/spf13/viper"

	"github.com/strikepod/strikepod/game"
)

// Tuning carries every tunable the decision core reads. The defaults are the
// values the agent races with when no config file is present; a config file
// only needs to override the keys being experimented with.
type Tuning struct {
	DriftFactor         float64 `mapstructure:"driftFactor"`
	MinDriftSpeed       float64 `mapstructure:"minDriftSpeed"`
	LookaheadTicks      int     `mapstructure:"lookaheadTicks"`
	ShieldPolicy        string  `mapstructure:"shieldPolicy"`
	HeadOnAngle         float64 `mapstructure:"headOnAngle"`
	HeadOnSpeed         float64 `mapstructure:"headOnSpeed"`
	BenefitDecrement    float64 `mapstructure:"benefitDecrement"`
	MaxBoostAngle       float64 `mapstructure:"maxBoostAngle"`
	BrakeDistanceFactor float64 `mapstructure:"brakeDistanceFactor"`
	LogLevel            string  `mapstructure:"logLevel"`
}

// Load reads configuration from strikepod.cfg.json in configDir and fills in
// defaults for everything else. A missing config file is not an error; the
// defaults are a complete configuration on their own.
func Load(configDir string) (Tuning, error) {
	viper.SetDefault("driftFactor", game.DefaultDriftFactor)
	viper.SetDefault("minDriftSpeed", game.DefaultMinDriftSpeed)
	viper.SetDefault("lookaheadTicks", game.DefaultLookaheadTicks)
	viper.SetDefault("shieldPolicy", "headon")
	viper.SetDefault("headOnAngle", game.DefaultHeadOnAngle)
	viper.SetDefault("headOnSpeed", game.DefaultHeadOnSpeed)
	viper.SetDefault("benefitDecrement", game.DefaultBenefitDecrement)
	viper.SetDefault("maxBoostAngle", game.DefaultMaxBoostAngle)
	viper.SetDefault("brakeDistanceFactor", game.DefaultBrakeDistanceFactor)
	viper.SetDefault("logLevel", "info")

	viper.SetConfigName("strikepod.cfg.json")
	viper.SetConfigType("json")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Tuning{}, err
		}
	}

	var t Tuning
	if err := viper.Unmarshal(&t); err != nil {
		return Tuning{}, err
	}
	return t, nil
}
