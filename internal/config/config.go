package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Picker method names accepted in configuration.
const (
	PickerConstant = "constant"
	PickerSNR      = "snr"
)

// Config holds corner-frequency picker settings for the snrpick command.
type Config struct {
	Picker   string
	Constant ConstantConfig
	SNR      SNRConfig
}

// ConstantConfig holds fixed corner frequencies for the constant picker.
type ConstantConfig struct {
	Highpass float64
	Lowpass  float64
}

// SNRConfig holds SNR picker parameters.
type SNRConfig struct {
	Threshold   float64
	MaxLowFreq  float64
	MinHighFreq float64
	Bandwidth   float64
}

// Load loads configuration from environment variables, optionally merged over
// a config file. Environment variables take precedence over the file, the
// file over the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("PICKER", PickerSNR)
	v.SetDefault("SNR_THRESHOLD", 3.0)
	v.SetDefault("SNR_MAX_LOW_FREQ", 0.1)
	v.SetDefault("SNR_MIN_HIGH_FREQ", 5.0)
	v.SetDefault("SNR_BANDWIDTH", 20.0)
	v.SetDefault("CONSTANT_HIGHPASS", 0.08)
	v.SetDefault("CONSTANT_LOWPASS", 20.0)

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	v.AutomaticEnv()

	cfg := &Config{
		Picker: strings.ToLower(v.GetString("PICKER")),
		Constant: ConstantConfig{
			Highpass: v.GetFloat64("CONSTANT_HIGHPASS"),
			Lowpass:  v.GetFloat64("CONSTANT_LOWPASS"),
		},
		SNR: SNRConfig{
			Threshold:   v.GetFloat64("SNR_THRESHOLD"),
			MaxLowFreq:  v.GetFloat64("SNR_MAX_LOW_FREQ"),
			MinHighFreq: v.GetFloat64("SNR_MIN_HIGH_FREQ"),
			Bandwidth:   v.GetFloat64("SNR_BANDWIDTH"),
		},
	}

	if cfg.Picker != PickerConstant && cfg.Picker != PickerSNR {
		return nil, fmt.Errorf("config: unknown picker %q", cfg.Picker)
	}

	return cfg, nil
}
