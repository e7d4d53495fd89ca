/*
 Package config loads the active modulation preset record from a TOML
 file: look in /opt (so a field unit's SD card can ship an override) and
 then the working directory, and if neither has a file, fall back to
 hard-coded values known to work for at least one real radio.
*/
package config

import "github.com/spf13/viper"

// Preset is one modulation preset. Only DurationFilterUS enters the
// decoding core (scanner.ScanForSignal's min_us argument); Name and
// RadioPresetBlob are carried for the shell's own use (radio tuning)
// and never read by the core.
type Preset struct {
	Name             string `mapstructure:"name"`
	DurationFilterUS uint32 `mapstructure:"duration_filter_us"`
	RadioPresetBlob  string `mapstructure:"radio_preset_blob"`
}

// defaultPreset is used when no config file is found. 85us is a
// conservative short-pulse floor that passes every protocol in the
// registry's line codes without admitting sub-threshold OOK glitches.
var defaultPreset = Preset{
	Name:             "default-315-433",
	DurationFilterUS: 85,
	RadioPresetBlob:  "",
}

// Load reads configuration from a TOML file called "tpmsd.toml", looking
// in /opt and then the current directory, and returns the active
// preset. If no config file is found, it returns defaultPreset and ok is
// false so callers can warn the operator.
func Load() (preset Preset, ok bool) {
	viper.SetConfigName("tpmsd")
	viper.AddConfigPath("/opt")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		return defaultPreset, false
	}

	preset = defaultPreset
	if err := viper.UnmarshalKey("preset", &preset); err != nil {
		return defaultPreset, false
	}
	return preset, true
}
