package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Color modes for terminal output
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents application configuration
type Config struct {
	Holidays HolidaysConfig `mapstructure:"holidays"`
	Display  DisplayConfig  `mapstructure:"display"`
	Log      LogConfig      `mapstructure:"log"`
}

// HolidaysConfig represents holiday source configuration
type HolidaysConfig struct {
	File       string   `mapstructure:"file"`        // dd/mm/yyyy,flag lines or .yaml
	ExtraFiles []string `mapstructure:"extra_files"` // combined with File
	Watch      bool     `mapstructure:"watch"`       // reload on change in the TUI
}

// DisplayConfig represents rendering configuration
type DisplayConfig struct {
	Color  string       `mapstructure:"color"` // "auto", "always" or "never"
	Colors ColorsConfig `mapstructure:"colors"`
}

// ColorsConfig maps display classes to terminal colors.
// Empty values fall back to the terminal default.
type ColorsConfig struct {
	Normal       string `mapstructure:"normal"`
	Holiday      string `mapstructure:"holiday"`
	FadedNormal  string `mapstructure:"faded_normal"`
	FadedHoliday string `mapstructure:"faded_holiday"`
	Header       string `mapstructure:"header"`
	Title        string `mapstructure:"title"`
	Error        string `mapstructure:"error"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("holidays.file", "./data/holidays.txt")
	v.SetDefault("holidays.watch", true)
	v.SetDefault("display.color", ColorAuto)
	v.SetDefault("display.colors.holiday", "#E05252")
	v.SetDefault("display.colors.faded_normal", "#808080")
	v.SetDefault("display.colors.faded_holiday", "#FA8072")
	v.SetDefault("display.colors.header", "#626262")
	v.SetDefault("display.colors.title", "#7D56F4")
	v.SetDefault("display.colors.error", "#E05252")
	v.SetDefault("log.level", "warn")
}

// Load loads configuration from file. A missing file is not an error,
// defaults are used instead.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.month-calendar")
		v.AddConfigPath("/etc/month-calendar")
	}

	// Read environment variables, e.g. MONTH_CALENDAR_HOLIDAYS_FILE
	v.SetEnvPrefix("month_calendar")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Holidays.File == "" {
		return fmt.Errorf("holidays.file is required")
	}
	for i, f := range c.Holidays.ExtraFiles {
		if f == "" {
			return fmt.Errorf("holidays.extra_files[%d] is empty", i)
		}
	}

	switch c.Display.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("display.color must be 'auto', 'always' or 'never', got '%s'", c.Display.Color)
	}

	return nil
}

// HolidayFiles returns the main holiday file followed by the extra ones
func (c *HolidaysConfig) HolidayFiles() []string {
	files := make([]string, 0, 1+len(c.ExtraFiles))
	files = append(files, c.File)
	return append(files, c.ExtraFiles...)
}

// ExpandEnvVars expands environment variables in config paths
func (c *Config) ExpandEnvVars() {
	c.Holidays.File = os.ExpandEnv(c.Holidays.File)
	for i, f := range c.Holidays.ExtraFiles {
		c.Holidays.ExtraFiles[i] = os.ExpandEnv(f)
	}
	c.Log.File = os.ExpandEnv(c.Log.File)
}
