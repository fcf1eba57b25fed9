package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"slidepanel/internal/drawer"
)

// Config holds demo application configuration.
type Config struct {
	Drawer DrawerConfig `mapstructure:"drawer"`
	Log    LogConfig    `mapstructure:"log"`
}

// DrawerConfig holds the slide panel settings.
type DrawerConfig struct {
	SlideWidthFraction float64 `mapstructure:"slide_width_fraction"`
	DragStartEdge      float64 `mapstructure:"drag_start_edge"`
	AnimationMs        int     `mapstructure:"animation_ms"`
	ShadowColor        string  `mapstructure:"shadow_color"`
	ShadowOpacity      float64 `mapstructure:"shadow_opacity"`
	Direction          string  `mapstructure:"direction"` // "ltr" or "rtl"
}

// LogConfig holds debug logging settings.
type LogConfig struct {
	File string `mapstructure:"file"`
}

// Load reads configuration from file and env. Env var overrides use
// prefix SLIDEPANEL_ (e.g. SLIDEPANEL_DRAWER_DIRECTION=rtl).
func Load() (Config, error) {
	v := viper.New()

	def := drawer.DefaultConfig()
	v.SetDefault("drawer.slide_width_fraction", def.SlideWidthFraction)
	v.SetDefault("drawer.drag_start_edge", def.DragStartEdge)
	v.SetDefault("drawer.animation_ms", int(def.AnimationDuration/time.Millisecond))
	v.SetDefault("drawer.shadow_color", def.ShadowColor)
	v.SetDefault("drawer.shadow_opacity", def.ShadowMaxOpacity)
	v.SetDefault("drawer.direction", "ltr")
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SLIDEPANEL_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "slidepanel"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SLIDEPANEL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// config file is optional
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// DrawerConfig converts the loaded settings into a validated drawer
// configuration. Malformed values are reported rather than defaulted
// silently.
func (c Config) DrawerConfig() (drawer.Config, error) {
	dc := drawer.Config{
		SlideWidthFraction: c.Drawer.SlideWidthFraction,
		DragStartEdge:      c.Drawer.DragStartEdge,
		AnimationDuration:  time.Duration(c.Drawer.AnimationMs) * time.Millisecond,
		ShadowColor:        c.Drawer.ShadowColor,
		ShadowMaxOpacity:   c.Drawer.ShadowOpacity,
	}
	switch strings.ToLower(c.Drawer.Direction) {
	case "", "ltr":
		dc.Direction = drawer.LeftToRight
	case "rtl":
		dc.Direction = drawer.RightToLeft
	default:
		return drawer.Config{}, fmt.Errorf("unknown direction %q (want ltr or rtl)", c.Drawer.Direction)
	}
	if err := dc.Validate(); err != nil {
		return drawer.Config{}, err
	}
	return dc, nil
}
