package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"swipedeck/internal/eventbus"
)

// ErrNoPanes is returned when a deck file defines no panes
var ErrNoPanes = errors.New("deck defines no panes")

// Config represents the application configuration
type Config struct {
	Version      int          `toml:"version" mapstructure:"version"`
	SlideSpeedMs int          `toml:"slide_speed_ms" mapstructure:"slide_speed_ms"`
	Ease         string       `toml:"ease" mapstructure:"ease"`
	InitialIndex int          `toml:"initial_index" mapstructure:"initial_index"`
	UISettings   UISettings   `toml:"ui" mapstructure:"ui"`
	Panes        []PaneConfig `toml:"pane" mapstructure:"pane"`
}

// UISettings represents terminal rendering configuration
type UISettings struct {
	PaneWidth     int  `toml:"pane_width" mapstructure:"pane_width"` // 0 follows the terminal
	PixelsPerCell int  `toml:"pixels_per_cell" mapstructure:"pixels_per_cell"`
	FrameMs       int  `toml:"frame_ms" mapstructure:"frame_ms"`
	ShowHelp      bool `toml:"show_help" mapstructure:"show_help"`
}

// PaneConfig is one pane as written in the deck file
type PaneConfig struct {
	Title string `toml:"title" mapstructure:"title"`
	Body  string `toml:"body" mapstructure:"body"`
}

// SlideSpeed returns the configured transition duration
func (c *Config) SlideSpeed() time.Duration {
	return time.Duration(c.SlideSpeedMs) * time.Millisecond
}

// FrameInterval returns the animation frame interval
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.UISettings.FrameMs) * time.Millisecond
}

// Validate checks the configuration for values the deck cannot run with
func (c *Config) Validate() error {
	if len(c.Panes) == 0 {
		return ErrNoPanes
	}
	if c.SlideSpeedMs < 0 {
		return fmt.Errorf("slide_speed_ms must not be negative, got %d", c.SlideSpeedMs)
	}
	if c.UISettings.PixelsPerCell <= 0 {
		return fmt.Errorf("ui.pixels_per_cell must be positive, got %d", c.UISettings.PixelsPerCell)
	}
	if c.UISettings.FrameMs <= 0 {
		return fmt.Errorf("ui.frame_ms must be positive, got %d", c.UISettings.FrameMs)
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service rooted in the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "swipedeck", "deck.toml"),
	}
}

// NewConfigServiceAt creates a config service for an explicit deck file
func NewConfigServiceAt(path string, bus eventbus.EventBus) ConfigService {
	return &configService{filePath: path, bus: bus}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string { return cs.filePath }

// Load loads the configuration from the service's file, falling back to the
// built-in demo deck when the file does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		v := newViper()
		cfg, err := decode(v)
		if err != nil {
			return nil, err
		}
		cfg.Panes = DefaultPanes()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid default config: %w", err)
		}
		cs.publishLoaded("", cfg)
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Values can be
// overridden with SWIPEDECK_* environment variables.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	cs.publishLoaded(path, cfg)
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: path})
	}
	return nil
}

func (cs *configService) publishLoaded(path string, cfg *Config) {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: path, Panes: len(cfg.Panes)})
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	d := DefaultConfig()

	v.SetDefault("version", d.Version)
	v.SetDefault("slide_speed_ms", d.SlideSpeedMs)
	v.SetDefault("ease", d.Ease)
	v.SetDefault("initial_index", d.InitialIndex)
	v.SetDefault("ui.pane_width", d.UISettings.PaneWidth)
	v.SetDefault("ui.pixels_per_cell", d.UISettings.PixelsPerCell)
	v.SetDefault("ui.frame_ms", d.UISettings.FrameMs)
	v.SetDefault("ui.show_help", d.UISettings.ShowHelp)

	v.SetConfigType("toml")
	v.SetEnvPrefix("SWIPEDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// DefaultConfig returns the default configuration without panes
func DefaultConfig() *Config {
	return &Config{
		Version:      1,
		SlideSpeedMs: 300,
		Ease:         "",
		InitialIndex: 0,
		UISettings: UISettings{
			PaneWidth:     0,
			PixelsPerCell: 8,
			FrameMs:       16,
			ShowHelp:      true,
		},
	}
}

// DefaultPanes is the demo deck shown when no deck file exists
func DefaultPanes() []PaneConfig {
	return []PaneConfig{
		{Title: "Welcome", Body: "Drag horizontally with the mouse to swipe between panes.\nA short drag snaps back."},
		{Title: "Keys", Body: "h / left  previous pane\nl / right next pane\no         open pane in pager\nc         clean duplicate panes"},
		{Title: "Scrolling", Body: "A drag that starts mostly vertical is a scroll.\nIt never turns into a swipe halfway through."},
		{Title: "Bounds", Body: "Swiping past the first or last pane snaps back\ninstead of wrapping around."},
		{Title: "Config", Body: "Panes and timing come from deck.toml.\nSWIPEDECK_* variables override it."},
	}
}
