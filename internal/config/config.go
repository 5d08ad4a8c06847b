package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "docwatch.db"
	DefaultLogName        = "docwatch.log"
)

// Keymap holds the key bindings the UI reacts to outside of plain text
// entry. Values are bubbletea key strings ("ctrl+s", "tab", " ").
type Keymap struct {
	Quit      string `toml:"quit"`
	NextTab   string `toml:"next_tab"`
	PrevTab   string `toml:"prev_tab"`
	NextField string `toml:"next_field"`
	PrevField string `toml:"prev_field"`
	Submit    string `toml:"submit"`
	RunOnce   string `toml:"run_once"`
	Delete    string `toml:"delete"`
	Cancel    string `toml:"cancel"`
	Toggle    string `toml:"toggle"`
	Confirm   string `toml:"confirm"`
}

type Config struct {
	ServerURL      string `toml:"server_url"`
	AuthToken      string `toml:"auth_token"`
	DBPath         string `toml:"db_path"`
	LogPath        string `toml:"log_path"`
	LogLevel       string `toml:"log_level"`
	DefaultChannel string `toml:"default_channel"`
	Keys           Keymap `toml:"keys"`
}

// ResolveConfigPath prefers the user config dir, falling back to a file
// next to the binary when that is unavailable.
func ResolveConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, "docwatch", DefaultConfigFileName)
}

func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBName
	}
	if cfg.LogPath == "" {
		cfg.LogPath = DefaultLogName
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		ServerURL:      "http://localhost:7880",
		DBPath:         DefaultDBName,
		LogPath:        DefaultLogName,
		LogLevel:       "info",
		DefaultChannel: "mail",
		Keys:           DefaultKeys(),
	}
}

// DefaultKeys is the stock keymap.
func DefaultKeys() Keymap {
	return Keymap{
		Quit:      "ctrl+c",
		NextTab:   "ctrl+n",
		PrevTab:   "ctrl+p",
		NextField: "tab",
		PrevField: "shift+tab",
		Submit:    "ctrl+s",
		RunOnce:   "ctrl+r",
		Delete:    "ctrl+d",
		Cancel:    "esc",
		Toggle:    " ",
		Confirm:   "enter",
	}
}
