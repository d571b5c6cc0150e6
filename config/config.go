package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type JWT struct {
	Secret  string
	Issuer  string
	ExpDays int
}

type Workspace struct {
	BaseURL string
	Timeout time.Duration
}

type Redis struct {
	Addr    string
	Channel string
}

type Config struct {
	HTTP      HTTP
	DataPath  string
	JWT       JWT
	Workspace Workspace
	Redis     Redis
}

// DBPath is the SQLite database file inside the data directory.
func (c *Config) DBPath() string { return filepath.Join(c.DataPath, "worksuite.db") }

// FilesPath is the root of flat-file storage for uploaded items.
func (c *Config) FilesPath() string { return filepath.Join(c.DataPath, "files") }

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.data_path", "data")
	v.SetDefault("jwt.secret", "dev-secret-change-me")
	v.SetDefault("jwt.issuer", "worksuite")
	v.SetDefault("jwt.exp_days", 7)
	v.SetDefault("workspace.base_url", "")
	v.SetDefault("workspace.timeout_ms", 5000)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.channel", "worksuite:broadcast")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		HTTP:     HTTP{Host: v.GetString("server.host"), Port: v.GetInt("server.port")},
		DataPath: v.GetString("server.data_path"),
		Workspace: Workspace{
			BaseURL: v.GetString("workspace.base_url"),
			Timeout: time.Duration(v.GetInt("workspace.timeout_ms")) * time.Millisecond,
		},
		Redis: Redis{Addr: v.GetString("redis.addr"), Channel: v.GetString("redis.channel")},
	}
	cfg.JWT.Secret = v.GetString("jwt.secret")
	cfg.JWT.Issuer = v.GetString("jwt.issuer")
	cfg.JWT.ExpDays = v.GetInt("jwt.exp_days")
	if cfg.JWT.ExpDays <= 0 {
		cfg.JWT.ExpDays = 7
	}
	if cfg.Workspace.Timeout <= 0 {
		cfg.Workspace.Timeout = 5 * time.Second
	}
	return cfg, nil
}
