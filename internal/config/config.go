package config

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/clipsmart/clipsmart-web/params"
	"github.com/spf13/viper"
)

const (
	DefaultAppName      = "ClipSmart"
	DefaultListenAddr   = ":3000"
	DefaultStaticDir    = "./static"
	DefaultCookieName   = "clipsmart_sid"
	DefaultCookieMaxAge = 7 * 24 * time.Hour
)

var (
	ErrMissingBackendURL = errors.New("backend.baseURL is required")
)

type SessionConfig struct {
	SessionMaxAge  time.Duration `yaml:"sessionMaxAge"`
	CookieName     string        `yaml:"cookieName"`
	CookieHttpOnly bool          `yaml:"cookieHttpOnly"`
	CookieSecure   bool          `yaml:"cookieSecure"`
}

type BackendConfig struct {
	BaseURL string        `yaml:"baseURL"`
	Timeout time.Duration `yaml:"timeout"`
}

type Config struct {
	Debug        bool          `yaml:"debug"`
	AppName      string        `yaml:"appName"`
	BaseURL      string        `yaml:"baseURL"`
	ListenAddr   string        `yaml:"listenAddr"`
	StaticDir    string        `yaml:"staticDir"`
	TemplateDir  string        `yaml:"templateDir"`
	AllowOrigins []string      `yaml:"allowOrigins"`
	RedisURL     string        `yaml:"redisURL"`
	Session      SessionConfig `yaml:"session"`
	Backend      BackendConfig `yaml:"backend"`
}

// APIBaseURL returns the backend URL with the versioned API prefix appended.
func (c *Config) APIBaseURL() string {
	return strings.TrimRight(c.Backend.BaseURL, "/") + params.BackendAPIPrefix
}

func (c *Config) Sanitize() error {
	if c.AppName == "" {
		c.AppName = DefaultAppName
	}
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if c.StaticDir == "" {
		c.StaticDir = DefaultStaticDir
	}
	if c.Session.SessionMaxAge == 0 {
		c.Session.SessionMaxAge = DefaultCookieMaxAge
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = DefaultCookieName
	}
	if c.Backend.Timeout == 0 {
		c.Backend.Timeout = params.BackendAPITimeout
	}
	if c.Backend.BaseURL == "" {
		return ErrMissingBackendURL
	}
	if _, err := url.ParseRequestURI(c.Backend.BaseURL); err != nil {
		return err
	}
	return nil
}

func LoadConfig(filename string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(filename)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("CLIPSMART")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Sanitize(); err != nil {
		return nil, err
	}
	return &config, nil
}
