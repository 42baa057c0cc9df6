package config

import (
	"fmt"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	Http         Http       `yaml:"http" validate:"required"`
	Pg           Pg         `yaml:"pg" validate:"required"`
	Log          Log        `yaml:"log"`
	Auth         Auth       `yaml:"auth" validate:"required"`
	RateLimits   RateLimits `yaml:"rate_limits"`
	CorsOrigins  []string   `yaml:"cors_origins"`
	ThreadFanout int        `yaml:"thread_fanout"` // concurrent reply/like lookups per thread read
}

type Http struct {
	Port            int           `yaml:"port" validate:"required"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type Pg struct {
	Host   string `yaml:"host" validate:"required"`
	Port   int    `yaml:"port" validate:"required"`
	User   string `yaml:"user" validate:"required"`
	Dbname string `yaml:"dbname" validate:"required"`
}

type Log struct {
	Level string `yaml:"level"`
	Json  bool   `yaml:"json"`
}

type Auth struct {
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl" validate:"required"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" validate:"required"`
}

// RateLimits are requests per second with a burst of the same size.
// Zero disables the corresponding limiter.
type RateLimits struct {
	Login float64 `yaml:"login"`
	Write float64 `yaml:"write"`
}

type Private struct {
	PgPassword      string `yaml:"pg_password" validate:"required"`
	AccessTokenKey  string `yaml:"access_token_key" validate:"required"`
	RefreshTokenKey string `yaml:"refresh_token_key" validate:"required"`
}

// New assembles a Config without reading files.
func New(public Public, private Private) *Config {
	setDefaults(&public)
	return &Config{public, private}
}

func (s *Config) AccessTokenKey() string {
	return s.private.AccessTokenKey
}

func (s *Config) RefreshTokenKey() string {
	return s.private.RefreshTokenKey
}

// PgDSN builds a lib/pq connection string.
func (s *Config) PgDSN() string {
	pg := s.Public.Pg
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		pg.Host, pg.Port, pg.User, s.private.PgPassword, pg.Dbname)
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file: " + configPath)
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file: " + configPath)
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(output); err != nil {
		panic(fmt.Sprintf("config file %s is missing required fields: %v", configPath, err))
	}
}

func setDefaults(p *Public) {
	if p.Http.ReadTimeout == 0 {
		p.Http.ReadTimeout = 10 * time.Second
	}
	if p.Http.WriteTimeout == 0 {
		p.Http.WriteTimeout = 10 * time.Second
	}
	if p.Http.ShutdownTimeout == 0 {
		p.Http.ShutdownTimeout = 15 * time.Second
	}
	if p.ThreadFanout <= 0 {
		p.ThreadFanout = 8
	}
	if p.Log.Level == "" {
		p.Log.Level = "info"
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)
	setDefaults(&public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			panic("PORT is not a number: " + port)
		}
		public.Http.Port = p
	}

	return &Config{public, private}
}
