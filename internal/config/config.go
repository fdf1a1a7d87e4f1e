package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

var ErrConfigPathIsEmpty = errors.New("config path is empty")

type Config struct {
	App        `yaml:"app"`
	Logger     `yaml:"log"`
	Database   `yaml:"database"`
	HTTPServer `yaml:"http_server"`
	Admin      `yaml:"admin"`
	Notifier   `yaml:"notifier"`
	Mailer     `yaml:"mailer"`
}

type App struct {
	ServiceName string `yaml:"service_name" env-default:"portfolio-back"`
	Version     string `yaml:"version" env-default:"0.1.0"`
}

type Logger struct {
	Level      string   `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	FormatJSON bool     `yaml:"format_json" env:"LOG_FORMAT_JSON"`
	Rotation   Rotation `yaml:"rotation"`
}

type Rotation struct {
	File       string `yaml:"file"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
}

type Database struct {
	Host      string    `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port      uint16    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User      string    `yaml:"user" env:"DB_USER"`
	Password  string    `yaml:"password" env:"DB_PASSWORD"`
	Name      string    `yaml:"name" env:"DB_NAME"`
	SSLMode   string    `yaml:"ssl_mode" env:"DB_SSL_MODE" env-default:"disable"`
	MaxConns  int32     `yaml:"max_conns" env-default:"10"`
	MinConns  int32     `yaml:"min_conns" env-default:"2"`
	Migration Migration `yaml:"migration"`
}

type Migration struct {
	Path      string `yaml:"path" env-default:"migrations"`
	AutoApply bool   `yaml:"auto_apply" env-default:"true"`
}

type HTTPServer struct {
	Host     string  `yaml:"host" env:"HTTP_HOST"`
	Port     uint16  `yaml:"port" env:"PORT" env-default:"5000"`
	BasePath string  `yaml:"base_path" env-default:"/api"`
	Timeout  Timeout `yaml:"timeout"`
	CORS     CORS    `yaml:"cors"`
}

type Timeout struct {
	Request time.Duration `yaml:"request" env-default:"15s"`
	Read    time.Duration `yaml:"read" env-default:"10s"`
	Write   time.Duration `yaml:"write" env-default:"10s"`
	Idle    time.Duration `yaml:"idle" env-default:"60s"`
}

type CORS struct {
	Enabled          bool          `yaml:"enabled" env-default:"true"`
	AllowAllOrigins  bool          `yaml:"allow_all_origins" env-default:"true"`
	AllowOrigins     []string      `yaml:"allow_origins"`
	AllowMethods     []string      `yaml:"allow_methods" env-default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `yaml:"allow_headers" env-default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `yaml:"expose_headers"`
	AllowCredentials bool          `yaml:"allow_credentials"`
	MaxAge           time.Duration `yaml:"max_age" env-default:"12h"`
}

// Admin holds the shared secret gating the contact dashboard. It is read once
// at startup and handed to the passcode verifier; nothing looks it up at
// request time.
type Admin struct {
	Passcode string `yaml:"passcode" env:"ADMIN_PASSCODE"`
}

type Notifier struct {
	Enable       bool          `yaml:"enable"`
	Recipient    string        `yaml:"recipient"`
	WorkerCount  int           `yaml:"worker_count" env-default:"2"`
	PollInterval time.Duration `yaml:"poll_interval" env-default:"30s"`
	BatchSize    int           `yaml:"batch_size" env-default:"20"`
}

type Mailer struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	UseTLS   bool   `yaml:"use_tls"`
}

func MustLoadConfig() *Config {
	cfg, err := LoadConfig()
	if err != nil {
		panic(err)
	}

	return cfg
}

func LoadConfig() (*Config, error) {
	path := fetchConfigPath()
	if path == "" {
		return nil, ErrConfigPathIsEmpty
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	var config Config

	if err := cleanenv.ReadConfig(path, &config); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return &config, nil
}

func MustPrintConfig(cfg *Config) {
	if err := PrintConfig(cfg); err != nil {
		panic(err)
	}
}

// PrintConfig dumps the effective config to stdout. The admin passcode and
// credentials are masked.
func PrintConfig(cfg *Config) error {
	printable := *cfg
	printable.Admin.Passcode = mask(cfg.Admin.Passcode)
	printable.Database.Password = mask(cfg.Database.Password)
	printable.Mailer.Password = mask(cfg.Mailer.Password)

	data, err := yaml.Marshal(printable)
	if err != nil {
		return err
	}

	println(string(data))

	return nil
}

func mask(s string) string {
	if s == "" {
		return ""
	}

	return "********"
}

func fetchConfigPath() string {
	var result string

	flag.StringVar(&result, "config", "", "Path to config file")
	flag.Parse()

	if result == "" {
		result = os.Getenv("CONFIG_PATH")
	}

	return result
}
