package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server Server `yaml:"server"`

	Database Database `yaml:"database"`

	Redis Redis `yaml:"redis"`

	Session Session `yaml:"session"`

	Mail Mail `yaml:"mail"`

	Analytics Analytics `yaml:"analytics"`
}

type Server struct {
	Address string `yaml:"address"`
}

type Database struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

type Redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type Session struct {
	Secret   string `yaml:"secret"`    // signs password-reset tokens
	TTLHours int    `yaml:"ttl_hours"` // session lifetime, default 24
	Cookie   string `yaml:"cookie"`    // cookie name
}

type Mail struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	Admin    string `yaml:"admin"` // contact notifications recipient
}

type Analytics struct {
	MongoURI string `yaml:"mongo_uri"` // empty disables the sink
	Database string `yaml:"database"`
}

func Load() (*Config, error) {
	// A local .env may carry secrets that the YAML file references via env
	_ = godotenv.Load()

	configPath := "configs/development.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}

	f, err := os.Open(configPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	return &cfg, nil
}

// applyEnv lets environment variables override file values, so deployments
// never have to write secrets into the YAML file.
func (c *Config) applyEnv() {
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Redis.Password, "REDIS_PASSWORD")
	setString(&c.Session.Secret, "SESSION_SECRET")
	setString(&c.Mail.User, "EMAIL_USER")
	setString(&c.Mail.Password, "EMAIL_PASSWORD")
	setString(&c.Analytics.MongoURI, "MONGO_URI")
	setString(&c.Server.Address, "SERVER_ADDRESS")
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Redis.DB = n
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Session.TTLHours == 0 {
		c.Session.TTLHours = 24
	}
	if c.Session.Cookie == "" {
		c.Session.Cookie = "vg_session"
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
