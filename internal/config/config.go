package config

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host        string   `yaml:"host" env:"SERVER_HOST"`
		Port        int      `yaml:"port" env:"SERVER_PORT"`
		Env         string   `yaml:"env" env:"SERVER_ENV"`
		CORSOrigins []string `yaml:"cors_origins" env:"CORS_ORIGINS" envSeparator:","`
	} `yaml:"server"`

	Database struct {
		Driver string `yaml:"driver" env:"DATABASE_DRIVER"` // postgres, mysql, sqlite
		DSN    string `yaml:"url" env:"DATABASE_URL"`
		// AutoMigrate создает таблицы при старте; это не система миграций
		AutoMigrate bool `yaml:"auto_migrate" env:"DATABASE_AUTO_MIGRATE"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret" env:"JWT_SECRET"`
		TTL    int    `yaml:"ttl" env:"JWT_TTL"` // минуты
		Issuer string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Auth struct {
		AllowMentorSignup bool `yaml:"allow_mentor_signup" env:"AUTH_ALLOW_MENTOR_SIGNUP"`
	} `yaml:"auth"`

	Email struct {
		Enabled      bool   `yaml:"enabled" env:"EMAIL_ENABLED"`
		SMTPHost     string `yaml:"smtp_host" env:"SMTP_HOST"`
		SMTPPort     int    `yaml:"smtp_port" env:"SMTP_PORT"`
		SMTPUsername string `yaml:"smtp_user" env:"SMTP_USER"`
		SMTPPassword string `yaml:"smtp_password" env:"SMTP_PASSWORD"`
		FromEmail    string `yaml:"from_email" env:"EMAIL_FROM"`
		FromName     string `yaml:"from_name" env:"EMAIL_FROM_NAME"`
	} `yaml:"email"`

	Kafka struct {
		Brokers  []string `yaml:"brokers" env:"KAFKA_BROKERS" envSeparator:","`
		Topic    string   `yaml:"topic" env:"KAFKA_TOPIC"`
		Username string   `yaml:"username" env:"KAFKA_USERNAME"`
		Password string   `yaml:"password" env:"KAFKA_PASSWORD"`
	} `yaml:"kafka"`

	Storage struct {
		Type          string `yaml:"type" env:"STORAGE_TYPE"`           // local, s3, cloudinary
		BasePath      string `yaml:"base_path" env:"STORAGE_BASE_PATH"` // local
		BaseURL       string `yaml:"base_url" env:"STORAGE_BASE_URL"`   // публичный префикс URL
		Bucket        string `yaml:"bucket" env:"STORAGE_BUCKET"`
		Region        string `yaml:"region" env:"STORAGE_REGION"`
		AccessKey     string `yaml:"access_key" env:"STORAGE_ACCESS_KEY"`
		SecretKey     string `yaml:"secret_key" env:"STORAGE_SECRET_KEY"`
		Endpoint      string `yaml:"endpoint" env:"STORAGE_ENDPOINT"`
		CloudinaryURL string `yaml:"cloudinary_url" env:"CLOUDINARY_URL"`
	} `yaml:"storage"`

	Upload struct {
		MaxSize        int64    `yaml:"max_size" env:"UPLOAD_MAX_SIZE"` // байты, после base64-декодирования
		AllowedTypes   []string `yaml:"allowed_types" env:"UPLOAD_ALLOWED_TYPES" envSeparator:","`
		ImageQuality   int      `yaml:"image_quality" env:"UPLOAD_IMAGE_QUALITY"`
		MaxImageWidth  int      `yaml:"max_image_width" env:"UPLOAD_MAX_IMAGE_WIDTH"`
		MaxImageHeight int      `yaml:"max_image_height" env:"UPLOAD_MAX_IMAGE_HEIGHT"`
	} `yaml:"upload"`

	FirstAdminEmail    string `yaml:"first_admin_email" env:"FIRST_ADMIN_EMAIL"`
	FirstAdminPassword string `yaml:"first_admin_password" env:"FIRST_ADMIN_PASSWORD"`
}

var AppConfig *Config

// Default возвращает конфигурацию, с которой сервис стартует без файла
func Default() *Config {
	var cfg Config

	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 5001
	cfg.Server.Env = "development"
	cfg.Server.CORSOrigins = []string{"http://localhost:5173", "http://localhost:3000", "http://localhost:5174"}

	cfg.Database.Driver = "postgres"
	cfg.Database.AutoMigrate = true

	cfg.JWT.TTL = 24 * 60
	cfg.JWT.Issuer = "vinixport"

	cfg.Auth.AllowMentorSignup = true

	cfg.Email.SMTPPort = 587
	cfg.Email.FromEmail = "no-reply@vinixport.local"
	cfg.Email.FromName = "VinixPort"

	cfg.Kafka.Topic = "review-requests"

	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = "./uploads"
	cfg.Storage.BaseURL = "/uploads"

	cfg.Upload.MaxSize = 10 * 1024 * 1024
	cfg.Upload.AllowedTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
	cfg.Upload.ImageQuality = 85
	cfg.Upload.MaxImageWidth = 1600
	cfg.Upload.MaxImageHeight = 1600

	return &cfg
}

// Load собирает конфиг: значения по умолчанию -> .env -> config.yaml -> переменные окружения.
func Load() (*Config, error) {
	cfg := Default()

	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("Warning: .env could not be loaded: %v", err)
		}
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	if err := loadYAML(configPath, cfg); err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadYAML(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("Config file %s not found, using defaults and environment", path)
			return nil
		}
		return fmt.Errorf("open config file %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development" || c.Server.Env == "test"
}

// Validate проверяет обязательные значения
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return errors.New("database url is required (DATABASE_URL)")
	}
	switch c.Database.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver: %q", c.Database.Driver)
	}
	if c.JWT.Secret == "" {
		if !c.IsDevelopment() {
			return errors.New("jwt secret is required outside development (JWT_SECRET)")
		}
		c.JWT.Secret = "dev-only-insecure-secret"
		log.Println("Warning: JWT_SECRET is empty, using a development secret")
	}
	if c.JWT.TTL <= 0 {
		return errors.New("jwt ttl must be positive")
	}
	if c.Upload.MaxSize <= 0 {
		return errors.New("upload max size must be positive")
	}
	return nil
}

// LoadConfig загружает конфиг в AppConfig и завершает процесс при ошибке
func LoadConfig() {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
