package config

import (
	"flag"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	MongoURI     string `env:"MONGODB_URI"`
	DatabaseName string `env:"DATABASE_NAME"`

	// Shared settings
	BaseURL string `env:"BASE_URL"`

	// Uploads
	UploadDir   string `env:"UPLOAD_DIR"`
	UploadMaxMB int    `env:"UPLOAD_MAX_MB"`

	// Client-side settings
	ServerURL string `env:"SERVER_URL"`
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.MongoURI, "d", cfg.MongoURI, "строка подключения к MongoDB")
	flag.StringVar(&cfg.DatabaseName, "db-name", cfg.DatabaseName, "имя базы данных")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "адрес сервера (host:port)")
	flag.StringVar(&cfg.UploadDir, "upload-dir", cfg.UploadDir, "каталог для загруженных изображений")
	flag.IntVar(&cfg.UploadMaxMB, "upload-max-mb", cfg.UploadMaxMB, "лимит размера изображения, МБ")
	// Client flags
	flag.StringVar(&cfg.ServerURL, "server-url", cfg.ServerURL, "URL сервера для клиента")

	flag.Parse()

	// Defaults
	if cfg.DatabaseName == "" {
		cfg.DatabaseName = "lostfound"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	if cfg.UploadMaxMB <= 0 {
		cfg.UploadMaxMB = 5
	}
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]*:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:3000"
	}
	if cfg.ServerURL == "" {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	return cfg
}
