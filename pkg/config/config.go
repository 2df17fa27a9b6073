package config

import (
	"errors"
	"io/fs"
	"log"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/anonymity12/habitplanet/internal/repository"
)

var (
	once     sync.Once
	instance *Config
)

const DefaultEnvFile = "./configs/.env"

type Config struct {
	APIAddress string `env:"HABITPLANET_API_ADDRESS" envDefault:":8080"`
	// postgres or sqlite
	StorageDriver string `env:"HABITPLANET_STORAGE" envDefault:"postgres"`
	SQLitePath    string `env:"HABITPLANET_SQLITE_PATH" envDefault:"habitplanet.db"`
	Postgres      repository.PGCfg

	JWTSecret string `env:"HABITPLANET_JWT_SECRET"`

	LogLevel  string `env:"HABITPLANET_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"HABITPLANET_LOG_FORMAT" envDefault:"text"`
	LogFile   string `env:"HABITPLANET_LOG_FILE"`

	// IANA name of the zone calendar days are counted in.
	Timezone string `env:"HABITPLANET_TIMEZONE" envDefault:"UTC"`

	Content ContentConfig
	S3      S3Config
}

type ContentConfig struct {
	GeminiAPIKey string        `env:"HABITPLANET_GEMINI_API_KEY"`
	TextModel    string        `env:"HABITPLANET_GEMINI_TEXT_MODEL" envDefault:"gemini-2.5-flash"`
	ImageModel   string        `env:"HABITPLANET_GEMINI_IMAGE_MODEL" envDefault:"gemini-2.5-flash-image"`
	Timeout      time.Duration `env:"HABITPLANET_CONTENT_TIMEOUT" envDefault:"30s"`
}

// S3Config enables object storage for card art when Bucket is set.
type S3Config struct {
	Bucket    string `env:"HABITPLANET_S3_BUCKET"`
	Region    string `env:"HABITPLANET_S3_REGION" envDefault:"us-east-1"`
	Endpoint  string `env:"HABITPLANET_S3_ENDPOINT"`
	AccessKey string `env:"HABITPLANET_S3_ACCESS_KEY"`
	SecretKey string `env:"HABITPLANET_S3_SECRET_KEY"`
}

// New loads the process-wide configuration once from DefaultEnvFile and the
// environment.
func New() *Config {
	once.Do(func() {
		cfg, err := Load(DefaultEnvFile)
		if err != nil {
			log.Fatal("loading config error: ", err)
		}
		instance = cfg
	})
	return instance
}

// Load reads envFile if it exists, then parses the environment. Variables
// already set in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.New("loading envs error: " + err.Error())
		}
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.New("parsing envs error: " + err.Error())
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case "postgres", "sqlite":
	default:
		return errors.New("unknown storage driver: " + c.StorageDriver)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return errors.New("invalid timezone: " + err.Error())
	}
	return nil
}

// Location returns the calendar zone. validate guarantees it loads.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
