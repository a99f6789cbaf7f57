// Package config loads runtime configuration from environment variables,
// with an optional .env file for local development.
package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress = ":8080"
	defaultDataDir    = "data"
	defaultSessionTTL = 12 * time.Hour
)

type Config struct {
	Env     string
	Server  server
	Storage storage
	Session session
	Logger  logger
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type storage struct {
	DataDir string `env:"DATA_DIR"`
}

type session struct {
	TTL time.Duration `env:"SESSION_TTL_HOURS"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()

	runAddress := viper.GetString("run_address")
	if runAddress == "" {
		runAddress = defaultRunAddress
	}

	dataDir := viper.GetString("data_dir")
	if dataDir == "" {
		dataDir = defaultDataDir
	}

	ttl := defaultSessionTTL
	if hours := viper.GetInt("session_ttl_hours"); hours > 0 {
		ttl = time.Duration(hours) * time.Hour
	}

	env := viper.GetString("app_env")
	if env == "" {
		env = EnvLocal
	}

	return &Config{
		Env:     env,
		Server:  server{RunAddress: runAddress},
		Storage: storage{DataDir: dataDir},
		Session: session{TTL: ttl},
		Logger:  logger{LogLevel: viper.GetString("log_level")},
	}
}
