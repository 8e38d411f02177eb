package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env            string            `yaml:"env" env:"ENV" env-default:"local"`
	DSN            string            `yaml:"dsn" env:"DSN" env-required:"true"`
	MigrateOnStart bool              `yaml:"migrate_on_start" env:"MIGRATE_ON_START" env-default:"true"`
	TokenSecret    string            `yaml:"token_secret" env:"TOKEN_SECRET" env-required:"true"`
	TokenTTL       time.Duration     `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"1h"`
	HTTP           HTTPConfig        `yaml:"http"`
	FileStorage    FileStorageConfig `yaml:"file_storage"`
	Redis          RedisConf         `yaml:"redis"`
}

type HTTPConfig struct {
	Host         string        `yaml:"host" env:"HTTP_HOST"`
	Port         string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env-default:"10s"`
}

type FileStorageConfig struct {
	BaseDir string `yaml:"base_dir" env:"FILE_STORAGE_DIR" env-default:"./storage"`
	BaseURL string `yaml:"base_url" env:"FILE_STORAGE_URL" env-default:"http://localhost:8080"`
	// MaxSize is in KiB.
	MaxSize int64 `yaml:"max_size" env-default:"2048"`
}

type RedisConf struct {
	RedisAddr     string `yaml:"redis_addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string `yaml:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db" env:"REDIS_DB"`
}

func (c FileStorageConfig) MaxBytes() int64 {
	return c.MaxSize << 10
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	return &cfg
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
