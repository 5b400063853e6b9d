package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var (
	once     sync.Once
	instance *Config
)

// Config reads settings from the environment first and falls back to an optional YAML file.
type Config struct {
	file map[string]string
}

// New loads ./configs/.env (if present) and the YAML file named by CONFIG_FILE once per process.
func New() *Config {
	once.Do(func() {
		err := godotenv.Load("./configs/.env")
		if err != nil {
			log.Println("loading envs skipped: " + err.Error())
		}
		instance, err = Load(os.Getenv("CONFIG_FILE"))
		if err != nil {
			log.Fatal("loading config file error: ", err)
		}
	})
	return instance
}

// Load builds a Config backed by the YAML file at path. An empty path gives an env-only Config.
func Load(path string) (*Config, error) {
	cfg := &Config{file: make(map[string]string)}
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("reading config file error: " + err.Error())
	}
	values := make(map[string]any)
	if err = yaml.Unmarshal(raw, &values); err != nil {
		return nil, errors.New("parsing config file error: " + err.Error())
	}
	for k, v := range values {
		cfg.file[strings.ToUpper(k)] = fmt.Sprint(v)
	}
	return cfg, nil
}

func (c *Config) GetString(key string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return c.file[key]
}

func (c *Config) GetStringOr(key, def string) string {
	if v := c.GetString(key); v != "" {
		return v
	}
	return def
}

func (c *Config) GetInt(key string, def int) int {
	v, err := strconv.Atoi(c.GetString(key))
	if err != nil {
		return def
	}
	return v
}

func (c *Config) GetFloat(key string, def float64) float64 {
	v, err := strconv.ParseFloat(c.GetString(key), 64)
	if err != nil {
		return def
	}
	return v
}

func (c *Config) GetDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(c.GetString(key))
	if err != nil {
		return def
	}
	return v
}
