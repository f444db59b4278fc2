package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Environment string
	Server      struct {
		Addr string
	}
	Database struct {
		Path string
	}
	Log struct {
		Level string
	}
}

// Load reads configuration from environment variables and optional config files.
// The USERS_ENV profile (development, test, production) selects baseline defaults;
// individual values can still be overridden per key.
func Load() (Config, error) {
	loadDotEnv()

	v := viper.New()
	v.SetEnvPrefix("USERS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("env", "development")
	env := strings.ToLower(v.GetString("env"))

	v.SetDefault("server.addr", "0.0.0.0:8080")
	switch env {
	case "production":
		v.SetDefault("database.path", "data/users.db")
		v.SetDefault("log.level", "info")
	case "test":
		v.SetDefault("database.path", "data/users_test.db")
		v.SetDefault("log.level", "error")
	case "development":
		v.SetDefault("database.path", "data/users_dev.db")
		v.SetDefault("log.level", "debug")
	default:
		return Config{}, fmt.Errorf("unknown environment %q", env)
	}

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Environment = env

	return cfg, nil
}

func loadDotEnv() {
	file, err := os.Open(".env")
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		partsIndex := strings.Index(line, "=")
		if partsIndex <= 0 {
			continue
		}

		key := strings.TrimSpace(line[:partsIndex])
		value := strings.TrimSpace(line[partsIndex+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}

		if _, exists := os.LookupEnv(key); !exists {
			_ = os.Setenv(key, value)
		}
	}
}
