package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Auth   AuthConfig
}

type ServerConfig struct {
	Port string
}

type MongoConfig struct {
	URI      string
	Database string
}

type AuthConfig struct {
	APIKey string
}

// Load reads configuration from environment variables.
// PORT, MONGO_URI and MONGO_DB have defaults; API_KEY does not, and
// mutating item routes stay unusable until it is set.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "3000")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB", "catalog")

	config := &Config{
		Server: ServerConfig{
			Port: v.GetString("PORT"),
		},
		Mongo: MongoConfig{
			URI:      v.GetString("MONGO_URI"),
			Database: v.GetString("MONGO_DB"),
		},
		Auth: AuthConfig{
			APIKey: v.GetString("API_KEY"),
		},
	}

	return config, nil
}
