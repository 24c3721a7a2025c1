package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Storage backend selectors.
const (
	BackendMemory = "memory"
	BackendMongo  = "mongo"
)

// Config holds the runtime configuration for the sales API.
type Config struct {
	Addr           string
	StorageBackend string
	MongoURI       string
	MongoDatabase  string
}

// Load reads configuration from an optional sales.yaml in the working
// directory and from SALES_* environment variables, falling back to
// defaults. Environment variables win over the file.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("sales")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SALES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return fromViper(v)
}

// setDefaults registers the default value for every known key.
func setDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":8081")
	v.SetDefault("storage.backend", BackendMemory)
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "retail_sales")
}

// fromViper builds a Config from an initialized viper instance.
func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Addr:           v.GetString("addr"),
		StorageBackend: v.GetString("storage.backend"),
		MongoURI:       v.GetString("mongo.uri"),
		MongoDatabase:  v.GetString("mongo.database"),
	}

	switch cfg.StorageBackend {
	case BackendMemory, BackendMongo:
	default:
		return nil, fmt.Errorf("invalid storage backend %q: must be %q or %q",
			cfg.StorageBackend, BackendMemory, BackendMongo)
	}

	return cfg, nil
}
