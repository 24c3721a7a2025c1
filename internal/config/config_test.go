package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.Addr)
	assert.Equal(t, BackendMemory, cfg.StorageBackend)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "retail_sales", cfg.MongoDatabase)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SALES_ADDR", ":9090")
	t.Setenv("SALES_STORAGE_BACKEND", "mongo")
	t.Setenv("SALES_MONGO_URI", "mongodb://db:27017")
	t.Setenv("SALES_MONGO_DATABASE", "sales_test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, BackendMongo, cfg.StorageBackend)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "sales_test", cfg.MongoDatabase)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("SALES_STORAGE_BACKEND", "cassandra")

	_, err := Load()
	assert.Error(t, err)
}

func TestFromViperBackends(t *testing.T) {
	for _, backend := range []string{BackendMemory, BackendMongo} {
		v := viper.New()
		setDefaults(v)
		v.Set("storage.backend", backend)

		cfg, err := fromViper(v)
		require.NoError(t, err)
		assert.Equal(t, backend, cfg.StorageBackend)
	}
}
