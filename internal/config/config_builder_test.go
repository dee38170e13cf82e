package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults_FileBackedStore(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.defaults()

	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, defaultDBDSN, cfg.Storage.DB.DSN)
	assert.False(t, cfg.App.AllowAnonymousWrites, "writes must be protected by default")
}

func TestDefaults_NoSQLiteDSNForPostgres(t *testing.T) {
	cfg := &StructuredConfig{Storage: Storage{DB: DB{Driver: DriverPostgres}}}
	cfg.defaults()

	// a file path default makes no sense for postgres; validation rejects it
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &StructuredConfig{
		Server:  Server{HTTPAddress: "localhost:9999", RequestTimeout: time.Minute},
		Storage: Storage{DB: DB{Driver: DriverSQLite, DSN: "/tmp/fleet.db"}},
	}
	cfg.defaults()

	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, "/tmp/fleet.db", cfg.Storage.DB.DSN)
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := &StructuredConfig{Storage: Storage{DB: DB{Driver: "mysql", DSN: "whatever"}}}
	assert.ErrorIs(t, cfg.validate(), ErrUnknownDBDriver)
}

func TestValidate_DefaultConfigIsValid(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.defaults()
	require.NoError(t, cfg.validate())
}
