package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merchant-dashboard/backend/config"
	"github.com/merchant-dashboard/backend/internal/integration/persistence/model"
)

func TestNewConnection_SQLite(t *testing.T) {
	database, err := NewConnection(&config.DatabaseConfig{Driver: DriverSQLite, URL: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, database.AutoMigrate(model.All()...))
	assert.True(t, database.HealthCheck())
	assert.True(t, database.DB().Migrator().HasTable("transactions"))
	assert.True(t, database.DB().Migrator().HasTable("profiles"))
	assert.True(t, database.DB().Migrator().HasTable("email_queue"))
}

func TestNewConnection_UnknownDriver(t *testing.T) {
	_, err := NewConnection(&config.DatabaseConfig{Driver: "mysql"})
	assert.ErrorContains(t, err, "unsupported database driver")
}
