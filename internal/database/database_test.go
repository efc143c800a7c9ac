package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialector_UnknownDriver(t *testing.T) {
	_, err := Dialector("oracle", "dsn")
	assert.Error(t, err)
}

func TestDialector_KnownDrivers(t *testing.T) {
	for _, driver := range []string{"postgres", "mysql", "sqlite"} {
		d, err := Dialector(driver, "dsn")
		require.NoError(t, err, driver)
		assert.Equal(t, driver, d.Name())
	}
}

func TestOpenAndMigrate_SQLite(t *testing.T) {
	db, err := Open("sqlite", "file:database_test?mode=memory&cache=shared", false)
	require.NoError(t, err)

	require.NoError(t, Migrate(db))
	for _, table := range []string{"users", "projects", "certificates", "review_requests"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}
