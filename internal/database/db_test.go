package database

import (
	"testing"

	"weko_authors_go_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Open(Config{Driver: DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestOpen(t *testing.T) {
	t.Run("unsupported driver", func(t *testing.T) {
		_, err := Open(Config{Driver: "oracle"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported database driver")
	})

	t.Run("sqlite memory", func(t *testing.T) {
		db := setupTestDB(t)
		assert.Equal(t, DriverSQLite, db.Dialector.Name())
	})
}

func TestMigrate(t *testing.T) {
	db := setupTestDB(t)

	for _, model := range []interface{}{
		&models.Author{},
		&models.AuthorsPrefixSettings{},
		&models.AuthorsAffiliationSettings{},
		&models.Sequence{},
	} {
		assert.True(t, db.Migrator().HasTable(model))
	}
	assert.True(t, db.Migrator().HasIndex(&models.AuthorsPrefixSettings{}, "idx_authors_prefix_settings_name"))
}

func TestNewSequencer(t *testing.T) {
	t.Run("sqlite", func(t *testing.T) {
		db := setupTestDB(t)
		assert.IsType(t, &TableSequencer{}, NewSequencer(db))
	})

	t.Run("postgres", func(t *testing.T) {
		// no server is contacted: the pool is lazy and the ping is skipped
		db, err := gorm.Open(postgres.New(postgres.Config{
			DSN: "host=localhost user=authors dbname=authors sslmode=disable",
		}), &gorm.Config{DisableAutomaticPing: true, DryRun: true})
		require.NoError(t, err)
		t.Cleanup(func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		})

		assert.Equal(t, DriverPostgres, db.Dialector.Name())
		assert.IsType(t, &PostgresSequencer{}, NewSequencer(db))
	})
}

func TestTableSequencerNextVal(t *testing.T) {
	db := setupTestDB(t)
	seq := NewSequencer(db)

	var previous int64
	for i := 1; i <= 5; i++ {
		value, err := seq.NextVal(models.AuthorIDSequence)
		require.NoError(t, err)
		assert.Equal(t, int64(i), value)
		assert.Greater(t, value, previous)
		previous = value
	}

	// counters are independent per name
	other, err := seq.NextVal("other_seq")
	require.NoError(t, err)
	assert.Equal(t, int64(1), other)

	next, err := seq.NextVal(models.AuthorIDSequence)
	require.NoError(t, err)
	assert.Equal(t, int64(6), next)
}
