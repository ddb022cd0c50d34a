package database

import (
	"fmt"

	"weko_authors_go_backend/internal/models"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config describes how to reach the database. Path is only used by the sqlite driver.
type Config struct {
	Driver   string
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
	Path     string
}

// DB is the process default handle, set by InitDB.
var DB *gorm.DB

func InitDB(cfg Config) {
	var err error
	DB, err = Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Driver).Msg("Failed to connect to database")
	}

	if err = Migrate(DB); err != nil {
		log.Fatal().Err(err).Msg("Failed to auto migrate")
	}
}

func Open(cfg Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	switch cfg.Driver {
	case DriverPostgres:
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			cfg.Host,
			cfg.User,
			cfg.Password,
			cfg.Name,
			cfg.Port,
			cfg.SSLMode,
		)
		return gorm.Open(postgres.Open(dsn), gormConfig)
	case DriverSQLite:
		db, err := gorm.Open(sqlite.Open(cfg.Path), gormConfig)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// sqlite has a single writer, and every connection to ":memory:" is a new database.
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Migrate creates the tables and, where the engine has them, the id sequence.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Author{},
		&models.AuthorsPrefixSettings{},
		&models.AuthorsAffiliationSettings{},
	)
	if err != nil {
		return err
	}

	if db.Dialector.Name() == DriverPostgres {
		return db.Exec(fmt.Sprintf("CREATE SEQUENCE IF NOT EXISTS %s", models.AuthorIDSequence)).Error
	}
	return db.AutoMigrate(&models.Sequence{})
}
