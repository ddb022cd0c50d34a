package database

import (
	"weko_authors_go_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sequencer hands out the next value of a named counter. Every call advances it.
type Sequencer interface {
	NextVal(name string) (int64, error)
}

// NewSequencer returns the native postgres sequencer, or a table backed one for
// engines without sequences.
func NewSequencer(db *gorm.DB) Sequencer {
	if db.Dialector.Name() == DriverPostgres {
		return &PostgresSequencer{db: db}
	}
	return &TableSequencer{db: db}
}

type PostgresSequencer struct {
	db *gorm.DB
}

func (s *PostgresSequencer) NextVal(name string) (int64, error) {
	var value int64
	if err := s.db.Raw("SELECT nextval(?::regclass)", name).Scan(&value).Error; err != nil {
		return 0, err
	}
	return value, nil
}

// TableSequencer keeps counters in the sequences table. The increment and the read
// share one transaction, so concurrent callers never observe the same value.
type TableSequencer struct {
	db *gorm.DB
}

func (s *TableSequencer) NextVal(name string) (int64, error) {
	var seq models.Sequence
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Sequence{Name: name}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Sequence{}).Where("name = ?", name).
			UpdateColumn("value", gorm.Expr("value + ?", 1)).Error; err != nil {
			return err
		}
		return tx.Where("name = ?", name).First(&seq).Error
	})
	if err != nil {
		return 0, err
	}
	return seq.Value, nil
}
