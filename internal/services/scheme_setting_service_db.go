package services

import (
	"weko_authors_go_backend/internal/models"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SchemeSettingServiceDB defines the administrative operations on a scheme settings table.
// Every mutation runs in its own transaction; failures are rolled back and returned.
type SchemeSettingServiceDB interface {
	Create(name, scheme, url string) (*models.SchemeSetting, error)
	Update(id uint, name, scheme, url string) error
	Delete(id uint) error
	Get(id uint) (*models.SchemeSetting, error)
	GetByName(name string) (*models.SchemeSetting, error)
	List() ([]models.SchemeSetting, error)
	WithTx(tx *gorm.DB) SchemeSettingServiceDB
}

// DefaultSchemeSettingService implements SchemeSettingServiceDB over one table
type DefaultSchemeSettingService struct {
	db    *gorm.DB
	table string
}

// NewPrefixSettingServiceDB creates the store for identifier prefix settings
func NewPrefixSettingServiceDB(db *gorm.DB) SchemeSettingServiceDB {
	return &DefaultSchemeSettingService{db: db, table: models.PrefixSettingsTable}
}

// NewAffiliationSettingServiceDB creates the store for affiliation settings
func NewAffiliationSettingServiceDB(db *gorm.DB) SchemeSettingServiceDB {
	return &DefaultSchemeSettingService{db: db, table: models.AffiliationSettingsTable}
}

func (s *DefaultSchemeSettingService) WithTx(tx *gorm.DB) SchemeSettingServiceDB {
	return &DefaultSchemeSettingService{db: tx, table: s.table}
}

func (s *DefaultSchemeSettingService) Create(name, scheme, url string) (*models.SchemeSetting, error) {
	setting := &models.SchemeSetting{
		Name:   name,
		Scheme: models.NormalizeScheme(scheme),
		URL:    url,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Table(s.table).Create(setting).Error
	})
	if err != nil {
		log.Error().Err(err).Str("table", s.table).Str("name", name).Msg("Failed to create scheme setting")
		return nil, err
	}
	log.Info().Str("table", s.table).Uint("id", setting.ID).Str("name", name).Msg("Scheme setting created")
	return setting, nil
}

// Update overwrites name, scheme and url. A blank scheme clears the stored one to NULL.
func (s *DefaultSchemeSettingService) Update(id uint, name, scheme, url string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var setting models.SchemeSetting
		if err := tx.Table(s.table).Where("id = ?", id).First(&setting).Error; err != nil {
			return err
		}
		setting.Name = name
		setting.Scheme = models.NormalizeScheme(scheme)
		setting.URL = url
		return tx.Table(s.table).Save(&setting).Error
	})
	if err != nil {
		log.Error().Err(err).Str("table", s.table).Uint("id", id).Msg("Failed to update scheme setting")
		return err
	}
	log.Info().Str("table", s.table).Uint("id", id).Msg("Scheme setting updated")
	return nil
}

func (s *DefaultSchemeSettingService) Delete(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var setting models.SchemeSetting
		if err := tx.Table(s.table).Where("id = ?", id).First(&setting).Error; err != nil {
			return err
		}
		return tx.Table(s.table).Delete(&setting).Error
	})
	if err != nil {
		log.Error().Err(err).Str("table", s.table).Uint("id", id).Msg("Failed to delete scheme setting")
		return err
	}
	log.Info().Str("table", s.table).Uint("id", id).Msg("Scheme setting deleted")
	return nil
}

func (s *DefaultSchemeSettingService) Get(id uint) (*models.SchemeSetting, error) {
	var setting models.SchemeSetting
	if err := s.db.Table(s.table).Where("id = ?", id).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (s *DefaultSchemeSettingService) GetByName(name string) (*models.SchemeSetting, error) {
	var setting models.SchemeSetting
	if err := s.db.Table(s.table).Where("name = ?", name).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (s *DefaultSchemeSettingService) List() ([]models.SchemeSetting, error) {
	var settings []models.SchemeSetting
	if err := s.db.Table(s.table).Order("id asc").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}
