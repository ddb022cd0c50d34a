package api

import (
	"weko_authors_go_backend/internal/database"
	"weko_authors_go_backend/internal/models"
	"weko_authors_go_backend/internal/services"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockAuthorServiceDB struct {
	mock.Mock
}

func (m *MockAuthorServiceDB) CreateAuthor(data map[string]interface{}) (*models.Author, error) {
	args := m.Called(data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Author), args.Error(1)
}

func (m *MockAuthorServiceDB) GetSequence(seq database.Sequencer) (int64, error) {
	args := m.Called(seq)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAuthorServiceDB) GetAuthorByID(id int64) map[string]interface{} {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(map[string]interface{})
}

func (m *MockAuthorServiceDB) GetFirstEmailByID(id int64) (string, bool) {
	args := m.Called(id)
	return args.String(0), args.Bool(1)
}

func (m *MockAuthorServiceDB) LookupAuthorByID(id int64) (map[string]interface{}, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]interface{}), args.Error(1)
}

func (m *MockAuthorServiceDB) LookupFirstEmailByID(id int64) (string, error) {
	args := m.Called(id)
	return args.String(0), args.Error(1)
}

func (m *MockAuthorServiceDB) WithTx(tx *gorm.DB) services.AuthorServiceDB {
	return m
}

type MockSchemeSettingServiceDB struct {
	mock.Mock
}

func (m *MockSchemeSettingServiceDB) Create(name, scheme, url string) (*models.SchemeSetting, error) {
	args := m.Called(name, scheme, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SchemeSetting), args.Error(1)
}

func (m *MockSchemeSettingServiceDB) Update(id uint, name, scheme, url string) error {
	args := m.Called(id, name, scheme, url)
	return args.Error(0)
}

func (m *MockSchemeSettingServiceDB) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockSchemeSettingServiceDB) Get(id uint) (*models.SchemeSetting, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SchemeSetting), args.Error(1)
}

func (m *MockSchemeSettingServiceDB) GetByName(name string) (*models.SchemeSetting, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SchemeSetting), args.Error(1)
}

func (m *MockSchemeSettingServiceDB) List() ([]models.SchemeSetting, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SchemeSetting), args.Error(1)
}

func (m *MockSchemeSettingServiceDB) WithTx(tx *gorm.DB) services.SchemeSettingServiceDB {
	return m
}
