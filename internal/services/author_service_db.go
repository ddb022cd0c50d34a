package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"weko_authors_go_backend/internal/database"
	"weko_authors_go_backend/internal/models"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrAuthorNotFound = errors.New("author not found")
	ErrEmailNotFound  = errors.New("author has no email")
)

// AuthorServiceDB defines the storage operations on author records
type AuthorServiceDB interface {
	CreateAuthor(data map[string]interface{}) (*models.Author, error)
	GetSequence(seq database.Sequencer) (int64, error)
	GetAuthorByID(id int64) map[string]interface{}
	GetFirstEmailByID(id int64) (string, bool)
	LookupAuthorByID(id int64) (map[string]interface{}, error)
	LookupFirstEmailByID(id int64) (string, error)
	WithTx(tx *gorm.DB) AuthorServiceDB
}

// DefaultAuthorService implements AuthorServiceDB
type DefaultAuthorService struct {
	db  *gorm.DB
	seq database.Sequencer
}

// NewAuthorServiceDB creates a new DefaultAuthorService whose default sequencer
// runs on the same handle.
func NewAuthorServiceDB(db *gorm.DB) AuthorServiceDB {
	return &DefaultAuthorService{db: db, seq: database.NewSequencer(db)}
}

// WithTx binds the store to an explicit session handle.
func (s *DefaultAuthorService) WithTx(tx *gorm.DB) AuthorServiceDB {
	return &DefaultAuthorService{db: tx, seq: database.NewSequencer(tx)}
}

// CreateAuthor inserts a record under a freshly reserved id. Nil data is stored as {}.
func (s *DefaultAuthorService) CreateAuthor(data map[string]interface{}) (*models.Author, error) {
	if data == nil {
		data = map[string]interface{}{}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode author metadata: %w", err)
	}

	id, err := s.GetSequence(nil)
	if err != nil {
		return nil, fmt.Errorf("reserve author id: %w", err)
	}

	author := &models.Author{ID: id, JSON: datatypes.JSON(raw)}
	if err := s.db.Create(author).Error; err != nil {
		return nil, err
	}
	log.Debug().Int64("authorID", author.ID).Msg("Author created")
	return author, nil
}

// GetSequence advances the author id sequence. A nil seq uses the store's own handle.
func (s *DefaultAuthorService) GetSequence(seq database.Sequencer) (int64, error) {
	if seq == nil {
		seq = s.seq
	}
	return seq.NextVal(models.AuthorIDSequence)
}

func (s *DefaultAuthorService) LookupAuthorByID(id int64) (map[string]interface{}, error) {
	author, err := s.findAuthor(id)
	if err != nil {
		return nil, err
	}
	return author.Metadata()
}

func (s *DefaultAuthorService) LookupFirstEmailByID(id int64) (string, error) {
	author, err := s.findAuthor(id)
	if err != nil {
		return "", err
	}
	email, found, err := author.FirstEmail()
	if err != nil {
		return "", err
	}
	if !found {
		return "", ErrEmailNotFound
	}
	return email, nil
}

// GetAuthorByID returns nil when the author is missing or cannot be read.
func (s *DefaultAuthorService) GetAuthorByID(id int64) map[string]interface{} {
	data, err := s.LookupAuthorByID(id)
	if err != nil {
		logLookupFailure(err, id, "get_author_by_id")
		return nil
	}
	return data
}

// GetFirstEmailByID reports false when the author is missing, has no email, or
// cannot be read.
func (s *DefaultAuthorService) GetFirstEmailByID(id int64) (string, bool) {
	email, err := s.LookupFirstEmailByID(id)
	if err != nil {
		logLookupFailure(err, id, "get_first_email_by_id")
		return "", false
	}
	return email, true
}

func (s *DefaultAuthorService) findAuthor(id int64) (*models.Author, error) {
	var author models.Author
	err := s.db.Where("id = ?", id).First(&author).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAuthorNotFound
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

func logLookupFailure(err error, id int64, op string) {
	if errors.Is(err, ErrAuthorNotFound) || errors.Is(err, ErrEmailNotFound) {
		return
	}
	log.Warn().Err(err).Int64("authorID", id).Str("op", op).Msg("Author lookup failed")
}
