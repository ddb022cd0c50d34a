package models

import (
	"strings"
	"time"
)

const (
	PrefixSettingsTable      = "authors_prefix_settings"
	AffiliationSettingsTable = "authors_affiliation_settings"

	// URLPlaceholder marks where the identifier goes in a setting's URL template.
	URLPlaceholder = "##"
)

// SchemeSetting maps a named identifier scheme to the URL template used to build
// external profile links. Prefix and affiliation settings share this shape.
type SchemeSetting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:text;not null;uniqueIndex" json:"name"`
	Scheme    *string   `gorm:"type:text" json:"scheme"`
	URL       string    `gorm:"type:text" json:"url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AuthorsPrefixSettings struct {
	SchemeSetting
}

func (AuthorsPrefixSettings) TableName() string {
	return PrefixSettingsTable
}

type AuthorsAffiliationSettings struct {
	SchemeSetting
}

func (AuthorsAffiliationSettings) TableName() string {
	return AffiliationSettingsTable
}

// NormalizeScheme trims the scheme; a blank result is stored as NULL.
func NormalizeScheme(scheme string) *string {
	trimmed := strings.TrimSpace(scheme)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// ProfileURL fills the URL template with the given identifier.
func (s *SchemeSetting) ProfileURL(identifier string) string {
	return strings.ReplaceAll(s.URL, URLPlaceholder, identifier)
}
