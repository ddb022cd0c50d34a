package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// AuthorIDSequence is the sequence that hands out author ids.
const AuthorIDSequence = "authors_id_seq"

type Author struct {
	ID        int64          `gorm:"primaryKey;autoIncrement:false"`
	GatherFlg int64          `gorm:"not null;default:0"`
	IsDeleted bool           `gorm:"not null;default:false"`
	JSON      datatypes.JSON `gorm:"column:json"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Author) TableName() string {
	return "authors"
}

// Metadata decodes the stored JSON document. An empty column decodes to an empty map.
func (a *Author) Metadata() (map[string]interface{}, error) {
	data := map[string]interface{}{}
	if len(a.JSON) == 0 || string(a.JSON) == "null" {
		return data, nil
	}
	if err := json.Unmarshal(a.JSON, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// FirstEmail returns emailInfo[0].email from the metadata, if present.
func (a *Author) FirstEmail() (string, bool, error) {
	data, err := a.Metadata()
	if err != nil {
		return "", false, err
	}
	infos, ok := data["emailInfo"].([]interface{})
	if !ok || len(infos) == 0 {
		return "", false, nil
	}
	info, ok := infos[0].(map[string]interface{})
	if !ok {
		return "", false, nil
	}
	email, ok := info["email"].(string)
	if !ok || email == "" {
		return "", false, nil
	}
	return email, true, nil
}

// Sequence backs named counters on engines without native sequences.
type Sequence struct {
	Name  string `gorm:"primaryKey"`
	Value int64  `gorm:"not null;default:0"`
}

func (Sequence) TableName() string {
	return "sequences"
}
