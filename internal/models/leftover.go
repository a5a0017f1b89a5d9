package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Storage locations a leftover can live in
const (
	LocationFridge  = "fridge"
	LocationFreezer = "freezer"
)

// StringList is a custom type for storing ordered string lists as JSON text.
// Insertion order is preserved and duplicates are allowed.
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// Leftover is a tracked stored-food record with quantity, location and
// expiry metadata. portion counts remaining servings; consumed flips once
// the item is fully used.
type Leftover struct {
	ID              uuid.UUID  `gorm:"type:varchar(36);primarykey" json:"id"`
	Name            string     `gorm:"size:255;not null" json:"name"`
	Description     string     `gorm:"type:text" json:"description"`
	Portion         float64    `gorm:"not null;default:1" json:"portion"`
	StorageLocation string     `gorm:"size:20;not null" json:"storage_location"`
	StoredDate      time.Time  `gorm:"not null" json:"stored_date"`
	ExpiryDate      time.Time  `gorm:"not null" json:"expiry_date"`
	Tags            StringList `gorm:"type:text;default:'[]'" json:"tags"`
	Consumed        bool       `gorm:"not null;default:false" json:"consumed"`
	ConsumedDate    *time.Time `json:"consumed_date"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
