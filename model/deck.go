package model

import "time"

type Deck struct {
	ID uint64 `gorm:"primaryKey" json:"id,omitempty"`

	Name        string `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Description string `gorm:"column:description;type:varchar(500);not null;default:''" json:"description"`

	SubjectID uint64  `gorm:"column:subject_id;not null;index" json:"subject_id,omitempty"`
	Subject   Subject `gorm:"foreignKey:SubjectID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name.
func (Deck) TableName() string {
	return "deck"
}
