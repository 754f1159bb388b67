package model

import "time"

type Subject struct {
	ID uint64 `gorm:"primaryKey" json:"id,omitempty"`

	Name string `gorm:"column:name;type:varchar(100);not null" json:"name"`

	CreatorID uint64 `gorm:"column:creator_id;not null;index" json:"creator_id,omitempty"`
	Creator   User   `gorm:"foreignKey:CreatorID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name.
func (Subject) TableName() string {
	return "subject"
}
