package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID uint64 `gorm:"primaryKey"`

	UserName string `gorm:"column:user_name;type:varchar(50);not null;unique"`

	Password string `gorm:"column:pass_word;type:varchar(255);not null" json:"-"`

	Email string `gorm:"column:email;type:varchar(255);not null;unique"`

	FirstName string `gorm:"column:first_name;type:varchar(30);not null;default:''"`
	LastName  string `gorm:"column:last_name;type:varchar(30);not null;default:''"`

	IsActive bool `gorm:"column:is_active;not null;default:false"`

	CreatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName returns the database table name.
func (User) TableName() string {
	return "user_db"
}
