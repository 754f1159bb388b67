package model

type Profile struct {
	ID uint64 `gorm:"primaryKey" json:"id,omitempty"`

	UserID uint64 `gorm:"column:user_id;not null;uniqueIndex" json:"user_id,omitempty"`
	User   User   `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	// Image is a media store key, or the default image sentinel for
	// accounts that never uploaded one.
	Image string `gorm:"column:image;type:varchar(512);not null;default:''" json:"image"`
}

// TableName returns the database table name.
func (Profile) TableName() string {
	return "profile"
}
