package model

import "time"

// Card holds two faces. Each face carries text, a stored image key, or both;
// a face with neither fails validation before it reaches the database.
type Card struct {
	ID uint64 `gorm:"primaryKey" json:"id,omitempty"`

	Question      string `gorm:"column:question;type:text" json:"question"`
	QuestionImage string `gorm:"column:question_image;type:varchar(512);not null;default:''" json:"question_image,omitempty"`

	Answer      string `gorm:"column:answer;type:text" json:"answer"`
	AnswerImage string `gorm:"column:answer_image;type:varchar(512);not null;default:''" json:"answer_image,omitempty"`

	DeckID uint64 `gorm:"column:deck_id;not null;index" json:"deck_id,omitempty"`
	Deck   Deck   `gorm:"foreignKey:DeckID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name.
func (Card) TableName() string {
	return "card"
}
