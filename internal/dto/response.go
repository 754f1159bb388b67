package dto

import "FlashVault/model"

// LoginResponse carries the signed token back to the client.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// ProfileResponse is the public view of a user's profile.
type ProfileResponse struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Image     string `json:"image"`
}

// CardResponse hides the internal deck wiring from clients.
type CardResponse struct {
	ID            uint64 `json:"id"`
	Question      string `json:"question"`
	QuestionImage string `json:"question_image"`
	Answer        string `json:"answer"`
	AnswerImage   string `json:"answer_image"`
}

// NewCardResponse builds a CardResponse from the stored row.
func NewCardResponse(card *model.Card) CardResponse {
	return CardResponse{
		ID:            card.ID,
		Question:      card.Question,
		QuestionImage: card.QuestionImage,
		Answer:        card.Answer,
		AnswerImage:   card.AnswerImage,
	}
}
