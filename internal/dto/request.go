package dto

// RegisterRequest starts account registration.
type RegisterRequest struct {
	Username      string `json:"username" binding:"required,alphanum,max=50"`
	Email         string `json:"email" binding:"required,email"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	FirstPassword string `json:"password" binding:"required,min=6"`
}

// LoginRequest authenticates an account.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SubjectRequest creates or renames a subject.
type SubjectRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// DeckRequest creates or updates a deck.
type DeckRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}
