package api

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// AccessToken is the JWT token used for API authorization
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer"
	TokenType string `json:"token_type"`
}

// ScoreUpdateRequest defines the payload for the score update endpoint.
// Points are added to the user's current total.
type ScoreUpdateRequest struct {
	Points int `json:"points" validate:"gte=0"`
}

// ScoreResponse carries a user's total score after an update.
type ScoreResponse struct {
	Points int `json:"points"`
}

// QuestionRequest defines the payload for creating or updating a question.
type QuestionRequest struct {
	CategoryID       int64    `json:"category_id"       validate:"required,gt=0"`
	Question         string   `json:"question"          validate:"required"`
	CorrectAnswer    string   `json:"correct_answer"    validate:"required"`
	IncorrectAnswers []string `json:"incorrect_answers" validate:"required,min=1,dive,required"`
}

// UnlockAchievementRequest defines the payload for the achievement unlock
// endpoint.
type UnlockAchievementRequest struct {
	AchievementID int64 `json:"achievement_id" validate:"required,gt=0"`
}

// MessageResponse is a simple informational response body.
type MessageResponse struct {
	Message string `json:"message"`
}
