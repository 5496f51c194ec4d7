package models

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	IsSuccess   bool   `json:"isSuccess"`
	Message     string `json:"message"`
	AccessToken string `json:"accessToken"`
	ExpiresAt   string `json:"expiresAt"`
}
