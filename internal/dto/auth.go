package dto

import "pixbank/internal/models"

// RegisterRequest contains the data for creating a demo account.
type RegisterRequest struct {
	Name                string `json:"name" validate:"required,min=1,max=100"`
	Email               string `json:"email" validate:"required,email"`
	Password            string `json:"password" validate:"required,min=6,max=72"`
	TransactionPassword string `json:"transaction_password" validate:"omitempty,numeric,min=4,max=8"`
}

// LoginRequest contains login credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse is returned by login and registration: the bearer
// token plus the account state the client seeds its session from.
type SessionResponse struct {
	Token string          `json:"token"`
	User  *models.Account `json:"user"`
}
