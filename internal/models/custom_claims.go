package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims is the JWT payload issued on login and registration.
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
