package middleware

import (
	"errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "pixbank/internal/errors"
	"pixbank/internal/handlers"
	"pixbank/internal/services"
)

// RequireAuth requires a valid bearer token on the request.
func RequireAuth(tokenService *services.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, apperrors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, apperrors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateToken(token)
			if err != nil {
				if errors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, apperrors.AuthExpiredToken)
				}
				return handlers.SendError(c, apperrors.AuthInvalidTokenFormat)
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				return handlers.SendError(c, apperrors.AuthInvalidTokenFormat, apperrors.WithDetails("Invalid user ID in token"))
			}

			c.Set("user_id", userID)
			c.Set("user_email", claims.Email)

			return next(c)
		}
	}
}

// RequireSelf restricts a /users/:id route to the token's own account.
func RequireSelf() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := c.Get("user_id").(uuid.UUID)
			if !ok {
				return handlers.SendError(c, apperrors.AuthMissingToken)
			}

			pathID, err := uuid.Parse(c.Param("id"))
			if err != nil {
				return handlers.SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid user id"))
			}

			if pathID != userID {
				return handlers.SendError(c, apperrors.AuthForbidden)
			}

			return next(c)
		}
	}
}
