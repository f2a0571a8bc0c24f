// Package auth extracts the authenticated identity from JWT claims
// stored in the Fiber context by the JWT middleware.
package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func claims(c *fiber.Ctx) (jwt.MapClaims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return nil, errors.New("invalid token in context")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return mapClaims, nil
}

// UserID extracts the user UUID from the sub claim.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	mapClaims, err := claims(c)
	if err != nil {
		return uuid.Nil, err
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}
	return uuid.Parse(sub)
}

// Email extracts the authenticated email. Handlers compare this against
// any email a request body claims to act for.
func Email(c *fiber.Ctx) (string, error) {
	mapClaims, err := claims(c)
	if err != nil {
		return "", err
	}

	email, ok := mapClaims["email"].(string)
	if !ok || email == "" {
		return "", errors.New("missing email claim")
	}
	return email, nil
}
