package http

import (
	"github.com/labstack/echo/v4"
	"github.com/partycurrency/backend/internal/pkg/models"
)

// userIdentity assembles the caller's identity from the JWT claims the
// routes layer stored on the echo context.
func userIdentity(c echo.Context) models.UserIdentity {
	identity := models.UserIdentity{}
	if email, ok := c.Get("email").(string); ok {
		identity.Email = email
	}
	if firstName, ok := c.Get("first_name").(string); ok {
		identity.FirstName = firstName
	}
	if lastName, ok := c.Get("last_name").(string); ok {
		identity.LastName = lastName
	}
	return identity
}
