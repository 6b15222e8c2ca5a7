package context

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SetUserID stores the authenticated account ID on the request context.
func SetUserID(c echo.Context, userID uuid.UUID) {
	c.Set(string(KeyUserID), userID)
}

// GetUserID extracts the authenticated account ID from echo.Context.
// The second return is false when the request was not authenticated.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(string(KeyUserID)).(uuid.UUID)

	return id, ok
}

// SetTokenID stores the jti of the presented access token on the request context.
func SetTokenID(c echo.Context, jti string) {
	c.Set(string(KeyTokenID), jti)
}

// GetTokenID extracts the jti of the presented access token from echo.Context.
func GetTokenID(c echo.Context) (string, bool) {
	jti, ok := c.Get(string(KeyTokenID)).(string)

	return jti, ok && jti != ""
}

// SetTokenExpiry stores the access token's expiry on the request context.
func SetTokenExpiry(c echo.Context, expiresAt time.Time) {
	c.Set(string(KeyTokenExpiry), expiresAt)
}

// GetTokenExpiry extracts the access token's expiry from echo.Context.
func GetTokenExpiry(c echo.Context) (time.Time, bool) {
	expiresAt, ok := c.Get(string(KeyTokenExpiry)).(time.Time)

	return expiresAt, ok
}
