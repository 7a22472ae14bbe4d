package identity

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, token *jwt.Token) (uuid.UUID, error) {
	t.Helper()
	var (
		id  uuid.UUID
		err error
	)
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		if token != nil {
			c.Locals(LocalsKey, token)
		}
		id, err = CurrentUserID(c)
		return c.SendStatus(fiber.StatusNoContent)
	})
	_, testErr := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, testErr)
	return id, err
}

func TestCurrentUserID(t *testing.T) {
	want := uuid.New()
	got, err := run(t, jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": want.String()}))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCurrentUserID_Missing(t *testing.T) {
	_, err := run(t, nil)
	assert.ErrorIs(t, err, ErrNoIdentity)

	_, err = run(t, jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "a@x.com"}))
	assert.Error(t, err)

	_, err = run(t, jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "not-a-uuid"}))
	assert.Error(t, err)
}
