package middleware

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wedsimplify/wedsimplify-backend/internal/identity"
	"github.com/wedsimplify/wedsimplify-backend/internal/models"
	"github.com/wedsimplify/wedsimplify-backend/internal/repository"
	"github.com/wedsimplify/wedsimplify-backend/internal/repository/repotest"
)

func roleApp(users repository.UserRepository, userID uuid.UUID, roles ...models.Role) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if userID != uuid.Nil {
			c.Locals(identity.LocalsKey, jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": userID.String()}))
		}
		return c.Next()
	})
	app.Get("/", RequireRole(users, roles...), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func TestRequireRole(t *testing.T) {
	userID := uuid.New()
	tests := []struct {
		name   string
		user   *models.User
		err    error
		status int
	}{
		{"allowed", &models.User{ID: userID, Role: models.RoleVendor}, nil, fiber.StatusNoContent},
		{"wrong role", &models.User{ID: userID, Role: models.RoleCouple}, nil, fiber.StatusForbidden},
		{"unknown user", nil, repository.ErrNotFound, fiber.StatusUnauthorized},
		{"store failure", nil, errors.New("db down"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(repotest.UserRepository)
			users.On("GetByID", mock.Anything, userID).Return(tt.user, tt.err)

			resp, err := roleApp(users, userID, models.RoleVendor).Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestRequireRole_Anonymous(t *testing.T) {
	users := new(repotest.UserRepository)

	resp, err := roleApp(users, uuid.Nil, models.RoleVendor).Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
