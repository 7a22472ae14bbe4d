package routes

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wedsimplify/wedsimplify-backend/internal/config"
)

func TestCurrentUserSkipsAuthLimiter(t *testing.T) {
	app := fiber.New()
	Setup(app, &config.Config{JWTSecret: "test-secret"}, nil, Handlers{})

	for i := 0; i < 15; i++ {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/auth/user", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "request %d", i+1)
	}
}
