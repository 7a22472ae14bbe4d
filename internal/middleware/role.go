package middleware

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/wedsimplify/wedsimplify-backend/internal/dto"
	"github.com/wedsimplify/wedsimplify-backend/internal/identity"
	"github.com/wedsimplify/wedsimplify-backend/internal/models"
	"github.com/wedsimplify/wedsimplify-backend/internal/repository"
)

// RequireRole admits callers whose stored role is one of roles. The role is
// read from the database, not the token, because profile setup can change it
// after the token was issued.
func RequireRole(users repository.UserRepository, roles ...models.Role) fiber.Handler {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	denied := "This action requires a " + strings.Join(names, " or ") + " account"

	return func(c *fiber.Ctx) error {
		userID, err := identity.CurrentUserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		user, err := users.GetByID(c.UserContext(), userID)
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		if err != nil {
			slog.Error("role check failed", "user_id", userID, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Internal server error",
			})
		}

		for _, r := range roles {
			if user.Role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: denied,
		})
	}
}
