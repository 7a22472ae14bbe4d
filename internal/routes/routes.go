package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/wedsimplify/wedsimplify-backend/internal/config"
	"github.com/wedsimplify/wedsimplify-backend/internal/handlers"
	"github.com/wedsimplify/wedsimplify-backend/internal/middleware"
	"github.com/wedsimplify/wedsimplify-backend/internal/models"
	"github.com/wedsimplify/wedsimplify-backend/internal/repository"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	Health   *handlers.HealthHandler
	Profile  *handlers.ProfileHandler
	Vendor   *handlers.VendorHandler
	Inquiry  *handlers.InquiryHandler
	Planning *handlers.PlanningHandler
	Calendar *handlers.CalendarHandler
	Account  *handlers.AccountHandler
	Object   *handlers.ObjectHandler
}

func Setup(app *fiber.App, cfg *config.Config, users repository.UserRepository, h Handlers) {
	// Object reads are outside /api so image URLs stay stable and unthrottled.
	app.Get("/objects/*", middleware.OptionalJWT(cfg), h.Object.Serve)

	api := app.Group("/api")

	// General API rate limiter: 120 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               120,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", h.Health.Check)

	// Public directory
	api.Get("/categories", h.Vendor.Categories)
	api.Get("/vendors", h.Vendor.Search)
	api.Get("/vendors/:id", h.Vendor.Detail)
	api.Get("/vendors/:id/availability", h.Calendar.VendorAvailability)

	// Protected routes carry the JWT middleware per route or per group so
	// the public routes above stay reachable without a token.
	jwt := middleware.JWTProtected(cfg)
	vendorOnly := middleware.RequireRole(users, models.RoleVendor)
	consumerOnly := middleware.RequireRole(users, models.RoleCouple, models.RoleIndividual)

	// Session restore runs on every app launch, so it stays on the general limit.
	api.Get("/auth/user", jwt, h.Auth.CurrentUser)

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.Refresh)

	auth.Post("/logout", jwt, h.Auth.Logout)
	auth.Delete("/account", jwt, h.Auth.DeleteAccount)

	// Profiles
	api.Post("/setup-profile", jwt, h.Profile.SetupProfile)
	api.Put("/profile", jwt, consumerOnly, h.Profile.UpdateProfile)
	api.Post("/vendors", jwt, h.Profile.CreateVendor)
	api.Put("/vendors", jwt, vendorOnly, h.Vendor.Update)
	api.Put("/vendors/profile", jwt, vendorOnly, h.Vendor.Update)

	// Vendor self-service. Middleware goes on each route: a Use on /api/vendor
	// would also match the public /api/vendors prefix.
	vendor := api.Group("/vendor")
	vendor.Get("/packages", jwt, vendorOnly, h.Vendor.ListPackages)
	vendor.Post("/packages", jwt, vendorOnly, h.Vendor.CreatePackage)
	vendor.Put("/packages/:id", jwt, vendorOnly, h.Vendor.UpdatePackage)
	vendor.Delete("/packages/:id", jwt, vendorOnly, h.Vendor.DeletePackage)
	vendor.Get("/portfolio", jwt, vendorOnly, h.Vendor.ListPortfolio)
	vendor.Delete("/portfolio/:id", jwt, vendorOnly, h.Vendor.DeletePortfolioItem)
	vendor.Get("/availability", jwt, vendorOnly, h.Calendar.Mine)
	vendor.Put("/availability", jwt, vendorOnly, h.Calendar.Set)

	calendar := api.Group("/calendar", jwt, vendorOnly)
	calendar.Get("/", h.Calendar.Mine)
	calendar.Put("/", h.Calendar.Set)
	calendar.Get("/booked", h.Calendar.Booked)

	// Inquiries
	inquiries := api.Group("/inquiries", jwt)
	inquiries.Post("/", consumerOnly, h.Inquiry.Create)
	inquiries.Get("/", h.Inquiry.List)
	inquiries.Get("/sent", consumerOnly, h.Inquiry.ListSent)
	inquiries.Get("/received", vendorOnly, h.Inquiry.ListReceived)
	inquiries.Get("/:id", h.Inquiry.Get)
	inquiries.Put("/:id", vendorOnly, h.Inquiry.Respond)
	inquiries.Put("/:id/respond", vendorOnly, h.Inquiry.Respond)

	// Planning tools
	budget := api.Group("/budget", jwt, consumerOnly)
	budget.Get("/", h.Planning.ListBudget)
	budget.Post("/", h.Planning.CreateBudgetItem)
	budget.Get("/summary", h.Planning.BudgetSummary)
	budget.Put("/:id", h.Planning.UpdateBudgetItem)
	budget.Delete("/:id", h.Planning.DeleteBudgetItem)

	timeline := api.Group("/timeline", jwt, consumerOnly)
	timeline.Get("/", h.Planning.ListTimeline)
	timeline.Post("/", h.Planning.CreateTimelineItem)
	timeline.Put("/:id", h.Planning.UpdateTimelineItem)
	timeline.Delete("/:id", h.Planning.DeleteTimelineItem)

	// Account
	saved := api.Group("/saved-vendors", jwt)
	saved.Get("/", h.Account.ListSaved)
	saved.Post("/", h.Account.SaveVendor)
	saved.Delete("/:vendorId", h.Account.RemoveSaved)
	api.Post("/consumer/save-vendor", jwt, h.Account.SaveVendor)

	notifications := api.Group("/notifications", jwt)
	notifications.Get("/", h.Account.ListNotifications)
	notifications.Put("/read-all", h.Account.MarkAllRead)
	notifications.Put("/:id/read", h.Account.MarkRead)

	api.Get("/settings", jwt, h.Account.GetSettings)
	api.Put("/settings", jwt, h.Account.UpdateSettings)

	// Object storage
	api.Post("/objects/upload", jwt, h.Object.UploadURL)
	api.Put("/portfolio-images", jwt, vendorOnly, h.Object.AttachPortfolioImage)
}
