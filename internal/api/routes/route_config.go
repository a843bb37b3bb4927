package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/internal/api/handlers"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/internal/middleware"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/pkg/jwt"
)

type Config struct {
	App                 *fiber.App
	BrandHandler        handlers.BrandHandler
	SubmissionHandler   handlers.SubmissionHandler
	AnnouncementHandler handlers.AnnouncementHandler
	StatsHandler        handlers.StatsHandler
	AuthHandler         handlers.AuthHandler
	UploadHandler       handlers.UploadHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Brands()
	c.Submissions()
	c.Announcements()
	c.Stats()
	c.Auth()
	c.Uploads()
	c.GuestRoute()
}

func (c *Config) Brands() {
	brands := c.App.Group("/api/v1/brands")

	brands.Get("/filter-options", c.BrandHandler.GetFilterOptions)
	brands.Get("", c.BrandHandler.List)
	brands.Get("/:id", c.BrandHandler.GetByID)

	admin := c.Middleware.AdminOnlyMiddleware(c.JWTService)
	brands.Post("", admin, c.BrandHandler.Create)
	brands.Patch("/:id", admin, c.BrandHandler.Update)
	brands.Delete("/:id", admin, c.BrandHandler.Delete)
}

func (c *Config) Submissions() {
	submissions := c.App.Group("/api/v1/submissions")
	admin := c.Middleware.AdminOnlyMiddleware(c.JWTService)

	// anonymous submitters are allowed; auth is resolved when present
	submissions.Post("", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.SubmissionHandler.Create)

	submissions.Get("", admin, c.SubmissionHandler.GetByStatus)
	submissions.Get("/:id", admin, c.SubmissionHandler.GetByID)
	submissions.Post("/:id/approve", admin, c.SubmissionHandler.Approve)
	submissions.Post("/:id/reject", admin, c.SubmissionHandler.Reject)
	submissions.Post("/:id/revalidate", admin, c.SubmissionHandler.Revalidate)
}

func (c *Config) Announcements() {
	announcements := c.App.Group("/api/v1/announcements")
	admin := c.Middleware.AdminOnlyMiddleware(c.JWTService)

	announcements.Get("/active", c.AnnouncementHandler.GetActive)

	announcements.Get("", admin, c.AnnouncementHandler.GetAll)
	announcements.Post("", admin, c.AnnouncementHandler.Create)
	announcements.Patch("/:id", admin, c.AnnouncementHandler.Update)
	announcements.Delete("/:id", admin, c.AnnouncementHandler.Delete)
}

func (c *Config) Stats() {
	c.App.Get("/api/v1/stats", c.StatsHandler.Get)
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	auth.Post("/callback", c.AuthHandler.Callback)
	auth.Get("/me", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.AuthHandler.Me)
	auth.Post("/logout", c.AuthHandler.Logout)
}

func (c *Config) Uploads() {
	c.App.Post("/api/v1/uploads/image", c.UploadHandler.UploadImage)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
