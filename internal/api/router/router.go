package router

import (
	"github.com/justifyman/alansar/internal/api/handlers"
	"github.com/justifyman/alansar/pkg/middlewares"
	token "github.com/justifyman/alansar/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// RegisterRoutes 註冊目錄服務的路由
// @title Video Catalog Service API
// @version 1.0
// @description API documentation for Video Catalog Service
// @host localhost:8080
// @BasePath /
func RegisterRoutes(app *fiber.App,
	catalogHandler *handlers.CatalogHandler,
	uploadHandler *handlers.UploadHandler,
	moderationHandler *handlers.ModerationHandler,
	adminHandler *handlers.AdminHandler,
	memberHandler *handlers.MemberHandler,
) {
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/", handlers.ConnectCheck)
	app.Post("/debug", handlers.DebugLogFlag)

	// 訪客瀏覽，不需登入
	app.Get("/catalog", catalogHandler.ListCatalog)
	app.Get("/categories", catalogHandler.ListCategories)
	app.Get("/announcements", catalogHandler.ListAnnouncements)
	app.Get("/hero", catalogHandler.GetHero)

	memberRoutes := app.Group("/member")
	memberRoutes.Post("/register", memberHandler.Register)
	memberRoutes.Post("/login", memberHandler.Login)

	memberRoutes.Use(middlewares.JWTMiddleware())
	memberRoutes.Post("/logout", memberHandler.Logout)

	// 投稿需要登入
	uploadRoutes := app.Group("/uploads", middlewares.JWTMiddleware())
	uploadRoutes.Post("/", uploadHandler.Submit)
	uploadRoutes.Get("/", uploadHandler.ListMine)

	// 審核後台：admin 與 moderator 都可操作
	moderationRoutes := app.Group("/moderation",
		middlewares.JWTMiddleware(),
		middlewares.RequireRole(token.RoleAdmin, token.RoleModerator))
	moderationRoutes.Get("/pending", moderationHandler.ListPending)
	moderationRoutes.Post("/:id/approve", moderationHandler.Approve)
	moderationRoutes.Post("/:id/reject", moderationHandler.Reject)
	moderationRoutes.Patch("/:id", moderationHandler.Edit)
	moderationRoutes.Get("/:id/audit", moderationHandler.AuditTrail)

	// 目錄維護後台：僅 admin
	adminRoutes := app.Group("/admin",
		middlewares.JWTMiddleware(),
		middlewares.RequireRole(token.RoleAdmin))
	adminRoutes.Post("/categories", adminHandler.CreateCategory)
	adminRoutes.Delete("/categories/:id", adminHandler.DeleteCategory)
	adminRoutes.Get("/videos", adminHandler.ListVideos)
	adminRoutes.Post("/videos", adminHandler.CreateVideo)
	adminRoutes.Patch("/videos/:id", adminHandler.UpdateVideo)
	adminRoutes.Delete("/videos/:id", adminHandler.DeleteVideo)
	adminRoutes.Post("/announcements", adminHandler.CreateAnnouncement)
	adminRoutes.Patch("/announcements/:id", adminHandler.UpdateAnnouncement)
	adminRoutes.Delete("/announcements/:id", adminHandler.DeleteAnnouncement)
	adminRoutes.Patch("/hero", adminHandler.UpdateHero)
}
