package routes

import (
	"github.com/gofiber/fiber/v2"

	"mylegs/backend/config"
	"mylegs/backend/controllers"
	"mylegs/backend/middleware"
	"mylegs/backend/session"
	"mylegs/backend/store"
	"mylegs/backend/tutor"
)

// Dependencies carries the wired stores and services the handlers run on.
type Dependencies struct {
	Config     *config.Config
	Sessions   *session.Manager
	Directory  *store.Directory
	Tiers      *store.TierRegistry
	Catalog    *store.Catalog
	Binder     *store.Binder
	Progress   *store.Progress
	Activities *store.ActivityLog
	Tutor      *tutor.Client
}

func SetupRoutes(app *fiber.App, deps Dependencies) {
	// Auth routes
	authController := controllers.NewAuthController(deps.Sessions, deps.Tiers, deps.Progress, deps.Activities, deps.Config)
	app.Post("/api/auth/login", authController.Login)
	app.Post("/api/auth/guest", authController.LoginAsGuest)
	app.Post("/api/auth/admin", authController.LoginAsAdmin)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(deps.Config, deps.Sessions)
	adminMiddleware := middleware.AdminMiddleware(deps.Config, deps.Sessions)

	app.Post("/api/auth/logout", authMiddleware, authController.Logout)
	app.Post("/api/auth/upgrade", authMiddleware, authController.Upgrade)
	app.Get("/api/auth/profile", authMiddleware, authController.GetProfile)

	// Catalog routes
	contentController := controllers.NewContentController(deps.Catalog, deps.Sessions)
	app.Get("/api/topics", authMiddleware, contentController.GetTopics)
	app.Get("/api/topics/:id", authMiddleware, contentController.GetTopicDetails)
	app.Get("/api/statutes", authMiddleware, contentController.GetStatutes)
	app.Get("/api/cases", authMiddleware, contentController.GetCaseSummaries)
	app.Get("/api/providers", authMiddleware, contentController.GetProviders)
	app.Get("/api/exam-resources", authMiddleware, contentController.GetExamResources)
	app.Get("/api/links", authMiddleware, contentController.GetLinks)
	app.Get("/api/settings", authMiddleware, contentController.GetSettings)
	app.Post("/api/judgments/search", authMiddleware, contentController.SearchJudgments)

	// Binder routes
	binderController := controllers.NewBinderController(deps.Binder, deps.Sessions)
	binder := app.Group("/api/binder", authMiddleware)
	binder.Get("/", binderController.GetBinder)
	binder.Post("/bookmarks/toggle", binderController.ToggleBookmark)
	binder.Post("/folders", binderController.CreateFolder)
	binder.Delete("/folders/:id", binderController.DeleteFolder)

	// Progress routes
	progressController := controllers.NewProgressController(deps.Progress, deps.Catalog)
	app.Get("/api/progress", authMiddleware, progressController.GetProgress)
	app.Post("/api/progress/toggle", authMiddleware, progressController.ToggleCompletion)

	// Resource viewer routes
	viewerController := controllers.NewViewerController()
	app.Get("/api/viewer/preview", authMiddleware, viewerController.Preview)

	// AI tutor routes
	chatController := controllers.NewChatController(deps.Tutor, deps.Catalog, deps.Sessions)
	app.Post("/api/chat", authMiddleware, chatController.Chat)

	// Admin routes
	adminController := controllers.NewAdminController(deps.Directory, deps.Tiers, deps.Catalog, deps.Activities)
	admin := app.Group("/api/admin", authMiddleware, adminMiddleware)
	admin.Get("/dashboard", adminController.GetDashboard)
	admin.Get("/activities", adminController.GetActivities)

	admin.Get("/users", adminController.ListUsers)
	admin.Post("/users", adminController.CreateUser)
	admin.Put("/users/:id", adminController.UpdateUser)
	admin.Delete("/users/:id", adminController.DeleteUser)

	admin.Post("/topics", adminController.CreateTopic)
	admin.Put("/topics/:id", adminController.UpdateTopic)
	admin.Delete("/topics/:id", adminController.DeleteTopic)

	admin.Post("/links", adminController.CreateLink)
	admin.Put("/links/:id", adminController.UpdateLink)
	admin.Delete("/links/:id", adminController.DeleteLink)

	admin.Get("/tiers", adminController.ListTiers)
	admin.Post("/tiers", adminController.CreateTier)
	admin.Put("/tiers/:id", adminController.UpdateTier)
	admin.Delete("/tiers/:id", adminController.DeleteTier)

	admin.Get("/settings", adminController.GetSettings)
	admin.Put("/settings", adminController.UpdateSettings)

	admin.Get("/chatbot", adminController.GetChatbotConfig)
	admin.Put("/chatbot", adminController.UpdateChatbotConfig)
}
