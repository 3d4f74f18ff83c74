package main

import (
	"log"
	"net/http"

	"tribunal_app_go/config"
	"tribunal_app_go/db"
	"tribunal_app_go/handlers"
	"tribunal_app_go/middleware"
	"tribunal_app_go/models"
	"tribunal_app_go/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(
		&models.User{},
		&models.Settlement{},
		&models.IssueType{},
		&models.AppealStatus{},
		&models.AppealStage{},
		&models.Client{},
		&models.Organization{},
		&models.Appeal{},
		&models.AppealParty{},
		&models.PanelComposition{},
		&models.ScheduleEntry{},
		&models.Order{},
		&models.OrderSubjects{},
		&models.Document{},
		&models.Notification{},
		&models.AuditLog{},
		&models.FileNumberCounter{},
		&models.OrderNumberCounter{},
		&models.ImportHistory{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed lookup vocabularies
	if err := services.SeedLookups(db.DB); err != nil {
		log.Fatalf("Failed to seed lookup tables: %v", err)
	}

	// Initialize storage (R2 with local fallback)
	services.InitializeStorage(cfg)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handlers.HTTPErrorHandler

	// Middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			log.Printf("[HTTP] %s %s -> %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))

	// Public routes (no authentication)
	e.POST("/api/auth/login", handlers.LoginHandler(cfg), middleware.LoginRateLimiter.Middleware())
	e.GET("/api/public/decisions", handlers.SearchDecisionsHandler, middleware.PublicSearchRateLimiter.Middleware())
	e.GET("/api/public/schedule", handlers.PublicScheduleHandler)

	// Authenticated routes
	api := e.Group("/api")
	api.Use(middleware.RequireAuth(cfg.JWTSecret))
	{
		api.GET("/auth/me", handlers.MeHandler)

		// Lookups (any authenticated role)
		api.GET("/lookups/settlements", handlers.ListSettlementsHandler)
		api.GET("/lookups/issue-types", handlers.ListIssueTypesHandler)
		api.GET("/lookups/statuses", handlers.ListStatusesHandler)
		api.GET("/lookups/stages", handlers.ListStagesHandler)
		api.GET("/lookups/staff", handlers.ListStaffHandler)
		api.GET("/lookups/board-members", handlers.GetBoardMembersHandler)

		// Notifications (own account)
		api.GET("/notifications", handlers.ListNotificationsHandler)
		api.GET("/notifications/unread-count", handlers.UnreadCountHandler)
		api.PUT("/notifications/:notificationId/read", handlers.MarkNotificationReadHandler)
		api.PUT("/notifications/read-all", handlers.MarkAllNotificationsReadHandler)

		// Read-only appeal access (all roles including board_member and user)
		api.GET("/appeals", handlers.ListAppealsHandler)
		api.GET("/appeals/:id", handlers.GetAppealHandler)
		api.GET("/appeals/:id/parties", handlers.ListPartiesHandler)
		api.GET("/appeals/:id/panel", handlers.GetCurrentPanelHandler)
		api.GET("/appeals/:id/schedule", handlers.ListScheduleHandler)
		api.GET("/appeals/:id/orders", handlers.ListOrdersHandler)
		api.GET("/appeals/:id/orders/:orderId", handlers.GetOrderHandler)
		api.GET("/appeals/:id/documents", handlers.ListDocumentsHandler)
		api.GET("/appeals/:id/documents/:documentId", handlers.DownloadDocumentHandler)
		api.GET("/appeals/:id/audit", handlers.GetAppealAuditHandler)

		// Client and organization lookups are read-only for all roles
		api.GET("/clients", handlers.SearchClientsHandler)
		api.GET("/clients/:id", handlers.GetClientHandler)
		api.GET("/organizations", handlers.SearchOrganizationsHandler)
		api.GET("/organizations/:id", handlers.GetOrganizationHandler)

		// Mutations (staff and up)
		staff := api.Group("")
		staff.Use(middleware.RequireRole(models.RoleStaff, models.RoleAdmin))
		{
			staff.POST("/appeals", handlers.CreateAppealHandler)
			staff.PUT("/appeals/:id", handlers.UpdateAppealHandler)
			staff.PUT("/appeals/:id/status", handlers.SetAppealStatusHandler)
			staff.PUT("/appeals/:id/stage", handlers.SetAppealStageHandler)

			staff.POST("/appeals/:id/parties", handlers.AddPartyHandler)
			staff.DELETE("/appeals/:id/parties/:partyId", handlers.RemovePartyHandler)

			staff.POST("/appeals/:id/panel", handlers.AssignPanelHandler)
			staff.DELETE("/appeals/:id/panel/:panelId", handlers.RemovePanelHandler)

			staff.POST("/appeals/:id/schedule/mediation", handlers.ScheduleMediationHandler(cfg))
			staff.POST("/appeals/:id/schedule/hearing", handlers.ScheduleHearingHandler(cfg))
			staff.PUT("/appeals/:id/schedule/:entryId/outcome", handlers.RecordOutcomeHandler)

			staff.POST("/appeals/:id/orders", handlers.RecordOrderHandler(cfg))
			staff.PUT("/appeals/:id/orders/:orderId", handlers.UpdateOrderHandler)
			staff.POST("/appeals/:id/orders/:orderId/document", handlers.UploadOrderDocumentHandler)

			staff.POST("/appeals/:id/documents", handlers.UploadDocumentHandler)
			staff.DELETE("/appeals/:id/documents/:documentId", handlers.DeleteDocumentHandler)
			staff.POST("/appeals/:id/hearing-package", handlers.CompileHearingPackageHandler)

			staff.POST("/clients", handlers.CreateClientHandler)
			staff.PUT("/clients/:id", handlers.UpdateClientHandler)
			staff.DELETE("/clients/:id", handlers.DeleteClientHandler)

			staff.POST("/organizations", handlers.CreateOrganizationHandler)
			staff.PUT("/organizations/:id", handlers.UpdateOrganizationHandler)
			staff.DELETE("/organizations/:id", handlers.DeleteOrganizationHandler)
		}

		// Admin-only routes
		admin := api.Group("")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.POST("/users", handlers.CreateUserHandler)
			admin.GET("/audit-logs", handlers.ListAuditLogsHandler)
			admin.POST("/import/appeals", handlers.ImportAppealsHandler)
		}
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
