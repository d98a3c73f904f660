package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/resto-dash/internal/application/auth"
	"github.com/tu-usuario/resto-dash/internal/application/ingest"
	"github.com/tu-usuario/resto-dash/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	CompanyUC    *usecase.CompanyUseCase
	LocationUC   *usecase.LocationUseCase
	UserUC       *usecase.UserUseCase
	MailUC       *usecase.MailUseCase
	PermissionUC *usecase.PermissionUseCase
	DashboardUC  *usecase.DashboardUseCase
	IngestSvc    *ingest.Service
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/signin", authHandler.Signin)

	// Dashboard company-wide (público: el front lo consulta antes de autenticar)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Post("/companywide/filter", dashboardHandler.CompanyWideFilter)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.AuthUC))

	protected.Get("/auth/me", authHandler.Me)

	// Companies (protegido)
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)
	protected.Get("/company-locations/all", companyHandler.ListWithLocations)

	// Locations (protegido)
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Get("/", locationHandler.ListByCompany)
	locations.Post("/", locationHandler.Create)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Put("/:id", locationHandler.Update)
	locations.Delete("/:id", locationHandler.Delete)

	// Users (protegido)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Deactivate)

	// Mails programados (protegido)
	mails := protected.Group("/mails")
	mailHandler := NewMailHandler(deps.MailUC)
	mails.Get("/", mailHandler.ListByCompany)
	mails.Post("/", mailHandler.Create)
	mails.Get("/:id", mailHandler.GetByID)
	mails.Put("/:id", mailHandler.Update)
	mails.Delete("/:id", mailHandler.Delete)

	// Permisos (protegido)
	permissions := protected.Group("/permissions")
	permissionHandler := NewPermissionHandler(deps.PermissionUC)
	permissions.Get("/:user_id", permissionHandler.GetByUser)
	permissions.Put("/", permissionHandler.Upsert)

	// Subidas de spreadsheets y su registro (protegido)
	uploadHandler := NewUploadHandler(deps.IngestSvc, deps.PermissionUC)
	protected.Post("/excel/upload", uploadHandler.UploadExcel)
	protected.Get("/uploads", dashboardHandler.ListUploads)

	// Exportación PDF del company-wide (protegido)
	protected.Post("/companywide/export", dashboardHandler.ExportPDF)
}
