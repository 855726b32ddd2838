package http

import (
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-sync-agent/internal/application/viewmodel"
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
)

// RouterDeps view-models que expone la API local.
type RouterDeps struct {
	Auth      *viewmodel.AuthViewModel
	Approvals *viewmodel.ApprovalViewModel
	Inventory *viewmodel.InventoryViewModel
	Messages  *viewmodel.MessageViewModel
	Locations *viewmodel.LocationViewModel
	Users     *viewmodel.UserViewModel
	Products  *viewmodel.ProductViewModel
	Sync      *viewmodel.SyncViewModel

	// DocsFile swagger.json generado con swag; vacío no monta /docs.
	DocsFile string
}

// Router registra las rutas de la API local del agente.
func Router(app *fiber.App, deps RouterDeps) {
	// Swagger UI en local: http://localhost:<port>/docs
	if deps.DocsFile != "" {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: deps.DocsFile,
			Path:     "docs",
			Title:    "WMS Sync Agent API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/v1")

	// Auth (público)
	authHandler := NewAuthHandler(deps.Auth)
	authGroup := v1.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/sesion", authHandler.Session)

	// Rutas protegidas (requieren sesión activa en el dispositivo)
	protected := v1.Group("/", AuthMiddleware(deps.Auth))
	canApprove := RequireRole(entity.RoleAdmin, entity.RoleSupervisor)

	approvals := protected.Group("/aprobaciones")
	approvalHandler := NewApprovalHandler(deps.Approvals)
	approvals.Get("/", approvalHandler.List)
	approvals.Post("/", approvalHandler.Create)
	approvals.Put("/:id/aprobar", canApprove, approvalHandler.Approve)
	approvals.Put("/:id/rechazar", canApprove, approvalHandler.Reject)

	inventory := protected.Group("/inventario")
	inventoryHandler := NewInventoryHandler(deps.Inventory)
	inventory.Get("/progreso", inventoryHandler.Progress)
	inventory.Post("/conteos", inventoryHandler.RegisterCount)
	inventory.Get("/conteos", inventoryHandler.PendingCounts)
	inventory.Post("/diferencias", inventoryHandler.Differences)
	inventory.Post("/finalizar", canApprove, inventoryHandler.Finalize)

	messages := protected.Group("/mensajes")
	messageHandler := NewMessageHandler(deps.Messages)
	messages.Get("/", messageHandler.List)
	messages.Post("/", messageHandler.Send)

	locations := protected.Group("/ubicaciones")
	locationHandler := NewLocationHandler(deps.Locations)
	locations.Get("/", locationHandler.List)
	locations.Post("/asignaciones", locationHandler.Assign)

	users := protected.Group("/usuarios")
	userHandler := NewUserHandler(deps.Users)
	users.Get("/", userHandler.List)
	users.Post("/", RequireRole(entity.RoleAdmin), userHandler.Create)

	productHandler := NewProductHandler(deps.Products)
	protected.Get("/productos", productHandler.List)

	sync := protected.Group("/sync")
	syncHandler := NewSyncHandler(deps.Sync)
	sync.Get("/estado", syncHandler.Status)
	sync.Post("/ahora", syncHandler.SyncNow)
	sync.Put("/conectividad", syncHandler.Connectivity)
	sync.Get("/rechazados/:id", syncHandler.Rejected)
	sync.Delete("/rechazados/:id", syncHandler.Discard)
	sync.Post("/rechazados/:id/reencolar", syncHandler.Requeue)
}
