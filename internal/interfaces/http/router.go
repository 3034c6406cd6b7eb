package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agriconecta/agriconecta-api/internal/application/analytics"
	"github.com/agriconecta/agriconecta-api/internal/application/auth"
	"github.com/agriconecta/agriconecta-api/internal/application/orders"
	"github.com/agriconecta/agriconecta-api/internal/application/usecase"
	"github.com/agriconecta/agriconecta-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ProductUC    *usecase.ProductUseCase
	CategoryUC   *usecase.CategoryUseCase
	UserUC       *usecase.UserUseCase
	CreateOrder  *orders.CreateOrderUseCase
	Transition   *orders.TransitionUseCase
	OrderQueries *orders.QueryUseCase
	InvoicePDF   *orders.InvoicePDFUseCase
	QRGen        orders.PaymentQRGenerator
	Pay          orders.PaymentInfo
	DashboardUC  *analytics.DashboardUseCase
	JWTSecret    string
}

// Router regista as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo (leitura pública)
	productHandler := NewProductHandler(deps.ProductUC)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	api.Get("/products", productHandler.List)
	api.Get("/products/:id", productHandler.GetByID)
	api.Get("/categories", categoryHandler.List)
	api.Get("/categories/:id", categoryHandler.GetByID)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Conta própria
	me := protected.Group("/me")
	me.Get("/", authHandler.Me)
	me.Put("/", authHandler.UpdateProfile)
	me.Put("/password", authHandler.ChangePassword)

	// Pedidos (checkout e área de cliente)
	orderHandler := NewOrderHandler(deps.CreateOrder, deps.Transition, deps.OrderQueries, deps.InvoicePDF, deps.QRGen, deps.Pay)
	ordersGroup := protected.Group("/orders")
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.ListMine)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Patch("/:id/estado", orderHandler.ChangeState)
	ordersGroup.Get("/:id/invoice.pdf", orderHandler.Invoice)
	ordersGroup.Get("/:id/payment-qr", orderHandler.PaymentQR)
	ordersGroup.Get("/:id/whatsapp", orderHandler.WhatsApp)

	// Escrita no catálogo (STAFF+; eliminação de produtos ADMIN+)
	staff := protected.Group("/", RequireMinRole(entity.RoleStaff))
	staff.Post("/products", productHandler.Create)
	staff.Put("/products/:id", productHandler.Update)
	staff.Post("/categories", categoryHandler.Create)
	staff.Put("/categories/:id", categoryHandler.Update)
	staff.Delete("/categories/:id", categoryHandler.Delete)

	adminWrite := protected.Group("/", RequireMinRole(entity.RoleAdmin))
	adminWrite.Delete("/products/:id", productHandler.Delete)

	// Área administrativa
	admin := protected.Group("/admin", RequireMinRole(entity.RoleStaff))
	admin.Get("/orders", orderHandler.ListAdmin)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	admin.Get("/dashboard", dashboardHandler.Summary)

	reports := admin.Group("/reports", RequireMinRole(entity.RoleAdmin))
	reports.Get("/sales", dashboardHandler.SalesReport)

	userHandler := NewUserHandler(deps.UserUC)
	adminUsers := admin.Group("/users", RequireMinRole(entity.RoleAdmin))
	adminUsers.Get("/", userHandler.List)
	adminUsers.Patch("/:id/role", RequireMinRole(entity.RoleSuperAdmin), userHandler.ChangeRole)
}
